package dto

import (
	"hiretrack_backend/internal/models"
)

// CompanyPayload - место работы кандидата в запросах
type CompanyPayload struct {
	Department string `json:"department"`
	Name       string `json:"name"`
	Title      string `json:"title"`
}

// CreateCandidateRequest - создание кандидата. Статус опционален,
// по умолчанию scheduled.
type CreateCandidateRequest struct {
	FirstName string         `json:"firstName" validate:"required"`
	LastName  string         `json:"lastName" validate:"required"`
	Email     string         `json:"email" validate:"required,email"`
	Phone     string         `json:"phone"`
	Company   CompanyPayload `json:"company"`
	Image     string         `json:"image" validate:"omitempty,url"`
	Status    string         `json:"status" validate:"omitempty,is-candidate-status"`
}

// UpdateCandidateRequest - частичное обновление: присутствующее поле
// заменяет прежнее значение целиком, company не сливается по-полям.
type UpdateCandidateRequest struct {
	FirstName *string         `json:"firstName,omitempty"`
	LastName  *string         `json:"lastName,omitempty"`
	Email     *string         `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string         `json:"phone,omitempty"`
	Company   *CompanyPayload `json:"company,omitempty"`
	Image     *string         `json:"image,omitempty"`
	Status    *string         `json:"status,omitempty" validate:"omitempty,is-candidate-status"`
}

// SeedCandidatesRequest - загрузка демо-кандидатов с удаленного API
type SeedCandidatesRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
	Skip  int `json:"skip" validate:"omitempty,min=0"`
}

// CandidateListResponse - список кандидатов c количеством
type CandidateListResponse struct {
	Items []models.Candidate `json:"items"`
	Total int                `json:"total"`
}

// SeedCandidatesResponse - результат сидинга
type SeedCandidatesResponse struct {
	Seeded int `json:"seeded"`
}
