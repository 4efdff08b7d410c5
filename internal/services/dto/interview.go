package dto

import (
	"hiretrack_backend/internal/models"
)

// CreateInterviewRequest - создание интервью для кандидата
type CreateInterviewRequest struct {
	Description string `json:"description" validate:"required"`
	Completed   bool   `json:"completed"`
}

// UpdateInterviewRequest - частичное обновление интервью (прежде всего
// переключение флага completed)
type UpdateInterviewRequest struct {
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// InterviewListResponse - интервью кандидата c количеством
type InterviewListResponse struct {
	Items []models.Interview `json:"items"`
	Total int                `json:"total"`
}

// UpdateInterviewResponse - обновленное интервью плюс статус кандидата
// после сверки (reconciler)
type UpdateInterviewResponse struct {
	Interview       models.Interview       `json:"interview"`
	CandidateStatus models.CandidateStatus `json:"candidateStatus,omitempty"`
}
