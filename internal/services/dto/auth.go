package dto

import (
	"hiretrack_backend/internal/models"
)

// LoginRequest - запрос входа. Роль выбирается пользователем на форме
// логина и identity-провайдеру не передается (self-asserted).
type LoginRequest struct {
	Username string          `json:"username" validate:"required"`
	Password string          `json:"password" validate:"required"`
	Role     models.UserRole `json:"role" validate:"required,is-user-role"`
}

// LoginResponse - сохраненная сессия плюс локальный access-токен для API
type LoginResponse struct {
	User        models.Session `json:"user"`
	AccessToken string         `json:"accessToken"`
}

// SessionResponse - текущая сессия (rehydrate при старте клиента)
type SessionResponse struct {
	User *models.Session `json:"user"`
}
