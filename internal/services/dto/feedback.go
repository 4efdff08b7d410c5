package dto

import (
	"hiretrack_backend/internal/models"
)

// SubmitFeedbackRequest - форма отзыва панелиста. Минимальные длины
// полей - валидация уровня представления, до хранилища не доходит.
type SubmitFeedbackRequest struct {
	OverallScore int    `json:"overallScore" validate:"required,min=1,max=5"`
	Strengths    string `json:"strengths" validate:"required,min=10"`
	Improvements string `json:"improvements" validate:"required,min=10"`
	Comments     string `json:"comments" validate:"omitempty,max=2000"`
}

// FeedbackListResponse - отзывы кандидата c количеством
type FeedbackListResponse struct {
	Items []models.Feedback `json:"items"`
	Total int               `json:"total"`
}
