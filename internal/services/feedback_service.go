package services

import (
	"fmt"
	"strings"
	"time"

	"hiretrack_backend/internal/models"
	"hiretrack_backend/internal/repositories"
	"hiretrack_backend/internal/services/dto"
)

type FeedbackService interface {
	ListByCandidate(candidateID int) []models.Feedback
	Submit(candidateID, submittedBy int, req *dto.SubmitFeedbackRequest) models.Feedback
	MarkViewed(candidateID int)
}

type FeedbackServiceImpl struct {
	feedbackRepo repositories.FeedbackRepository
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepository) FeedbackService {
	return &FeedbackServiceImpl{feedbackRepo: feedbackRepo}
}

func (s *FeedbackServiceImpl) ListByCandidate(candidateID int) []models.Feedback {
	return s.feedbackRepo.ListByCandidate(candidateID)
}

// Submit превращает форму панелиста в запись отзыва: балл уходит в
// заголовок, текстовые секции склеиваются в тело. Пустые comments
// секцию не создают.
func (s *FeedbackServiceImpl) Submit(candidateID, submittedBy int, req *dto.SubmitFeedbackRequest) models.Feedback {
	sections := []string{
		"Strengths: " + sanitizeFeedbackText(req.Strengths),
		"Improvements: " + sanitizeFeedbackText(req.Improvements),
	}
	if comments := sanitizeFeedbackText(req.Comments); comments != "" {
		sections = append(sections, "Comments: "+comments)
	}

	return s.feedbackRepo.Create(models.Feedback{
		CandidateID: candidateID,
		Title:       fmt.Sprintf("Score %d / 5", req.OverallScore),
		Body:        strings.Join(sections, "\n\n"),
		SubmittedBy: submittedBy,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// MarkViewed увеличивает счетчик просмотров у всех отзывов кандидата
func (s *FeedbackServiceImpl) MarkViewed(candidateID int) {
	s.feedbackRepo.IncrementViewsForCandidate(candidateID)
}

// sanitizeFeedbackText выбрасывает угловые скобки и обрезает пробелы -
// тексты отзывов рендерятся как есть
func sanitizeFeedbackText(text string) string {
	cleaned := strings.NewReplacer("<", "", ">", "").Replace(text)
	return strings.TrimSpace(cleaned)
}
