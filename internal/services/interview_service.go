package services

import (
	"context"

	"hiretrack_backend/internal/logger"
	"hiretrack_backend/internal/models"
	"hiretrack_backend/internal/repositories"
	"hiretrack_backend/internal/services/dto"
	"hiretrack_backend/pkg/apperrors"
)

// Заглушка-описание для кандидата, у которого интервью еще не заводили
const defaultInterviewDescription = "Scheduled Interview"

type InterviewService interface {
	ListByCandidate(candidateID int) ([]models.Interview, int)
	Create(candidateID int, req *dto.CreateInterviewRequest) models.Interview
	Update(ctx context.Context, candidateID, interviewID int, req *dto.UpdateInterviewRequest) (*dto.UpdateInterviewResponse, error)
}

type InterviewServiceImpl struct {
	interviewRepo repositories.InterviewRepository
	candidateRepo repositories.CandidateRepository
}

func NewInterviewService(interviewRepo repositories.InterviewRepository, candidateRepo repositories.CandidateRepository) InterviewService {
	return &InterviewServiceImpl{
		interviewRepo: interviewRepo,
		candidateRepo: candidateRepo,
	}
}

// ListByCandidate возвращает интервью кандидата. Для запланированного
// кандидата без единого интервью сначала заводится дефолтная запись -
// список из этого метода для такого кандидата никогда не пуст.
func (s *InterviewServiceImpl) ListByCandidate(candidateID int) ([]models.Interview, int) {
	items, total := s.interviewRepo.ListByCandidate(candidateID)
	if total > 0 {
		return items, total
	}

	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil || candidate.Status != models.CandidateStatusScheduled {
		return items, total
	}

	s.interviewRepo.Create(candidateID, defaultInterviewDescription, false)
	return s.interviewRepo.ListByCandidate(candidateID)
}

func (s *InterviewServiceImpl) Create(candidateID int, req *dto.CreateInterviewRequest) models.Interview {
	return s.interviewRepo.Create(candidateID, req.Description, req.Completed)
}

// Update правит интервью и, если менялся признак завершенности, пересчитывает
// статус кандидата. Сначала обновляется само интервью: когда оно не найдено,
// до пересчета дело не доходит и статус кандидата остается прежним.
func (s *InterviewServiceImpl) Update(ctx context.Context, candidateID, interviewID int, req *dto.UpdateInterviewRequest) (*dto.UpdateInterviewResponse, error) {
	updates := repositories.InterviewUpdate{
		Description: req.Description,
		Completed:   req.Completed,
	}

	interview, err := s.interviewRepo.Update(candidateID, interviewID, updates)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	resp := &dto.UpdateInterviewResponse{Interview: *interview}
	if req.Completed != nil {
		resp.CandidateStatus = s.reconcileStatus(ctx, candidateID)
	}
	return resp, nil
}

// reconcileStatus выводит статус кандидата из его интервью:
// все завершены - completed, завершена часть - scheduled, ни одного
// завершенного - статус не трогаем (отмену интервью не отменяют).
// Запись происходит только если статус реально изменился.
func (s *InterviewServiceImpl) reconcileStatus(ctx context.Context, candidateID int) models.CandidateStatus {
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		// Интервью-сирота: пересчитывать нечего
		return ""
	}

	items, total := s.interviewRepo.ListByCandidate(candidateID)

	completed := 0
	for _, it := range items {
		if it.Completed {
			completed++
		}
	}

	newStatus := candidate.Status
	if total > 0 && completed == total {
		newStatus = models.CandidateStatusCompleted
	} else if completed > 0 {
		newStatus = models.CandidateStatusScheduled
	}

	if newStatus != candidate.Status {
		status := newStatus
		if _, err := s.candidateRepo.Update(candidateID, repositories.CandidateUpdate{Status: &status}); err != nil {
			logger.CtxWarn(ctx, "Candidate status reconciliation skipped", "candidateId", candidateID, "error", err.Error())
			return candidate.Status
		}
		logger.CtxInfo(ctx, "Candidate status reconciled", "candidateId", candidateID, "status", string(newStatus))
	}
	return newStatus
}
