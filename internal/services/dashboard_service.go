package services

import (
	"fmt"

	"hiretrack_backend/internal/auth"
	"hiretrack_backend/internal/models"
	"hiretrack_backend/internal/repositories"
	"hiretrack_backend/internal/services/dto"
)

type DashboardService interface {
	KPIs() dto.KPIResponse
	Roles() dto.RolesResponse
}

type DashboardServiceImpl struct {
	candidateRepo repositories.CandidateRepository
	interviewRepo repositories.InterviewRepository
	feedbackRepo  repositories.FeedbackRepository
}

func NewDashboardService(
	candidateRepo repositories.CandidateRepository,
	interviewRepo repositories.InterviewRepository,
	feedbackRepo repositories.FeedbackRepository,
) DashboardService {
	return &DashboardServiceImpl{
		candidateRepo: candidateRepo,
		interviewRepo: interviewRepo,
		feedbackRepo:  feedbackRepo,
	}
}

// KPIs собирает сводку по всем трем хранилищам. Интервью и отзывы
// обходим через кандидатов - осиротевшие записи в сводку не попадают.
func (s *DashboardServiceImpl) KPIs() dto.KPIResponse {
	var kpi dto.KPIResponse

	scoreSum := 0
	scoredFeedback := 0

	for _, candidate := range s.candidateRepo.List() {
		kpi.TotalCandidates++
		switch candidate.Status {
		case models.CandidateStatusScheduled:
			kpi.ScheduledCandidates++
		case models.CandidateStatusCompleted:
			kpi.CompletedCandidates++
		case models.CandidateStatusCancelled:
			kpi.CancelledCandidates++
		}

		interviews, total := s.interviewRepo.ListByCandidate(candidate.ID)
		kpi.TotalInterviews += total
		for _, it := range interviews {
			if it.Completed {
				kpi.CompletedInterviews++
			} else {
				kpi.UpcomingInterviews++
			}
		}

		feedback := s.feedbackRepo.ListByCandidate(candidate.ID)
		kpi.TotalFeedback += len(feedback)
		if candidate.Status == models.CandidateStatusCompleted && len(feedback) == 0 {
			kpi.PendingFeedback++
		}
		for _, fb := range feedback {
			var score int
			if _, err := fmt.Sscanf(fb.Title, "Score %d", &score); err == nil {
				scoreSum += score
				scoredFeedback++
			}
		}
	}

	if scoredFeedback > 0 {
		kpi.AverageFeedbackScore = float64(scoreSum) / float64(scoredFeedback)
	}
	return kpi
}

// Roles отдает справочник ролей с их разрешениями
func (s *DashboardServiceImpl) Roles() dto.RolesResponse {
	roles := []models.UserRole{models.UserRoleAdmin, models.UserRoleTAMember, models.UserRolePanelist}

	resp := dto.RolesResponse{Roles: make([]dto.RoleInfo, 0, len(roles))}
	for _, role := range roles {
		resp.Roles = append(resp.Roles, dto.RoleInfo{
			Role:        string(role),
			Label:       auth.RoleLabel(role),
			Permissions: auth.Permissions[role],
		})
	}
	return resp
}
