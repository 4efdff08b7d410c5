package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiretrack_backend/internal/kvstore"
	"hiretrack_backend/internal/models"
	"hiretrack_backend/internal/repositories"
	"hiretrack_backend/internal/services/dto"
	"hiretrack_backend/pkg/apperrors"
)

func newInterviewFixture(t *testing.T) (InterviewService, repositories.CandidateRepository, repositories.InterviewRepository) {
	t.Helper()

	store, err := kvstore.NewStore(t.TempDir())
	require.NoError(t, err)

	candidateRepo := repositories.NewCandidateRepository(store)
	interviewRepo := repositories.NewInterviewRepository(store)
	return NewInterviewService(interviewRepo, candidateRepo), candidateRepo, interviewRepo
}

func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func TestInterviewService_AllCompletedPromotesCandidate(t *testing.T) {
	svc, candidateRepo, interviewRepo := newInterviewFixture(t)

	candidate := candidateRepo.Create(models.Candidate{FirstName: "Ada", LastName: "Lovelace"})
	first := interviewRepo.Create(candidate.ID, "Tech screen", false)
	second := interviewRepo.Create(candidate.ID, "System design", false)

	resp, err := svc.Update(context.Background(), candidate.ID, first.ID, &dto.UpdateInterviewRequest{Completed: boolPtr(true)})
	require.NoError(t, err)
	// Закрыта половина - кандидат остается scheduled
	assert.Equal(t, models.CandidateStatusScheduled, resp.CandidateStatus)

	resp, err = svc.Update(context.Background(), candidate.ID, second.ID, &dto.UpdateInterviewRequest{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, models.CandidateStatusCompleted, resp.CandidateStatus)

	stored, err := candidateRepo.FindByID(candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CandidateStatusCompleted, stored.Status)
}

func TestInterviewService_ReopeningDemotesToScheduled(t *testing.T) {
	svc, candidateRepo, interviewRepo := newInterviewFixture(t)

	candidate := candidateRepo.Create(models.Candidate{FirstName: "Grace", LastName: "Hopper"})
	first := interviewRepo.Create(candidate.ID, "Tech screen", true)
	interviewRepo.Create(candidate.ID, "Culture fit", true)

	status := models.CandidateStatusCompleted
	_, err := candidateRepo.Update(candidate.ID, repositories.CandidateUpdate{Status: &status})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), candidate.ID, first.ID, &dto.UpdateInterviewRequest{Completed: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, models.CandidateStatusScheduled, resp.CandidateStatus)
}

func TestInterviewService_NoCompletedLeavesStatusAlone(t *testing.T) {
	svc, candidateRepo, interviewRepo := newInterviewFixture(t)

	// Отмененный кандидат: снятие последнего completed не возвращает
	// его ни в scheduled, ни куда-либо еще
	candidate := candidateRepo.Create(models.Candidate{FirstName: "Alan", Status: models.CandidateStatusCancelled})
	interview := interviewRepo.Create(candidate.ID, "Tech screen", true)

	resp, err := svc.Update(context.Background(), candidate.ID, interview.ID, &dto.UpdateInterviewRequest{Completed: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, models.CandidateStatusCancelled, resp.CandidateStatus)

	stored, err := candidateRepo.FindByID(candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CandidateStatusCancelled, stored.Status)
}

func TestInterviewService_DescriptionOnlyUpdateSkipsReconciliation(t *testing.T) {
	svc, candidateRepo, interviewRepo := newInterviewFixture(t)

	candidate := candidateRepo.Create(models.Candidate{FirstName: "Edsger"})
	interview := interviewRepo.Create(candidate.ID, "Tech screen", true)

	resp, err := svc.Update(context.Background(), candidate.ID, interview.ID, &dto.UpdateInterviewRequest{Description: strPtr("Final round")})
	require.NoError(t, err)
	assert.Empty(t, resp.CandidateStatus)
	assert.Equal(t, "Final round", resp.Interview.Description)

	// Статус не пересчитывался, хотя единственное интервью завершено
	stored, err := candidateRepo.FindByID(candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CandidateStatusScheduled, stored.Status)
}

func TestInterviewService_UpdateUnknownInterview(t *testing.T) {
	svc, candidateRepo, interviewRepo := newInterviewFixture(t)

	candidate := candidateRepo.Create(models.Candidate{FirstName: "Barbara"})
	other := candidateRepo.Create(models.Candidate{FirstName: "Donald"})
	interview := interviewRepo.Create(candidate.ID, "Tech screen", false)

	// Интервью существует, но принадлежит другому кандидату
	_, err := svc.Update(context.Background(), other.ID, interview.ID, &dto.UpdateInterviewRequest{Completed: boolPtr(true)})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	// Неудачный toggle не трогает ни интервью, ни статус кандидата
	items, _ := interviewRepo.ListByCandidate(candidate.ID)
	assert.False(t, items[0].Completed)
}

func TestInterviewService_OrphanInterviewToggle(t *testing.T) {
	svc, _, interviewRepo := newInterviewFixture(t)

	interview := interviewRepo.Create(999, "Tech screen", false)

	resp, err := svc.Update(context.Background(), 999, interview.ID, &dto.UpdateInterviewRequest{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, resp.Interview.Completed)
	// Кандидата нет - сверять нечего
	assert.Empty(t, resp.CandidateStatus)
}

func TestInterviewService_ListBootstrapsScheduledCandidate(t *testing.T) {
	svc, candidateRepo, _ := newInterviewFixture(t)

	candidate := candidateRepo.Create(models.Candidate{FirstName: "Ada"})

	items, total := svc.ListByCandidate(candidate.ID)
	require.Equal(t, 1, total)
	assert.Equal(t, "Scheduled Interview", items[0].Description)
	assert.False(t, items[0].Completed)

	// Повторный запрос не плодит вторую заглушку
	_, total = svc.ListByCandidate(candidate.ID)
	assert.Equal(t, 1, total)
}

func TestInterviewService_ListDoesNotBootstrapNonScheduled(t *testing.T) {
	svc, candidateRepo, _ := newInterviewFixture(t)

	candidate := candidateRepo.Create(models.Candidate{FirstName: "Alan", Status: models.CandidateStatusCancelled})

	items, total := svc.ListByCandidate(candidate.ID)
	assert.Equal(t, 0, total)
	assert.Empty(t, items)

	// Неизвестный кандидат тоже не получает заглушку
	_, total = svc.ListByCandidate(12345)
	assert.Equal(t, 0, total)
}
