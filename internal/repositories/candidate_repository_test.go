package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiretrack_backend/internal/kvstore"
	"hiretrack_backend/internal/models"
)

func newTestKV(t *testing.T) *kvstore.Store {
	t.Helper()
	s, err := kvstore.NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func testCandidate(first, last string) models.Candidate {
	return models.Candidate{
		FirstName: first,
		LastName:  last,
		Email:     first + "@example.com",
		Phone:     "+7 700 000 00 00",
		Company: models.Company{
			Department: "Engineering",
			Name:       "Acme",
			Title:      "Developer",
		},
		Image: "https://example.com/avatar.png",
	}
}

func TestCandidateRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewCandidateRepository(newTestKV(t))

	first := repo.Create(testCandidate("Ada", "Lovelace"))
	second := repo.Create(testCandidate("Alan", "Turing"))
	third := repo.Create(testCandidate("Grace", "Hopper"))

	// Счетчик стартует с 1000, id строго растут и не повторяются
	assert.Equal(t, 1001, first.ID)
	assert.Equal(t, 1002, second.ID)
	assert.Equal(t, 1003, third.ID)
}

func TestCandidateRepository_CreateDefaultsToScheduled(t *testing.T) {
	repo := NewCandidateRepository(newTestKV(t))

	created := repo.Create(testCandidate("Ada", "Lovelace"))
	assert.Equal(t, models.CandidateStatusScheduled, created.Status)

	cancelled := testCandidate("Alan", "Turing")
	cancelled.Status = models.CandidateStatusCancelled
	created = repo.Create(cancelled)
	assert.Equal(t, models.CandidateStatusCancelled, created.Status)
}

func TestCandidateRepository_ListIsMostRecentFirstSnapshot(t *testing.T) {
	repo := NewCandidateRepository(newTestKV(t))

	repo.Create(testCandidate("Ada", "Lovelace"))
	repo.Create(testCandidate("Alan", "Turing"))

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Alan", list[0].FirstName)
	assert.Equal(t, "Ada", list[1].FirstName)

	// Мутация снапшота не трогает состояние репозитория
	list[0].FirstName = "Hacked"
	fresh := repo.List()
	assert.Equal(t, "Alan", fresh[0].FirstName)
}

func TestCandidateRepository_UpdateMergesOnlySuppliedFields(t *testing.T) {
	repo := NewCandidateRepository(newTestKV(t))
	created := repo.Create(testCandidate("Ada", "Lovelace"))

	phone := "+7 777 123 45 67"
	company := models.Company{Department: "Research", Name: "Analytical Engines", Title: "Lead"}
	updated, err := repo.Update(created.ID, CandidateUpdate{
		Phone:   &phone,
		Company: &company,
	})
	require.NoError(t, err)

	// Переданные поля заменены, остальные нетронуты
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, company, updated.Company)
	assert.Equal(t, created.FirstName, updated.FirstName)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Status, updated.Status)

	got, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)
}

// Company заменяется целиком, а не сливается по-полям
func TestCandidateRepository_UpdateReplacesCompanyWholesale(t *testing.T) {
	repo := NewCandidateRepository(newTestKV(t))
	created := repo.Create(testCandidate("Ada", "Lovelace"))

	company := models.Company{Name: "New Corp"} // department и title пустые
	updated, err := repo.Update(created.ID, CandidateUpdate{Company: &company})
	require.NoError(t, err)

	assert.Equal(t, "New Corp", updated.Company.Name)
	assert.Empty(t, updated.Company.Department)
	assert.Empty(t, updated.Company.Title)
}

func TestCandidateRepository_UpdateUnknownIDReturnsNotFound(t *testing.T) {
	repo := NewCandidateRepository(newTestKV(t))

	name := "Nobody"
	_, err := repo.Update(9999, CandidateUpdate{FirstName: &name})
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}

func TestCandidateRepository_Delete(t *testing.T) {
	repo := NewCandidateRepository(newTestKV(t))
	created := repo.Create(testCandidate("Ada", "Lovelace"))
	repo.Create(testCandidate("Alan", "Turing"))

	assert.True(t, repo.Delete(created.ID))
	assert.Len(t, repo.List(), 1)

	// Повторное удаление - false, коллекция не меняется
	assert.False(t, repo.Delete(created.ID))
	assert.Len(t, repo.List(), 1)
}

func TestCandidateRepository_SeedRecomputesCounter(t *testing.T) {
	repo := NewCandidateRepository(newTestKV(t))

	seed := []models.Candidate{
		{ID: 1205, FirstName: "Seeded", Status: models.CandidateStatusScheduled},
		{ID: 1101, FirstName: "Older", Status: models.CandidateStatusCompleted},
	}
	repo.Seed(seed)

	created := repo.Create(testCandidate("Ada", "Lovelace"))
	assert.Equal(t, 1206, created.ID)
}

// Коллекция и счетчик переживают пересоздание репозитория поверх того же kvstore
func TestCandidateRepository_HydratesFromStore(t *testing.T) {
	kv := newTestKV(t)

	repo := NewCandidateRepository(kv)
	created := repo.Create(testCandidate("Ada", "Lovelace"))

	reopened := NewCandidateRepository(kv)
	got, err := reopened.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)

	next := reopened.Create(testCandidate("Alan", "Turing"))
	assert.Equal(t, created.ID+1, next.ID)
}
