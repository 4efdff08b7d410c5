package repositories

import (
	"errors"
	"sync"

	"hiretrack_backend/internal/kvstore"
	"hiretrack_backend/internal/models"
)

const (
	interviewsKey = "interviews"

	interviewIDSeed = 3000
)

var ErrInterviewNotFound = errors.New("interview not found")

// InterviewUpdate - частичное обновление интервью
type InterviewUpdate struct {
	Description *string
	Completed   *bool
}

type InterviewRepository interface {
	ListByCandidate(candidateID int) ([]models.Interview, int)
	Create(candidateID int, description string, completed bool) models.Interview
	Update(candidateID, interviewID int, updates InterviewUpdate) (*models.Interview, error)
	Seed(records []models.Interview)
}

// InterviewRepositoryImpl хранит единую глобальную коллекцию интервью
// всех кандидатов; выборка по кандидату - фильтрация этой коллекции.
type InterviewRepositoryImpl struct {
	store *kvstore.Store

	mu     sync.Mutex
	items  []models.Interview
	lastID int
}

func NewInterviewRepository(store *kvstore.Store) InterviewRepository {
	r := &InterviewRepositoryImpl{
		store:  store,
		lastID: interviewIDSeed,
	}
	r.items = kvstore.Read(store, interviewsKey, []models.Interview{})
	for _, i := range r.items {
		if i.ID > r.lastID {
			r.lastID = i.ID
		}
	}
	return r
}

// ListByCandidate возвращает интервью кандидата в порядке вставки
// (самые свежие в начале) и их количество
func (r *InterviewRepositoryImpl) ListByCandidate(candidateID int) ([]models.Interview, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]models.Interview, 0)
	for _, i := range r.items {
		if i.CandidateID == candidateID {
			items = append(items, i)
		}
	}
	return items, len(items)
}

func (r *InterviewRepositoryImpl) Create(candidateID int, description string, completed bool) models.Interview {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	record := models.Interview{
		ID:          r.lastID,
		CandidateID: candidateID,
		Description: description,
		Completed:   completed,
	}

	r.items = append([]models.Interview{record}, r.items...)
	kvstore.Write(r.store, interviewsKey, r.items)
	return record
}

// Update находит запись по ОБОИМ идентификаторам: совпадения одного лишь
// interviewID недостаточно - чужой кандидат в запросе дает not-found,
// а не обновление чужой записи.
func (r *InterviewRepositoryImpl) Update(candidateID, interviewID int, updates InterviewUpdate) (*models.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.items {
		if r.items[i].ID == interviewID && r.items[i].CandidateID == candidateID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrInterviewNotFound
	}

	updated := r.items[idx]
	if updates.Description != nil {
		updated.Description = *updates.Description
	}
	if updates.Completed != nil {
		updated.Completed = *updates.Completed
	}

	r.items[idx] = updated
	kvstore.Write(r.store, interviewsKey, r.items)

	result := updated
	return &result, nil
}

// Seed полностью заменяет коллекцию, пересчитывая счетчик id
func (r *InterviewRepositoryImpl) Seed(records []models.Interview) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]models.Interview(nil), records...)
	for _, i := range r.items {
		if i.ID > r.lastID {
			r.lastID = i.ID
		}
	}
	kvstore.Write(r.store, interviewsKey, r.items)
}
