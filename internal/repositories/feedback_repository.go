package repositories

import (
	"sync"

	"hiretrack_backend/internal/kvstore"
	"hiretrack_backend/internal/models"
)

const (
	feedbackKey = "feedback"

	feedbackIDSeed = 2000
)

// FeedbackRepository - append-only хранилище отзывов. Update и Delete
// отсутствуют сознательно: отзыв после отправки постоянен, изменяется
// только счетчик просмотров.
type FeedbackRepository interface {
	ListByCandidate(candidateID int) []models.Feedback
	Create(data models.Feedback) models.Feedback
	IncrementViewsForCandidate(candidateID int)
	Seed(records []models.Feedback)
}

type FeedbackRepositoryImpl struct {
	store *kvstore.Store

	mu     sync.Mutex
	items  []models.Feedback
	lastID int
}

func NewFeedbackRepository(store *kvstore.Store) FeedbackRepository {
	r := &FeedbackRepositoryImpl{
		store:  store,
		lastID: feedbackIDSeed,
	}
	r.items = kvstore.Read(store, feedbackKey, []models.Feedback{})
	for _, f := range r.items {
		if f.ID > r.lastID {
			r.lastID = f.ID
		}
	}
	return r
}

// ListByCandidate возвращает отзывы кандидата в порядке вставки
// (самые свежие в начале)
func (r *FeedbackRepositoryImpl) ListByCandidate(candidateID int) []models.Feedback {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]models.Feedback, 0)
	for _, f := range r.items {
		if f.CandidateID == candidateID {
			items = append(items, f)
		}
	}
	return items
}

// Create присваивает следующий id и обнуляет счетчик просмотров.
// Каллер может передать готовые reactions; нулевое значение структуры
// и есть дефолт {likes: 0, dislikes: 0}.
func (r *FeedbackRepositoryImpl) Create(data models.Feedback) models.Feedback {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	data.ID = r.lastID
	data.Views = 0

	r.items = append([]models.Feedback{data}, r.items...)
	kvstore.Write(r.store, feedbackKey, r.items)
	return data
}

// IncrementViewsForCandidate увеличивает счетчик просмотров на 1 у ВСЕХ
// отзывов кандидата разом (bulk-операция открытия вкладки отзывов)
func (r *FeedbackRepositoryImpl) IncrementViewsForCandidate(candidateID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].CandidateID == candidateID {
			r.items[i].Views++
		}
	}
	kvstore.Write(r.store, feedbackKey, r.items)
}

// Seed полностью заменяет коллекцию, пересчитывая счетчик id
func (r *FeedbackRepositoryImpl) Seed(records []models.Feedback) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]models.Feedback(nil), records...)
	for _, f := range r.items {
		if f.ID > r.lastID {
			r.lastID = f.ID
		}
	}
	kvstore.Write(r.store, feedbackKey, r.items)
}
