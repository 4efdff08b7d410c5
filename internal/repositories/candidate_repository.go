package repositories

import (
	"errors"
	"sync"

	"hiretrack_backend/internal/kvstore"
	"hiretrack_backend/internal/models"
)

const (
	candidatesKey = "candidates"

	// Базовое значение счетчика id (первый кандидат получает 1001)
	candidateIDSeed = 1000
)

var ErrCandidateNotFound = errors.New("candidate not found")

// CandidateUpdate - частичное обновление кандидата. Заданное поле заменяет
// прежнее значение целиком; Company не сливается по-полям, а заменяется
// как единое значение (merge-replaces-whole-subobject).
type CandidateUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Company   *models.Company
	Image     *string
	Status    *models.CandidateStatus
}

type CandidateRepository interface {
	List() []models.Candidate
	FindByID(id int) (*models.Candidate, error)
	Create(data models.Candidate) models.Candidate
	Update(id int, updates CandidateUpdate) (*models.Candidate, error)
	Delete(id int) bool
	Seed(records []models.Candidate)
}

// CandidateRepositoryImpl владеет своим состоянием явно: коллекция
// гидрируется из kvstore один раз при создании и пересохраняется после
// каждой мутации. Никаких скрытых глобальных переменных пакета.
type CandidateRepositoryImpl struct {
	store *kvstore.Store

	mu     sync.Mutex
	items  []models.Candidate // insertion order = самые свежие в начале
	lastID int
}

func NewCandidateRepository(store *kvstore.Store) CandidateRepository {
	r := &CandidateRepositoryImpl{
		store:  store,
		lastID: candidateIDSeed,
	}
	r.items = kvstore.Read(store, candidatesKey, []models.Candidate{})
	for _, c := range r.items {
		if c.ID > r.lastID {
			r.lastID = c.ID
		}
	}
	return r
}

// List возвращает snapshot-копию коллекции. Фильтрация и пагинация -
// забота вызывающего кода.
func (r *CandidateRepositoryImpl) List() []models.Candidate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Candidate(nil), r.items...)
}

// FindByID - линейный поиск по id
func (r *CandidateRepositoryImpl) FindByID(id int) (*models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			c := r.items[i]
			return &c, nil
		}
	}
	return nil, ErrCandidateNotFound
}

// Create присваивает следующий id, ставит статус scheduled по умолчанию
// и добавляет запись в начало коллекции.
func (r *CandidateRepositoryImpl) Create(data models.Candidate) models.Candidate {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	data.ID = r.lastID
	if data.Status == "" {
		data.Status = models.CandidateStatusScheduled
	}

	r.items = append([]models.Candidate{data}, r.items...)
	kvstore.Write(r.store, candidatesKey, r.items)
	return data
}

// Update выполняет shallow merge переданных полей поверх существующей записи
func (r *CandidateRepositoryImpl) Update(id int, updates CandidateUpdate) (*models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.items {
		if r.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrCandidateNotFound
	}

	updated := r.items[idx]
	if updates.FirstName != nil {
		updated.FirstName = *updates.FirstName
	}
	if updates.LastName != nil {
		updated.LastName = *updates.LastName
	}
	if updates.Email != nil {
		updated.Email = *updates.Email
	}
	if updates.Phone != nil {
		updated.Phone = *updates.Phone
	}
	if updates.Company != nil {
		updated.Company = *updates.Company
	}
	if updates.Image != nil {
		updated.Image = *updates.Image
	}
	if updates.Status != nil {
		updated.Status = *updates.Status
	}

	r.items[idx] = updated
	kvstore.Write(r.store, candidatesKey, r.items)

	result := updated
	return &result, nil
}

// Delete удаляет запись и сообщает, была ли она найдена.
// Коллекция пересохраняется в любом случае.
func (r *CandidateRepositoryImpl) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.items)
	filtered := r.items[:0:0]
	for _, c := range r.items {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	r.items = filtered
	kvstore.Write(r.store, candidatesKey, r.items)
	return len(r.items) < before
}

// Seed полностью заменяет коллекцию (bootstrap демо-данных).
// Счетчик id пересчитывается как максимум из прежнего значения
// и id загруженных записей - id в пределах процесса не переиспользуются.
func (r *CandidateRepositoryImpl) Seed(records []models.Candidate) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]models.Candidate(nil), records...)
	for _, c := range r.items {
		if c.ID > r.lastID {
			r.lastID = c.ID
		}
	}
	kvstore.Write(r.store, candidatesKey, r.items)
}
