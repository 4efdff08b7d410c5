package repositories

import (
	"hiretrack_backend/internal/kvstore"
	"hiretrack_backend/internal/models"
)

// Фиксированный ключ профиля текущего пользователя
const sessionKey = "user"

// SessionRepository - тонкая обертка над kvstore для профиля сессии.
// В отличие от доменных репозиториев in-memory кэша нет: каждое чтение
// идет в хранилище, чтобы сессия переживала перезапуск процесса.
type SessionRepository interface {
	Save(session models.Session)
	Get() *models.Session
	Clear()
}

type SessionRepositoryImpl struct {
	store *kvstore.Store
}

func NewSessionRepository(store *kvstore.Store) SessionRepository {
	return &SessionRepositoryImpl{store: store}
}

func (r *SessionRepositoryImpl) Save(session models.Session) {
	kvstore.Write(r.store, sessionKey, session)
}

// Get возвращает сохраненный профиль либо nil. Порченые данные
// равнозначны отсутствию сессии.
func (r *SessionRepositoryImpl) Get() *models.Session {
	return kvstore.Read(r.store, sessionKey, (*models.Session)(nil))
}

func (r *SessionRepositoryImpl) Clear() {
	r.store.Delete(sessionKey)
}
