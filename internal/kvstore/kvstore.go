// Package kvstore - локальное durable key-value хранилище приложения.
// Каждый ключ - отдельный JSON-файл в каталоге данных. Контракт намеренно
// мягкий: отсутствие или порча данных маскируются fallback-значением,
// неудачная запись проглатывается (in-memory состояние вызывающего кода
// остается корректным до конца процесса). Однопроцессное хранилище,
// конкурирующие процессы перезаписывают друг друга по принципу
// "последняя запись побеждает".
package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"hiretrack_backend/internal/logger"
)

type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore создает хранилище в указанном каталоге
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir возвращает каталог данных хранилища
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read возвращает десериализованное значение ключа либо fallback,
// если ключ отсутствует или данные не парсятся. Никогда не возвращает ошибку.
func Read[T any](s *Store, key string, fallback T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.StoreLog("read", key, err)
		}
		return fallback
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		// Порченые данные маскируем fallback-значением
		logger.StoreLog("read", key, err)
		return fallback
	}
	return value
}

// Write сериализует и сохраняет значение под ключом. Ошибка персистентности
// не поднимается наверх: следующий запуск процесса просто не увидит запись.
func Write[T any](s *Store, key string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		logger.StoreLog("write", key, err)
		return
	}

	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		logger.StoreLog("write", key, err)
		return
	}
	logger.StoreLog("write", key, nil)
}

// Delete удаляет ключ. Отсутствие ключа ошибкой не считается.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		logger.StoreLog("delete", key, err)
	}
}
