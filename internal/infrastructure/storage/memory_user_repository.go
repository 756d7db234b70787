package storage

import (
	"context"
	"sync"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
)

// MemoryUserRepository in-memory хранилище пользователей
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[int64]*entity.User
}

// NewMemoryUserRepository создаёт новое in-memory хранилище
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[int64]*entity.User),
	}
}

// Get возвращает пользователя по ID владельца
func (r *MemoryUserRepository) Get(ctx context.Context, ownerID int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[ownerID]
	if !exists {
		return nil, port.ErrNotFound
	}
	u := *user
	return &u, nil
}

// Save сохраняет пользователя (upsert)
func (r *MemoryUserRepository) Save(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := *user
	r.users[user.OwnerID] = &u
	return nil
}

// SetLanguage обновляет язык пользователя, создавая запись при отсутствии
func (r *MemoryUserRepository) SetLanguage(ctx context.Context, ownerID int64, lang entity.Language) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, exists := r.users[ownerID]; exists {
		user.SetLanguage(lang)
		return nil
	}
	r.users[ownerID] = entity.NewUser(ownerID, ownerID, lang)
	return nil
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*MemoryUserRepository)(nil)
