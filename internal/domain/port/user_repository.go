package port

import (
	"context"

	"todo-assistant/internal/domain/entity"
)

// UserRepository интерфейс хранилища пользователей
type UserRepository interface {
	// Get возвращает пользователя по ID владельца, ErrNotFound если его нет
	Get(ctx context.Context, ownerID int64) (*entity.User, error)

	// Save сохраняет пользователя (upsert)
	Save(ctx context.Context, user *entity.User) error

	// SetLanguage обновляет активный язык пользователя; если пользователя
	// ещё нет, он создаётся с этим языком
	SetLanguage(ctx context.Context, ownerID int64, lang entity.Language) error
}
