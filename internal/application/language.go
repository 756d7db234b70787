package app

import (
	"context"
	"errors"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
)

// LanguageResolver определяет активный язык владельца сообщения.
// Неизвестный пользователь получает язык по умолчанию только на текущий
// запрос, запись в хранилище при этом не создаётся — регистрация
// пользователя остаётся за командой Start.
type LanguageResolver struct {
	repo port.UserRepository
	def  entity.Language
}

func NewLanguageResolver(repo port.UserRepository, def entity.Language) *LanguageResolver {
	return &LanguageResolver{repo: repo, def: def}
}

// Resolve возвращает активный язык владельца.
func (r *LanguageResolver) Resolve(ctx context.Context, ownerID int64) (entity.Language, error) {
	user, err := r.repo.Get(ctx, ownerID)
	if errors.Is(err, port.ErrNotFound) {
		return r.def, nil
	}
	if err != nil {
		return r.def, err
	}
	return user.Language, nil
}

// SetLanguage переключает активный язык владельца. Действует для всех
// последующих сообщений, текущее сообщение дообрабатывается на старом языке.
func (r *LanguageResolver) SetLanguage(ctx context.Context, ownerID int64, lang entity.Language) error {
	return r.repo.SetLanguage(ctx, ownerID, lang)
}

// Default язык по умолчанию для первого контакта.
func (r *LanguageResolver) Default() entity.Language {
	return r.def
}
