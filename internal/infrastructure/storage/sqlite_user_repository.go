package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
)

// SQLiteUserRepository хранилище пользователей поверх SQLite
type SQLiteUserRepository struct {
	db *DB
}

func NewSQLiteUserRepository(db *DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Get возвращает пользователя по ID владельца
func (r *SQLiteUserRepository) Get(ctx context.Context, ownerID int64) (*entity.User, error) {
	var (
		chatID int64
		code   string
	)
	err := r.db.Conn().QueryRowContext(ctx,
		`SELECT chat_id, language FROM users WHERE owner_id = ?`, ownerID,
	).Scan(&chatID, &code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}

	lang, _ := entity.ParseLanguage(code)
	return entity.NewUser(ownerID, chatID, lang), nil
}

// Save сохраняет пользователя (upsert)
func (r *SQLiteUserRepository) Save(ctx context.Context, user *entity.User) error {
	_, err := r.db.Conn().ExecContext(ctx,
		`INSERT INTO users (owner_id, chat_id, language) VALUES (?, ?, ?)
		 ON CONFLICT(owner_id) DO UPDATE SET chat_id = excluded.chat_id, language = excluded.language`,
		user.OwnerID, user.ChatID, user.Language.Code(),
	)
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// SetLanguage обновляет язык, создавая запись при отсутствии
func (r *SQLiteUserRepository) SetLanguage(ctx context.Context, ownerID int64, lang entity.Language) error {
	_, err := r.db.Conn().ExecContext(ctx,
		`INSERT INTO users (owner_id, chat_id, language) VALUES (?, ?, ?)
		 ON CONFLICT(owner_id) DO UPDATE SET language = excluded.language`,
		ownerID, ownerID, lang.Code(),
	)
	if err != nil {
		return fmt.Errorf("set language: %w", err)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*SQLiteUserRepository)(nil)
