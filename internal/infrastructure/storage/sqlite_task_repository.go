package storage

import (
	"context"
	"fmt"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
)

// SQLiteTaskRepository хранилище задач поверх SQLite. Идентификаторы
// сквозные по базе, что покрывает уникальность в рамках владельца.
type SQLiteTaskRepository struct {
	db *DB
}

func NewSQLiteTaskRepository(db *DB) *SQLiteTaskRepository {
	return &SQLiteTaskRepository{db: db}
}

// Add создаёт задачу владельца
func (r *SQLiteTaskRepository) Add(ctx context.Context, ownerID int64, title string) (*entity.Task, error) {
	res, err := r.db.Conn().ExecContext(ctx,
		`INSERT INTO tasks (owner_id, title) VALUES (?, ?)`, ownerID, title,
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("task id: %w", err)
	}
	return &entity.Task{ID: id, OwnerID: ownerID, Title: title}, nil
}

// List возвращает задачи владельца в порядке добавления
func (r *SQLiteTaskRepository) List(ctx context.Context, ownerID int64) ([]entity.Task, error) {
	rows, err := r.db.Conn().QueryContext(ctx,
		`SELECT id, title FROM tasks WHERE owner_id = ? ORDER BY id`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	var tasks []entity.Task
	for rows.Next() {
		t := entity.Task{OwnerID: ownerID}
		if err := rows.Scan(&t.ID, &t.Title); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// Delete удаляет задачу только у её владельца
func (r *SQLiteTaskRepository) Delete(ctx context.Context, ownerID, taskID int64) error {
	res, err := r.db.Conn().ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND owner_id = ?`, taskID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Modify меняет заголовок задачи только у её владельца
func (r *SQLiteTaskRepository) Modify(ctx context.Context, ownerID, taskID int64, title string) error {
	res, err := r.db.Conn().ExecContext(ctx,
		`UPDATE tasks SET title = ? WHERE id = ? AND owner_id = ?`, title, taskID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("modify task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("modify task: %w", err)
	}
	if affected == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.TaskRepository = (*SQLiteTaskRepository)(nil)
