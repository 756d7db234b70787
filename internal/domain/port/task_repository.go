package port

import (
	"context"

	"todo-assistant/internal/domain/entity"
)

// TaskRepository интерфейс хранилища задач
type TaskRepository interface {
	// Add создаёт задачу с заданным заголовком и возвращает её
	Add(ctx context.Context, ownerID int64, title string) (*entity.Task, error)

	// List возвращает все задачи владельца в порядке добавления
	List(ctx context.Context, ownerID int64) ([]entity.Task, error)

	// Delete удаляет задачу владельца, ErrNotFound если у владельца её нет
	Delete(ctx context.Context, ownerID, taskID int64) error

	// Modify меняет заголовок задачи владельца, ErrNotFound если её нет
	Modify(ctx context.Context, ownerID, taskID int64, title string) error
}
