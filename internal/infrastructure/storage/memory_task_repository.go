package storage

import (
	"context"
	"sync"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
)

// MemoryTaskRepository in-memory хранилище задач. Задачи хранятся в
// порядке добавления, идентификаторы выдаются отдельно на владельца.
type MemoryTaskRepository struct {
	mu     sync.RWMutex
	tasks  map[int64][]entity.Task
	nextID map[int64]int64
}

// NewMemoryTaskRepository создаёт новое in-memory хранилище
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{
		tasks:  make(map[int64][]entity.Task),
		nextID: make(map[int64]int64),
	}
}

// Add создаёт задачу владельца
func (r *MemoryTaskRepository) Add(ctx context.Context, ownerID int64, title string) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID[ownerID]++
	task := entity.Task{
		ID:      r.nextID[ownerID],
		OwnerID: ownerID,
		Title:   title,
	}
	r.tasks[ownerID] = append(r.tasks[ownerID], task)
	return &task, nil
}

// List возвращает задачи владельца в порядке добавления
func (r *MemoryTaskRepository) List(ctx context.Context, ownerID int64) ([]entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]entity.Task, len(r.tasks[ownerID]))
	copy(tasks, r.tasks[ownerID])
	return tasks, nil
}

// Delete удаляет задачу владельца
func (r *MemoryTaskRepository) Delete(ctx context.Context, ownerID, taskID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := r.tasks[ownerID]
	for i, t := range tasks {
		if t.ID == taskID {
			r.tasks[ownerID] = append(tasks[:i], tasks[i+1:]...)
			return nil
		}
	}
	return port.ErrNotFound
}

// Modify меняет заголовок задачи владельца
func (r *MemoryTaskRepository) Modify(ctx context.Context, ownerID, taskID int64, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := r.tasks[ownerID]
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Title = title
			return nil
		}
	}
	return port.ErrNotFound
}

// Проверка реализации интерфейса
var _ port.TaskRepository = (*MemoryTaskRepository)(nil)
