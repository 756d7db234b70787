package entity

// Task задача пользователя. Идентификатор уникален в рамках владельца,
// задача видна и доступна только владельцу.
type Task struct {
	ID      int64  // идентификатор задачи
	OwnerID int64  // владелец задачи
	Title   string // непустой заголовок
}
