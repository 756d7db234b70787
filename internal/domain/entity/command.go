package entity

// CommandKind вид распознанной команды
type CommandKind string

const (
	CommandSwitchLanguage   CommandKind = "switch_language"    // сменить активный язык
	CommandStart            CommandKind = "start"              // первый контакт, регистрация
	CommandAddTask          CommandKind = "add_task"           // добавить задачу
	CommandDeleteTaskPrompt CommandKind = "delete_task_prompt" // показать список на удаление
	CommandDeleteTaskAck    CommandKind = "delete_task_ack"    // подтверждённое удаление по id
	CommandModifyTask       CommandKind = "modify_task"        // изменить заголовок задачи
	CommandListTasks        CommandKind = "list_tasks"         // показать все задачи
	CommandUnknown          CommandKind = "unknown"            // не распознано
	CommandNone             CommandKind = "none"               // команды нет, ответ не нужен
)

// Command распознанная команда. Живёт только внутри одного прохода конвейера.
type Command struct {
	Kind       CommandKind
	Payload    string // заголовок задачи или код языка
	TaskID     int64  // для DeleteTaskAck и ModifyTask
	SourceText string // исходный (нормализованный) текст сообщения
}
