package entity

// ResultKind вид результата выполнения команды
type ResultKind string

const (
	ResultStarted         ResultKind = "started"          // пользователь зарегистрирован
	ResultLanguageChanged ResultKind = "language_changed" // язык переключён
	ResultTaskAdded       ResultKind = "task_added"
	ResultTaskDeleted     ResultKind = "task_deleted"
	ResultTaskModified    ResultKind = "task_modified"
	ResultTaskList        ResultKind = "task_list"     // перечень задач
	ResultDeletePrompt    ResultKind = "delete_prompt" // перечень задач для выбора на удаление
	ResultNoTasks         ResultKind = "no_tasks"      // у пользователя нет задач
	ResultNotFound        ResultKind = "not_found"     // задача не найдена у владельца
	ResultUnknown         ResultKind = "unknown"       // команда не распознана
	ResultNone            ResultKind = "none"          // ответ не требуется
)

// ExecutionResult итог выполнения команды, из которого строится ответ.
type ExecutionResult struct {
	Kind  ResultKind
	Tasks []Task // для TaskList и DeletePrompt
	Task  Task   // для TaskAdded
	Text  string // исходный текст для ответа на нераспознанную команду

	// Language задан, когда команда изменила активный язык и ответ
	// должен быть уже на новом языке.
	Language    Language
	HasLanguage bool
}
