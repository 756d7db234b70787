package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
)

// CommandExecutor применяет распознанную команду к хранилищу задач.
// Все мутации фиксируются синхронно до возврата результата.
type CommandExecutor struct {
	users    port.UserRepository
	tasks    port.TaskRepository
	resolver *LanguageResolver
	log      zerolog.Logger
}

func NewCommandExecutor(users port.UserRepository, tasks port.TaskRepository, resolver *LanguageResolver, log zerolog.Logger) *CommandExecutor {
	return &CommandExecutor{
		users:    users,
		tasks:    tasks,
		resolver: resolver,
		log:      log.With().Str("component", "executor").Logger(),
	}
}

// Execute выполняет команду от имени владельца и возвращает результат
// для построения ответа.
func (e *CommandExecutor) Execute(ctx context.Context, ownerID, chatID int64, cmd entity.Command) (entity.ExecutionResult, error) {
	switch cmd.Kind {
	case entity.CommandStart:
		return e.start(ctx, ownerID, chatID)
	case entity.CommandSwitchLanguage:
		return e.switchLanguage(ctx, ownerID, cmd.Payload)
	case entity.CommandAddTask:
		task, err := e.tasks.Add(ctx, ownerID, cmd.Payload)
		if err != nil {
			return entity.ExecutionResult{}, fmt.Errorf("add task: %w", err)
		}
		e.log.Info().Int64("owner", ownerID).Int64("task", task.ID).Msg("task added")
		return entity.ExecutionResult{Kind: entity.ResultTaskAdded, Task: *task}, nil
	case entity.CommandDeleteTaskPrompt:
		return e.list(ctx, ownerID, entity.ResultDeletePrompt)
	case entity.CommandDeleteTaskAck:
		err := e.tasks.Delete(ctx, ownerID, cmd.TaskID)
		if errors.Is(err, port.ErrNotFound) {
			return entity.ExecutionResult{Kind: entity.ResultNotFound}, nil
		}
		if err != nil {
			return entity.ExecutionResult{}, fmt.Errorf("delete task: %w", err)
		}
		e.log.Info().Int64("owner", ownerID).Int64("task", cmd.TaskID).Msg("task deleted")
		return entity.ExecutionResult{Kind: entity.ResultTaskDeleted}, nil
	case entity.CommandModifyTask:
		err := e.tasks.Modify(ctx, ownerID, cmd.TaskID, cmd.Payload)
		if errors.Is(err, port.ErrNotFound) {
			return entity.ExecutionResult{Kind: entity.ResultNotFound}, nil
		}
		if err != nil {
			return entity.ExecutionResult{}, fmt.Errorf("modify task: %w", err)
		}
		return entity.ExecutionResult{Kind: entity.ResultTaskModified}, nil
	case entity.CommandListTasks:
		return e.list(ctx, ownerID, entity.ResultTaskList)
	case entity.CommandNone:
		return entity.ExecutionResult{Kind: entity.ResultNone}, nil
	default:
		return entity.ExecutionResult{Kind: entity.ResultUnknown, Text: cmd.SourceText}, nil
	}
}

// start регистрирует пользователя с языком по умолчанию. Повторный
// вызов сохраняет уже выбранный пользователем язык (upsert).
func (e *CommandExecutor) start(ctx context.Context, ownerID, chatID int64) (entity.ExecutionResult, error) {
	user, err := e.users.Get(ctx, ownerID)
	if errors.Is(err, port.ErrNotFound) {
		user = entity.NewUser(ownerID, chatID, e.resolver.Default())
		if err := e.users.Save(ctx, user); err != nil {
			return entity.ExecutionResult{}, fmt.Errorf("create user: %w", err)
		}
	} else if err != nil {
		return entity.ExecutionResult{}, fmt.Errorf("get user: %w", err)
	}

	return entity.ExecutionResult{
		Kind:        entity.ResultStarted,
		Language:    user.Language,
		HasLanguage: true,
	}, nil
}

// switchLanguage переключает язык на код из полезной нагрузки; если код
// не распознан, берётся следующий язык перечисления по кругу.
func (e *CommandExecutor) switchLanguage(ctx context.Context, ownerID int64, code string) (entity.ExecutionResult, error) {
	current, err := e.resolver.Resolve(ctx, ownerID)
	if err != nil {
		return entity.ExecutionResult{}, fmt.Errorf("resolve language: %w", err)
	}

	target, known := entity.ParseLanguage(code)
	if !known {
		target = current.Next()
	}

	if err := e.resolver.SetLanguage(ctx, ownerID, target); err != nil {
		return entity.ExecutionResult{}, fmt.Errorf("set language: %w", err)
	}

	e.log.Info().Int64("owner", ownerID).Str("lang", target.Code()).Msg("language switched")
	return entity.ExecutionResult{
		Kind:        entity.ResultLanguageChanged,
		Language:    target,
		HasLanguage: true,
	}, nil
}

// list возвращает задачи владельца; пустой список — отдельный результат
// NoTasks, а не пустой ответ.
func (e *CommandExecutor) list(ctx context.Context, ownerID int64, kind entity.ResultKind) (entity.ExecutionResult, error) {
	tasks, err := e.tasks.List(ctx, ownerID)
	if err != nil {
		return entity.ExecutionResult{}, fmt.Errorf("list tasks: %w", err)
	}
	if len(tasks) == 0 {
		return entity.ExecutionResult{Kind: entity.ResultNoTasks}, nil
	}
	return entity.ExecutionResult{Kind: kind, Tasks: tasks}, nil
}
