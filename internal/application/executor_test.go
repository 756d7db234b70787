package app

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/infrastructure/storage"
)

func newTestExecutor(t *testing.T) (*CommandExecutor, *LanguageResolver) {
	t.Helper()
	users := storage.NewMemoryUserRepository()
	tasks := storage.NewMemoryTaskRepository()
	resolver := NewLanguageResolver(users, entity.LanguageUA)
	return NewCommandExecutor(users, tasks, resolver, zerolog.Nop()), resolver
}

func TestExecutor_StartIsUpsert(t *testing.T) {
	e, r := newTestExecutor(t)
	ctx := context.Background()

	res, err := e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandStart})
	require.NoError(t, err)
	require.Equal(t, entity.ResultStarted, res.Kind)
	require.Equal(t, entity.LanguageUA, res.Language)

	require.NoError(t, r.SetLanguage(ctx, 1, entity.LanguageUS))

	// повторный /start не сбрасывает выбранный язык
	res, err = e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandStart})
	require.NoError(t, err)
	require.Equal(t, entity.ResultStarted, res.Kind)
	require.Equal(t, entity.LanguageUS, res.Language)
}

func TestExecutor_SwitchLanguageByKnownCode(t *testing.T) {
	e, r := newTestExecutor(t)
	ctx := context.Background()

	for _, code := range []string{"us", "ua"} {
		want, ok := entity.ParseLanguage(code)
		require.True(t, ok)

		res, err := e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandSwitchLanguage, Payload: code})
		require.NoError(t, err)
		require.Equal(t, entity.ResultLanguageChanged, res.Kind)
		require.Equal(t, want, res.Language)

		lang, err := r.Resolve(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, want, lang)
	}
}

func TestExecutor_SwitchLanguageCyclesOnUnknownPayload(t *testing.T) {
	e, r := newTestExecutor(t)
	ctx := context.Background()

	res, err := e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandSwitchLanguage})
	require.NoError(t, err)
	require.Equal(t, entity.LanguageUS, res.Language)

	// ещё один цикл возвращает к первому языку перечисления
	res, err = e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandSwitchLanguage, Payload: "bogus"})
	require.NoError(t, err)
	require.Equal(t, entity.LanguageUA, res.Language)

	lang, err := r.Resolve(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, entity.LanguageUA, lang)
}

func TestExecutor_AddThenListContainsTitleOnce(t *testing.T) {
	e, _ := newTestExecutor(t)
	ctx := context.Background()

	res, err := e.Execute(ctx, 42, 42, entity.Command{Kind: entity.CommandAddTask, Payload: "buy milk"})
	require.NoError(t, err)
	require.Equal(t, entity.ResultTaskAdded, res.Kind)
	require.Equal(t, "buy milk", res.Task.Title)

	res, err = e.Execute(ctx, 42, 42, entity.Command{Kind: entity.CommandListTasks})
	require.NoError(t, err)
	require.Equal(t, entity.ResultTaskList, res.Kind)
	require.Len(t, res.Tasks, 1)
	require.Equal(t, "buy milk", res.Tasks[0].Title)
}

func TestExecutor_ListIsOwnerIsolated(t *testing.T) {
	e, _ := newTestExecutor(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b"} {
		_, err := e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandAddTask, Payload: title})
		require.NoError(t, err)
	}
	_, err := e.Execute(ctx, 2, 2, entity.Command{Kind: entity.CommandAddTask, Payload: "c"})
	require.NoError(t, err)

	res, err := e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandListTasks})
	require.NoError(t, err)
	require.Len(t, res.Tasks, 2)

	res, err = e.Execute(ctx, 2, 2, entity.Command{Kind: entity.CommandListTasks})
	require.NoError(t, err)
	require.Len(t, res.Tasks, 1)
	require.Equal(t, "c", res.Tasks[0].Title)
}

func TestExecutor_DeleteForeignTaskIsNotFound(t *testing.T) {
	e, _ := newTestExecutor(t)
	ctx := context.Background()

	res, err := e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandAddTask, Payload: "mine"})
	require.NoError(t, err)
	taskID := res.Task.ID

	res, err = e.Execute(ctx, 2, 2, entity.Command{Kind: entity.CommandDeleteTaskAck, TaskID: taskID})
	require.NoError(t, err)
	require.Equal(t, entity.ResultNotFound, res.Kind)

	// задача владельца не тронута
	res, err = e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandListTasks})
	require.NoError(t, err)
	require.Len(t, res.Tasks, 1)
}

func TestExecutor_DeletePromptWithNoTasks(t *testing.T) {
	e, _ := newTestExecutor(t)
	ctx := context.Background()

	res, err := e.Execute(ctx, 7, 7, entity.Command{Kind: entity.CommandDeleteTaskPrompt})
	require.NoError(t, err)
	require.Equal(t, entity.ResultNoTasks, res.Kind)
	require.Empty(t, res.Tasks)
}

func TestExecutor_DeletePromptListsCandidates(t *testing.T) {
	e, _ := newTestExecutor(t)
	ctx := context.Background()

	_, err := e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandAddTask, Payload: "x"})
	require.NoError(t, err)

	res, err := e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandDeleteTaskPrompt})
	require.NoError(t, err)
	require.Equal(t, entity.ResultDeletePrompt, res.Kind)
	require.Len(t, res.Tasks, 1)
}

func TestExecutor_ModifyTask(t *testing.T) {
	e, _ := newTestExecutor(t)
	ctx := context.Background()

	res, err := e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandAddTask, Payload: "old title"})
	require.NoError(t, err)
	taskID := res.Task.ID

	res, err = e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandModifyTask, TaskID: taskID, Payload: "new title"})
	require.NoError(t, err)
	require.Equal(t, entity.ResultTaskModified, res.Kind)

	res, err = e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandListTasks})
	require.NoError(t, err)
	require.Equal(t, "new title", res.Tasks[0].Title)

	// чужая или несуществующая задача
	res, err = e.Execute(ctx, 2, 2, entity.Command{Kind: entity.CommandModifyTask, TaskID: taskID, Payload: "hack"})
	require.NoError(t, err)
	require.Equal(t, entity.ResultNotFound, res.Kind)
}

func TestExecutor_UnknownAndNone(t *testing.T) {
	e, _ := newTestExecutor(t)
	ctx := context.Background()

	res, err := e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandUnknown, SourceText: "чепуха"})
	require.NoError(t, err)
	require.Equal(t, entity.ResultUnknown, res.Kind)
	require.Equal(t, "чепуха", res.Text)

	res, err = e.Execute(ctx, 1, 1, entity.Command{Kind: entity.CommandNone})
	require.NoError(t, err)
	require.Equal(t, entity.ResultNone, res.Kind)
}
