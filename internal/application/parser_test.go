package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/locale"
)

func newTestParser(t *testing.T) *CommandParser {
	loc, err := locale.Load()
	require.NoError(t, err)
	return NewCommandParser(loc)
}

func TestParse_AddTask(t *testing.T) {
	p := newTestParser(t)

	cmd := p.Parse("add buy milk", entity.LanguageUS)
	require.Equal(t, entity.CommandAddTask, cmd.Kind)
	require.Equal(t, "buy milk", cmd.Payload)
}

func TestParse_AddTaskEmptyTitleIsNoOp(t *testing.T) {
	p := newTestParser(t)

	cmd := p.Parse("add", entity.LanguageUS)
	require.Equal(t, entity.CommandNone, cmd.Kind)

	cmd = p.Parse("add    ", entity.LanguageUS)
	require.Equal(t, entity.CommandNone, cmd.Kind)
}

func TestParse_SwitchLanguage(t *testing.T) {
	p := newTestParser(t)

	cmd := p.Parse("/switchlang us", entity.LanguageUA)
	require.Equal(t, entity.CommandSwitchLanguage, cmd.Kind)
	require.Equal(t, "us", cmd.Payload)

	cmd = p.Parse("/switchlang", entity.LanguageUA)
	require.Equal(t, entity.CommandSwitchLanguage, cmd.Kind)
	require.Equal(t, "", cmd.Payload)
}

func TestParse_Start(t *testing.T) {
	p := newTestParser(t)

	cmd := p.Parse("/start", entity.LanguageUA)
	require.Equal(t, entity.CommandStart, cmd.Kind)
}

func TestParse_DeleteAndList(t *testing.T) {
	p := newTestParser(t)

	cmd := p.Parse("delete", entity.LanguageUS)
	require.Equal(t, entity.CommandDeleteTaskPrompt, cmd.Kind)

	cmd = p.Parse("list", entity.LanguageUS)
	require.Equal(t, entity.CommandListTasks, cmd.Kind)

	cmd = p.Parse("видалити", entity.LanguageUA)
	require.Equal(t, entity.CommandDeleteTaskPrompt, cmd.Kind)

	cmd = p.Parse("список", entity.LanguageUA)
	require.Equal(t, entity.CommandListTasks, cmd.Kind)
}

func TestParse_Modify(t *testing.T) {
	p := newTestParser(t)

	cmd := p.Parse("modify 3 buy bread", entity.LanguageUS)
	require.Equal(t, entity.CommandModifyTask, cmd.Kind)
	require.Equal(t, int64(3), cmd.TaskID)
	require.Equal(t, "buy bread", cmd.Payload)

	cmd = p.Parse("modify nonsense", entity.LanguageUS)
	require.Equal(t, entity.CommandUnknown, cmd.Kind)

	cmd = p.Parse("modify 3", entity.LanguageUS)
	require.Equal(t, entity.CommandUnknown, cmd.Kind)
}

func TestParse_CultureAwareFolding(t *testing.T) {
	p := newTestParser(t)

	cmd := p.Parse("ДОДАТИ Молоко", entity.LanguageUA)
	require.Equal(t, entity.CommandAddTask, cmd.Kind)
	require.Equal(t, "молоко", cmd.Payload)

	cmd = p.Parse("ADD Milk", entity.LanguageUS)
	require.Equal(t, entity.CommandAddTask, cmd.Kind)
	require.Equal(t, "milk", cmd.Payload)
}

func TestParse_KeywordsAreLanguageBound(t *testing.T) {
	p := newTestParser(t)

	// английское ключевое слово на украинской локали не срабатывает
	cmd := p.Parse("add buy milk", entity.LanguageUA)
	require.Equal(t, entity.CommandUnknown, cmd.Kind)
}

func TestParse_PrefixMatchSwallowsPlainText(t *testing.T) {
	p := newTestParser(t)

	// известное ограничение: обычный текст, начинающийся с ключевого
	// слова, трактуется как команда
	cmd := p.Parse("list of my favourite films", entity.LanguageUS)
	require.Equal(t, entity.CommandListTasks, cmd.Kind)
}

func TestParse_Unknown(t *testing.T) {
	p := newTestParser(t)

	cmd := p.Parse("hello there", entity.LanguageUS)
	require.Equal(t, entity.CommandUnknown, cmd.Kind)
	require.Equal(t, "hello there", cmd.SourceText)
}
