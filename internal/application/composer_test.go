package app

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
	"todo-assistant/internal/locale"
)

type fakeSynthesizer struct {
	fail  bool
	calls int
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text string, lang entity.Language, outPath string) error {
	f.calls++
	if f.fail {
		return errors.New("tts down")
	}
	return os.WriteFile(outPath, []byte("RIFF"), 0o644)
}

func newTestComposer(t *testing.T, tts *fakeSynthesizer) *ResponseComposer {
	t.Helper()
	loc, err := locale.Load()
	require.NoError(t, err)

	var synth port.SpeechSynthesizer
	if tts != nil {
		synth = tts
	}
	return NewResponseComposer(loc, synth, t.TempDir(), zerolog.Nop())
}

func TestCompose_NoTasksIsNeverEmpty(t *testing.T) {
	c := newTestComposer(t, nil)
	ctx := context.Background()

	for _, lang := range []entity.Language{entity.LanguageUA, entity.LanguageUS} {
		reply, err := c.Compose(ctx, lang, entity.ExecutionResult{Kind: entity.ResultNoTasks}, false)
		require.NoError(t, err)
		require.NotNil(t, reply)
		require.NotEmpty(t, reply.Text)
	}
}

func TestCompose_TaskListContainsTitles(t *testing.T) {
	c := newTestComposer(t, nil)

	reply, err := c.Compose(context.Background(), entity.LanguageUS, entity.ExecutionResult{
		Kind: entity.ResultTaskList,
		Tasks: []entity.Task{
			{ID: 1, OwnerID: 42, Title: "buy milk"},
			{ID: 2, OwnerID: 42, Title: "call mom"},
		},
	}, false)
	require.NoError(t, err)
	require.Contains(t, reply.Text, "buy milk")
	require.Contains(t, reply.Text, "call mom")
}

func TestCompose_TaskAddedInterpolatesTitle(t *testing.T) {
	c := newTestComposer(t, nil)

	reply, err := c.Compose(context.Background(), entity.LanguageUA, entity.ExecutionResult{
		Kind: entity.ResultTaskAdded,
		Task: entity.Task{ID: 1, Title: "молоко"},
	}, false)
	require.NoError(t, err)
	require.Contains(t, reply.Text, "молоко")
}

func TestCompose_DeletePromptCarriesSelectable(t *testing.T) {
	c := newTestComposer(t, nil)

	tasks := []entity.Task{{ID: 5, OwnerID: 1, Title: "x"}}
	reply, err := c.Compose(context.Background(), entity.LanguageUS, entity.ExecutionResult{
		Kind:  entity.ResultDeletePrompt,
		Tasks: tasks,
	}, false)
	require.NoError(t, err)
	require.Equal(t, tasks, reply.Selectable)
	require.NotEmpty(t, reply.Text)
}

func TestCompose_VoiceReplyIsSynthesized(t *testing.T) {
	tts := &fakeSynthesizer{}
	c := newTestComposer(t, tts)

	reply, err := c.Compose(context.Background(), entity.LanguageUS, entity.ExecutionResult{Kind: entity.ResultNoTasks}, true)
	require.NoError(t, err)
	require.Equal(t, 1, tts.calls)
	require.NotEmpty(t, reply.VoicePath)
	require.FileExists(t, reply.VoicePath)
}

func TestCompose_TextRequestSkipsSynthesis(t *testing.T) {
	tts := &fakeSynthesizer{}
	c := newTestComposer(t, tts)

	reply, err := c.Compose(context.Background(), entity.LanguageUS, entity.ExecutionResult{Kind: entity.ResultNoTasks}, false)
	require.NoError(t, err)
	require.Zero(t, tts.calls)
	require.Empty(t, reply.VoicePath)
}

func TestCompose_TTSFailureDegradesToTextOnly(t *testing.T) {
	tts := &fakeSynthesizer{fail: true}
	c := newTestComposer(t, tts)

	reply, err := c.Compose(context.Background(), entity.LanguageUS, entity.ExecutionResult{Kind: entity.ResultNoTasks}, true)
	require.NoError(t, err)
	require.NotEmpty(t, reply.Text)
	require.Empty(t, reply.VoicePath)
}

func TestCompose_UnknownVoiceEchoesTranscript(t *testing.T) {
	c := newTestComposer(t, nil)

	reply, err := c.Compose(context.Background(), entity.LanguageUS, entity.ExecutionResult{
		Kind: entity.ResultUnknown,
		Text: "some mumbling",
	}, true)
	require.NoError(t, err)
	require.Contains(t, reply.Text, "some mumbling")
}

func TestCompose_NoneProducesNoReply(t *testing.T) {
	c := newTestComposer(t, nil)

	reply, err := c.Compose(context.Background(), entity.LanguageUA, entity.ExecutionResult{Kind: entity.ResultNone}, false)
	require.NoError(t, err)
	require.Nil(t, reply)
}
