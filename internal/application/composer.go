package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
)

// Reply готовый ответ пользователю.
type Reply struct {
	Text       string
	VoicePath  string        // путь к синтезированному голосовому ответу, если он есть
	Selectable []entity.Task // задачи для inline-выбора при удалении
}

// ResponseComposer строит локализованный ответ по результату выполнения
// команды и для голосовых запросов дополнительно озвучивает его.
type ResponseComposer struct {
	messages port.Localizer
	tts      port.SpeechSynthesizer
	workDir  string
	log      zerolog.Logger
}

func NewResponseComposer(messages port.Localizer, tts port.SpeechSynthesizer, workDir string, log zerolog.Logger) *ResponseComposer {
	return &ResponseComposer{
		messages: messages,
		tts:      tts,
		workDir:  workDir,
		log:      log.With().Str("component", "composer").Logger(),
	}
}

// Compose формирует текст ответа. Для voice-запросов дополнительно
// синтезируется аудио; отказ синтеза не срывает ответ, остаётся текст.
func (c *ResponseComposer) Compose(ctx context.Context, lang entity.Language, res entity.ExecutionResult, voice bool) (*Reply, error) {
	if res.Kind == entity.ResultNone {
		return nil, nil
	}

	reply, err := c.composeText(lang, res, voice)
	if err != nil {
		return nil, err
	}

	if voice && reply.Text != "" && c.tts != nil {
		reply.VoicePath = c.synthesize(ctx, lang, reply.Text)
	}
	return reply, nil
}

func (c *ResponseComposer) composeText(lang entity.Language, res entity.ExecutionResult, voice bool) (*Reply, error) {
	switch res.Kind {
	case entity.ResultStarted:
		return c.plain(lang, "started")
	case entity.ResultLanguageChanged:
		return c.plain(lang, "language_changed")
	case entity.ResultTaskAdded:
		tmpl, err := c.messages.Message(lang, "task_added")
		if err != nil {
			return nil, err
		}
		return &Reply{Text: fmt.Sprintf(tmpl, res.Task.Title)}, nil
	case entity.ResultTaskDeleted:
		return c.plain(lang, "task_deleted")
	case entity.ResultTaskModified:
		return c.plain(lang, "task_modified")
	case entity.ResultTaskList:
		header, err := c.messages.Message(lang, "task_list")
		if err != nil {
			return nil, err
		}
		return &Reply{Text: renderTasks(header, res.Tasks)}, nil
	case entity.ResultDeletePrompt:
		header, err := c.messages.Message(lang, "delete_prompt")
		if err != nil {
			return nil, err
		}
		return &Reply{Text: header, Selectable: res.Tasks}, nil
	case entity.ResultNoTasks:
		return c.plain(lang, "no_tasks")
	case entity.ResultNotFound:
		return c.plain(lang, "not_found")
	default:
		// голосовой запрос без распознанной команды отвечаем эхом
		// транскрипта, чтобы пользователь видел, что было услышано
		if voice && res.Text != "" {
			tmpl, err := c.messages.Message(lang, "you_said")
			if err != nil {
				return nil, err
			}
			return &Reply{Text: fmt.Sprintf(tmpl, res.Text)}, nil
		}
		return c.plain(lang, "unknown")
	}
}

func (c *ResponseComposer) plain(lang entity.Language, key string) (*Reply, error) {
	msg, err := c.messages.Message(lang, key)
	if err != nil {
		return nil, err
	}
	return &Reply{Text: msg}, nil
}

// synthesize озвучивает текст во временный WAV. Отказ синтеза только
// логируется: ответ деградирует до текстового.
func (c *ResponseComposer) synthesize(ctx context.Context, lang entity.Language, text string) string {
	out, err := os.CreateTemp(c.workDir, "reply-*.wav")
	if err != nil {
		c.log.Warn().Err(err).Msg("tts temp file failed")
		return ""
	}
	path := out.Name()
	out.Close()

	if err := c.tts.Synthesize(ctx, text, lang, path); err != nil {
		c.log.Warn().Err(err).Msg("tts failed, sending text only")
		os.Remove(path)
		return ""
	}
	return path
}

func renderTasks(header string, tasks []entity.Task) string {
	var b strings.Builder
	b.WriteString(header)
	for _, t := range tasks {
		b.WriteString(fmt.Sprintf("\n%d. %s", t.ID, t.Title))
	}
	return b.String()
}
