package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"todo-assistant/internal/domain/entity"
)

// Transcriber этап транскрипции внутри конвейера.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, fileID string, lang entity.Language) (string, error)
}

// DefaultTimeout ограничивает обработку одного сообщения, чтобы зависший
// внешний вызов (ffmpeg, STT, TTS) не занимал обработчик бесконечно.
const DefaultTimeout = 60 * time.Second

// Pipeline конвейер обработки одного входящего сообщения: язык →
// (транскрипция) → разбор → выполнение → композиция ответа. Язык везде
// передаётся явным параметром, амбиентного состояния нет.
type Pipeline struct {
	resolver      *LanguageResolver
	transcription Transcriber
	parser        *CommandParser
	executor      *CommandExecutor
	composer      *ResponseComposer
	timeout       time.Duration
	log           zerolog.Logger

	// mu защищает карту локов; команды одного владельца выполняются
	// строго по одной, разные владельцы — параллельно
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewPipeline(resolver *LanguageResolver, transcription Transcriber, parser *CommandParser, executor *CommandExecutor, composer *ResponseComposer, timeout time.Duration, log zerolog.Logger) *Pipeline {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Pipeline{
		resolver:      resolver,
		transcription: transcription,
		parser:        parser,
		executor:      executor,
		composer:      composer,
		timeout:       timeout,
		log:           log.With().Str("component", "pipeline").Logger(),
		locks:         make(map[int64]*sync.Mutex),
	}
}

// HandleText обрабатывает текстовое сообщение.
func (p *Pipeline) HandleText(ctx context.Context, ownerID, chatID int64, text string) (*Reply, error) {
	return p.run(ctx, ownerID, chatID, false, func(ctx context.Context, lang entity.Language) entity.Command {
		return p.parser.Parse(text, lang)
	})
}

// HandleVoice обрабатывает голосовое сообщение: сначала транскрипция на
// активном языке, дальше тот же путь, что и у текста. Пустой или
// неудавшийся транскрипт даёт нераспознанную команду, а не ошибку.
func (p *Pipeline) HandleVoice(ctx context.Context, ownerID, chatID int64, audio []byte, fileID string) (*Reply, error) {
	return p.run(ctx, ownerID, chatID, true, func(ctx context.Context, lang entity.Language) entity.Command {
		text, err := p.transcription.Transcribe(ctx, audio, fileID, lang)
		if err != nil {
			p.log.Warn().Err(err).Int64("owner", ownerID).Msg("transcription failed")
			return entity.Command{Kind: entity.CommandUnknown}
		}
		return p.parser.Parse(text, lang)
	})
}

// HandleDeleteSelection обрабатывает выбор задачи из inline-клавиатуры.
// Идентификатор приходит отдельным callback-событием и минует разбор текста.
func (p *Pipeline) HandleDeleteSelection(ctx context.Context, ownerID, chatID, taskID int64) (*Reply, error) {
	return p.run(ctx, ownerID, chatID, false, func(ctx context.Context, lang entity.Language) entity.Command {
		return entity.Command{Kind: entity.CommandDeleteTaskAck, TaskID: taskID}
	})
}

func (p *Pipeline) run(ctx context.Context, ownerID, chatID int64, voice bool, classify func(context.Context, entity.Language) entity.Command) (*Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	lock := p.ownerLock(ownerID)
	lock.Lock()
	defer lock.Unlock()

	lang, err := p.resolver.Resolve(ctx, ownerID)
	if err != nil {
		// язык по умолчанию уже подставлен, обработку продолжаем
		p.log.Error().Err(err).Int64("owner", ownerID).Msg("resolve language failed")
	}

	cmd := classify(ctx, lang)
	if cmd.Kind == entity.CommandNone {
		return nil, nil
	}

	res, err := p.executor.Execute(ctx, ownerID, chatID, cmd)
	if err != nil {
		p.log.Error().Err(err).Int64("owner", ownerID).Str("command", string(cmd.Kind)).Msg("command failed")
		res = entity.ExecutionResult{Kind: entity.ResultUnknown}
	}

	replyLang := lang
	if res.HasLanguage {
		replyLang = res.Language
	}

	reply, err := p.composer.Compose(ctx, replyLang, res, voice)
	if err != nil {
		p.log.Error().Err(err).Msg("compose failed")
		fallback, ferr := p.composer.Compose(ctx, replyLang, entity.ExecutionResult{Kind: entity.ResultUnknown}, false)
		if ferr != nil {
			return nil, err
		}
		return fallback, nil
	}
	return reply, nil
}

func (p *Pipeline) ownerLock(ownerID int64) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	lock, ok := p.locks[ownerID]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[ownerID] = lock
	}
	return lock
}
