package container

import (
	"time"

	"github.com/rs/zerolog"

	app "todo-assistant/internal/application"
	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
)

// Deps внешние коллабораторы конвейера.
type Deps struct {
	Users       port.UserRepository
	Tasks       port.TaskRepository
	Transcoder  port.AudioTranscoder
	Recognizer  port.SpeechRecognizer
	Synthesizer port.SpeechSynthesizer
	Keywords    port.KeywordTable
	Messages    port.Localizer

	DefaultLanguage entity.Language
	WorkDir         string
	Timeout         time.Duration
	Log             zerolog.Logger
}

type Container struct {
	Resolver *app.LanguageResolver
	Parser   *app.CommandParser
	Executor *app.CommandExecutor
	Composer *app.ResponseComposer
	Pipeline *app.Pipeline
}

// New собирает сервисы приложения в конвейер.
func New(d Deps) *Container {
	resolver := app.NewLanguageResolver(d.Users, d.DefaultLanguage)
	transcription := app.NewTranscriptionStage(d.Transcoder, d.Recognizer, d.WorkDir, d.Log)
	parser := app.NewCommandParser(d.Keywords)
	executor := app.NewCommandExecutor(d.Users, d.Tasks, resolver, d.Log)
	composer := app.NewResponseComposer(d.Messages, d.Synthesizer, d.WorkDir, d.Log)
	pipeline := app.NewPipeline(resolver, transcription, parser, executor, composer, d.Timeout, d.Log)

	return &Container{
		Resolver: resolver,
		Parser:   parser,
		Executor: executor,
		Composer: composer,
		Pipeline: pipeline,
	}
}
