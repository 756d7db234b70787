package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"todo-assistant/config"
	telegram "todo-assistant/internal/api"
	"todo-assistant/internal/container"
	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
	"todo-assistant/internal/infrastructure/audio"
	"todo-assistant/internal/infrastructure/speech"
	"todo-assistant/internal/infrastructure/storage"
	"todo-assistant/internal/locale"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.TelegramToken == "" {
		log.Fatal().Msg("TELEGRAM_TOKEN is required")
	}
	if cfg.ModelPathUA == "" || cfg.ModelPathUS == "" {
		log.Fatal().Msg("VOSK_MODEL_PATH_UA and VOSK_MODEL_PATH_US are required")
	}

	defaultLang, ok := entity.ParseLanguage(cfg.DefaultLanguage)
	if !ok {
		log.Fatal().Str("lang", cfg.DefaultLanguage).Msg("unknown default language")
	}

	// Локализованные ресурсы: ключевые слова команд и шаблоны ответов
	loc, err := locale.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load locale resources")
	}

	// Хранилище пользователей и задач
	db, err := storage.OpenDB(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	// Движок распознавания: предзагруженная модель на каждый язык
	recognizer, err := speech.NewVoskEngine(map[entity.Language]string{
		entity.LanguageUA: cfg.ModelPathUA,
		entity.LanguageUS: cfg.ModelPathUS,
	}, float64(port.STTProfile.SampleRateHz))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load stt models")
	}

	synthesizer := speech.NewEspeak(cfg.EspeakPath, map[entity.Language]string{
		entity.LanguageUA: cfg.VoiceUA,
		entity.LanguageUS: cfg.VoiceUS,
	})

	// Собираем сервисы приложения
	c := container.New(container.Deps{
		Users:           storage.NewSQLiteUserRepository(db),
		Tasks:           storage.NewSQLiteTaskRepository(db),
		Transcoder:      audio.NewFFmpeg(cfg.FFmpegPath),
		Recognizer:      recognizer,
		Synthesizer:     synthesizer,
		Keywords:        loc,
		Messages:        loc,
		DefaultLanguage: defaultLang,
		WorkDir:         cfg.WorkDir,
		Timeout:         cfg.PipelineTimeout,
		Log:             log,
	})

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, c.Pipeline, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Msg("bot is running")
	if err := bot.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bot error")
	}
}
