package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config параметры процесса. Флагов нет, всё читается из окружения
// один раз на старте.
type Config struct {
	TelegramToken string

	// пути к моделям Vosk, по одной на язык
	ModelPathUA string
	ModelPathUS string

	FFmpegPath string
	EspeakPath string
	VoiceUA    string
	VoiceUS    string

	DataDir         string
	WorkDir         string
	DefaultLanguage string
	PipelineTimeout time.Duration
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:   os.Getenv("TELEGRAM_TOKEN"),
		ModelPathUA:     os.Getenv("VOSK_MODEL_PATH_UA"),
		ModelPathUS:     os.Getenv("VOSK_MODEL_PATH_US"),
		FFmpegPath:      getenv("FFMPEG_PATH", "ffmpeg"),
		EspeakPath:      getenv("ESPEAK_PATH", "espeak-ng"),
		VoiceUA:         getenv("ESPEAK_VOICE_UA", "uk"),
		VoiceUS:         getenv("ESPEAK_VOICE_US", "en-us"),
		DataDir:         getenv("DATA_DIR", "data"),
		WorkDir:         getenv("WORK_DIR", os.TempDir()),
		DefaultLanguage: getenv("DEFAULT_LANGUAGE", "ua"),
	}

	timeout, err := time.ParseDuration(getenv("PIPELINE_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("parse PIPELINE_TIMEOUT: %w", err)
	}
	cfg.PipelineTimeout = timeout

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
