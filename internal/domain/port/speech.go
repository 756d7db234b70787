package port

import (
	"context"

	"todo-assistant/internal/domain/entity"
)

// RecognitionStream один сеанс распознавания: принимает PCM-чанки
// фиксированного размера и по запросу отдаёт финальную гипотезу.
type RecognitionStream interface {
	// Accept скармливает движку очередной PCM-чанк
	Accept(chunk []byte) error

	// FinalResult завершает поток и возвращает лучшую гипотезу
	FinalResult() (*entity.Transcript, error)

	// Close освобождает ресурсы сеанса
	Close() error
}

// SpeechRecognizer движок распознавания речи. Держит по предзагруженной
// модели на каждый поддерживаемый язык; модели не взаимозаменяемы.
type SpeechRecognizer interface {
	// NewStream открывает сеанс распознавания на модели нужного языка
	NewStream(lang entity.Language) (RecognitionStream, error)
}

// SpeechSynthesizer движок синтеза речи
type SpeechSynthesizer interface {
	// Synthesize записывает озвученный текст в WAV-файл outPath
	// голосом, привязанным к языку
	Synthesize(ctx context.Context, text string, lang entity.Language, outPath string) error
}
