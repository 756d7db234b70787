//go:build !vosk
// +build !vosk

package speech

import (
	"errors"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
)

// VoskEngine заглушка движка распознавания (сборка без тега vosk).
type VoskEngine struct{}

// NewVoskEngine создаёт движок-заглушку (без libvosk).
func NewVoskEngine(modelPaths map[entity.Language]string, sampleRate float64) (*VoskEngine, error) {
	_ = modelPaths
	_ = sampleRate
	return &VoskEngine{}, nil
}

// NewStream возвращает ошибку, если сборка без тега vosk.
func (e *VoskEngine) NewStream(lang entity.Language) (port.RecognitionStream, error) {
	_ = lang
	return nil, errors.New("vosk build tag is not enabled")
}

// Проверка реализации интерфейса
var _ port.SpeechRecognizer = (*VoskEngine)(nil)
