//go:build vosk
// +build vosk

package speech

import (
	"fmt"

	vosk "github.com/alphacep/vosk-api/go"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
)

// VoskEngine движок распознавания речи с предзагруженной моделью на
// каждый язык. Модели не взаимозаменяемы и выбираются строго по языку.
type VoskEngine struct {
	models     map[entity.Language]*vosk.VoskModel
	sampleRate float64
}

// NewVoskEngine загружает модели по путям из конфигурации. Ошибка
// загрузки любой модели фатальна для запуска процесса.
func NewVoskEngine(modelPaths map[entity.Language]string, sampleRate float64) (*VoskEngine, error) {
	vosk.SetLogLevel(-1)

	models := make(map[entity.Language]*vosk.VoskModel, len(modelPaths))
	for lang, path := range modelPaths {
		model, err := vosk.NewModel(path)
		if err != nil {
			return nil, fmt.Errorf("load %s stt model from %s: %w", lang, path, err)
		}
		models[lang] = model
	}
	return &VoskEngine{models: models, sampleRate: sampleRate}, nil
}

// NewStream открывает сеанс распознавания на модели нужного языка.
func (e *VoskEngine) NewStream(lang entity.Language) (port.RecognitionStream, error) {
	model, ok := e.models[lang]
	if !ok {
		return nil, fmt.Errorf("no stt model for language %s", lang)
	}

	rec, err := vosk.NewRecognizer(model, e.sampleRate)
	if err != nil {
		return nil, fmt.Errorf("new recognizer: %w", err)
	}
	// одна лучшая гипотеза без альтернатив, слова с таймингами
	rec.SetMaxAlternatives(0)
	rec.SetWords(1)

	return &voskStream{rec: rec}, nil
}

type voskStream struct {
	rec *vosk.VoskRecognizer
}

func (s *voskStream) Accept(chunk []byte) error {
	s.rec.AcceptWaveform(chunk)
	return nil
}

func (s *voskStream) FinalResult() (*entity.Transcript, error) {
	return decodeResult([]byte(s.rec.FinalResult()))
}

func (s *voskStream) Close() error {
	s.rec.Free()
	return nil
}

// Проверка реализации интерфейса
var _ port.SpeechRecognizer = (*VoskEngine)(nil)
