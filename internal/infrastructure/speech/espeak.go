package speech

import (
	"context"
	"fmt"
	"os/exec"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
)

// Espeak синтез речи через внешний espeak-ng. Пишет WAV
// 22050 Гц / 16 бит / моно — тот же профиль, что и у обмена с STT.
type Espeak struct {
	execPath string
	voices   map[entity.Language]string
}

// NewEspeak создаёт синтезатор с голосом на каждый язык.
func NewEspeak(execPath string, voices map[entity.Language]string) *Espeak {
	return &Espeak{execPath: execPath, voices: voices}
}

// Synthesize озвучивает текст голосом языка в файл outPath.
func (e *Espeak) Synthesize(ctx context.Context, text string, lang entity.Language, outPath string) error {
	voice, ok := e.voices[lang]
	if !ok {
		return fmt.Errorf("no tts voice for language %s", lang)
	}

	cmd := exec.CommandContext(ctx, e.execPath, "-v", voice, "-w", outPath, text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("espeak: %w: %s", err, out)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.SpeechSynthesizer = (*Espeak)(nil)
