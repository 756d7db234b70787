package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"

	"todo-assistant/internal/domain/port"
)

// ErrTranscode перекодирование не удалось; фатально для запроса,
// но не для процесса.
var ErrTranscode = errors.New("transcode failed")

// FFmpeg перекодировщик аудио через внешний ffmpeg.
type FFmpeg struct {
	execPath string
}

func NewFFmpeg(execPath string) *FFmpeg {
	return &FFmpeg{execPath: execPath}
}

// Convert конвертирует входной файл в WAV с заданным PCM-профилем.
func (f *FFmpeg) Convert(ctx context.Context, inputPath, outputPath string, profile port.PCMProfile) error {
	if profile.BitsPerSample != 16 {
		return fmt.Errorf("%w: unsupported bit depth %d", ErrTranscode, profile.BitsPerSample)
	}

	args := []string{
		"-y",
		"-i", inputPath,
		"-ac", strconv.Itoa(profile.Channels),
		"-ar", strconv.Itoa(profile.SampleRateHz),
		"-sample_fmt", "s16",
		"-f", "wav",
		outputPath,
	}
	cmd := exec.CommandContext(ctx, f.execPath, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: %v: %s", ErrTranscode, err, out)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.AudioTranscoder = (*FFmpeg)(nil)
