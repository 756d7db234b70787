package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-audio/wav"
	"github.com/rs/zerolog"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
)

// ErrEmptyTranscript движок не распознал в аудио ни одного слова.
var ErrEmptyTranscript = errors.New("empty transcript")

// chunkSize размер PCM-чанка, скармливаемого движку за раз. Потоковая
// подача позволяет движку начать декодирование до чтения всего файла.
const chunkSize = 4096

// TranscriptionStage превращает голосовое сообщение в текст: сохранение
// во временный файл, перекодирование в фиксированный PCM-профиль и
// потоковое распознавание моделью выбранного языка.
type TranscriptionStage struct {
	transcoder port.AudioTranscoder
	recognizer port.SpeechRecognizer
	workDir    string
	log        zerolog.Logger
}

func NewTranscriptionStage(transcoder port.AudioTranscoder, recognizer port.SpeechRecognizer, workDir string, log zerolog.Logger) *TranscriptionStage {
	return &TranscriptionStage{
		transcoder: transcoder,
		recognizer: recognizer,
		workDir:    workDir,
		log:        log.With().Str("component", "transcription").Logger(),
	}
}

// Transcribe распознаёт аудио на заданном языке и возвращает текст.
// Ошибка любого шага фатальна для этого запроса, но не для процесса.
func (s *TranscriptionStage) Transcribe(ctx context.Context, audio []byte, fileID string, lang entity.Language) (string, error) {
	rawPath := filepath.Join(s.workDir, fileID+".ogg")
	wavPath := filepath.Join(s.workDir, fileID+".wav")

	if err := os.WriteFile(rawPath, audio, 0o644); err != nil {
		return "", fmt.Errorf("save voice file: %w", err)
	}
	defer os.Remove(rawPath)
	defer os.Remove(wavPath)

	if err := s.transcoder.Convert(ctx, rawPath, wavPath, port.STTProfile); err != nil {
		return "", fmt.Errorf("transcode voice file: %w", err)
	}

	transcript, err := s.recognize(ctx, wavPath, lang)
	if err != nil {
		return "", err
	}
	if transcript.Empty() {
		return "", ErrEmptyTranscript
	}

	s.log.Debug().Str("lang", lang.Code()).Str("text", transcript.Text).Msg("voice transcribed")
	return transcript.Text, nil
}

// recognize проверяет формат перекодированного файла и скармливает его
// PCM-данные движку чанками фиксированного размера.
func (s *TranscriptionStage) recognize(ctx context.Context, wavPath string, lang entity.Language) (*entity.Transcript, error) {
	f, err := os.Open(wavPath)
	if err != nil {
		return nil, fmt.Errorf("open transcoded file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("transcoded file %s is not a valid wav", filepath.Base(wavPath))
	}
	if int(dec.NumChans) != port.STTProfile.Channels ||
		int(dec.SampleRate) != port.STTProfile.SampleRateHz ||
		int(dec.BitDepth) != port.STTProfile.BitsPerSample {
		return nil, fmt.Errorf("unexpected pcm profile: %d ch, %d hz, %d bit", dec.NumChans, dec.SampleRate, dec.BitDepth)
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("seek pcm data: %w", err)
	}

	stream, err := s.recognizer.NewStream(lang)
	if err != nil {
		return nil, fmt.Errorf("open recognition stream: %w", err)
	}
	defer stream.Close()

	buf := make([]byte, chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := dec.PCMChunk.Read(buf)
		if n > 0 {
			if feedErr := stream.Accept(buf[:n]); feedErr != nil {
				return nil, fmt.Errorf("feed recognizer: %w", feedErr)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read pcm: %w", err)
		}
	}

	return stream.FinalResult()
}
