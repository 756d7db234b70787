package port

import "context"

// PCMProfile целевой профиль аудио после перекодирования.
type PCMProfile struct {
	Channels      int
	SampleRateHz  int
	BitsPerSample int
}

// STTProfile фиксированный формат обмена с движком распознавания.
var STTProfile = PCMProfile{Channels: 1, SampleRateHz: 22050, BitsPerSample: 16}

// AudioTranscoder конвертирует аудиофайл в WAV с заданным профилем.
type AudioTranscoder interface {
	Convert(ctx context.Context, inputPath, outputPath string, profile PCMProfile) error
}
