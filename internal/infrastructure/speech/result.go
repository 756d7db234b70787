package speech

import (
	"encoding/json"
	"fmt"

	"todo-assistant/internal/domain/entity"
)

// voskResult структура финального ответа движка Vosk.
type voskResult struct {
	Text   string     `json:"text"`
	Result []voskWord `json:"result"`
}

type voskWord struct {
	Word  string  `json:"word"`
	Conf  float64 `json:"conf"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// decodeResult разбирает JSON финального результата распознавания в
// транскрипт с лучшей гипотезой и пословными таймингами.
func decodeResult(raw []byte) (*entity.Transcript, error) {
	var res voskResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decode recognizer result: %w", err)
	}

	t := &entity.Transcript{Text: res.Text}
	for _, w := range res.Result {
		t.Words = append(t.Words, entity.TranscriptWord{
			Word:       w.Word,
			Start:      w.Start,
			End:        w.End,
			Confidence: w.Conf,
		})
	}
	return t, nil
}
