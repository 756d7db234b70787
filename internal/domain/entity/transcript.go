package entity

// Transcript результат распознавания речи: лучшая гипотеза целиком
// и отдельные слова с таймингами.
type Transcript struct {
	Text  string
	Words []TranscriptWord
}

// TranscriptWord слово с таймингом и уверенностью распознавания.
// Дальше по конвейеру не используется, но декодируется из ответа движка.
type TranscriptWord struct {
	Word       string
	Start      float64
	End        float64
	Confidence float64
}

// Empty сообщает, что движок не распознал ни одного слова.
func (t *Transcript) Empty() bool {
	return t == nil || t.Text == ""
}
