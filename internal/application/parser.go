package app

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
)

// Управляющие префиксы; в отличие от ключевых слов не локализуются.
const (
	switchLanguagePrefix = "/switchlang"
	startPrefix          = "/start"
)

// cultures правила регистра для нормализации текста по языкам.
var cultures = map[entity.Language]language.Tag{
	entity.LanguageUA: language.Ukrainian,
	entity.LanguageUS: language.AmericanEnglish,
}

// CommandParser классифицирует текст сообщения в команду по таблице
// ключевых слов активного языка. Правила проверяются по порядку,
// выигрывает первое совпадение.
type CommandParser struct {
	keywords port.KeywordTable
}

func NewCommandParser(keywords port.KeywordTable) *CommandParser {
	return &CommandParser{keywords: keywords}
}

// Parse разбирает текст сообщения. Сопоставление — проверка префикса
// нормализованного текста: обычное сообщение, начинающееся с ключевого
// слова, всегда трактуется как команда. Это известное ограничение,
// а не ошибка разбора.
func (p *CommandParser) Parse(text string, lang entity.Language) entity.Command {
	norm := normalize(text, lang)

	if strings.HasPrefix(norm, switchLanguagePrefix) {
		payload := strings.TrimSpace(strings.TrimPrefix(norm, switchLanguagePrefix))
		return entity.Command{Kind: entity.CommandSwitchLanguage, Payload: payload, SourceText: norm}
	}
	if strings.HasPrefix(norm, startPrefix) {
		return entity.Command{Kind: entity.CommandStart, SourceText: norm}
	}

	if kw, ok := p.keywords.Keyword(lang, entity.CommandAddTask); ok && strings.HasPrefix(norm, kw) {
		title := strings.TrimSpace(strings.TrimPrefix(norm, kw))
		if title == "" {
			// пустой заголовок молча игнорируется, как в исходной версии
			return entity.Command{Kind: entity.CommandNone, SourceText: norm}
		}
		return entity.Command{Kind: entity.CommandAddTask, Payload: title, SourceText: norm}
	}
	if kw, ok := p.keywords.Keyword(lang, entity.CommandDeleteTaskPrompt); ok && strings.HasPrefix(norm, kw) {
		return entity.Command{Kind: entity.CommandDeleteTaskPrompt, SourceText: norm}
	}
	if kw, ok := p.keywords.Keyword(lang, entity.CommandListTasks); ok && strings.HasPrefix(norm, kw) {
		return entity.Command{Kind: entity.CommandListTasks, SourceText: norm}
	}
	if kw, ok := p.keywords.Keyword(lang, entity.CommandModifyTask); ok && strings.HasPrefix(norm, kw) {
		if cmd, valid := parseModify(strings.TrimSpace(strings.TrimPrefix(norm, kw))); valid {
			cmd.SourceText = norm
			return cmd
		}
		return entity.Command{Kind: entity.CommandUnknown, SourceText: norm}
	}

	return entity.Command{Kind: entity.CommandUnknown, SourceText: norm}
}

// parseModify разбирает полезную нагрузку вида "<id> <новый заголовок>".
func parseModify(payload string) (entity.Command, bool) {
	idStr, title, found := strings.Cut(payload, " ")
	if !found {
		return entity.Command{}, false
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	title = strings.TrimSpace(title)
	if err != nil || id <= 0 || title == "" {
		return entity.Command{}, false
	}
	return entity.Command{Kind: entity.CommandModifyTask, TaskID: id, Payload: title}, true
}

// normalize приводит текст к нижнему регистру по правилам культуры
// языка, а не побайтово.
func normalize(text string, lang entity.Language) string {
	tag, ok := cultures[lang]
	if !ok {
		tag = language.Und
	}
	return cases.Lower(tag).String(strings.TrimSpace(text))
}
