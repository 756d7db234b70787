package locale

import (
	"embed"
	"encoding/json"
	"fmt"

	"todo-assistant/internal/domain/entity"
	"todo-assistant/internal/domain/port"
)

//go:embed resources/*.json
var resources embed.FS

// files встроенный ресурс на каждый язык перечисления.
var files = map[entity.Language]string{
	entity.LanguageUA: "resources/ua.json",
	entity.LanguageUS: "resources/us.json",
}

type table struct {
	Keywords map[string]string `json:"keywords"`
	Messages map[string]string `json:"messages"`
}

// Store таблицы ключевых слов команд и шаблонов ответов по языкам.
// Загружается один раз при старте и дальше не меняется.
type Store struct {
	tables map[entity.Language]table
}

// Load читает встроенные ресурсы локализации. Отсутствующий файл или
// битый JSON — фатальная ошибка запуска.
func Load() (*Store, error) {
	tables := make(map[entity.Language]table, len(files))
	for lang, name := range files {
		raw, err := resources.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}
		var t table
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		tables[lang] = t
	}
	return &Store{tables: tables}, nil
}

// Keyword возвращает ключевое слово команды для языка.
func (s *Store) Keyword(lang entity.Language, kind entity.CommandKind) (string, bool) {
	kw, ok := s.tables[lang].Keywords[string(kind)]
	return kw, ok && kw != ""
}

// Message возвращает шаблон ответа по ключу.
func (s *Store) Message(lang entity.Language, key string) (string, error) {
	msg, ok := s.tables[lang].Messages[key]
	if !ok || msg == "" {
		return "", fmt.Errorf("locale %s: missing message %q", lang, key)
	}
	return msg, nil
}

// Проверка реализации интерфейсов
var (
	_ port.KeywordTable = (*Store)(nil)
	_ port.Localizer    = (*Store)(nil)
)
