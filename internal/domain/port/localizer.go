package port

import "todo-assistant/internal/domain/entity"

// KeywordTable таблица локализованных ключевых слов команд.
// Неизменяема после загрузки, поиск по нормализованному тексту.
type KeywordTable interface {
	// Keyword возвращает ключевое слово команды для языка;
	// ok=false если для вида команды ключевого слова нет
	Keyword(lang entity.Language, kind entity.CommandKind) (string, bool)
}

// Localizer возвращает локализованный шаблон ответа по ключу сообщения.
type Localizer interface {
	Message(lang entity.Language, key string) (string, error)
}
