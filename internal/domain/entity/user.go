package entity

// User представляет пользователя бота
type User struct {
	OwnerID  int64    // Telegram Owner/User ID
	ChatID   int64    // чат для ответов
	Language Language // активный язык пользователя
}

// NewUser создаёт нового пользователя с заданным языком
func NewUser(ownerID, chatID int64, lang Language) *User {
	return &User{
		OwnerID:  ownerID,
		ChatID:   chatID,
		Language: lang,
	}
}

// SetLanguage обновляет активный язык пользователя
func (u *User) SetLanguage(lang Language) {
	u.Language = lang
}
