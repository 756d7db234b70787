package entity

// Language язык пользователя из закрытого перечисления.
type Language int

const (
	LanguageUA Language = iota // украинский
	LanguageUS                 // английский
)

// languages порядок перебора при циклическом переключении.
var languages = []Language{LanguageUA, LanguageUS}

// Code возвращает двухбуквенный код языка.
func (l Language) Code() string {
	switch l {
	case LanguageUA:
		return "ua"
	case LanguageUS:
		return "us"
	}
	return "ua"
}

// Next возвращает следующий язык перечисления, после последнего — первый.
func (l Language) Next() Language {
	for i, lang := range languages {
		if lang == l {
			return languages[(i+1)%len(languages)]
		}
	}
	return languages[0]
}

// ParseLanguage находит язык по двухбуквенному коду.
func ParseLanguage(code string) (Language, bool) {
	for _, lang := range languages {
		if lang.Code() == code {
			return lang, true
		}
	}
	return LanguageUA, false
}

func (l Language) String() string {
	return l.Code()
}
