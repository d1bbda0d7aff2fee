package localization

import (
	"fmt"

	"golang.org/x/text/language"
)

// Message keys understood by the catalog.
const (
	KeyBotNotFound = "BotNotFound"
)

var catalog = map[language.Tag]map[string]string{
	language.AmericanEnglish: {
		KeyBotNotFound: "Couldn't find any bot named %s!",
	},
	language.German: {
		KeyBotNotFound: "Es konnte kein Bot namens %s gefunden werden!",
	},
	language.Russian: {
		KeyBotNotFound: "Не удалось найти бота с именем %s!",
	},
	language.BrazilianPortuguese: {
		KeyBotNotFound: "Não foi possível encontrar nenhum bot chamado %s!",
	},
}

// Messages resolves localized message templates against the
// Accept-Language header of an inbound request.
type Messages struct {
	matcher language.Matcher
	tags    []language.Tag
}

func New() *Messages {
	tags := []language.Tag{
		language.AmericanEnglish, // first tag is the fallback
		language.German,
		language.Russian,
		language.BrazilianPortuguese,
	}
	return &Messages{
		matcher: language.NewMatcher(tags),
		tags:    tags,
	}
}

// Sprintf formats the message identified by key in the best supported
// language for acceptLanguage (an Accept-Language header value).
// Unknown keys fall back to the key itself so a missing translation is
// visible rather than silent.
func (m *Messages) Sprintf(acceptLanguage, key string, args ...interface{}) string {
	tag := m.match(acceptLanguage)
	if msgs, ok := catalog[tag]; ok {
		if tmpl, ok := msgs[key]; ok {
			return fmt.Sprintf(tmpl, args...)
		}
	}
	if tmpl, ok := catalog[language.AmericanEnglish][key]; ok {
		return fmt.Sprintf(tmpl, args...)
	}
	return key
}

func (m *Messages) match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return m.tags[0]
	}
	requested, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return m.tags[0]
	}
	_, index, _ := m.matcher.Match(requested...)
	return m.tags[index]
}
