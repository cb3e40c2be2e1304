package i18n

import (
	"fmt"
	"os"
	"strings"
)

// Supported languages
const (
	LangDE = "de"
	LangEN = "en"
)

// currentLang holds the current language setting
var currentLang = LangDE

// messages stores all translations
var messages = make(map[string]map[string]string)

func init() {
	loadMessages()
}

// Init initializes the i18n system with the specified language.
// The backend answers in German, so German is the default.
func Init(lang string) {
	lang = strings.ToLower(strings.TrimSpace(lang))

	switch lang {
	case "de", "de-de", "de_de", "german", "deutsch":
		currentLang = LangDE
	case "en", "en-us", "en_us", "english":
		currentLang = LangEN
	default:
		if envLang := os.Getenv("CHATBOT_LANG"); envLang != "" && !strings.EqualFold(envLang, lang) {
			Init(envLang)
			return
		}
		currentLang = LangDE
	}
}

// SetLanguage changes the current language
func SetLanguage(lang string) {
	Init(lang)
}

// GetLanguage returns the current language
func GetLanguage() string {
	return currentLang
}

// T returns the translated message for the given key.
// Falls back to German if the translation is missing.
func T(key string) string {
	if msg, ok := messages[currentLang][key]; ok {
		return msg
	}

	if msg, ok := messages[LangDE][key]; ok {
		return msg
	}

	return key
}

// Sprintf returns the translated and formatted message
func Sprintf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

// loadMessages initializes the message maps
func loadMessages() {
	messages[LangDE] = make(map[string]string)
	messages[LangEN] = make(map[string]string)

	loadGermanMessages()
	loadEnglishMessages()
}

// GetSupportedLanguages returns a list of supported language codes
func GetSupportedLanguages() []string {
	return []string{LangDE, LangEN}
}
