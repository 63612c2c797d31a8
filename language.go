package phoneinput

import (
	"strings"

	"golang.org/x/text/language"
)

// Language identifies one of the fixed languages country names are kept in.
type Language string

const (
	LanguageEnglish   Language = "en"
	LanguageUkrainian Language = "uk"
	LanguageRussian   Language = "ru"
)

// DefaultLanguage is used when no language, or an unsupported one, is requested.
const DefaultLanguage = LanguageEnglish

var supportedLanguages = []Language{LanguageEnglish, LanguageUkrainian, LanguageRussian}

var languageMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Ukrainian,
	language.Russian,
})

// SupportedLanguages returns the closed set of name languages.
func SupportedLanguages() []Language {
	out := make([]Language, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// Valid reports whether lang is one of the supported languages.
func (lang Language) Valid() bool {
	for _, candidate := range supportedLanguages {
		if lang == candidate {
			return true
		}
	}
	return false
}

// Tag returns the BCP 47 tag for the language.
func (lang Language) Tag() language.Tag {
	switch lang {
	case LanguageUkrainian:
		return language.Ukrainian
	case LanguageRussian:
		return language.Russian
	default:
		return language.English
	}
}

func (lang Language) String() string {
	return string(lang)
}

// ParseLanguage maps a locale identifier such as "uk_UA" or "ru-RU" onto a
// supported language. ok is false when the locale has no confident match,
// in which case DefaultLanguage is returned.
func ParseLanguage(locale string) (Language, bool) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return DefaultLanguage, false
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return DefaultLanguage, false
	}

	_, index, confidence := languageMatcher.Match(tag)
	if confidence < language.High {
		return DefaultLanguage, false
	}
	return supportedLanguages[index], true
}

func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}
