package phoneinput

import (
	"regexp"
	"strings"
)

// CountryCode is a two letter, upper case territory identifier.
type CountryCode string

// NormalizeCountryCode trims and upper cases a country code token.
func NormalizeCountryCode(code string) CountryCode {
	return CountryCode(strings.ToUpper(strings.TrimSpace(code)))
}

func (c CountryCode) String() string {
	return string(c)
}

// LocalizedNames holds the display name of a country in every supported language.
type LocalizedNames struct {
	EN string `yaml:"en" json:"en"`
	UK string `yaml:"uk" json:"uk"`
	RU string `yaml:"ru" json:"ru"`
}

// Get returns the name for lang, falling back to English when the
// language is unknown or its entry is empty.
func (n LocalizedNames) Get(lang Language) string {
	var name string
	switch lang {
	case LanguageUkrainian:
		name = n.UK
	case LanguageRussian:
		name = n.RU
	default:
		name = n.EN
	}
	if name == "" {
		return n.EN
	}
	return name
}

// All returns the names in SupportedLanguages order.
func (n LocalizedNames) All() []string {
	return []string{n.EN, n.UK, n.RU}
}

func (n LocalizedNames) complete() bool {
	for _, name := range n.All() {
		if strings.TrimSpace(name) == "" {
			return false
		}
	}
	return true
}

// CountryRecord describes one territory: its flag, names, dialing prefix
// and the mask used to format national numbers.
//
// Records are values. Once a record is part of a Catalog its compiled
// pattern is shared and read only.
type CountryRecord struct {
	Code        CountryCode    `yaml:"code" json:"code"`
	Icon        string         `yaml:"icon" json:"icon"`
	Names       LocalizedNames `yaml:"names" json:"names"`
	CallingCode string         `yaml:"calling_code" json:"calling_code"`
	Regex       string         `yaml:"regex" json:"regex"`
	Mask        string         `yaml:"mask" json:"mask"`
	Placeholder string         `yaml:"placeholder" json:"placeholder"`

	pattern *regexp.Regexp
}

// Name returns the localized display name.
func (r CountryRecord) Name(lang Language) string {
	return r.Names.Get(lang)
}

// Label renders a picker row: flag, localized name and dialing prefix.
func (r CountryRecord) Label(lang Language) string {
	return r.Icon + "  " + r.Name(lang) + "  +" + r.CallingCode
}

// ExpectedDigits is the national number length implied by the mask.
func (r CountryRecord) ExpectedDigits() int {
	return MaskSlotCount(r.Mask)
}

// Pattern returns the compiled validation pattern, or nil when the record
// was not built by a Catalog.
func (r CountryRecord) Pattern() *regexp.Regexp {
	return r.pattern
}

// MatchFullNumber reports whether callingCode+digits satisfies the record regex.
func (r CountryRecord) MatchFullNumber(digits string) bool {
	pattern := r.pattern
	if pattern == nil {
		compiled, err := regexp.Compile(r.Regex)
		if err != nil {
			return false
		}
		pattern = compiled
	}
	return pattern.MatchString(r.CallingCode + StripMask(digits))
}
