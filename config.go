package phoneinput

import (
	"fmt"
	"strings"
)

// DefaultCountry is selected when no default country is configured.
const DefaultCountry CountryCode = "BD"

// DefaultPlaceholder is shown when neither the caller nor the country
// supplies a placeholder.
const DefaultPlaceholder = "Phone Number"

// Config captures Input setup
type Config struct {
	DefaultCountry   CountryCode
	DefaultValue     string
	Language         Language
	AllowedCountries []string
	Placeholder      string
	EnableMask       bool
	Hooks            []InputHook
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		DefaultCountry: DefaultCountry,
		Language:       DefaultLanguage,
		EnableMask:     true,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.Hooks = filterHooks(cfg.Hooks)

	return cfg, nil
}

// WithDefaultCountry sets the country selected on construction
func WithDefaultCountry(code string) Option {
	return func(c *Config) error {
		normalized := NormalizeCountryCode(code)
		if normalized == "" {
			return nil
		}
		c.DefaultCountry = normalized
		return nil
	}
}

// WithDefaultValue seeds the input with a full number (calling code
// included) that is decomposed on construction
func WithDefaultValue(value string) Option {
	return func(c *Config) error {
		c.DefaultValue = value
		return nil
	}
}

// WithLanguage selects the language used for country names. Locale
// identifiers such as "uk-UA" are accepted.
func WithLanguage(locale string) Option {
	return func(c *Config) error {
		if strings.TrimSpace(locale) == "" {
			return nil
		}
		lang, ok := ParseLanguage(locale)
		if !ok {
			return fmt.Errorf("phoneinput: unsupported language %q", locale)
		}
		c.Language = lang
		return nil
	}
}

// WithAllowedCountries narrows the selectable countries. Codes missing
// from the catalog are ignored.
func WithAllowedCountries(codes ...string) Option {
	return func(c *Config) error {
		c.AllowedCountries = append(c.AllowedCountries, codes...)
		return nil
	}
}

func WithPlaceholder(placeholder string) Option {
	return func(c *Config) error {
		c.Placeholder = placeholder
		return nil
	}
}

// WithMask toggles mask formatting. With masking off the display keeps the
// typed text and validation uses the country regex.
func WithMask(enabled bool) Option {
	return func(c *Config) error {
		c.EnableMask = enabled
		return nil
	}
}

func WithHooks(hooks ...InputHook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, hooks...)
		return nil
	}
}

// BuildInput creates an Input over catalog using this configuration.
func (cfg *Config) BuildInput(catalog *Catalog) (*Input, error) {
	if cfg == nil {
		return nil, fmt.Errorf("phoneinput: nil config")
	}
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	country, ok := catalog.Lookup(string(cfg.DefaultCountry))
	if !ok {
		return nil, fmt.Errorf("%w: default country %q", ErrUnknownCountry, cfg.DefaultCountry)
	}

	in := &Input{
		resolver:    NewResolver(catalog, cfg.AllowedCountries...),
		language:    cfg.Language,
		placeholder: cfg.Placeholder,
		enableMask:  cfg.EnableMask,
		hooks:       append([]InputHook(nil), cfg.Hooks...),
		country:     country,
	}
	in.loadDefaultValue(cfg.DefaultValue)

	return in, nil
}
