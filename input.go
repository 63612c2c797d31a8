package phoneinput

import (
	"fmt"
	"sync"
	"unicode/utf8"
)

// Input holds the state of one phone field: the selected country, the
// national digits and their display form. It implements the imperative
// operations a UI host exposes around the field.
type Input struct {
	resolver    *Resolver
	language    Language
	placeholder string
	enableMask  bool
	hooks       []InputHook

	mu      sync.RWMutex
	country CountryRecord
	value   string
	display string
}

// NewInput builds an Input over catalog.
func NewInput(catalog *Catalog, opts ...Option) (*Input, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildInput(catalog)
}

// loadDefaultValue splits a stored full number into country and national
// digits. Without a dial prefix match the digits stay national under the
// default country. Hooks are not notified.
func (in *Input) loadDefaultValue(value string) {
	digits := StripMask(value)
	if digits == "" {
		return
	}

	if record, national, ok := in.resolver.Decompose(digits); ok {
		in.country = record
		digits = national
	}

	in.value = digits
	in.display = in.render(digits, digits, in.country)
}

// ChangeText handles typed text. It stores the cleaned digits, derives the
// display string and notifies hooks. The display string is returned.
//
// Digits beyond the mask's slots are kept in Value and FullNumber but do not
// appear in the masked display. Hosts that want to reject them should cap the
// field at MaxLength.
func (in *Input) ChangeText(text string) string {
	clean := StripMask(text)

	in.mu.Lock()
	in.value = clean
	in.display = in.render(text, clean, in.country)
	ctx := in.snapshot(EventChange)
	in.mu.Unlock()

	in.emit(ctx)
	return ctx.Display
}

// SetValue replaces the current value as if text had been typed.
func (in *Input) SetValue(text string) string {
	return in.ChangeText(text)
}

// SetCountry switches to the country with code from the full catalog. The
// digits already entered are kept and re-formatted with the new mask.
func (in *Input) SetCountry(code string) error {
	record, ok := in.resolver.Lookup(code)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCountry, code)
	}
	in.switchCountry(record, false)
	return nil
}

// SelectCountry is the picker path: the code must be selectable under the
// allow-list, and select hooks fire in addition to change hooks.
func (in *Input) SelectCountry(code string) error {
	record, ok := in.resolver.LookupAllowed(code)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCountry, code)
	}
	in.switchCountry(record, true)
	return nil
}

func (in *Input) switchCountry(record CountryRecord, selected bool) {
	in.mu.Lock()
	in.country = record
	if in.enableMask && in.value != "" {
		in.display = ApplyMask(in.value, record.Mask)
	}
	hasValue := in.value != ""
	change := in.snapshot(EventChange)
	selection := in.snapshot(EventSelectCountry)
	in.mu.Unlock()

	if hasValue {
		in.emit(change)
	}
	if selected {
		in.emit(selection)
	}
}

// Value returns the national digits, including any typed past the mask.
func (in *Input) Value() string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.value
}

// FormattedValue returns the display string.
func (in *Input) FormattedValue() string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.display
}

// FullNumber returns calling code and national digits without a plus sign.
func (in *Input) FullNumber() string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.country.CallingCode + in.value
}

// FullNumberWithPlus returns FullNumber prefixed with "+".
func (in *Input) FullNumberWithPlus() string {
	return "+" + in.FullNumber()
}

// Country returns the selected country.
func (in *Input) Country() CountryRecord {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.country
}

// Language returns the language used for country names.
func (in *Input) Language() Language {
	return in.language
}

// Resolver exposes the allow-list aware resolver behind the input.
func (in *Input) Resolver() *Resolver {
	return in.resolver
}

// Picker builds a country picker over the allowed countries in the input
// language. Extra options are applied after the defaults.
func (in *Input) Picker(opts ...PickerOption) *Picker {
	all := append([]PickerOption{WithPickerLanguage(in.language)}, opts...)
	return NewPicker(in.resolver, all...)
}

// Placeholder resolves the hint text: the configured placeholder, then the
// country placeholder, then DefaultPlaceholder.
func (in *Input) Placeholder() string {
	if in.placeholder != "" {
		return in.placeholder
	}
	if country := in.Country(); country.Placeholder != "" {
		return country.Placeholder
	}
	return DefaultPlaceholder
}

// MaxLength is the longest display string the field accepts, or 0 when
// masking is off and the length is unbounded.
func (in *Input) MaxLength() int {
	if !in.enableMask {
		return 0
	}
	return utf8.RuneCountInString(in.Country().Mask)
}

// IsValid validates the current value.
func (in *Input) IsValid() bool {
	in.mu.RLock()
	value, country := in.value, in.country
	in.mu.RUnlock()
	return in.validate(value, country)
}

// IsValidText validates text against the selected country instead of the
// current value.
func (in *Input) IsValidText(text string) bool {
	return in.validate(text, in.Country())
}

func (in *Input) validate(text string, country CountryRecord) bool {
	if text == "" {
		return false
	}
	if in.enableMask {
		return IsComplete(text, country.Mask)
	}
	return country.MatchFullNumber(text)
}

func (in *Input) render(text, clean string, country CountryRecord) string {
	if in.enableMask {
		return ApplyMask(clean, country.Mask)
	}
	return text
}

func (in *Input) snapshot(event InputEvent) *InputHookContext {
	return &InputHookContext{
		Event:       event,
		Code:        in.country.Code,
		CallingCode: in.country.CallingCode,
		Value:       in.value,
		Display:     in.display,
		FullNumber:  in.country.CallingCode + in.value,
	}
}

func (in *Input) emit(ctx *InputHookContext) {
	for _, hook := range in.hooks {
		switch ctx.Event {
		case EventSelectCountry:
			hook.OnSelectCountry(ctx)
		default:
			hook.OnChange(ctx)
		}
	}
}
