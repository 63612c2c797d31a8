package phoneinput

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Resolver answers lookup, filter and search queries over a Catalog,
// optionally narrowed to an allow-list of country codes.
type Resolver struct {
	catalog   *Catalog
	countries []CountryRecord
}

// NewResolver builds a resolver over catalog. An empty allow-list keeps
// every country.
func NewResolver(catalog *Catalog, allowList ...string) *Resolver {
	return &Resolver{
		catalog:   catalog,
		countries: catalog.FilterByAllowList(allowList),
	}
}

// Catalog returns the underlying catalog.
func (r *Resolver) Catalog() *Catalog {
	if r == nil {
		return nil
	}
	return r.catalog
}

// Lookup returns the record for code from the full catalog.
func (r *Resolver) Lookup(code string) (CountryRecord, bool) {
	if r == nil {
		return CountryRecord{}, false
	}
	return r.catalog.Lookup(code)
}

// Countries returns the allow-list filtered records in catalog order.
func (r *Resolver) Countries() []CountryRecord {
	if r == nil || len(r.countries) == 0 {
		return nil
	}
	out := make([]CountryRecord, len(r.countries))
	copy(out, r.countries)
	return out
}

// FilterByAllowList returns the records whose code is in allowList, in
// catalog order. A nil or empty allow-list returns every record. Unknown
// codes in the list are ignored.
func (c *Catalog) FilterByAllowList(allowList []string) []CountryRecord {
	if c == nil {
		return nil
	}
	if len(allowList) == 0 {
		return c.Records()
	}

	allowed := make(map[CountryCode]struct{}, len(allowList))
	for _, code := range allowList {
		allowed[NormalizeCountryCode(code)] = struct{}{}
	}

	out := make([]CountryRecord, 0, len(allowed))
	for _, record := range c.records {
		if _, ok := allowed[record.Code]; ok {
			out = append(out, record)
		}
	}
	return out
}

// ResolveByDialPrefix returns the first record, in catalog order, whose
// calling code is a prefix of digits. Non-digits are stripped first.
//
// The first match wins even when a longer calling code would also match;
// catalog order is the tie-break. Real dial plans need longest-prefix
// matching, which this deliberately does not do.
func (c *Catalog) ResolveByDialPrefix(digits string) (CountryRecord, bool) {
	if c == nil {
		return CountryRecord{}, false
	}
	cleaned := StripMask(digits)
	if cleaned == "" {
		return CountryRecord{}, false
	}
	for _, record := range c.records {
		if strings.HasPrefix(cleaned, record.CallingCode) {
			return record, true
		}
	}
	return CountryRecord{}, false
}

// ResolveByDialPrefix resolves against the full catalog, ignoring the
// allow-list, so stored numbers always decompose.
func (r *Resolver) ResolveByDialPrefix(digits string) (CountryRecord, bool) {
	if r == nil {
		return CountryRecord{}, false
	}
	return r.catalog.ResolveByDialPrefix(digits)
}

// Decompose splits a full number into its country and the national digits
// that follow the calling code.
func (r *Resolver) Decompose(number string) (CountryRecord, string, bool) {
	record, ok := r.ResolveByDialPrefix(number)
	if !ok {
		return CountryRecord{}, "", false
	}
	return record, StripMask(number)[len(record.CallingCode):], true
}

// SearchByText filters the allow-listed countries by a case-insensitive
// substring of any localized name, the calling code or the country code.
// Every language's name is searched; lang only selects the case mapping
// rules. A blank query returns every allow-listed country.
func (r *Resolver) SearchByText(query string, lang Language) []CountryRecord {
	if r == nil {
		return nil
	}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return r.Countries()
	}

	fold := newFolder(lang)
	term := fold(trimmed)
	dialTerm := strings.TrimPrefix(term, "+")

	out := make([]CountryRecord, 0)
	for _, record := range r.countries {
		if matchesRecord(record, term, dialTerm, fold) {
			out = append(out, record)
		}
	}
	return out
}

func matchesRecord(record CountryRecord, term, dialTerm string, fold func(string) string) bool {
	for _, name := range record.Names.All() {
		if strings.Contains(fold(name), term) {
			return true
		}
	}
	if dialTerm != "" && strings.Contains(record.CallingCode, dialTerm) {
		return true
	}
	return strings.Contains(fold(string(record.Code)), term)
}

// newFolder returns a lower casing function for lang. Casers are stateful,
// so each search gets its own.
func newFolder(lang Language) func(string) string {
	caser := cases.Lower(lang.Tag())
	return func(value string) string {
		return caser.String(norm.NFC.String(value))
	}
}

// LookupAllowed returns the record for code only when it passes the allow-list.
func (r *Resolver) LookupAllowed(code string) (CountryRecord, bool) {
	if r == nil {
		return CountryRecord{}, false
	}
	normalized := NormalizeCountryCode(code)
	for _, record := range r.countries {
		if record.Code == normalized {
			return record, true
		}
	}
	return CountryRecord{}, false
}
