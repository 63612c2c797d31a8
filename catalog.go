package phoneinput

import (
	"fmt"
	"regexp"
	"strings"
)

// Catalog is an immutable, ordered table of country records. Iteration
// order is the order the records were supplied in and is load bearing for
// ResolveByDialPrefix.
type Catalog struct {
	records []CountryRecord
	index   map[CountryCode]int
}

// NewCatalog validates records and builds an immutable snapshot. The input
// slice is copied; later changes to it do not leak into the catalog.
func NewCatalog(records []CountryRecord) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}

	catalog := &Catalog{
		records: make([]CountryRecord, 0, len(records)),
		index:   make(map[CountryCode]int, len(records)),
	}

	for i, record := range records {
		normalized, err := prepareRecord(record)
		if err != nil {
			return nil, fmt.Errorf("catalog: record %d: %w", i, err)
		}
		if _, exists := catalog.index[normalized.Code]; exists {
			return nil, fmt.Errorf("catalog: %w: %q", ErrDuplicateCountry, normalized.Code)
		}
		catalog.index[normalized.Code] = len(catalog.records)
		catalog.records = append(catalog.records, normalized)
	}

	return catalog, nil
}

// NewCatalogFromLoader hydrates a Catalog using the provided loader.
func NewCatalogFromLoader(loader Loader) (*Catalog, error) {
	if loader == nil {
		return nil, ErrEmptyCatalog
	}

	records, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return NewCatalog(records)
}

// DefaultCatalog builds a fresh catalog from the embedded country data.
func DefaultCatalog() (*Catalog, error) {
	return NewCatalogFromLoader(NewEmbeddedLoader())
}

func prepareRecord(record CountryRecord) (CountryRecord, error) {
	record.Code = NormalizeCountryCode(string(record.Code))
	if !validCountryCode(record.Code) {
		return CountryRecord{}, fmt.Errorf("%w: code %q is not two letters", ErrInvalidRecord, record.Code)
	}

	if !record.Names.complete() {
		return CountryRecord{}, fmt.Errorf("%w: %s is missing a localized name", ErrInvalidRecord, record.Code)
	}

	record.CallingCode = strings.TrimPrefix(strings.TrimSpace(record.CallingCode), "+")
	if record.CallingCode == "" || StripMask(record.CallingCode) != record.CallingCode {
		return CountryRecord{}, fmt.Errorf("%w: %s calling code %q", ErrInvalidRecord, record.Code, record.CallingCode)
	}

	if MaskSlotCount(record.Mask) == 0 {
		return CountryRecord{}, fmt.Errorf("%w: %s mask %q has no digit slots", ErrInvalidRecord, record.Code, record.Mask)
	}

	pattern, err := regexp.Compile(record.Regex)
	if err != nil {
		return CountryRecord{}, fmt.Errorf("%w: %s regex: %v", ErrInvalidRecord, record.Code, err)
	}
	record.pattern = pattern

	return record, nil
}

func validCountryCode(code CountryCode) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// Lookup returns the record for code. The code is trimmed and upper cased
// before the lookup.
func (c *Catalog) Lookup(code string) (CountryRecord, bool) {
	if c == nil {
		return CountryRecord{}, false
	}
	idx, ok := c.index[NormalizeCountryCode(code)]
	if !ok {
		return CountryRecord{}, false
	}
	return c.records[idx], true
}

// Has reports whether the catalog defines code.
func (c *Catalog) Has(code string) bool {
	_, ok := c.Lookup(code)
	return ok
}

// Records returns every record in catalog order.
func (c *Catalog) Records() []CountryRecord {
	if c == nil || len(c.records) == 0 {
		return nil
	}
	out := make([]CountryRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}
