package phoneinput

import (
	"errors"
	"testing"
)

func TestNewCatalogPreservesOrderAndIndexes(t *testing.T) {
	catalog := newTestCatalog(t)

	if catalog.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", catalog.Len())
	}

	if !equalCodes(catalog.Records(), "US", "GB", "UA", "DE") {
		t.Fatalf("Records() order = %v", codesOf(catalog.Records()))
	}

	record, ok := catalog.Lookup(" gb ")
	if !ok || record.CallingCode != "44" {
		t.Fatalf("Lookup(gb) = %+v,%v", record, ok)
	}

	if _, ok := catalog.Lookup("FR"); ok {
		t.Fatal("expected FR to be missing")
	}

	if record.Pattern() == nil {
		t.Fatal("expected compiled pattern")
	}
}

func TestNewCatalogCopiesInput(t *testing.T) {
	records := testRecords()
	catalog, err := NewCatalog(records)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	records[0].CallingCode = "999"

	if got, _ := catalog.Lookup("US"); got.CallingCode != "1" {
		t.Fatalf("expected snapshot to remain unchanged, got %q", got.CallingCode)
	}

	out := catalog.Records()
	out[0].Mask = "X"
	if got, _ := catalog.Lookup("US"); got.Mask != "XXX-XXX-XXXX" {
		t.Fatalf("Records() leaked internal state, mask = %q", got.Mask)
	}
}

func TestNewCatalogNormalizesRecords(t *testing.T) {
	records := testRecords()[:1]
	records[0].Code = "us"
	records[0].CallingCode = " +1"

	catalog, err := NewCatalog(records)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	record, ok := catalog.Lookup("US")
	if !ok || record.Code != "US" || record.CallingCode != "1" {
		t.Fatalf("Lookup(US) = %+v,%v", record, ok)
	}
}

func TestNewCatalogRejectsInvalidRecords(t *testing.T) {
	mutate := func(fn func(*CountryRecord)) []CountryRecord {
		records := testRecords()[:1]
		fn(&records[0])
		return records
	}

	tests := []struct {
		name    string
		records []CountryRecord
		want    error
	}{
		{name: "empty", records: nil, want: ErrEmptyCatalog},
		{name: "duplicate", records: append(testRecords(), testRecords()[0]), want: ErrDuplicateCountry},
		{name: "long_code", records: mutate(func(r *CountryRecord) { r.Code = "USA" }), want: ErrInvalidRecord},
		{name: "missing_name", records: mutate(func(r *CountryRecord) { r.Names.RU = "" }), want: ErrInvalidRecord},
		{name: "calling_code_letters", records: mutate(func(r *CountryRecord) { r.CallingCode = "1a" }), want: ErrInvalidRecord},
		{name: "empty_calling_code", records: mutate(func(r *CountryRecord) { r.CallingCode = "" }), want: ErrInvalidRecord},
		{name: "mask_without_slots", records: mutate(func(r *CountryRecord) { r.Mask = "---" }), want: ErrInvalidRecord},
		{name: "bad_regex", records: mutate(func(r *CountryRecord) { r.Regex = "(" }), want: ErrInvalidRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.records)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewCatalog() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNilCatalog(t *testing.T) {
	var catalog *Catalog
	if catalog.Len() != 0 || catalog.Records() != nil {
		t.Fatal("nil catalog should be empty")
	}
	if _, ok := catalog.Lookup("US"); ok {
		t.Fatal("nil catalog lookup should miss")
	}
	if _, ok := catalog.ResolveByDialPrefix("1555"); ok {
		t.Fatal("nil catalog resolve should miss")
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}

	if catalog.Len() != 49 {
		t.Fatalf("Len() = %d, want 49", catalog.Len())
	}

	bd, ok := catalog.Lookup(string(DefaultCountry))
	if !ok || bd.CallingCode != "880" || bd.Mask != "XXXX-XXXXXX" {
		t.Fatalf("Lookup(BD) = %+v,%v", bd, ok)
	}

	for _, record := range catalog.Records() {
		if !IsComplete(record.Placeholder, record.Mask) {
			t.Fatalf("%s placeholder %q does not fill mask %q", record.Code, record.Placeholder, record.Mask)
		}
		if !record.MatchFullNumber(record.Placeholder) {
			t.Fatalf("%s placeholder %q does not match %s", record.Code, record.Placeholder, record.Regex)
		}
		if got := ApplyMask(record.Placeholder, record.Mask); got != record.Placeholder {
			t.Fatalf("%s placeholder %q is not in mask form, got %q", record.Code, record.Placeholder, got)
		}
	}
}

func TestDefaultCatalogIsNotShared(t *testing.T) {
	first, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	second, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	if first == second {
		t.Fatal("expected independent catalog instances")
	}
}

func TestLocalizedNamesGet(t *testing.T) {
	names := LocalizedNames{EN: "Ukraine", UK: "Україна", RU: "Украина"}

	tests := map[Language]string{
		LanguageEnglish:   "Ukraine",
		LanguageUkrainian: "Україна",
		LanguageRussian:   "Украина",
		Language("fr"):    "Ukraine",
	}
	for lang, want := range tests {
		if got := names.Get(lang); got != want {
			t.Fatalf("Get(%q) = %q, want %q", lang, got, want)
		}
	}

	partial := LocalizedNames{EN: "Ukraine"}
	if got := partial.Get(LanguageRussian); got != "Ukraine" {
		t.Fatalf("Get(ru) on partial names = %q, want English fallback", got)
	}
}
