// Package libphonenumber cross-checks a phoneinput catalog against the
// libphonenumber region metadata. It is data tooling: the input core never
// calls it at runtime.
package libphonenumber

import (
	"fmt"
	"strconv"

	phoneinput "github.com/goliatone/go-phone-input"
	"github.com/nyaruka/phonenumbers"
)

// Check names one audit rule.
type Check string

const (
	CheckCallingCode Check = "calling_code"
	CheckPlaceholder Check = "placeholder"
	CheckMaskLength  Check = "mask_length"
)

// Finding reports one record that disagrees with libphonenumber.
type Finding struct {
	Code    phoneinput.CountryCode
	Check   Check
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s %s: %s", f.Code, f.Check, f.Message)
}

type options struct {
	skip map[Check]bool
	typ  phonenumbers.PhoneNumberType
}

// Option configures an audit run.
type Option func(*options)

// WithoutCheck disables a rule.
func WithoutCheck(check Check) Option {
	return func(o *options) {
		o.skip[check] = true
	}
}

// WithExampleType selects the example number type the mask length is
// compared against (defaults to MOBILE).
func WithExampleType(typ phonenumbers.PhoneNumberType) Option {
	return func(o *options) {
		o.typ = typ
	}
}

// Audit runs every enabled rule over the catalog, in catalog order.
func Audit(catalog *phoneinput.Catalog, opts ...Option) []Finding {
	cfg := options{
		skip: make(map[Check]bool),
		typ:  phonenumbers.MOBILE,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var findings []Finding
	for _, record := range catalog.Records() {
		findings = append(findings, auditRecord(record, cfg)...)
	}
	return findings
}

func auditRecord(record phoneinput.CountryRecord, cfg options) []Finding {
	region := string(record.Code)
	var findings []Finding

	report := func(check Check, format string, args ...any) {
		findings = append(findings, Finding{
			Code:    record.Code,
			Check:   check,
			Message: fmt.Sprintf(format, args...),
		})
	}

	expected := phonenumbers.GetCountryCodeForRegion(region)
	if expected == 0 {
		if !cfg.skip[CheckCallingCode] {
			report(CheckCallingCode, "region unknown to libphonenumber")
		}
		return findings
	}

	if !cfg.skip[CheckCallingCode] && strconv.Itoa(expected) != record.CallingCode {
		report(CheckCallingCode, "calling code %s, libphonenumber has %d", record.CallingCode, expected)
	}

	if !cfg.skip[CheckPlaceholder] && record.Placeholder != "" {
		full := "+" + record.CallingCode + phoneinput.StripMask(record.Placeholder)
		number, err := phonenumbers.Parse(full, region)
		switch {
		case err != nil:
			report(CheckPlaceholder, "placeholder %q does not parse: %v", record.Placeholder, err)
		case !phonenumbers.IsPossibleNumber(number):
			report(CheckPlaceholder, "placeholder %q is not a possible number", record.Placeholder)
		}
	}

	if !cfg.skip[CheckMaskLength] {
		if example := phonenumbers.GetExampleNumberForType(region, cfg.typ); example != nil {
			national := phonenumbers.GetNationalSignificantNumber(example)
			if slots := record.ExpectedDigits(); len(national) != slots {
				report(CheckMaskLength, "mask holds %d digits, example number has %d", slots, len(national))
			}
		}
	}

	return findings
}
