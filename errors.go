package phoneinput

import "errors"

// ErrUnknownCountry indicates that a country code is not present in the catalog.
var ErrUnknownCountry = errors.New("phoneinput: unknown country")

// ErrEmptyCatalog is returned when a catalog is built without records
var ErrEmptyCatalog = errors.New("phoneinput: empty catalog")

// ErrInvalidRecord marks a country record that breaks a catalog invariant.
var ErrInvalidRecord = errors.New("phoneinput: invalid country record")

// ErrDuplicateCountry is returned when two records share a country code.
var ErrDuplicateCountry = errors.New("phoneinput: duplicate country")
