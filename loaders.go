package phoneinput

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/countries.yaml
var defaultCountriesYAML []byte

// Loader retrieves the country records used to seed a Catalog
type Loader interface {
	Load() ([]CountryRecord, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface
type LoaderFunc func() ([]CountryRecord, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load() ([]CountryRecord, error) {
	return fn()
}

type catalogDocument struct {
	Countries []CountryRecord `yaml:"countries" json:"countries"`
}

// NewEmbeddedLoader returns a loader over the country data compiled into
// the package.
func NewEmbeddedLoader() Loader {
	return LoaderFunc(func() ([]CountryRecord, error) {
		records, err := decodeCatalogYAML(defaultCountriesYAML)
		if err != nil {
			return nil, fmt.Errorf("phoneinput: decode embedded catalog: %w", err)
		}
		return records, nil
	})
}

// FileLoader reads catalog documents from disk. Records from several files
// are concatenated in path order.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() ([]CountryRecord, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("phoneinput: no loader paths configured")
	}

	var records []CountryRecord
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("phoneinput: read %s: %w", path, err)
		}

		decoded, err := decodeCatalogFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("phoneinput: decode %s: %w", path, err)
		}
		records = append(records, decoded...)
	}

	return records, nil
}

func decodeCatalogFile(path string, data []byte) ([]CountryRecord, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return decodeCatalogJSON(data)
	case ".yaml", ".yml":
		return decodeCatalogYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

func decodeCatalogJSON(data []byte) ([]CountryRecord, error) {
	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Countries) == 0 {
		return nil, errors.New("empty catalog json")
	}
	return doc.Countries, nil
}

func decodeCatalogYAML(data []byte) ([]CountryRecord, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}
	if len(doc.Countries) == 0 {
		return nil, errors.New("empty catalog yaml")
	}
	return doc.Countries, nil
}
