package datepicker

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

//go:generate go run ./cmd/datepicker-locales -locale en,es,fr,de,ar,ar-SY -out locales/default_locales.json

//go:embed locales/default_locales.json
var defaultLocalesJSON []byte

// DefaultLoader returns the built-in locale tables (en, es, fr, de, ar, ar-SY).
func DefaultLoader() Loader {
	return LoaderFunc(func() (Locales, error) {
		locales, err := decodeLocalesJSON("default_locales.json", defaultLocalesJSON)
		if err != nil {
			return nil, fmt.Errorf("parse default locales: %w", err)
		}
		return locales, nil
	})
}

// FileLoader reads locale tables from JSON or YAML files keyed by locale code.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (Locales, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("datepicker: no loader paths configured")
	}

	merged := make(Locales)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("datepicker: read %s: %w", path, err)
		}

		src, err := decodeLocaleFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("datepicker: decode %s: %w", path, err)
		}
		mergeLocales(merged, src)
	}

	return merged, nil
}

func decodeLocaleFile(path string, data []byte) (Locales, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return decodeLocalesJSON(path, data)
	case ".yaml", ".yml":
		return decodeLocalesYAML(path, data)
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

func decodeLocalesJSON(path string, data []byte) (Locales, error) {
	var raw map[string]Locale
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return buildLocales(path, raw)
}

func decodeLocalesYAML(path string, data []byte) (Locales, error) {
	var raw map[string]Locale
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("empty locales yaml")
	}
	return buildLocales(path, raw)
}

func buildLocales(path string, raw map[string]Locale) (Locales, error) {
	result := make(Locales, len(raw))
	for code, locale := range raw {
		normalized := normalizeLocale(code)
		if normalized == "" {
			return nil, fmt.Errorf("empty locale in %s", path)
		}
		locale.Code = normalized
		if err := checkPartialLocale(locale); err != nil {
			return nil, err
		}
		result[normalized] = locale
	}
	return result, nil
}

// checkPartialLocale allows a table to be absent (it is inherited later) but
// rejects tables of the wrong length.
func checkPartialLocale(l Locale) error {
	tables := []struct {
		field string
		list  []string
		want  int
	}{
		{"months", l.Months, 12},
		{"months_short", l.MonthsShort, 12},
		{"days", l.Days, 7},
		{"days_short", l.DaysShort, 7},
		{"days_min", l.DaysMin, 7},
	}
	for _, table := range tables {
		if len(table.list) != 0 && len(table.list) != table.want {
			return fmt.Errorf("locale %q: %s has %d entries, want %d", l.Code, table.field, len(table.list), table.want)
		}
	}
	return nil
}
