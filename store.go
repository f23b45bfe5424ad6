package datepicker

import (
	"sort"
)

// Locales maps locale codes to their name tables.
type Locales map[string]Locale

// Store exposes read only access to locale name tables
type Store interface {
	// Locale returns the tables for code and ok=false if missing
	Locale(code string) (Locale, bool)
	// Locales returns the list of locale codes known to the store
	Locales() []string
}

// Loader retrieves the locales used to seed a Store
type Loader interface {
	Load() (Locales, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface
type LoaderFunc func() (Locales, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load() (Locales, error) {
	return fn()
}

// StaticStore is an in memory store, read only after construction
type StaticStore struct {
	locales Locales
	codes   []string
}

var _ Store = &StaticStore{}

// NewStaticStore builds an immutable snapshot from the given locales
func NewStaticStore(data Locales) *StaticStore {
	if len(data) == 0 {
		return &StaticStore{locales: make(Locales)}
	}

	locales := make(Locales, len(data))
	codes := make([]string, 0, len(data))

	for code, locale := range data {
		normalized := normalizeLocale(code)
		if normalized == "" {
			continue
		}
		clone := locale.Clone()
		clone.Code = normalized
		clone.Parent = normalizeLocale(clone.Parent)
		locales[normalized] = clone
		codes = append(codes, normalized)
	}

	// make codes deterministic
	sort.Strings(codes)

	return &StaticStore{
		locales: locales,
		codes:   codes,
	}
}

// NewStaticStoreFromLoaders hydrates a StaticStore, later loaders overriding earlier ones
func NewStaticStoreFromLoaders(loaders ...Loader) (*StaticStore, error) {
	merged := make(Locales)
	for _, loader := range loaders {
		if loader == nil {
			continue
		}
		locales, err := loader.Load()
		if err != nil {
			return nil, err
		}
		mergeLocales(merged, locales)
	}
	return NewStaticStore(merged), nil
}

func (s *StaticStore) Locale(code string) (Locale, bool) {
	if s == nil {
		return Locale{}, false
	}
	locale, ok := s.locales[normalizeLocale(code)]
	if !ok {
		return Locale{}, false
	}
	return locale.Clone(), true
}

// Locales returns a slice with all locale codes
func (s *StaticStore) Locales() []string {
	if s == nil || len(s.codes) == 0 {
		return nil
	}
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

// mergeLocales overlays src onto dst table by table, so a file may override
// only the short month names of a built-in locale.
func mergeLocales(dst, src Locales) {
	for code, locale := range src {
		code = normalizeLocale(code)
		if code == "" {
			continue
		}
		existing, ok := dst[code]
		if !ok {
			dst[code] = locale.Clone()
			continue
		}
		overlay := locale.Clone()
		if overlay.Parent == "" {
			overlay.Parent = existing.Parent
		}
		dst[code] = overlay.inherit(existing)
	}
}
