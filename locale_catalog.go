package datepicker

import (
	"fmt"
	"sync"
)

const rootLocale = "en"

// Catalog resolves a locale code into complete name tables, walking the
// explicit fallback chain, the declared parent, the CLDR parent chain and
// finally English.
type Catalog struct {
	store    Store
	resolver FallbackResolver
}

func NewCatalog(store Store, resolver FallbackResolver) *Catalog {
	if store == nil {
		store = NewStaticStore(nil)
	}
	return &Catalog{store: store, resolver: resolver}
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
)

// DefaultCatalog serves the embedded locales.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		store, err := NewStaticStoreFromLoaders(DefaultLoader())
		if err != nil {
			panic(fmt.Sprintf("datepicker: embedded locales: %v", err))
		}
		defaultCatalog = NewCatalog(store, nil)
	})
	return defaultCatalog
}

// Codes lists the locales the catalog can serve directly.
func (c *Catalog) Codes() []string {
	if c == nil {
		return nil
	}
	return c.store.Locales()
}

// Resolve returns the tables for code. Tables missing from the closest match
// are inherited from the next candidates in the chain.
func (c *Catalog) Resolve(code string) (Locale, error) {
	if c == nil {
		return Locale{}, ErrUnknownLocale
	}

	code = normalizeLocale(code)
	if code == "" {
		code = rootLocale
	}

	var (
		result Locale
		found  bool
	)
	for _, candidate := range c.candidates(code) {
		locale, ok := c.store.Locale(candidate)
		if !ok {
			continue
		}
		if !found {
			result = locale
			found = true
		} else {
			result = result.inherit(locale)
		}
		if result.complete() {
			break
		}
	}

	if !found {
		return Locale{}, fmt.Errorf("%w: %q", ErrUnknownLocale, code)
	}
	if err := result.Validate(); err != nil {
		return Locale{}, err
	}
	return result, nil
}

func (c *Catalog) candidates(locale string) []string {
	seen := make(map[string]struct{}, 6)
	candidates := make([]string, 0, 6)

	appendLocale := func(value string) {
		value = normalizeLocale(value)
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	appendLocale(locale)

	if c.resolver != nil {
		for _, fallback := range c.resolver.Resolve(locale) {
			appendLocale(fallback)
		}
	}

	if declared, ok := c.store.Locale(locale); ok && declared.Parent != "" {
		appendLocale(declared.Parent)
	}

	for _, parent := range localeParentChain(locale) {
		appendLocale(parent)
	}

	appendLocale(rootLocale)
	return candidates
}
