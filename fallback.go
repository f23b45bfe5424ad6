package datepicker

// FallbackResolver resolves fallback locale chains
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver holds explicit fallback chains keyed by locale.
type StaticFallbackResolver struct {
	chains map[string][]string
}

var _ FallbackResolver = &StaticFallbackResolver{}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set replaces the chain for locale, dropping duplicates and self references.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if s == nil {
		return
	}
	locale = normalizeLocale(locale)
	if locale == "" {
		return
	}
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[locale] = sanitizeFallbacks(locale, fallbacks)
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil || len(s.chains) == 0 {
		return nil
	}
	chain, ok := s.chains[normalizeLocale(locale)]
	if !ok || len(chain) == 0 {
		return nil
	}
	out := make([]string, len(chain))
	copy(out, chain)
	return out
}
