package datepicker

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// localeParentChain lists the ancestors of locale from closest to root,
// e.g. es-MX -> es-419 -> es. Codes x/text cannot parse lose one subtag
// per step instead.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	add := func(code string) bool {
		if code == "" || code == "und" || slices.Contains(chain, code) {
			return false
		}
		chain = append(chain, code)
		return true
	}

	tag, err := language.Parse(locale)
	if err != nil {
		for code := locale; ; {
			idx := strings.LastIndex(code, "-")
			if idx <= 0 {
				return chain
			}
			code = code[:idx]
			add(code)
		}
	}

	for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
		if !add(parent.String()) {
			break
		}
	}
	return chain
}

// normalizeLocale replaces underscores with hyphens and trims whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

func sanitizeFallbacks(locale string, fallbacks []string) []string {
	if len(fallbacks) == 0 {
		return nil
	}

	seen := map[string]struct{}{
		normalizeLocale(locale): {},
	}

	result := make([]string, 0, len(fallbacks))
	for _, candidate := range fallbacks {
		normalized := normalizeLocale(candidate)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// foldName case folds a locale name for caseless comparison. A cases.Caser
// keeps state, so one is built per call.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
