package datepicker

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestCatalogResolveFallbackChain(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		code      string
		wantMonth string
		wantDay   string
	}{
		{code: "es-MX", wantMonth: "enero", wantDay: "domingo"},
		{code: "fr-CA", wantMonth: "janvier", wantDay: "dimanche"},
		{code: "de_AT", wantMonth: "Januar", wantDay: "Sonntag"},
		{code: "ar-SY", wantMonth: "كانون الثاني", wantDay: "الأحد"},
		{code: "", wantMonth: "January", wantDay: "Sunday"},
		{code: "zz", wantMonth: "January", wantDay: "Sunday"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			locale, err := catalog.Resolve(tt.code)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.code, err)
			}
			if locale.Months[0] != tt.wantMonth || locale.Days[0] != tt.wantDay {
				t.Fatalf("Resolve(%q) = %q/%q; want %q/%q", tt.code, locale.Months[0], locale.Days[0], tt.wantMonth, tt.wantDay)
			}
		})
	}
}

func TestCatalogExplicitFallbackWins(t *testing.T) {
	store, err := NewStaticStoreFromLoaders(DefaultLoader())
	if err != nil {
		t.Fatalf("NewStaticStoreFromLoaders: %v", err)
	}
	resolver := NewStaticFallbackResolver()
	resolver.Set("ca", "fr", "es")

	locale, err := NewCatalog(store, resolver).Resolve("ca")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if locale.Months[0] != "janvier" {
		t.Fatalf("Months[0] = %q; want janvier", locale.Months[0])
	}
}

func TestCatalogUnknownLocale(t *testing.T) {
	catalog := NewCatalog(NewStaticStore(nil), nil)
	if _, err := catalog.Resolve("en"); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}

	var nilCatalog *Catalog
	if _, err := nilCatalog.Resolve("en"); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("nil catalog error = %v", err)
	}
	if nilCatalog.Codes() != nil {
		t.Fatal("nil catalog lists no codes")
	}
}

func TestCatalogRejectsIncompleteChain(t *testing.T) {
	store := NewStaticStore(Locales{
		"en": {Months: []string{"January"}},
	})
	if _, err := NewCatalog(store, nil).Resolve("en"); err == nil {
		t.Fatal("expected validation error for incomplete tables")
	}
}

func TestLocaleParentChain(t *testing.T) {
	tests := []struct {
		locale string
		want   []string
	}{
		{locale: "es-MX", want: []string{"es-419", "es"}},
		{locale: "fr-CA", want: []string{"fr"}},
		{locale: "en", want: nil},
		{locale: "", want: nil},
	}

	for _, tt := range tests {
		if got := localeParentChain(tt.locale); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("localeParentChain(%q) = %v; want %v", tt.locale, got, tt.want)
		}
	}
}

func TestStaticFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("es_MX", "es", "es-MX", "en", "es", "")

	chain := resolver.Resolve("es-MX")
	if !reflect.DeepEqual(chain, []string{"es", "en"}) {
		t.Fatalf("Resolve() = %v", chain)
	}
	chain[0] = "mutated"
	if resolver.Resolve("es-MX")[0] != "es" {
		t.Fatal("Resolve must return a copy")
	}
	if resolver.Resolve("fr") != nil {
		t.Fatal("unknown locale has no chain")
	}
}

func TestLocaleIndexes(t *testing.T) {
	en := mustLocale(t, "en")

	if got := en.MonthIndex("march", false); got != 2 {
		t.Fatalf("MonthIndex(march) = %d", got)
	}
	if got := en.MonthIndex("MAR", true); got != 2 {
		t.Fatalf("MonthIndex(MAR, short) = %d", got)
	}
	if got := en.MonthIndex("Mar", false); got != -1 {
		t.Fatalf("MonthIndex(Mar, long) = %d; want -1", got)
	}
	if got := en.DayIndex("friday", false); got != int(time.Friday) {
		t.Fatalf("DayIndex(friday) = %d", got)
	}
	if got := en.MonthIndex("", false); got != -1 {
		t.Fatalf("MonthIndex(empty) = %d", got)
	}
}

func TestLocaleWeekdayHeader(t *testing.T) {
	en := mustLocale(t, "en")

	if got := en.WeekdayHeader(time.Sunday); got[0] != "Su" || got[6] != "Sa" {
		t.Fatalf("WeekdayHeader(Sunday) = %v", got)
	}
	if got := en.WeekdayHeader(time.Saturday); got[0] != "Sa" || got[1] != "Su" {
		t.Fatalf("WeekdayHeader(Saturday) = %v", got)
	}

	partial := en.Clone()
	partial.DaysMin = nil
	if got := partial.WeekdayHeader(time.Monday); got[0] != "Mon" {
		t.Fatalf("WeekdayHeader without DaysMin = %v", got)
	}
}

func TestLocaleCloneIsDeep(t *testing.T) {
	en := mustLocale(t, "en")
	clone := en.Clone()
	clone.Months[0] = "Changed"
	if en.Months[0] != "January" {
		t.Fatal("Clone shares backing arrays")
	}
}
