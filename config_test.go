package datepicker

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"
	"time"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	instant := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return instant }
}

func testConfig(t *testing.T, opts ...Option) *Config {
	t.Helper()
	base := []Option{WithClock(fixedClock(2024, time.March, 15)), WithLocation(time.UTC)}
	cfg, err := NewConfig(append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return cfg
}

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.LocaleCode != "en" {
		t.Fatalf("LocaleCode = %q", cfg.LocaleCode)
	}
	if cfg.DateFormat != "mm/dd/yy" {
		t.Fatalf("DateFormat = %q", cfg.DateFormat)
	}
	if cfg.FirstDay != time.Sunday || cfg.Mode != ModeSingle || cfg.RowPolicy != RowsAuto {
		t.Fatalf("FirstDay=%s Mode=%s RowPolicy=%d", cfg.FirstDay, cfg.Mode, cfg.RowPolicy)
	}
	if !cfg.SelectOtherMonths || !cfg.Keyboard || cfg.Strict {
		t.Fatal("unexpected boolean defaults")
	}
	if cfg.Logger == nil || cfg.Resolver == nil || cfg.Catalog() == nil {
		t.Fatal("expected default logger, resolver and catalog")
	}
	if cfg.Locale().Months[0] != "January" {
		t.Fatalf("Locale().Months[0] = %q", cfg.Locale().Months[0])
	}
	if cfg.Separator() != ", " {
		t.Fatalf("Separator() = %q", cfg.Separator())
	}
}

func TestNewConfigRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "first day", opt: WithFirstDay(7)},
		{name: "negative first day", opt: WithFirstDay(-1)},
		{name: "empty format", opt: WithDateFormat("")},
		{name: "mode", opt: WithMode(SelectionMode(9))},
		{name: "locale data without code", opt: WithLocaleData(Locale{Name: "nameless"})},
		{name: "missing locale file", opt: WithLocaleFiles("testdata/missing.json")},
		{name: "bad locale file", opt: WithLocaleFiles("testdata/locales_bad.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewConfig(tt.opt); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestConfigLocaleFallsBackToParent(t *testing.T) {
	for _, code := range []string{"es-MX", "es_MX"} {
		cfg := testConfig(t, WithLocale(code))
		if cfg.LocaleCode != "es-MX" {
			t.Fatalf("LocaleCode = %q; want es-MX", cfg.LocaleCode)
		}
		if got := cfg.Locale().Months[0]; got != "enero" {
			t.Fatalf("%s Months[0] = %q; want enero", code, got)
		}
	}
}

func TestConfigUnknownLocaleUsesEnglish(t *testing.T) {
	cfg := testConfig(t, WithLocale("tlh"))
	if got := cfg.Locale().Months[0]; got != "January" {
		t.Fatalf("Months[0] = %q; want January", got)
	}
}

func TestConfigWithFallbackOption(t *testing.T) {
	cfg := testConfig(t,
		WithFallback("gl", "pt", "es", "pt"),
		WithLocale("gl"),
	)

	chain := cfg.Resolver.Resolve("gl")
	if !reflect.DeepEqual(chain, []string{"pt", "es"}) {
		t.Fatalf("fallback chain = %v", chain)
	}
	if got := cfg.Locale().Months[2]; got != "marzo" {
		t.Fatalf("Months[2] = %q; want marzo from the es fallback", got)
	}
}

func TestConfigLocaleFiles(t *testing.T) {
	cfg := testConfig(t,
		WithLocaleFiles("testdata/locales_pt.json", "testdata/locales_es_override.yaml"),
		WithLocale("es-AR"),
	)

	locale := cfg.Locale()
	if locale.Name != "Español (Argentina)" {
		t.Fatalf("Name = %q", locale.Name)
	}
	if locale.DaysMin[3] != "X" {
		t.Fatalf("DaysMin[3] = %q; want X", locale.DaysMin[3])
	}
	if locale.MonthsShort[8] != "sept." || locale.Months[8] != "septiembre" {
		t.Fatalf("MonthsShort[8]=%q Months[8]=%q", locale.MonthsShort[8], locale.Months[8])
	}

	codes := cfg.Catalog().Codes()
	if !strings.Contains(strings.Join(codes, ","), "pt") {
		t.Fatalf("Codes() = %v; want pt", codes)
	}
}

func TestConfigLocaleData(t *testing.T) {
	cfg := testConfig(t,
		WithLocaleData(Locale{
			Code:   "en-XA",
			Parent: "en",
			Months: []string{"[Jan]", "[Feb]", "[Mar]", "[Apr]", "[May]", "[Jun]", "[Jul]", "[Aug]", "[Sep]", "[Oct]", "[Nov]", "[Dec]"},
		}),
		WithLocale("en-XA"),
	)

	if got := cfg.Format(Date(2024, time.March, 5)); got != "03/05/2024" {
		t.Fatalf("Format = %q", got)
	}
	if got := cfg.Formatter().FormatPattern("MM", Date(2024, time.March, 5)); got != "[Mar]" {
		t.Fatalf("FormatPattern(MM) = %q", got)
	}
	if got := cfg.Locale().Days[0]; got != "Sunday" {
		t.Fatalf("inherited Days[0] = %q", got)
	}
}

func TestConfigWithDerives(t *testing.T) {
	base := testConfig(t, WithLocale("fr"), WithDateFormat("d MM yy"))

	derived, err := base.With(WithMode(ModeMulti))
	if err != nil {
		t.Fatalf("With: %v", err)
	}

	if derived == base {
		t.Fatal("With must return a new config")
	}
	if base.Mode != ModeSingle {
		t.Fatal("With must not mutate the receiver")
	}
	if derived.Mode != ModeMulti || derived.LocaleCode != "fr" || derived.DateFormat != "d MM yy" {
		t.Fatalf("derived = %s %s %s", derived.Mode, derived.LocaleCode, derived.DateFormat)
	}
	if derived.Today() != Date(2024, time.March, 15) {
		t.Fatalf("derived clock lost: %s", derived.Today())
	}
}

func TestConfigBounds(t *testing.T) {
	cfg := testConfig(t,
		WithMinDate(RelativeDays(-5)),
		WithMaxDate(PatternDate("04/30/2024")),
		WithDefaultDate(PatternDate("+3")),
	)

	b := cfg.Bounds()
	if b.Min != Date(2024, time.March, 10) || b.Max != Date(2024, time.April, 30) {
		t.Fatalf("Bounds() = %s..%s", b.Min, b.Max)
	}
	if got := cfg.ResolveDefault(); got != Date(2024, time.March, 18) {
		t.Fatalf("ResolveDefault() = %s", got)
	}
}

func TestConfigUnresolvableBoundIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := testConfig(t, WithMinDate(PatternDate("whenever")), WithLogger(logger))

	if b := cfg.Bounds(); !b.Min.IsZero() {
		t.Fatalf("Min = %s; want unset", b.Min)
	}
	if !strings.Contains(buf.String(), "min_date") {
		t.Fatalf("expected a warning naming min_date, got %q", buf.String())
	}
}

func TestConfigFormatDates(t *testing.T) {
	dates := []DateValue{Date(2024, time.March, 5), Date(2024, time.March, 9)}

	multi := testConfig(t, WithMode(ModeMulti))
	if got := multi.FormatDates(multi.Tokens(), dates); got != "03/05/2024, 03/09/2024" {
		t.Fatalf("multi FormatDates = %q", got)
	}

	ranged := testConfig(t, WithMode(ModeRange), WithAltFormat("yy-mm-dd"))
	if got := ranged.FormatDates(ranged.AltTokens(), dates); got != "2024-03-05 - 2024-03-09" {
		t.Fatalf("range FormatDates = %q", got)
	}
	if got := ranged.FormatDates(ranged.Tokens(), nil); got != "" {
		t.Fatalf("empty FormatDates = %q", got)
	}
}

func TestConfigParseValue(t *testing.T) {
	single := testConfig(t)
	dates, err := single.ParseValue("03/05/2024")
	if err != nil || len(dates) != 1 || dates[0] != Date(2024, time.March, 5) {
		t.Fatalf("single ParseValue = %v, %v", dates, err)
	}
	if dates, _ := single.ParseValue("nothing"); len(dates) != 0 {
		t.Fatalf("expected no dates, got %v", dates)
	}

	ranged := testConfig(t, WithMode(ModeRange))
	dates, err = ranged.ParseValue("03/05/2024 - 03/09/2024")
	if err != nil || len(dates) != 2 {
		t.Fatalf("range ParseValue = %v, %v", dates, err)
	}

	strict := testConfig(t, WithStrictParsing(true))
	if _, err := strict.ParseValue("03/05"); !IsUnresolved(err) {
		t.Fatalf("strict ParseValue error = %v", err)
	}
	if dates, err := strict.ParseValue("02/30/2024"); !errors.Is(err, ErrInvalidDate) || len(dates) != 0 {
		t.Fatalf("strict overflow ParseValue = %v, %v", dates, err)
	}

	named := testConfig(t, WithDateFormat("dd M yy"))
	if dates, err := named.ParseValue("05 Xyz 2024"); !IsNameNotFound(err) || len(dates) != 0 {
		t.Fatalf("unknown name ParseValue = %v, %v", dates, err)
	}

	spanish := testConfig(t, WithLocale("es"), WithDateFormat("MM d yy"), WithMode(ModeRange), WithRangeSeparator(" al "))
	dates, err = spanish.ParseValue("marzo 5 2024 al abril 10 2024")
	want := []DateValue{Date(2024, time.March, 5), Date(2024, time.April, 10)}
	if err != nil || !reflect.DeepEqual(dates, want) {
		t.Fatalf("word separator ParseValue = %v, %v; want %v", dates, err, want)
	}
}
