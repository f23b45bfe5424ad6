package datepicker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFile(t *testing.T) {
	opts, err := LoadConfigFile(filepath.Join("testdata", "picker.toml"))
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}

	cfg := testConfig(t, opts...)

	if cfg.LocaleCode != "es-MX" || cfg.Locale().Months[0] != "enero" {
		t.Fatalf("locale = %q %q", cfg.LocaleCode, cfg.Locale().Months[0])
	}
	if cfg.FirstDay != time.Monday {
		t.Fatalf("FirstDay = %s", cfg.FirstDay)
	}
	if cfg.DateFormat != "dd/mm/yy" || cfg.AltFormat != "yy-mm-dd" {
		t.Fatalf("formats = %q %q", cfg.DateFormat, cfg.AltFormat)
	}
	if cfg.Mode != ModeRange || cfg.RowPolicy != RowsFixed {
		t.Fatalf("Mode=%s RowPolicy=%d", cfg.Mode, cfg.RowPolicy)
	}
	if cfg.SelectOtherMonths || cfg.Keyboard || !cfg.Strict {
		t.Fatal("boolean settings not applied")
	}
	if cfg.RangeSeparator != " a " || cfg.MultipleSeparator != ", " {
		t.Fatalf("separators = %q %q", cfg.RangeSeparator, cfg.MultipleSeparator)
	}
	if cfg.TitleFormat != "MM [de] yy" {
		t.Fatalf("TitleFormat = %q", cfg.TitleFormat)
	}

	b := cfg.Bounds()
	if b.Min != Date(2024, time.March, 8) || b.Max != Date(2024, time.December, 31) {
		t.Fatalf("Bounds = %s..%s", b.Min, b.Max)
	}
	if got := cfg.ResolveDefault(); got != Date(2024, time.March, 20) {
		t.Fatalf("ResolveDefault = %s", got)
	}

	if _, err := cfg.Catalog().Resolve("pt"); err != nil {
		t.Fatalf("relative locale file not loaded: %v", err)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		invalid bool
	}{
		{name: "missing", file: "missing.toml", invalid: false},
		{name: "bad mode", file: "picker_bad.toml", invalid: true},
		{name: "bad bound", file: "picker_bad_bound.toml", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFile(filepath.Join("testdata", tt.file))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidConfigFile); got != tt.invalid {
				t.Fatalf("errors.Is(ErrInvalidConfigFile) = %v; want %v (%v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadConfigFileSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("locale = \n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadConfigFile(path); !errors.Is(err, ErrInvalidConfigFile) {
		t.Fatalf("expected ErrInvalidConfigFile, got %v", err)
	}
}

func TestBoundFromValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  BoundSpec
		err   bool
	}{
		{name: "offset", value: int64(-3), want: RelativeDays(-3)},
		{name: "text", value: "03/05/2024", want: PatternDate("03/05/2024")},
		{name: "date", value: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), want: AbsoluteDate(Date(2024, time.March, 5))},
		{name: "float", value: 2.5, err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := boundFromValue(tt.value)
			if tt.err {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("boundFromValue: %v", err)
			}
			if got != tt.want {
				t.Fatalf("boundFromValue(%v) = %+v; want %+v", tt.value, got, tt.want)
			}
		})
	}
}
