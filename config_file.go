package datepicker

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the keys accepted in a TOML configuration file. Pointer
// fields tell an absent key from a zero value.
type fileConfig struct {
	Locale            string   `toml:"locale"`
	LocaleFiles       []string `toml:"locale_files"`
	FirstDay          *int     `toml:"first_day"`
	DateFormat        string   `toml:"date_format"`
	AltFormat         string   `toml:"alt_format"`
	MinDate           any      `toml:"min_date"`
	MaxDate           any      `toml:"max_date"`
	DefaultDate       any      `toml:"default_date"`
	Mode              string   `toml:"mode"`
	DayFormat         string   `toml:"day_format"`
	MonthFormat       string   `toml:"month_format"`
	TitleFormat       string   `toml:"title_format"`
	FixedRows         *bool    `toml:"fixed_rows"`
	SelectOtherMonths *bool    `toml:"select_other_months"`
	Keyboard          *bool    `toml:"keyboard"`
	Strict            *bool    `toml:"strict"`
	MultipleSeparator string   `toml:"multiple_separator"`
	RangeSeparator    string   `toml:"range_separator"`
}

// LoadConfigFile reads a TOML file and returns the options it describes.
// Relative locale_files entries are resolved against the file's directory.
func LoadConfigFile(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("datepicker: read config %s: %w", path, err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfigFile, path, err)
	}

	opts, err := raw.options(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfigFile, path, err)
	}
	return opts, nil
}

func (f fileConfig) options(baseDir string) ([]Option, error) {
	var opts []Option

	if f.Locale != "" {
		opts = append(opts, WithLocale(f.Locale))
	}
	if len(f.LocaleFiles) > 0 {
		paths := make([]string, 0, len(f.LocaleFiles))
		for _, p := range f.LocaleFiles {
			if !filepath.IsAbs(p) {
				p = filepath.Join(baseDir, p)
			}
			paths = append(paths, p)
		}
		opts = append(opts, WithLocaleFiles(paths...))
	}
	if f.FirstDay != nil {
		opts = append(opts, WithFirstDay(*f.FirstDay))
	}
	if f.DateFormat != "" {
		opts = append(opts, WithDateFormat(f.DateFormat))
	}
	if f.AltFormat != "" {
		opts = append(opts, WithAltFormat(f.AltFormat))
	}

	bounds := []struct {
		key   string
		value any
		apply func(BoundSpec) Option
	}{
		{"min_date", f.MinDate, WithMinDate},
		{"max_date", f.MaxDate, WithMaxDate},
		{"default_date", f.DefaultDate, WithDefaultDate},
	}
	for _, b := range bounds {
		if b.value == nil {
			continue
		}
		spec, err := boundFromValue(b.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.key, err)
		}
		opts = append(opts, b.apply(spec))
	}

	if f.Mode != "" {
		mode, err := ParseSelectionMode(f.Mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMode(mode))
	}
	if f.DayFormat != "" {
		opts = append(opts, WithDayFormat(f.DayFormat))
	}
	if f.MonthFormat != "" {
		opts = append(opts, WithMonthFormat(f.MonthFormat))
	}
	if f.TitleFormat != "" {
		opts = append(opts, WithTitleFormat(f.TitleFormat))
	}
	if f.FixedRows != nil {
		policy := RowsAuto
		if *f.FixedRows {
			policy = RowsFixed
		}
		opts = append(opts, WithRowPolicy(policy))
	}
	if f.SelectOtherMonths != nil {
		opts = append(opts, WithSelectOtherMonths(*f.SelectOtherMonths))
	}
	if f.Keyboard != nil {
		opts = append(opts, WithKeyboard(*f.Keyboard))
	}
	if f.Strict != nil {
		opts = append(opts, WithStrictParsing(*f.Strict))
	}
	if f.MultipleSeparator != "" {
		opts = append(opts, WithMultipleSeparator(f.MultipleSeparator))
	}
	if f.RangeSeparator != "" {
		opts = append(opts, WithRangeSeparator(f.RangeSeparator))
	}

	return opts, nil
}

// boundFromValue accepts the shapes TOML produces for a date setting: an
// integer day offset, a string in the date format, or a TOML date.
func boundFromValue(value any) (BoundSpec, error) {
	switch v := value.(type) {
	case int64:
		return RelativeDays(int(v)), nil
	case string:
		return PatternDate(v), nil
	case time.Time:
		return AbsoluteDate(FromTime(v)), nil
	default:
		return BoundSpec{}, fmt.Errorf("unsupported value %v (%T)", value, value)
	}
}
