package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	out      string
	cldrPath string
	locales  []string
}

// localeTables matches the locale file format read by datepicker.FileLoader.
type localeTables struct {
	Name        string   `json:"name,omitempty"`
	Parent      string   `json:"parent,omitempty"`
	Months      []string `json:"months,omitempty"`
	MonthsShort []string `json:"months_short,omitempty"`
	Days        []string `json:"days,omitempty"`
	DaysShort   []string `json:"days_short,omitempty"`
	DaysMin     []string `json:"days_min,omitempty"`
}

var dayKeys = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "datepicker-locales: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.out, "out", "locales/default_locales.json", "path to generated locale file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects a main/ subdirectory)")
	flag.Var(&localeList, "locale", "locale to generate. Repeat flag or separate with commas to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}
	for _, locale := range localeList.items {
		cfg.locales = append(cfg.locales, strings.ReplaceAll(locale, "_", "-"))
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}
	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	out := make(map[string]localeTables, len(cfg.locales))
	for _, locale := range cfg.locales {
		tables, err := buildTables(data, locale)
		if err != nil {
			return fmt.Errorf("build tables for %s: %w", locale, err)
		}
		out[locale] = tables
	}

	// Regional locales keep only the tables that differ from their parent.
	for locale, tables := range out {
		parent, ok := out[tables.Parent]
		if !ok {
			continue
		}
		out[locale] = trimInherited(tables, parent)
	}

	payload, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}
	return os.WriteFile(cfg.out, append(payload, '\n'), 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func buildTables(data *cldr.CLDR, locale string) (localeTables, error) {
	ldml := findLDML(data, locale)
	if ldml == nil {
		return localeTables{}, errors.New("missing LDML data")
	}

	calendar := gregorian(ldml)
	if calendar == nil {
		return localeTables{}, errors.New("missing gregorian calendar")
	}

	tables := localeTables{
		Name:        displayName(locale),
		Parent:      parentLocale(locale),
		Months:      monthNames(calendar, "wide"),
		MonthsShort: monthNames(calendar, "abbreviated"),
		Days:        dayNames(calendar, "wide"),
		DaysShort:   dayNames(calendar, "abbreviated"),
		DaysMin:     dayNames(calendar, "short"),
	}

	if len(tables.Months) != 12 || len(tables.MonthsShort) != 12 {
		return localeTables{}, errors.New("incomplete month names")
	}
	if len(tables.Days) != 7 || len(tables.DaysShort) != 7 {
		return localeTables{}, errors.New("incomplete day names")
	}
	if len(tables.DaysMin) != 7 {
		tables.DaysMin = nil
	}
	return tables, nil
}

func findLDML(data *cldr.CLDR, locale string) *cldr.LDML {
	if data == nil {
		return nil
	}
	candidate := strings.ReplaceAll(locale, "-", "_")
	for {
		if candidate == "" {
			break
		}
		if ldml := data.RawLDML(candidate); ldml != nil {
			return ldml
		}
		if idx := strings.LastIndex(candidate, "_"); idx >= 0 {
			candidate = candidate[:idx]
			continue
		}
		break
	}
	return nil
}

func gregorian(ldml *cldr.LDML) *cldr.Calendar {
	if ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return nil
	}
	for _, calendar := range ldml.Dates.Calendars.Calendar {
		if calendar != nil && calendar.Type == "gregorian" {
			return calendar
		}
	}
	return nil
}

// monthNames reads the format context, which is what appears inside dates.
func monthNames(calendar *cldr.Calendar, width string) []string {
	if calendar.Months == nil {
		return nil
	}
	names := make([]string, 12)
	found := 0
	for _, context := range calendar.Months.MonthContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, w := range context.MonthWidth {
			if w == nil || w.Type != width {
				continue
			}
			for _, month := range w.Month {
				if month == nil || month.Alt != "" || month.Yeartype != "" {
					continue
				}
				idx, err := strconv.Atoi(month.Type)
				if err != nil || idx < 1 || idx > 12 || names[idx-1] != "" {
					continue
				}
				names[idx-1] = month.Data()
				found++
			}
		}
	}
	if found != 12 {
		return nil
	}
	return names
}

func dayNames(calendar *cldr.Calendar, width string) []string {
	if calendar.Days == nil {
		return nil
	}
	names := make([]string, 7)
	found := 0
	for _, context := range calendar.Days.DayContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, w := range context.DayWidth {
			if w == nil || w.Type != width {
				continue
			}
			for _, day := range w.Day {
				if day == nil || day.Alt != "" {
					continue
				}
				idx := slices.Index(dayKeys, day.Type)
				if idx < 0 || names[idx] != "" {
					continue
				}
				names[idx] = day.Data()
				found++
			}
		}
	}
	if found != 7 {
		return nil
	}
	return names
}

func displayName(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	return display.Self.Name(tag)
}

// parentLocale drops the region so regional tables can inherit from the
// language tables.
func parentLocale(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, conf := tag.Base()
	if conf == language.No || base.String() == locale {
		return ""
	}
	return base.String()
}

func trimInherited(tables, parent localeTables) localeTables {
	if slices.Equal(tables.Months, parent.Months) {
		tables.Months = nil
	}
	if slices.Equal(tables.MonthsShort, parent.MonthsShort) {
		tables.MonthsShort = nil
	}
	if slices.Equal(tables.Days, parent.Days) {
		tables.Days = nil
	}
	if slices.Equal(tables.DaysShort, parent.DaysShort) {
		tables.DaysShort = nil
	}
	if slices.Equal(tables.DaysMin, parent.DaysMin) {
		tables.DaysMin = nil
	}
	return tables
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
