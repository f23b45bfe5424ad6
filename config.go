package datepicker

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
)

const (
	defaultDateFormat        = "mm/dd/yy"
	defaultMultipleSeparator = ", "
	defaultRangeSeparator    = " - "
)

// Config captures picker setup. It is built once by NewConfig and never
// mutated afterwards; With derives a new Config.
type Config struct {
	LocaleCode  string
	LocaleFiles []string
	Resolver    FallbackResolver
	Matcher     NameMatcher

	FirstDay    time.Weekday
	DateFormat  string
	AltFormat   string
	DayFormat   string
	MonthFormat string
	TitleFormat string

	MinDate     BoundSpec
	MaxDate     BoundSpec
	DefaultDate BoundSpec

	Mode              SelectionMode
	RowPolicy         RowPolicy
	SelectOtherMonths bool
	Keyboard          bool
	Strict            bool

	MultipleSeparator string
	RangeSeparator    string

	Clock    func() time.Time
	Location *time.Location
	Logger   *slog.Logger

	localeData []Locale
	locale     Locale
	catalog    *Catalog
	opts       []Option
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		LocaleCode:        rootLocale,
		DateFormat:        defaultDateFormat,
		DayFormat:         defaultDayLabel,
		MonthFormat:       defaultMonthLabel,
		TitleFormat:       defaultTitle,
		Mode:              ModeSingle,
		RowPolicy:         RowsAuto,
		SelectOtherMonths: true,
		Keyboard:          true,
		MultipleSeparator: defaultMultipleSeparator,
		RangeSeparator:    defaultRangeSeparator,
		Clock:             time.Now,
		Location:          time.Local,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	cfg.opts = slices.Clone(opts)

	if cfg.FirstDay < time.Sunday || cfg.FirstDay > time.Saturday {
		return nil, fmt.Errorf("datepicker: first day %d out of range 0..6", int(cfg.FirstDay))
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if err := cfg.applyLocale(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// With returns a new Config built from the receiver's options followed by opts.
func (cfg *Config) With(opts ...Option) (*Config, error) {
	if cfg == nil {
		return NewConfig(opts...)
	}
	all := append(slices.Clone(cfg.opts), opts...)
	return NewConfig(all...)
}

// WithLocale selects the name tables by locale code.
func WithLocale(code string) Option {
	return func(c *Config) error {
		c.LocaleCode = code
		return nil
	}
}

// WithLocaleFiles adds JSON or YAML locale files on top of the embedded ones.
func WithLocaleFiles(paths ...string) Option {
	return func(c *Config) error {
		c.LocaleFiles = append(c.LocaleFiles, paths...)
		return nil
	}
}

// WithLocaleData registers name tables directly. Missing tables are inherited
// through the fallback chain.
func WithLocaleData(locale Locale) Option {
	return func(c *Config) error {
		if normalizeLocale(locale.Code) == "" {
			return fmt.Errorf("datepicker: locale data without code")
		}
		c.localeData = append(c.localeData, locale.Clone())
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

func WithNameMatcher(matcher NameMatcher) Option {
	return func(c *Config) error {
		c.Matcher = matcher
		return nil
	}
}

// WithFirstDay sets the leading column of the month grid, 0 is Sunday.
func WithFirstDay(day int) Option {
	return func(c *Config) error {
		if day < 0 || day > 6 {
			return fmt.Errorf("datepicker: first day %d out of range 0..6", day)
		}
		c.FirstDay = time.Weekday(day)
		return nil
	}
}

func WithDateFormat(pattern string) Option {
	return func(c *Config) error {
		if pattern == "" {
			return fmt.Errorf("datepicker: empty date format")
		}
		c.DateFormat = pattern
		return nil
	}
}

func WithAltFormat(pattern string) Option {
	return func(c *Config) error {
		c.AltFormat = pattern
		return nil
	}
}

func WithMinDate(spec BoundSpec) Option {
	return func(c *Config) error {
		c.MinDate = spec
		return nil
	}
}

func WithMaxDate(spec BoundSpec) Option {
	return func(c *Config) error {
		c.MaxDate = spec
		return nil
	}
}

func WithDefaultDate(spec BoundSpec) Option {
	return func(c *Config) error {
		c.DefaultDate = spec
		return nil
	}
}

func WithMode(mode SelectionMode) Option {
	return func(c *Config) error {
		if mode < ModeSingle || mode > ModeRange {
			return fmt.Errorf("datepicker: unknown selection mode %d", int(mode))
		}
		c.Mode = mode
		return nil
	}
}

func WithDayFormat(pattern string) Option {
	return func(c *Config) error {
		c.DayFormat = stringOr(pattern, defaultDayLabel)
		return nil
	}
}

func WithMonthFormat(pattern string) Option {
	return func(c *Config) error {
		c.MonthFormat = stringOr(pattern, defaultMonthLabel)
		return nil
	}
}

func WithTitleFormat(pattern string) Option {
	return func(c *Config) error {
		c.TitleFormat = stringOr(pattern, defaultTitle)
		return nil
	}
}

func WithRowPolicy(policy RowPolicy) Option {
	return func(c *Config) error {
		c.RowPolicy = policy
		return nil
	}
}

func WithSelectOtherMonths(enabled bool) Option {
	return func(c *Config) error {
		c.SelectOtherMonths = enabled
		return nil
	}
}

func WithKeyboard(enabled bool) Option {
	return func(c *Config) error {
		c.Keyboard = enabled
		return nil
	}
}

func WithStrictParsing(enabled bool) Option {
	return func(c *Config) error {
		c.Strict = enabled
		return nil
	}
}

func WithMultipleSeparator(sep string) Option {
	return func(c *Config) error {
		c.MultipleSeparator = stringOr(sep, defaultMultipleSeparator)
		return nil
	}
}

func WithRangeSeparator(sep string) Option {
	return func(c *Config) error {
		c.RangeSeparator = stringOr(sep, defaultRangeSeparator)
		return nil
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Config) error {
		if now != nil {
			c.Clock = now
		}
		return nil
	}
}

func WithLocation(loc *time.Location) Option {
	return func(c *Config) error {
		if loc != nil {
			c.Location = loc
		}
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// Locale returns the resolved name tables.
func (cfg *Config) Locale() Locale {
	return cfg.locale.Clone()
}

// Catalog exposes the locales this config was built with.
func (cfg *Config) Catalog() *Catalog {
	return cfg.catalog
}

// Today is the current day on the configured clock and location.
func (cfg *Config) Today() DateValue {
	return Today(cfg.Clock, cfg.Location)
}

// Parser returns a parser for the configured locale and policy.
func (cfg *Config) Parser() Parser {
	return Parser{
		Locale:    cfg.locale,
		Matcher:   cfg.Matcher,
		Location:  cfg.Location,
		Reference: cfg.Today(),
		Strict:    cfg.Strict,
	}
}

// Formatter returns a formatter for the configured locale.
func (cfg *Config) Formatter() Formatter {
	return Formatter{Locale: cfg.locale, Location: cfg.Location}
}

// Tokens returns the compiled DateFormat.
func (cfg *Config) Tokens() []Token {
	return sharedPatterns.Compile(cfg.DateFormat)
}

// AltTokens returns the compiled AltFormat, or DateFormat when none is set.
func (cfg *Config) AltTokens() []Token {
	return sharedPatterns.Compile(stringOr(cfg.AltFormat, cfg.DateFormat))
}

// Separator joins dates of a multi or range selection.
func (cfg *Config) Separator() string {
	if cfg.Mode == ModeRange {
		return cfg.RangeSeparator
	}
	return cfg.MultipleSeparator
}

// Bounds resolves MinDate and MaxDate against today. A spec that cannot be
// resolved is logged and treated as unset.
func (cfg *Config) Bounds() Bounds {
	return Bounds{
		Min: cfg.resolveSpec("min_date", cfg.MinDate),
		Max: cfg.resolveSpec("max_date", cfg.MaxDate),
	}
}

// ResolveDefault resolves DefaultDate, returning the zero value when unset.
func (cfg *Config) ResolveDefault() DateValue {
	return cfg.resolveSpec("default_date", cfg.DefaultDate)
}

// Format renders d with DateFormat.
func (cfg *Config) Format(d DateValue) string {
	return cfg.Formatter().Format(cfg.Tokens(), d)
}

// FormatDates joins dates rendered with tokens using the mode separator.
func (cfg *Config) FormatDates(tokens []Token, dates []DateValue) string {
	formatter := cfg.Formatter()
	parts := make([]string, 0, len(dates))
	for _, d := range dates {
		parts = append(parts, formatter.Format(tokens, d))
	}
	return strings.Join(parts, cfg.Separator())
}

// ParseValue reads an input value: a single date in single mode, a separated
// list otherwise. Text that fails to parse contributes no date.
func (cfg *Config) ParseValue(text string) ([]DateValue, error) {
	parser := cfg.Parser()
	tokens := cfg.Tokens()
	if cfg.Mode == ModeSingle {
		d, err := parser.Parse(tokens, text)
		if err != nil {
			return nil, err
		}
		return []DateValue{d}, nil
	}
	return parser.ParseMulti(tokens, text, cfg.MultipleSeparator, cfg.RangeSeparator)
}

func (cfg *Config) resolveSpec(name string, spec BoundSpec) DateValue {
	if !spec.IsSet() {
		return DateValue{}
	}
	d, err := spec.Resolve(cfg.Today(), cfg.Parser(), cfg.Tokens())
	if err != nil {
		cfg.Logger.Warn("datepicker: ignoring unresolvable date setting",
			slog.String("setting", name),
			slog.String("value", spec.String()),
			slog.Any("error", err))
		return DateValue{}
	}
	return d
}

func (cfg *Config) applyLocale() error {
	loaders := []Loader{DefaultLoader()}
	if len(cfg.LocaleFiles) > 0 {
		loaders = append(loaders, NewFileLoader(cfg.LocaleFiles...))
	}
	if len(cfg.localeData) > 0 {
		data := cfg.localeData
		loaders = append(loaders, LoaderFunc(func() (Locales, error) {
			out := make(Locales, len(data))
			for _, locale := range data {
				out[normalizeLocale(locale.Code)] = locale.Clone()
			}
			return out, nil
		}))
	}

	store, err := NewStaticStoreFromLoaders(loaders...)
	if err != nil {
		return err
	}
	cfg.catalog = NewCatalog(store, cfg.Resolver)

	locale, err := cfg.catalog.Resolve(cfg.LocaleCode)
	if err != nil {
		return err
	}
	cfg.locale = locale
	cfg.LocaleCode = normalizeLocale(cfg.LocaleCode)
	return nil
}
