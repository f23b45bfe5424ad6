package datepicker

import "time"

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey is read from map contexts passed as a helper's locale argument.
	LocaleKey string
}

// TemplateHelpers exposes date helpers for text/template and html/template.
// Helpers never fail: unusable input renders as an empty string.
func TemplateHelpers(cfg *Config, helperCfg HelperConfig) map[string]any {
	if cfg == nil {
		var err error
		if cfg, err = NewConfig(); err != nil {
			return map[string]any{}
		}
	}
	if helperCfg.LocaleKey == "" {
		helperCfg.LocaleKey = "locale"
	}

	formatterFor := func(localeArg any) Formatter {
		formatter := cfg.Formatter()
		code := helperLocale(localeArg, helperCfg.LocaleKey)
		if code == "" {
			return formatter
		}
		if locale, err := cfg.Catalog().Resolve(code); err == nil {
			formatter.Locale = locale
		}
		return formatter
	}

	return map[string]any{
		"format_date": func(value any, pattern ...string) string {
			d, ok := helperDate(value)
			if !ok {
				return ""
			}
			layout := cfg.DateFormat
			if len(pattern) > 0 && pattern[0] != "" {
				layout = pattern[0]
			}
			return cfg.Formatter().FormatPattern(layout, d)
		},
		"format_date_in": func(localeArg any, value any, pattern string) string {
			d, ok := helperDate(value)
			if !ok {
				return ""
			}
			return formatterFor(localeArg).FormatPattern(stringOr(pattern, cfg.DateFormat), d)
		},
		"format_iso": func(value any) string {
			d, ok := helperDate(value)
			if !ok {
				return ""
			}
			return d.String()
		},
		"parse_date": func(text string) string {
			d, err := cfg.Parser().Parse(cfg.Tokens(), text)
			if err != nil {
				return ""
			}
			return d.String()
		},
		"month_name": func(localeArg any, month int) string {
			return formatterFor(localeArg).Locale.monthName(time.Month(month), false)
		},
		"weekday_header": func(localeArg any) []string {
			return formatterFor(localeArg).Locale.WeekdayHeader(cfg.FirstDay)
		},
	}
}

func helperLocale(value any, key string) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		if s, ok := v[key].(string); ok {
			return s
		}
	case map[string]string:
		return v[key]
	}
	return ""
}

func helperDate(value any) (DateValue, bool) {
	switch v := value.(type) {
	case DateValue:
		return v, !v.IsZero()
	case *DateValue:
		if v == nil {
			return DateValue{}, false
		}
		return *v, !v.IsZero()
	case time.Time:
		if v.IsZero() {
			return DateValue{}, false
		}
		return FromTime(v), true
	case string:
		d, err := ParseISO(v)
		return d, err == nil
	default:
		return DateValue{}, false
	}
}
