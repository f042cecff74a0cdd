package elapsed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// FormatterRegistry lazily builds and caches one Formatter per locale.
type FormatterRegistry struct {
	mu         sync.RWMutex
	formatters map[string]*Formatter
	fallback   *Formatter
}

// NewFormatterRegistry returns a registry that answers unknown locales with
// fallback, or English when fallback is nil.
func NewFormatterRegistry(fallback *Formatter) *FormatterRegistry {
	if fallback == nil {
		fallback = defaultFormatter
	}
	return &FormatterRegistry{
		formatters: make(map[string]*Formatter),
		fallback:   fallback,
	}
}

// Register pins tables for a locale, replacing any cached formatter.
func (r *FormatterRegistry) Register(locale string, tables *LocaleTables) error {
	if err := tables.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formatters[normalizeLocale(locale)] = NewFormatter(WithFormatterTables(tables))
	return nil
}

// Formatter returns the formatter for locale. Unknown locales resolve to the
// fallback and the result is cached either way.
func (r *FormatterRegistry) Formatter(locale string) *Formatter {
	code := normalizeLocale(locale)
	if code == "" {
		return r.fallback
	}

	r.mu.RLock()
	f, ok := r.formatters[code]
	r.mu.RUnlock()
	if ok {
		return f
	}

	f = r.fallback
	if tables, err := LookupTables(code); err == nil {
		f = NewFormatter(WithFormatterTables(tables))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.formatters[code]; ok {
		return cached
	}
	r.formatters[code] = f
	return f
}

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey is read from map template data to pick a locale.
	LocaleKey string
	// Locale is used when the data carries no locale.
	Locale string
	// Registry resolves locale formatters. Defaults to an English registry.
	Registry *FormatterRegistry
	// Clock is the reference time for humanize. Defaults to time.Now.
	Clock func() time.Time
	// OnError renders values that cannot be read as a time.
	OnError func(value any, err error) string
}

// TemplateHelpers exposes date formatting and humanizing helpers for
// text/template and html/template.
//
//	format_date    (value, pattern)
//	format_date_utc(value, pattern)
//	humanize       (value)
//	l_format_date  (data, value, pattern)
//	l_humanize     (data, value)
//
// Values may be time.Time, *time.Time, integer unix seconds or a decimal
// string of unix seconds. The l_ variants read the locale from data.
func TemplateHelpers(cfg HelperConfig) map[string]any {
	registry := cfg.Registry
	if registry == nil {
		registry = NewFormatterRegistry(nil)
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	onError := cfg.OnError
	if onError == nil {
		onError = func(value any, err error) string {
			return fmt.Sprintf("[invalid time: %v]", value)
		}
	}

	localeOf := func(data any) string {
		switch v := data.(type) {
		case string:
			return v
		case map[string]any:
			if s, ok := v[cfg.LocaleKey].(string); ok && s != "" {
				return s
			}
		case map[string]string:
			if s := v[cfg.LocaleKey]; s != "" {
				return s
			}
		}
		return cfg.Locale
	}

	format := func(locale string, value any, pattern string, utc bool) string {
		t, err := toTime(value)
		if err != nil {
			return onError(value, err)
		}
		return registry.Formatter(locale).FormatPattern(t, ParsePattern(pattern), utc)
	}

	humanize := func(locale string, value any) string {
		t, err := toTime(value)
		if err != nil {
			return onError(value, err)
		}
		now := clock()
		h := NewHumanizer(WithHumanizerFormatter(registry.Formatter(locale)))
		return h.Humanize(t.In(now.Location()), now)
	}

	return map[string]any{
		"format_date": func(value any, pattern string) string {
			return format(cfg.Locale, value, pattern, false)
		},
		"format_date_utc": func(value any, pattern string) string {
			return format(cfg.Locale, value, pattern, true)
		},
		"humanize": func(value any) string {
			return humanize(cfg.Locale, value)
		},
		"l_format_date": func(data any, value any, pattern string) string {
			return format(localeOf(data), value, pattern, false)
		},
		"l_humanize": func(data any, value any) string {
			return humanize(localeOf(data), value)
		},
	}
}

func toTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, errors.New("nil time")
		}
		return *v, nil
	case int:
		return time.Unix(int64(v), 0), nil
	case int64:
		return time.Unix(v, 0), nil
	case string:
		seconds, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return time.Time{}, err
		}
		return time.Unix(seconds, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported type %T", value)
	}
}
