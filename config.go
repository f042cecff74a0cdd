package elapsed

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Config captures formatter, humanizer and refresher setup
type Config struct {
	Locale    string
	Tables    *LocaleTables
	Logger    zerolog.Logger
	Debug     bool
	Interval  time.Duration
	ClassHook string
	DataHook  string
	Clock     func() time.Time
	Resolver  FallbackResolver

	tablesPath string
	loggerSet  bool
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options. Explicit tables win over a
// tables file, which wins over the locale lookup.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if !cfg.loggerSet {
		cfg.Logger = zerolog.Nop()
	}

	if err := cfg.resolveTables(); err != nil {
		return nil, err
	}

	if cfg.Locale == "" {
		cfg.Locale = cfg.Tables.Locale
	}

	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}

	if cfg.ClassHook == "" {
		cfg.ClassHook = DefaultClassHook
	}

	if cfg.DataHook == "" {
		cfg.DataHook = DefaultDataHook
	}

	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return cfg, nil
}

// WithLocale selects built-in name tables for locale
func WithLocale(locale string) Option {
	return func(c *Config) error {
		c.Locale = normalizeLocale(locale)
		return nil
	}
}

// WithTables injects name tables directly
func WithTables(tables *LocaleTables) Option {
	return func(c *Config) error {
		if tables == nil {
			return nil
		}
		if err := tables.Validate(); err != nil {
			return err
		}
		c.Tables = tables.Clone()
		return nil
	}
}

// WithTablesFile loads name tables from a JSON or YAML file
func WithTablesFile(path string) Option {
	return func(c *Config) error {
		c.tablesPath = path
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback lists locales tried, in order, when locale has no built-in
// tables.
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

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		c.loggerSet = true
		return nil
	}
}

// WithDebug lets refresher debug messages through the configured logger
func WithDebug(enabled bool) Option {
	return func(c *Config) error {
		c.Debug = enabled
		return nil
	}
}

func WithInterval(interval time.Duration) Option {
	return func(c *Config) error {
		if interval <= 0 {
			return fmt.Errorf("elapsed: interval must be positive, got %s", interval)
		}
		c.Interval = interval
		return nil
	}
}

func WithClassHook(class string) Option {
	return func(c *Config) error {
		c.ClassHook = class
		return nil
	}
}

func WithDataHook(attr string) Option {
	return func(c *Config) error {
		c.DataHook = attr
		return nil
	}
}

func WithClock(clock func() time.Time) Option {
	return func(c *Config) error {
		c.Clock = clock
		return nil
	}
}

func (cfg *Config) BuildFormatter() *Formatter {
	if cfg == nil {
		return NewFormatter()
	}
	return NewFormatter(WithFormatterTables(cfg.Tables))
}

func (cfg *Config) BuildHumanizer() *Humanizer {
	return NewHumanizer(WithHumanizerFormatter(cfg.BuildFormatter()))
}

// BuildRefresher wires a Refresher for doc. Extra options are applied last.
func (cfg *Config) BuildRefresher(doc Document, opts ...RefresherOption) (*Refresher, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}
	if cfg == nil {
		return nil, errors.New("elapsed: nil config")
	}

	logger := cfg.Logger
	if !cfg.Debug {
		logger = logger.Level(zerolog.InfoLevel)
	}

	options := []RefresherOption{
		WithRefresherHumanizer(cfg.BuildHumanizer()),
		WithRefresherLogger(logger),
		WithRefresherHooks(cfg.ClassHook, cfg.DataHook),
		WithRefresherInterval(cfg.Interval),
		WithRefresherClock(cfg.Clock),
	}
	options = append(options, opts...)

	return NewRefresher(doc, options...), nil
}

func (cfg *Config) resolveTables() error {
	if cfg.Tables != nil {
		return nil
	}

	if cfg.tablesPath != "" {
		tables, err := LoadTablesFile(cfg.tablesPath)
		if err != nil {
			return err
		}
		cfg.Tables = tables
		return nil
	}

	tables, err := LookupTables(cfg.Locale)
	if err == nil {
		cfg.Tables = tables
		return nil
	}
	if !errors.Is(err, ErrUnknownLocale) || cfg.Resolver == nil {
		return err
	}

	for _, fallback := range cfg.Resolver.Resolve(cfg.Locale) {
		tables, lookupErr := LookupTables(fallback)
		if lookupErr != nil {
			continue
		}
		cfg.Logger.Debug().
			Str("locale", cfg.Locale).
			Str("fallback", tables.Locale).
			Msg("using fallback locale tables")
		cfg.Tables = tables
		return nil
	}
	return err
}
