package elapsed

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.Locale != "en" {
		t.Fatalf("Locale = %q", cfg.Locale)
	}
	if cfg.Tables == nil || cfg.Tables.Month(time.March) != "March" {
		t.Fatal("expected English tables")
	}
	if cfg.Interval != DefaultInterval {
		t.Fatalf("Interval = %s", cfg.Interval)
	}
	if cfg.ClassHook != DefaultClassHook || cfg.DataHook != DefaultDataHook {
		t.Fatalf("hooks = %q, %q", cfg.ClassHook, cfg.DataHook)
	}
	if cfg.Clock == nil {
		t.Fatal("expected default clock")
	}
	if cfg.Debug {
		t.Fatal("debug should be off by default")
	}
}

func TestNewConfigWithLocale(t *testing.T) {
	cfg, err := NewConfig(WithLocale("es_MX"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.Locale != "es-MX" {
		t.Fatalf("Locale = %q", cfg.Locale)
	}
	if got := cfg.BuildFormatter().Format(sampleTime, "MMMM"); got != "marzo" {
		t.Fatalf("Format(MMMM) = %q", got)
	}
}

func TestNewConfigUnknownLocale(t *testing.T) {
	_, err := NewConfig(WithLocale("zz"))
	if !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("NewConfig error = %v; want ErrUnknownLocale", err)
	}
}

func TestNewConfigTablesPrecedence(t *testing.T) {
	custom := EnglishTables()
	custom.Locale = "en-x-custom"
	custom.Months[2] = "Marchish"

	cfg, err := NewConfig(
		WithLocale("zz"),
		WithTablesFile(filepath.Join("testdata", "tables", "pirate.json")),
		WithTables(custom),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if got := cfg.Tables.Month(time.March); got != "Marchish" {
		t.Fatalf("Month(March) = %q", got)
	}
	if cfg.Locale != "zz" {
		t.Fatalf("Locale = %q", cfg.Locale)
	}

	cfg, err = NewConfig(WithTablesFile(filepath.Join("testdata", "tables", "pirate.json")))
	if err != nil {
		t.Fatalf("NewConfig with file: %v", err)
	}
	if cfg.Locale != "en-x-pirate" {
		t.Fatalf("Locale = %q", cfg.Locale)
	}
	if got := cfg.BuildHumanizer().Humanize(sampleTime.Add(-72*time.Hour), sampleTime); got != "2:07PM, 2 Windmoon 2024" {
		t.Fatalf("Humanize() = %q", got)
	}
}

func TestNewConfigRejectsInvalidOptions(t *testing.T) {
	if _, err := NewConfig(WithInterval(0)); err == nil || !strings.Contains(err.Error(), "interval must be positive") {
		t.Fatalf("WithInterval(0) error = %v", err)
	}

	broken := EnglishTables()
	broken.Months[0] = ""
	if _, err := NewConfig(WithTables(broken)); !errors.Is(err, ErrInvalidTables) {
		t.Fatalf("WithTables error = %v", err)
	}

	if _, err := NewConfig(WithTablesFile(filepath.Join(t.TempDir(), "none.json"))); err == nil {
		t.Fatal("expected missing tables file error")
	}
}

func TestConfigBuildRefresher(t *testing.T) {
	var buf bytes.Buffer
	now := humanizeNow

	cfg, err := NewConfig(
		WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)),
		WithDebug(true),
		WithClassHook("stamp"),
		WithDataHook("data-ts"),
		WithInterval(5*time.Second),
		WithClock(func() time.Time { return now }),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	doc := newFakeDocument("stamp", "data-ts", "1709647600")
	refresher, err := cfg.BuildRefresher(doc)
	if err != nil {
		t.Fatalf("BuildRefresher: %v", err)
	}

	if refresher.interval != 5*time.Second {
		t.Fatalf("interval = %s", refresher.interval)
	}

	updated, err := refresher.Scan()
	if err != nil || updated != 1 {
		t.Fatalf("Scan() = %d, %v", updated, err)
	}
	if got := doc.elements[0].text; got != "just now" {
		t.Fatalf("text = %q", got)
	}
	if !strings.Contains(buf.String(), "locked refresh") {
		t.Fatalf("expected debug logs, got %q", buf.String())
	}
}

func TestConfigBuildRefresherQuietWithoutDebug(t *testing.T) {
	var buf bytes.Buffer

	cfg, err := NewConfig(WithLogger(zerolog.New(&buf)))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	refresher, err := cfg.BuildRefresher(newFakeDocument(DefaultClassHook, DefaultDataHook, "1"))
	if err != nil {
		t.Fatalf("BuildRefresher: %v", err)
	}
	if _, err := refresher.Scan(); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no debug output, got %q", buf.String())
	}
}

func TestConfigBuildRefresherNoDocument(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if _, err := cfg.BuildRefresher(nil); !errors.Is(err, ErrNoDocument) {
		t.Fatalf("BuildRefresher(nil) error = %v", err)
	}
}

func TestNewConfigWithFallback(t *testing.T) {
	cfg, err := NewConfig(
		WithLocale("zz"),
		WithFallback("zz", "qq", "it"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.Locale != "zz" {
		t.Fatalf("Locale = %q", cfg.Locale)
	}
	if cfg.Tables.Locale != "it" {
		t.Fatalf("Tables.Locale = %q", cfg.Tables.Locale)
	}
	if got := cfg.BuildFormatter().Format(sampleTime, "MMMM"); got != "marzo" {
		t.Fatalf("Format(MMMM) = %q", got)
	}

	_, err = NewConfig(WithLocale("zz"), WithFallback("zz", "qq"))
	if !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("exhausted fallback error = %v", err)
	}
}
