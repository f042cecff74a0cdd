package elapsed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// rawTablesFile is the on-disk shape of a locale tables file. Omitted lists
// are inherited from base, or from English when base is empty.
type rawTablesFile struct {
	Locale              string   `json:"locale" yaml:"locale"`
	Base                string   `json:"base" yaml:"base"`
	Months              []string `json:"months" yaml:"months"`
	MonthsAbbreviated   []string `json:"months_abbreviated" yaml:"months_abbreviated"`
	Weekdays            []string `json:"weekdays" yaml:"weekdays"`
	WeekdaysAbbreviated []string `json:"weekdays_abbreviated" yaml:"weekdays_abbreviated"`
}

// LoadTablesFile reads locale tables from a .json, .yaml or .yml file.
func LoadTablesFile(path string) (*LocaleTables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("elapsed: read %s: %w", path, err)
	}

	tables, err := DecodeTables(path, data)
	if err != nil {
		return nil, fmt.Errorf("elapsed: decode %s: %w", path, err)
	}
	return tables, nil
}

// DecodeTables decodes tables using the file extension of path to pick
// the format.
func DecodeTables(path string, data []byte) (*LocaleTables, error) {
	var raw rawTablesFile

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	return raw.build()
}

func (raw rawTablesFile) build() (*LocaleTables, error) {
	tables := EnglishTables()
	if raw.Base != "" {
		base, err := LookupTables(raw.Base)
		if err != nil {
			return nil, err
		}
		tables = base
	}

	if locale := normalizeLocale(raw.Locale); locale != "" {
		tables.Locale = locale
	}

	if err := fillNames("months", tables.Months[:], raw.Months); err != nil {
		return nil, err
	}
	if err := fillNames("months_abbreviated", tables.MonthsAbbreviated[:], raw.MonthsAbbreviated); err != nil {
		return nil, err
	}
	if err := fillNames("weekdays", tables.Weekdays[:], raw.Weekdays); err != nil {
		return nil, err
	}
	if err := fillNames("weekdays_abbreviated", tables.WeekdaysAbbreviated[:], raw.WeekdaysAbbreviated); err != nil {
		return nil, err
	}

	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return tables, nil
}

func fillNames(field string, dst, src []string) error {
	if len(src) == 0 {
		return nil
	}
	if len(src) != len(dst) {
		return fmt.Errorf("%w: %s needs %d names, got %d", ErrInvalidTables, field, len(dst), len(src))
	}
	copy(dst, src)
	return nil
}
