package elapsed

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Formatter renders patterns against a set of locale tables. It holds no
// mutable state and is safe for concurrent use.
type Formatter struct {
	tables *LocaleTables
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithFormatterTables replaces the English name tables.
func WithFormatterTables(tables *LocaleTables) FormatterOption {
	return func(f *Formatter) {
		if tables == nil {
			return
		}
		f.tables = tables.Clone()
	}
}

// NewFormatter builds a Formatter, defaulting to English tables.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.tables == nil {
		f.tables = EnglishTables()
	}
	return f
}

var defaultFormatter = NewFormatter()

// Format renders pattern for t with the English tables. When utc is true the
// fields are taken from t in UTC, otherwise from t in its own location.
func Format(t time.Time, pattern string, utc bool) string {
	return defaultFormatter.FormatPattern(t, ParsePattern(pattern), utc)
}

// Format renders pattern for t in t's own location.
func (f *Formatter) Format(t time.Time, pattern string) string {
	return f.FormatPattern(t, ParsePattern(pattern), false)
}

// FormatUTC renders pattern for t converted to UTC.
func (f *Formatter) FormatUTC(t time.Time, pattern string) string {
	return f.FormatPattern(t, ParsePattern(pattern), true)
}

// Tables returns a copy of the tables used for name tokens.
func (f *Formatter) Tables() *LocaleTables {
	if f == nil {
		return EnglishTables()
	}
	return f.tables.Clone()
}

// FormatPattern renders an already parsed pattern. Numeric tokens are
// rendered first and name tokens are resolved in a second pass over the
// same segment list.
func (f *Formatter) FormatPattern(t time.Time, pattern Pattern, utc bool) string {
	if len(pattern.segments) == 0 {
		return ""
	}

	tables := englishTablesOr(f)
	at := project(t, utc)

	parts := make([]string, len(pattern.segments))
	var names []int

	for i, seg := range pattern.segments {
		switch {
		case !seg.IsToken():
			parts[i] = seg.Literal
		case seg.isName():
			names = append(names, i)
		default:
			parts[i] = renderToken(at, seg, utc)
		}
	}

	for _, i := range names {
		parts[i] = renderName(tables, at, pattern.segments[i])
	}

	return strings.Join(parts, "")
}

func englishTablesOr(f *Formatter) *LocaleTables {
	if f == nil || f.tables == nil {
		return &englishTables
	}
	return f.tables
}

func renderToken(at fields, seg Segment, utc bool) string {
	switch seg.Kind {
	case TokenYear:
		if seg.Width == 2 {
			return pad2(absInt(at.year) % 100)
		}
		return strconv.Itoa(at.year)
	case TokenMonth:
		return padWidth(int(at.month), seg.Width)
	case TokenDay:
		return padWidth(at.day, seg.Width)
	case TokenHour24:
		return padWidth(at.hour, seg.Width)
	case TokenHour12:
		return padWidth(at.hour12(), seg.Width)
	case TokenMinute:
		return padWidth(at.minute, seg.Width)
	case TokenSecond:
		return padWidth(at.second, seg.Width)
	case TokenFraction:
		switch {
		case seg.Width >= 3:
			return fmt.Sprintf("%03d", at.millisecond)
		case seg.Width == 2:
			return pad2(at.centiseconds())
		default:
			return strconv.Itoa(at.deciseconds())
		}
	case TokenMeridiem:
		return meridiemWidth(at.meridiem(), seg.Width)
	case TokenMeridiemLower:
		return meridiemWidth(strings.ToLower(at.meridiem()), seg.Width)
	case TokenZone:
		return zoneDesignator(at, utc)
	default:
		return strings.Repeat(string(rune(seg.Kind)), seg.Width)
	}
}

func renderName(tables *LocaleTables, at fields, seg Segment) string {
	full := seg.Width >= 4
	switch seg.Kind {
	case TokenMonth:
		if full {
			return tables.Month(at.month)
		}
		return tables.MonthAbbreviated(at.month)
	case TokenDay:
		if full {
			return tables.Weekday(at.weekday)
		}
		return tables.WeekdayAbbreviated(at.weekday)
	default:
		return ""
	}
}

// zoneDesignator renders "Z" in UTC mode. Otherwise the offset follows a
// sign, or "Z" when it is zero: +05:30, -03:00, Z00:00.
func zoneDesignator(at fields, utc bool) string {
	if utc {
		return "Z"
	}

	offset := at.offset
	var sign string
	switch {
	case offset > 0:
		sign = "+"
	case offset < 0:
		sign = "-"
		offset = -offset
	default:
		sign = "Z"
	}
	return sign + pad2(offset/60) + ":" + pad2(offset%60)
}

func meridiemWidth(value string, width int) string {
	if width >= 2 {
		return value
	}
	return value[:1]
}

func padWidth(v, width int) string {
	if width >= 2 {
		return pad2(v)
	}
	return strconv.Itoa(v)
}

func pad2(v int) string {
	return fmt.Sprintf("%02d", v)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
