package elapsed

import (
	"strings"
	"testing"
	"time"
)

// 2024-03-05 is a Tuesday.
var sampleTime = time.Date(2024, time.March, 5, 14, 7, 9, 456*int(time.Millisecond), time.UTC)

func TestFormatTokens(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{name: "iso_date", pattern: "yyyy-MM-dd", want: "2024-03-05"},
		{name: "long_year", pattern: "yyyy", want: "2024"},
		{name: "longer_year", pattern: "yyyyyy", want: "2024"},
		{name: "short_year", pattern: "yy", want: "24"},
		{name: "single_year_is_full", pattern: "y", want: "2024"},
		{name: "three_year_letters", pattern: "yyy", want: "242024"},
		{name: "full_month", pattern: "MMMM", want: "March"},
		{name: "abbreviated_month", pattern: "MMM", want: "Mar"},
		{name: "padded_month", pattern: "MM", want: "03"},
		{name: "month", pattern: "M", want: "3"},
		{name: "full_weekday", pattern: "dddd", want: "Tuesday"},
		{name: "abbreviated_weekday", pattern: "ddd", want: "Tue"},
		{name: "padded_day", pattern: "dd", want: "05"},
		{name: "day", pattern: "d", want: "5"},
		{name: "clock_24", pattern: "HH:mm:ss", want: "14:07:09"},
		{name: "clock_24_unpadded", pattern: "H:m:s", want: "14:7:9"},
		{name: "clock_12_padded", pattern: "hh", want: "02"},
		{name: "clock_12", pattern: "h", want: "2"},
		{name: "milliseconds", pattern: "fff", want: "456"},
		{name: "centiseconds", pattern: "ff", want: "46"},
		{name: "deciseconds", pattern: "f", want: "5"},
		{name: "meridiem", pattern: "TT", want: "PM"},
		{name: "meridiem_short", pattern: "T", want: "P"},
		{name: "meridiem_lower", pattern: "tt", want: "pm"},
		{name: "meridiem_lower_short", pattern: "t", want: "p"},
		{name: "zone_utc_location", pattern: "K", want: "Z00:00"},
		{name: "escaped_backslash_then_token", pattern: `\\d`, want: `\5`},
		{name: "escaped_backslash_then_escape", pattern: `\\\d`, want: `\d`},
		{name: "absolute_date", pattern: AbsoluteDatePattern, want: "2:07PM, 5 March 2024"},
		{name: "time_of_day", pattern: TimeOfDayPattern, want: "2:07PM"},
		{name: "escaped_tokens", pattern: `\y\M\d`, want: "yMd"},
		{name: "escaped_in_date", pattern: `yyyy\y-MM\M-dd\d`, want: "2024y-03M-05d"},
		{name: "no_tokens", pattern: "--:: / ,.", want: "--:: / ,."},
		{name: "escaped_plain_letters", pattern: `a\bc`, want: "abc"},
		{name: "trailing_backslash", pattern: `x\`, want: `x\`},
		{name: "private_use_rune", pattern: "\uE000MMMM\uE001", want: "\uE000March\uE001"},
		{name: "unicode_literal", pattern: "é yyyy", want: "é 2024"},
		{name: "empty", pattern: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(sampleTime, tt.pattern, false); got != tt.want {
				t.Errorf("Format(%q) = %q; want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFormatSingleYearMatchesLongYear(t *testing.T) {
	for _, year := range []int{5, 99, 1999, 2024, 12345} {
		at := time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
		if long, short := Format(at, "yyyy", false), Format(at, "y", false); long != short {
			t.Fatalf("year %d: yyyy=%q y=%q", year, long, short)
		}
	}
}

func TestFormatTwoDigitYear(t *testing.T) {
	tests := map[int]string{
		2005: "05",
		1999: "99",
		2000: "00",
		7:    "07",
	}
	for year, want := range tests {
		at := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		if got := Format(at, "yy", false); got != want {
			t.Errorf("Format(%d, yy) = %q; want %q", year, got, want)
		}
	}
}

func TestFormatTwelveHourClock(t *testing.T) {
	tests := []struct {
		hour int
		want string
		tt   string
	}{
		{hour: 0, want: "12", tt: "AM"},
		{hour: 1, want: "1", tt: "AM"},
		{hour: 11, want: "11", tt: "AM"},
		{hour: 12, want: "12", tt: "PM"},
		{hour: 13, want: "1", tt: "PM"},
		{hour: 23, want: "11", tt: "PM"},
	}

	for _, tt := range tests {
		at := time.Date(2024, time.March, 5, tt.hour, 0, 0, 0, time.UTC)
		if got := Format(at, "h", false); got != tt.want {
			t.Errorf("hour %d: h = %q; want %q", tt.hour, got, tt.want)
		}
		if got := Format(at, "TT", false); got != tt.tt {
			t.Errorf("hour %d: TT = %q; want %q", tt.hour, got, tt.tt)
		}
	}
}

func TestFormatFractionCascade(t *testing.T) {
	tests := []struct {
		ms         int
		fff, ff, f string
	}{
		{ms: 456, fff: "456", ff: "46", f: "5"},
		{ms: 0, fff: "000", ff: "00", f: "0"},
		{ms: 5, fff: "005", ff: "01", f: "0"},
		{ms: 45, fff: "045", ff: "05", f: "1"},
		{ms: 949, fff: "949", ff: "95", f: "10"},
		{ms: 999, fff: "999", ff: "100", f: "10"},
	}

	for _, tt := range tests {
		at := time.Date(2024, time.March, 5, 0, 0, 0, tt.ms*int(time.Millisecond), time.UTC)
		got := []string{Format(at, "fff", false), Format(at, "ff", false), Format(at, "f", false)}
		want := []string{tt.fff, tt.ff, tt.f}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("ms %d: got %v; want %v", tt.ms, got, want)
				break
			}
		}
	}
}

func TestFormatZoneOffsets(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		utc    bool
		want   string
	}{
		{name: "east", offset: 5*3600 + 30*60, want: "+05:30"},
		{name: "west", offset: -3 * 3600, want: "-03:00"},
		{name: "west_with_minutes", offset: -(9*3600 + 30*60), want: "-09:30"},
		{name: "zero_offset", offset: 0, want: "Z00:00"},
		{name: "utc_mode", offset: 2 * 3600, utc: true, want: "Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.FixedZone("test", tt.offset))
			if got := Format(at, "K", tt.utc); got != tt.want {
				t.Fatalf("Format(K) = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestFormatRepeatedZoneLetters(t *testing.T) {
	at := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.FixedZone("test", 5*3600+30*60))

	tests := []struct {
		pattern string
		utc     bool
		want    string
	}{
		{pattern: "KK", utc: true, want: "ZK"},
		{pattern: "KKK", utc: true, want: "ZKZ"},
		{pattern: "KK", want: "+05:30K"},
		{pattern: `K\K`, utc: true, want: "ZK"},
	}

	for _, tt := range tests {
		if got := Format(at, tt.pattern, tt.utc); got != tt.want {
			t.Errorf("Format(%q, utc=%v) = %q; want %q", tt.pattern, tt.utc, got, tt.want)
		}
	}
}

func TestFormatUTCProjectsFields(t *testing.T) {
	at := time.Date(2024, time.March, 5, 1, 30, 0, 0, time.FixedZone("plus2", 2*3600))

	if got := Format(at, "yyyy-MM-dd HH:mm K", false); got != "2024-03-05 01:30 +02:00" {
		t.Fatalf("local = %q", got)
	}
	if got := Format(at, "yyyy-MM-dd HH:mm K dddd", true); got != "2024-03-04 23:30 Z Monday" {
		t.Fatalf("utc = %q", got)
	}
}

func TestFormatNameTablesRoundTrip(t *testing.T) {
	tables := EnglishTables()

	for m := time.January; m <= time.December; m++ {
		at := time.Date(2024, m, 10, 0, 0, 0, 0, time.UTC)
		if got := Format(at, "MMMM", false); got != tables.Month(m) {
			t.Errorf("MMMM for %s = %q", m, got)
		}
		if got := Format(at, "MMM", false); got != tables.MonthAbbreviated(m) {
			t.Errorf("MMM for %s = %q", m, got)
		}
	}

	// 2024-03-03 is a Sunday.
	for d := time.Sunday; d <= time.Saturday; d++ {
		at := time.Date(2024, time.March, 3+int(d), 0, 0, 0, 0, time.UTC)
		if got := Format(at, "dddd", false); got != tables.Weekday(d) {
			t.Errorf("dddd for %s = %q", d, got)
		}
		if got := Format(at, "ddd", false); got != tables.WeekdayAbbreviated(d) {
			t.Errorf("ddd for %s = %q", d, got)
		}
	}
}

func TestFormatterWithCustomTables(t *testing.T) {
	tables := EnglishTables()
	tables.Locale = "x-test"
	tables.Months[2] = "Marzo Largo"
	tables.WeekdaysAbbreviated[2] = "Ma"

	formatter := NewFormatter(WithFormatterTables(tables))

	// names longer than one token must not be re-read as tokens
	if got := formatter.Format(sampleTime, "MMMM ddd yyyy"); got != "Marzo Largo Ma 2024" {
		t.Fatalf("Format() = %q", got)
	}

	tables.Months[2] = "mutated"
	if got := formatter.Format(sampleTime, "MMMM"); got != "Marzo Largo" {
		t.Fatalf("formatter shares caller tables: %q", got)
	}

	if got := formatter.Tables().Locale; got != "x-test" {
		t.Fatalf("Tables().Locale = %q", got)
	}
}

func TestFormatterUTCMethod(t *testing.T) {
	at := time.Date(2024, time.March, 5, 23, 30, 0, 0, time.FixedZone("minus3", -3*3600))
	formatter := NewFormatter()

	if got := formatter.Format(at, "HH K"); got != "23 -03:00" {
		t.Fatalf("Format() = %q", got)
	}
	if got := formatter.FormatUTC(at, "HH K d"); got != "02 Z 6" {
		t.Fatalf("FormatUTC() = %q", got)
	}
}

func TestFormatNilFormatterUsesEnglish(t *testing.T) {
	var formatter *Formatter
	if got := formatter.FormatPattern(sampleTime, ParsePattern("MMMM"), false); got != "March" {
		t.Fatalf("FormatPattern() = %q", got)
	}
}

func TestFormatIsSafeForConcurrentUse(t *testing.T) {
	done := make(chan string, 8)
	for i := 0; i < cap(done); i++ {
		go func() {
			done <- Format(sampleTime, AbsoluteDatePattern, false)
		}()
	}
	for i := 0; i < cap(done); i++ {
		if got := <-done; !strings.HasSuffix(got, "March 2024") {
			t.Fatalf("Format() = %q", got)
		}
	}
}
