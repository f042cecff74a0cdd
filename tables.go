package elapsed

import (
	"fmt"
	"strings"
	"time"
)

// LocaleTables holds the display names used by the month and weekday name
// tokens. Weekdays are indexed from Sunday.
type LocaleTables struct {
	Locale              string
	Months              [12]string
	MonthsAbbreviated   [12]string
	Weekdays            [7]string
	WeekdaysAbbreviated [7]string
}

var englishTables = LocaleTables{
	Locale: "en",
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthsAbbreviated: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Weekdays: [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},
	WeekdaysAbbreviated: [7]string{
		"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
	},
}

// EnglishTables returns a fresh copy of the default English tables.
func EnglishTables() *LocaleTables {
	tables := englishTables
	return &tables
}

// Month returns the full month name, or "" when m is out of range.
func (lt *LocaleTables) Month(m time.Month) string {
	if lt == nil || m < time.January || m > time.December {
		return ""
	}
	return lt.Months[m-1]
}

// MonthAbbreviated returns the abbreviated month name, or "" when m is out of range.
func (lt *LocaleTables) MonthAbbreviated(m time.Month) string {
	if lt == nil || m < time.January || m > time.December {
		return ""
	}
	return lt.MonthsAbbreviated[m-1]
}

// Weekday returns the full weekday name, or "" when d is out of range.
func (lt *LocaleTables) Weekday(d time.Weekday) string {
	if lt == nil || d < time.Sunday || d > time.Saturday {
		return ""
	}
	return lt.Weekdays[d]
}

// WeekdayAbbreviated returns the abbreviated weekday name, or "" when d is out of range.
func (lt *LocaleTables) WeekdayAbbreviated(d time.Weekday) string {
	if lt == nil || d < time.Sunday || d > time.Saturday {
		return ""
	}
	return lt.WeekdaysAbbreviated[d]
}

// Clone returns an independent copy.
func (lt *LocaleTables) Clone() *LocaleTables {
	if lt == nil {
		return nil
	}
	out := *lt
	return &out
}

// Validate checks that every name is present.
func (lt *LocaleTables) Validate() error {
	if lt == nil {
		return fmt.Errorf("%w: nil tables", ErrInvalidTables)
	}

	check := func(field string, names []string) error {
		for i, name := range names {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("%w: %s[%d] is empty for locale %q", ErrInvalidTables, field, i, lt.Locale)
			}
		}
		return nil
	}

	if err := check("months", lt.Months[:]); err != nil {
		return err
	}
	if err := check("months_abbreviated", lt.MonthsAbbreviated[:]); err != nil {
		return err
	}
	if err := check("weekdays", lt.Weekdays[:]); err != nil {
		return err
	}
	return check("weekdays_abbreviated", lt.WeekdaysAbbreviated[:])
}
