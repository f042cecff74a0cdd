package elapsed

import "time"

// fields is the calendar projection of an instant used by the formatter.
// It is computed once per Format call.
type fields struct {
	year        int
	month       time.Month
	day         int
	weekday     time.Weekday
	hour        int
	minute      int
	second      int
	millisecond int
	// offset from UTC in minutes, east positive
	offset int
}

func project(t time.Time, utc bool) fields {
	if utc {
		t = t.UTC()
	}

	_, offsetSeconds := t.Zone()

	return fields{
		year:        t.Year(),
		month:       t.Month(),
		day:         t.Day(),
		weekday:     t.Weekday(),
		hour:        t.Hour(),
		minute:      t.Minute(),
		second:      t.Second(),
		millisecond: t.Nanosecond() / int(time.Millisecond),
		offset:      offsetSeconds / 60,
	}
}

// hour12 keeps 12 as 12 and maps 0 to 12.
func (f fields) hour12() int {
	switch {
	case f.hour > 12:
		return f.hour - 12
	case f.hour == 0:
		return 12
	default:
		return f.hour
	}
}

func (f fields) meridiem() string {
	if f.hour < 12 {
		return "AM"
	}
	return "PM"
}

// centiseconds and deciseconds cascade from the millisecond value,
// rounding half up at each step.
func (f fields) centiseconds() int {
	return roundTenth(f.millisecond)
}

func (f fields) deciseconds() int {
	return roundTenth(f.centiseconds())
}

func roundTenth(v int) int {
	return (v + 5) / 10
}
