package elapsed

import (
	"strconv"
	"time"
)

// Bucket is the relative-time class of an elapsed duration.
type Bucket int

const (
	JustNow Bucket = iota
	FewMinutes
	NMinutes
	TodayAt
	YesterdayAt
	AbsoluteDate
)

func (b Bucket) String() string {
	switch b {
	case JustNow:
		return "just_now"
	case FewMinutes:
		return "few_minutes"
	case NMinutes:
		return "n_minutes"
	case TodayAt:
		return "today_at"
	case YesterdayAt:
		return "yesterday_at"
	case AbsoluteDate:
		return "absolute_date"
	default:
		return "unknown"
	}
}

const (
	// TimeOfDayPattern renders the time in the today and yesterday buckets.
	TimeOfDayPattern = "h:mmTT"
	// AbsoluteDatePattern renders anything two days old or more.
	AbsoluteDatePattern = "h:mmTT, d MMMM yyyy"
)

// Bucket upper bounds in seconds. The minutes bucket stops 30 seconds short
// of the hour.
const (
	justNowLimit     = 60
	fewMinutesLimit  = 120
	minutesLimit     = 3570
	todayLimit       = 86400
	yesterdayLimit   = 172800
	secondsPerMinute = 60
)

// Classify buckets an elapsed number of seconds. Negative values, meaning a
// timestamp in the future, are JustNow.
func Classify(elapsedSeconds int64) Bucket {
	switch {
	case elapsedSeconds < justNowLimit:
		return JustNow
	case elapsedSeconds < fewMinutesLimit:
		return FewMinutes
	case elapsedSeconds < minutesLimit:
		return NMinutes
	case elapsedSeconds < todayLimit:
		return TodayAt
	case elapsedSeconds < yesterdayLimit:
		return YesterdayAt
	default:
		return AbsoluteDate
	}
}

// ElapsedSeconds truncates both instants to whole seconds before
// subtracting.
func ElapsedSeconds(past, now time.Time) int64 {
	return now.Unix() - past.Unix()
}

// Description is the full result of humanizing one timestamp.
type Description struct {
	Bucket  Bucket
	Elapsed int64
	Text    string
}

// Humanizer turns past timestamps into relative phrases.
type Humanizer struct {
	formatter *Formatter
}

// HumanizerOption configures a Humanizer.
type HumanizerOption func(*Humanizer)

// WithHumanizerFormatter sets the formatter used by the date buckets.
func WithHumanizerFormatter(formatter *Formatter) HumanizerOption {
	return func(h *Humanizer) {
		if formatter != nil {
			h.formatter = formatter
		}
	}
}

// NewHumanizer builds a Humanizer, defaulting to the English formatter.
func NewHumanizer(opts ...HumanizerOption) *Humanizer {
	h := &Humanizer{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(h)
	}
	if h.formatter == nil {
		h.formatter = defaultFormatter
	}
	return h
}

var defaultHumanizer = NewHumanizer()

// Humanize describes past relative to now using the English tables.
func Humanize(past, now time.Time) string {
	return defaultHumanizer.Humanize(past, now)
}

// Humanize describes past relative to now.
func (h *Humanizer) Humanize(past, now time.Time) string {
	return h.Describe(past, now).Text
}

// Describe classifies past relative to now and renders the phrase.
func (h *Humanizer) Describe(past, now time.Time) Description {
	elapsed := ElapsedSeconds(past, now)
	bucket := Classify(elapsed)

	formatter := defaultFormatter
	if h != nil && h.formatter != nil {
		formatter = h.formatter
	}

	var text string
	switch bucket {
	case JustNow:
		text = "just now"
	case FewMinutes:
		text = "a few minutes ago"
	case NMinutes:
		text = strconv.FormatInt(elapsed/secondsPerMinute, 10) + " minutes ago"
	case TodayAt:
		text = "today, at " + formatter.Format(past, TimeOfDayPattern)
	case YesterdayAt:
		text = "yesterday, at " + formatter.Format(past, TimeOfDayPattern)
	default:
		text = formatter.Format(past, AbsoluteDatePattern)
	}

	return Description{Bucket: bucket, Elapsed: elapsed, Text: text}
}
