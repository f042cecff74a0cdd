package elapsed

import (
	"context"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultClassHook = "elapsedJS"
	DefaultDataHook  = "data-elapseJS"
	DefaultInterval  = time.Second
)

// Document is the markup a Refresher keeps up to date.
type Document interface {
	// Elements returns the elements carrying the given class.
	Elements(class string) []Element
}

// Element is a single timestamp holder inside a Document.
type Element interface {
	Attr(name string) (string, bool)
	SetText(text string)
}

// Refresher rewrites every tagged element of a Document with the humanized
// age of the unix timestamp stored in its data attribute.
type Refresher struct {
	doc       Document
	humanizer *Humanizer
	logger    zerolog.Logger
	classHook string
	dataHook  string
	interval  time.Duration
	clock     func() time.Time
	afterScan func(updated int)

	running atomic.Bool
}

// RefresherOption configures a Refresher.
type RefresherOption func(*Refresher)

func WithRefresherHumanizer(h *Humanizer) RefresherOption {
	return func(r *Refresher) {
		if h != nil {
			r.humanizer = h
		}
	}
}

func WithRefresherLogger(logger zerolog.Logger) RefresherOption {
	return func(r *Refresher) {
		r.logger = logger
	}
}

// WithRefresherHooks sets the class that marks elements and the attribute
// holding their timestamp. Empty values keep the defaults.
func WithRefresherHooks(class, data string) RefresherOption {
	return func(r *Refresher) {
		if class != "" {
			r.classHook = class
		}
		if data != "" {
			r.dataHook = data
		}
	}
}

func WithRefresherInterval(interval time.Duration) RefresherOption {
	return func(r *Refresher) {
		if interval > 0 {
			r.interval = interval
		}
	}
}

func WithRefresherClock(clock func() time.Time) RefresherOption {
	return func(r *Refresher) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithRefresherAfterScan registers a callback run after every completed scan
// started by Run.
func WithRefresherAfterScan(fn func(updated int)) RefresherOption {
	return func(r *Refresher) {
		r.afterScan = fn
	}
}

// NewRefresher builds a Refresher for doc.
func NewRefresher(doc Document, opts ...RefresherOption) *Refresher {
	r := &Refresher{
		doc:       doc,
		humanizer: defaultHumanizer,
		logger:    zerolog.Nop(),
		classHook: DefaultClassHook,
		dataHook:  DefaultDataHook,
		interval:  DefaultInterval,
		clock:     time.Now,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	r.logger = r.logger.With().Str("component", "elapsed").Logger()
	return r
}

// Scan updates every element once and reports how many were rewritten.
// It returns ErrLocked without touching the document if another scan is in
// progress. Elements with a missing or malformed timestamp are skipped.
func (r *Refresher) Scan() (int, error) {
	if r.doc == nil {
		return 0, ErrNoDocument
	}

	if !r.running.CompareAndSwap(false, true) {
		r.logger.Debug().Msg("refresh is locked")
		return 0, ErrLocked
	}
	r.logger.Debug().Msg("locked refresh")
	defer func() {
		r.running.Store(false)
		r.logger.Debug().Msg("unlocked refresh")
	}()

	now := r.clock()
	updated := 0

	for _, el := range r.doc.Elements(r.classHook) {
		if el == nil {
			continue
		}

		raw, ok := el.Attr(r.dataHook)
		if !ok {
			r.logger.Debug().Str("attr", r.dataHook).Msg("missing timestamp attribute")
			continue
		}

		seconds, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			r.logger.Debug().Err(err).Str("value", raw).Msg("invalid timestamp")
			continue
		}

		past := time.Unix(seconds, 0).In(now.Location())
		el.SetText(r.humanizer.Humanize(past, now))
		updated++
	}

	return updated, nil
}

// Run scans immediately and then once per interval until ctx is done.
func (r *Refresher) Run(ctx context.Context) error {
	r.logger.Debug().Dur("interval", r.interval).Msg("refresher started")

	r.tick()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug().Msg("refresher stopped")
			return ctx.Err()
		case <-ticker.C:
			r.logger.Debug().Msg("routine called")
			r.tick()
		}
	}
}

func (r *Refresher) tick() {
	updated, err := r.Scan()
	if err != nil {
		r.logger.Debug().Err(err).Msg("scan skipped")
		return
	}
	if r.afterScan != nil {
		r.afterScan(updated)
	}
}
