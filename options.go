package fpsticker

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

/*
Option defines a functional configuration modifier for Ticker.

Options are applied by New before the window is allocated and before the
first instant is read from the clock:

    t, err := fpsticker.New(120,
        fpsticker.WithLogger(log),
        fpsticker.WithReporter(time.Second, publish),
    )

The window length is a required argument rather than an option, since it
is the one setting New can reject.
*/
type Option func(*Ticker)

/*
WithClock sets the time source used to measure frame durations.

The default clock.New() reads time.Now(), whose monotonic component keeps
deltas non-negative. Tests inject clock.NewMock() to make durations exact.

A nil clock is ignored.
*/
func WithClock(c clock.Clock) Option {
	return func(t *Ticker) {
		if c != nil {
			t.clock = c
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Ticker) {
		t.log = l
	}
}

/*
WithReporter delivers a Stats snapshot to fn every interval.

BEHAVIOR:

If interval > 0 and fn != nil:
    - A ticker is created from the configured clock.
    - A goroutine calls fn(t.Stats()) on every tick until Stop().

Otherwise:
    - No goroutine is started.

fn runs on the reporter goroutine and must not block for long; a slow fn
delays the next snapshot, it does not queue them.
*/
func WithReporter(interval time.Duration, fn func(Stats)) Option {
	return func(t *Ticker) {
		t.reporter.interval = interval
		t.reporter.fn = fn
	}
}
