// Package fpsticker measures the average, minimum and maximum rate of a
// recurring event (typically rendered frames) over a sliding window of the
// most recent inter-event durations.
package fpsticker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gammazero/deque"
	"github.com/rs/zerolog"
)

// DefaultWindowLen is the window length used by Default.
const DefaultWindowLen = 60

// ErrInvalidWindowLen is returned by New when the window length is not
// positive.
var ErrInvalidWindowLen = errors.New("window length must be positive")

/*
Ticker tracks frames-per-second over a fixed-length window of frames.

================================================================================
ARCHITECTURAL OVERVIEW
================================================================================

A Ticker owns three pieces of state:

1. Window (*deque.Deque[time.Duration])
   - Bounded FIFO of the most recent inter-tick durations.
   - Oldest duration at the front, newest at the back.
   - Never holds more than windowLen entries.

2. Last tick instant (time.Time)
   - Construction time until the first Tick.
   - Read from the injected clock, so deltas are monotonic with the
     default clock.

3. Cached statistics (avg, min, max)
   - Recomputed eagerly by every Tick.
   - Reads are O(1) and never touch the window.

================================================================================
CONCURRENCY MODEL
================================================================================

- sync.RWMutex protects all shared state.
- Tick uses Lock().
- Avg(), Min(), Max(), Len() and Stats() use RLock().

One producer calling Tick and any number of readers may share a single
*Ticker across goroutines.

================================================================================
STRUCTURE FIELDS
================================================================================

windowLen -> Fixed capacity, set once by New
window    -> Inter-tick durations, oldest first
last      -> Instant of the most recent Tick
avg       -> Cached mean rate
min       -> Cached rate of the slowest frame in the window
max       -> Cached rate of the fastest frame in the window
ticks     -> Total calls to Tick
evictions -> Durations dropped from the front of the window
stalled   -> Set once a zero delta has been logged
clock     -> Time source
log       -> Structured logger
reporter  -> Optional periodic Stats delivery
*/
type Ticker struct {
	mu        sync.RWMutex
	windowLen int
	window    *deque.Deque[time.Duration]
	last      time.Time
	avg       float64
	min       float64
	max       float64
	ticks     uint64
	evictions uint64
	stalled   bool

	clock    clock.Clock
	log      zerolog.Logger
	reporter reporter
}

/*
New creates a Ticker with the given window length as a number of frames.

The larger the window, the "smoother" the reported rates.

CONFIGURATION MODEL:
Uses the functional options pattern (see options.go) for the clock, the
logger and the optional reporter.

ERRORS:
A windowLen <= 0 is rejected with ErrInvalidWindowLen. A window that can
never hold a sample has no meaningful statistics.

INITIALIZATION STEPS:
1. Validate windowLen.
2. Apply user-provided options.
3. Allocate the window with room for windowLen durations.
4. Record the current instant as the last tick.
5. Start the reporter (if configured).
*/
func New(windowLen int, opts ...Option) (*Ticker, error) {
	if windowLen <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindowLen, windowLen)
	}

	t := &Ticker{
		windowLen: windowLen,
		clock:     clock.New(),
		log:       zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(t)
	}

	t.window = deque.New[time.Duration](windowLen)
	t.last = t.clock.Now()

	t.log.Debug().Int("window_len", windowLen).Msg("fps ticker created")

	t.startReporter()

	return t, nil
}

// Default creates a Ticker with a window of DefaultWindowLen frames.
func Default(opts ...Option) *Ticker {
	t, err := New(DefaultWindowLen, opts...)
	if err != nil {
		// unreachable: DefaultWindowLen is positive
		panic(err)
	}
	return t
}

/*
Tick records that a frame has just completed.

Call it once per frame at the point at which the rate should be measured.

EXECUTION FLOW:

1. Read the current instant from the clock.
2. delta = now - last; last = now.
3. Evict the oldest durations until there is room for one more.
4. Push delta to the back of the window.
5. Recompute avg, min and max from the whole window.

TIME COMPLEXITY:
O(windowLen), dominated by the recompute scan.

A delta of exactly zero is kept as a sample; it reports as an infinite
rate (see window.go).
*/
func (t *Ticker) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	delta := now.Sub(t.last)
	if delta < 0 {
		// only possible with a non-monotonic clock
		delta = 0
	}
	t.last = now
	t.ticks++

	if delta == 0 && !t.stalled {
		t.stalled = true
		t.log.Warn().Uint64("tick", t.ticks).Msg("clock did not advance between ticks")
	}

	for t.window.Len()+1 > t.windowLen {
		t.evictOldest()
	}
	t.window.PushBack(delta)

	t.avg = calcAvg(t.window)
	t.min = calcMin(t.window)
	t.max = calcMax(t.window)
}

// Avg returns the average frames-per-second at the moment of the last call
// to Tick, or 0 if Tick has not been called.
func (t *Ticker) Avg() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.avg
}

// Min returns the minimum frames-per-second reached within the window at the
// moment Tick was last called, or 0 if Tick has not been called.
func (t *Ticker) Min() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.min
}

// Max returns the maximum frames-per-second reached within the window at the
// moment Tick was last called, or 0 if Tick has not been called.
func (t *Ticker) Max() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.max
}

// Len returns the number of durations currently held in the window.
func (t *Ticker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.window.Len()
}

// WindowLen returns the fixed capacity of the window.
func (t *Ticker) WindowLen() int {
	return t.windowLen
}

// Stats returns a snapshot of the cached rates, the window length and the
// tick and eviction counters, all taken at the same instant.
func (t *Ticker) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Stats{
		Avg:       t.avg,
		Min:       t.min,
		Max:       t.max,
		Len:       t.window.Len(),
		WindowLen: t.windowLen,
		Ticks:     t.ticks,
		Evictions: t.evictions,
	}
}
