package fpsticker

import (
	"math"
	"time"

	"github.com/gammazero/deque"
)

/*
window.go derives rates from the window of inter-tick durations.

================================================================================
NUMERIC CONVENTIONS
================================================================================

Rates are reciprocals of periods in seconds, so two inputs need a fixed
answer instead of whatever float division produces:

- Empty window:
  All three statistics are 0. Tick always pushes before it recomputes, so
  this is only reachable by calling the helpers directly.

- Zero period:
  A window whose mean (avg), longest (min) or shortest (max) duration is
  exactly zero reports +Inf for that statistic. The frame finished faster
  than the clock can resolve.

NaN is never returned, and Min <= Avg <= Max holds for every non-empty
window.
*/

func rate(period float64) float64 {
	if period == 0 {
		return math.Inf(1)
	}
	return 1 / period
}

// calcAvg returns the mean rate: the reciprocal of the mean period.
func calcAvg(w *deque.Deque[time.Duration]) float64 {
	n := w.Len()
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += w.At(i).Seconds()
	}
	return rate(sum / float64(n))
}

// calcMin returns the rate of the slowest frame, i.e. the longest duration.
func calcMin(w *deque.Deque[time.Duration]) float64 {
	n := w.Len()
	if n == 0 {
		return 0
	}
	longest := w.At(0)
	for i := 1; i < n; i++ {
		if d := w.At(i); d > longest {
			longest = d
		}
	}
	return rate(longest.Seconds())
}

// calcMax returns the rate of the fastest frame, i.e. the shortest duration.
func calcMax(w *deque.Deque[time.Duration]) float64 {
	n := w.Len()
	if n == 0 {
		return 0
	}
	shortest := w.At(0)
	for i := 1; i < n; i++ {
		if d := w.At(i); d < shortest {
			shortest = d
		}
	}
	return rate(shortest.Seconds())
}
