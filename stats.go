package fpsticker

/*
Stats is a point-in-time snapshot of a Ticker.

================================================================================
FIELDS
================================================================================

- Avg, Min, Max -> Rates in frames per second, as of the last Tick
- Len           -> Durations currently held in the window
- WindowLen     -> Fixed window capacity
- Ticks         -> Total calls to Tick
- Evictions     -> Durations dropped from the front of the window

Once the window is full every Tick evicts exactly one duration, so

    Evictions == Ticks - Len

================================================================================
CONCURRENCY MODEL
================================================================================

Stats is a plain value. Ticker.Stats() copies it out under the read lock,
so all fields describe the same instant.
*/
type Stats struct {
	Avg       float64
	Min       float64
	Max       float64
	Len       int
	WindowLen int
	Ticks     uint64
	Evictions uint64
}
