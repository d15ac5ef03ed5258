package fpsticker

import (
	"sync"
	"time"
)

type reporter struct {
	interval time.Duration
	fn       func(Stats)
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

/*
startReporter launches the background goroutine configured by
WithReporter.

================================================================================
EXECUTION MODEL
================================================================================

- If interval <= 0 or fn == nil:
    → Nothing is started and Stop() is a no-op.

- Otherwise:
    → A ticker is created from the Ticker's clock before the goroutine
      starts, so a mock clock advanced right after New already fires it.
    → On each tick fn(Stats()) is invoked.

The reporter only reads the Ticker, through Stats(), and never calls Tick.
*/
func (t *Ticker) startReporter() {
	r := &t.reporter
	if r.interval <= 0 || r.fn == nil {
		return
	}

	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	ticker := t.clock.Ticker(r.interval)

	t.log.Debug().Dur("interval", r.interval).Msg("fps reporter started")

	go func() {
		defer close(r.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.fn(t.Stats())
			case <-r.stop:
				return
			}
		}
	}()
}

/*
Stop terminates the reporter goroutine and waits for it to exit.

Unlike closing a bare channel, Stop may be called any number of times, and
is a no-op on a Ticker without a reporter. After Stop returns fn is not
invoked again. The Ticker itself remains fully usable.

Stop must not be called from fn, since it waits for fn to return.
*/
func (t *Ticker) Stop() {
	r := &t.reporter
	if r.stop == nil {
		return
	}
	r.once.Do(func() {
		close(r.stop)
		<-r.done
		t.log.Debug().Msg("fps reporter stopped")
	})
}
