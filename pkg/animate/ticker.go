// Package animate drives the banner: it asks the terminal for its width on
// every tick, advances the scroll window and redraws it in place.
package animate

import "time"

// Ticker delivers frame ticks. It exists so the loop can be driven by hand
// in tests.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

// NewTicker returns a Ticker that fires every d.
func NewTicker(d time.Duration) Ticker {
	return &timeTicker{t: time.NewTicker(d)}
}

func (t *timeTicker) C() <-chan time.Time { return t.t.C }
func (t *timeTicker) Stop()               { t.t.Stop() }
