// Package pacing computes the randomized waits inserted between page fetches.
package pacing

import (
	"context"
	"math/rand/v2"
	"time"
)

// Window is an inclusive-exclusive range of pacing delays.
type Window struct {
	Min time.Duration
	Max time.Duration
}

// WindowFromMillis builds a Window from millisecond bounds as they appear in
// configuration.
func WindowFromMillis(minMs, maxMs int) Window {
	return Window{
		Min: time.Duration(minMs) * time.Millisecond,
		Max: time.Duration(maxMs) * time.Millisecond,
	}
}

// Sample returns a delay drawn from the window.
func (w Window) Sample() time.Duration {
	return SleepDuration(w.Min, w.Max)
}

// SleepDuration returns a duration sampled uniformly from [min, max). It does
// not sleep.
//
// When min == max the result is min. Bounds are not validated: with min > max
// the result lies in (max, min].
func SleepDuration(min, max time.Duration) time.Duration {
	span := max - min
	switch {
	case span > 0:
		return min + time.Duration(rand.Int64N(int64(span)))
	case span < 0:
		return min - time.Duration(rand.Int64N(int64(-span)))
	default:
		return min
	}
}

// Delay blocks for d. It cannot be cancelled; see Wait.
func Delay(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}

// Wait blocks for d or until ctx is done, whichever comes first. It returns
// ctx.Err() when the wait was cut short.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
