// Package player advances a step history on a timer.
//
// Play is the auto-play mode of a replay: it moves the cursor forward once
// per interval and hands every reached step to a callback, stopping when the
// history is exhausted or the context is cancelled. The caller shows the
// current step before calling Play; Play only reports the steps it moves to.
package player

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/dijkstep/steps"
)

// ErrBadInterval is returned for a non-positive interval.
var ErrBadInterval = errors.New("player: interval must be positive")

// Navigator is the forward half of a cursor over recorded steps.
// *steps.State satisfies it.
type Navigator interface {
	Next() (steps.Step, bool)
}

// Play calls nav.Next once per interval until it reports no further step,
// returning the number of steps played and a nil error. If ctx is done first,
// Play returns the count so far and ctx.Err(). onStep may be nil.
func Play(ctx context.Context, nav Navigator, interval time.Duration, onStep func(steps.Step)) (int, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrBadInterval, interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	played := 0
	for {
		select {
		case <-ctx.Done():
			return played, ctx.Err()
		case <-ticker.C:
			// A tick and a cancellation can be ready together.
			if err := ctx.Err(); err != nil {
				return played, err
			}
			st, ok := nav.Next()
			if !ok {
				return played, nil
			}
			played++
			if onStep != nil {
				onStep(st)
			}
		}
	}
}
