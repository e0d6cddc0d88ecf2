package engine

import (
	"runtime"
	"time"

	"github.com/lixenwraith/frogger/constants"
)

// Sleeper blocks the frame loop for the remainder of a frame budget
type Sleeper interface {
	Sleep(d time.Duration)
}

// PreciseSleeper sleeps with time.Sleep until SpinMargin before the deadline,
// then yields until the deadline passes. Scheduler wakeups overshoot by
// ~1ms on most systems, which is a large share of a 16.7ms frame
type PreciseSleeper struct {
	SpinMargin time.Duration
}

// NewPreciseSleeper creates a sleeper with the default spin margin
func NewPreciseSleeper() *PreciseSleeper {
	return &PreciseSleeper{SpinMargin: constants.SleepSpinMargin}
}

// Sleep returns immediately for d <= 0
func (s *PreciseSleeper) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}

	deadline := time.Now().Add(d)
	if coarse := d - s.SpinMargin; coarse > 0 {
		time.Sleep(coarse)
	}
	for time.Now().Before(deadline) {
		runtime.Gosched()
	}
}
