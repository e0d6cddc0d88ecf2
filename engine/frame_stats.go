package engine

import "time"

// FrameStats holds the timing of the most recent frame plus running counters
type FrameStats struct {
	// Target is the per-frame budget
	Target time.Duration

	// Computation is input + update + render time, excluding sleep
	Computation time.Duration

	// Sleep is the duration requested from the sleeper, never negative
	Sleep time.Duration

	// Elapsed is wall time for the whole frame including sleep
	Elapsed time.Duration

	Frames   uint64
	Overruns uint64 // frames whose computation exceeded Target
}

// FPS returns the instantaneous frame rate from Elapsed.
// ok is false when Elapsed is zero (first frame) and the rate is undefined
func (s FrameStats) FPS() (fps float64, ok bool) {
	if s.Elapsed <= 0 {
		return 0, false
	}
	return 1 / s.Elapsed.Seconds(), true
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
