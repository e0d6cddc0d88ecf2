package constants

import "time"

// Game Loop Timing
const (
	// TargetFPS is the frame rate the loop budgets for
	TargetFPS = 60

	// TargetFrameDuration is the fixed per-frame budget (1/60 s)
	TargetFrameDuration = time.Second / TargetFPS

	// MaxTargetFPS bounds configured frame rates; above this the budget is below scheduler resolution
	MaxTargetFPS = 1000

	// SleepSpinMargin is the tail of a frame sleep spent yielding instead of in time.Sleep
	SleepSpinMargin = 2 * time.Millisecond
)
