package constants

import "time"

// Audio cue parameters
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// StepToneFreq is the frequency of the movement tick
	StepToneFreq = 660.0

	// StepToneDuration is the length of the movement tick
	StepToneDuration = 25 * time.Millisecond

	// ToggleToneLowFreq and ToggleToneHighFreq form the two-note debug overlay chime
	ToggleToneLowFreq  = 523.25
	ToggleToneHighFreq = 783.99

	// ToggleToneDuration is the length of each chime note
	ToggleToneDuration = 60 * time.Millisecond

	// AudioVolume is the gain applied to every cue (log2 scale, 0 = unity)
	AudioVolume = -2.0
)
