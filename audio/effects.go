package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/frogger/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration worth of samples at freq
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fadeOut ramps the last release samples of a fixed-length stream to zero to avoid clicks
type fadeOut struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func newFadeOut(s beep.Streamer, duration, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fadeOut{
		streamer: s,
		total:    rate.N(duration),
		release:  rate.N(release),
	}
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		remaining := f.total - f.position
		if remaining < f.release && f.release > 0 {
			vol := float64(remaining) / float64(f.release)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }

func newVolume(s beep.Streamer) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: constants.AudioVolume}
}

// CreateStepSound generates the short tick played when the player moves
func CreateStepSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(constants.StepToneFreq, constants.StepToneDuration, WaveSquare, rate)
	shaped := newFadeOut(osc, constants.StepToneDuration, constants.StepToneDuration/2, rate)
	return newVolume(shaped)
}

// CreateToggleSound generates the rising two-note chime played when the debug overlay toggles
func CreateToggleSound(rate beep.SampleRate) beep.Streamer {
	d := constants.ToggleToneDuration
	low := newFadeOut(NewOscillator(constants.ToggleToneLowFreq, d, WaveSine, rate), d, d/3, rate)
	high := newFadeOut(NewOscillator(constants.ToggleToneHighFreq, d, WaveSine, rate), d, d/3, rate)
	return newVolume(beep.Take(rate.N(2*d), beep.Seq(low, high)))
}
