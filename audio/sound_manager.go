package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/frogger/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays game cues through a shared mixer.
// Every method is a no-op until Initialize succeeds, so the game runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	enabled     bool
	initialized bool
}

// NewSoundManager creates a new sound manager, enabled but not yet attached to a device
func NewSoundManager() *SoundManager {
	sm := &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: true,
	}
	sm.ctrl = &beep.Ctrl{Streamer: sm.mixer}
	return sm
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.ctrl)
	sm.initialized = true
	return nil
}

// Cleanup silences and drops queued cues
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.ctrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; a paused, empty mixer produces silence
	sm.initialized = false
}

// SetEnabled mutes or unmutes cues without releasing the device
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = enabled
}

// Enabled reports whether cues are currently played
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// PlayStep plays the movement tick
func (sm *SoundManager) PlayStep() {
	sm.play(CreateStepSound)
}

// PlayToggle plays the debug overlay chime
func (sm *SoundManager) PlayToggle() {
	sm.play(CreateToggleSound)
}

func (sm *SoundManager) play(create func(beep.SampleRate) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}

	s := create(sampleRate)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
