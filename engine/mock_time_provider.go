package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	autoAdvance time.Duration
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time, then advances it by the auto-advance step
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.currentTime
	m.currentTime = m.currentTime.Add(m.autoAdvance)
	return now
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// SetAutoAdvance makes every Now call move the clock forward by d,
// simulating work between successive readings
func (m *MockTimeProvider) SetAutoAdvance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoAdvance = d
}

// MockSleeper records sleep requests and advances a mock clock instead of blocking
type MockSleeper struct {
	Clock    *MockTimeProvider
	Requests []time.Duration
}

// NewMockSleeper creates a sleeper bound to clock
func NewMockSleeper(clock *MockTimeProvider) *MockSleeper {
	return &MockSleeper{Clock: clock}
}

func (s *MockSleeper) Sleep(d time.Duration) {
	s.Requests = append(s.Requests, d)
	if d > 0 && s.Clock != nil {
		s.Clock.Advance(d)
	}
}
