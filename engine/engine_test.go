package engine

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/frogger/config"
	"github.com/lixenwraith/frogger/game"
	"github.com/lixenwraith/frogger/terminal"
)

type testRig struct {
	engine  *Engine
	rec     *terminal.Recorder
	clock   *MockTimeProvider
	sleeper *MockSleeper
}

func newTestRig(t *testing.T, opts ...Option) *testRig {
	t.Helper()

	rec := terminal.NewRecorder()
	clock := NewMockTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	sleeper := NewMockSleeper(clock)

	opts = append([]Option{WithClock(clock), WithSleeper(sleeper)}, opts...)
	e := New(rec, opts...)
	if err := e.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return &testRig{engine: e, rec: rec, clock: clock, sleeper: sleeper}
}

func (r *testRig) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := r.engine.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
}

type fakeSound struct {
	steps, toggles int
	enabled        bool
}

func (s *fakeSound) PlayStep()          { s.steps++ }
func (s *fakeSound) PlayToggle()        { s.toggles++ }
func (s *fakeSound) SetEnabled(on bool) { s.enabled = on }

func TestInitPreparesConsole(t *testing.T) {
	r := newTestRig(t)

	if !r.rec.Initialized {
		t.Error("console not initialized")
	}
	if r.rec.CursorVisible {
		t.Error("cursor still visible after Init")
	}
	if r.engine.State.Player.Position != (game.Point{X: 20, Y: 20}) {
		t.Errorf("spawn = %v, want (20,20)", r.engine.State.Player.Position)
	}
	if r.engine.Stats.Target != time.Second/60 {
		t.Errorf("Target = %v, want 1/60s", r.engine.Stats.Target)
	}
}

func TestInitError(t *testing.T) {
	rec := terminal.NewRecorder()
	rec.InitErr = errors.New("not a terminal")
	e := New(rec)

	var initErr *terminal.InitError
	if err := e.Init(); !errors.As(err, &initErr) {
		t.Fatalf("Init = %v, want *terminal.InitError", err)
	}
	e.Close()
}

func TestCloseRestoresTerminal(t *testing.T) {
	r := newTestRig(t)
	r.engine.Close()

	if !r.rec.Finalized {
		t.Error("console not finalized")
	}
	if !r.rec.CursorVisible {
		t.Error("cursor hidden after Close")
	}
}

func TestStepFrameOrder(t *testing.T) {
	r := newTestRig(t)
	r.rec.ResetOps()

	r.step(t, 1)

	var kinds []terminal.OpKind
	for _, op := range r.rec.Ops {
		kinds = append(kinds, op.Kind)
	}
	want := []terminal.OpKind{
		terminal.OpReadKey,
		terminal.OpFlush, // update
		terminal.OpGotoTop,
		terminal.OpPrintln, terminal.OpPrintln, terminal.OpPrintln,
		terminal.OpRender,
		terminal.OpFlush, // render
	}
	if len(kinds) != len(want) {
		t.Fatalf("ops = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("op %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestStepSleepsRemainderOfBudget(t *testing.T) {
	r := newTestRig(t)
	r.clock.SetAutoAdvance(2 * time.Millisecond)

	r.step(t, 1)

	s := r.engine.Stats
	if s.Computation != 2*time.Millisecond {
		t.Errorf("Computation = %v, want 2ms", s.Computation)
	}
	if want := s.Target - s.Computation; s.Sleep != want {
		t.Errorf("Sleep = %v, want %v", s.Sleep, want)
	}
	if len(r.sleeper.Requests) != 1 || r.sleeper.Requests[0] != s.Sleep {
		t.Errorf("sleeper requests = %v, want [%v]", r.sleeper.Requests, s.Sleep)
	}
	if s.Elapsed < s.Computation+s.Sleep {
		t.Errorf("Elapsed %v shorter than computation %v + sleep %v", s.Elapsed, s.Computation, s.Sleep)
	}
	if s.Overruns != 0 {
		t.Errorf("Overruns = %d, want 0", s.Overruns)
	}
}

func TestStepOverBudgetClampsSleep(t *testing.T) {
	r := newTestRig(t)
	r.clock.SetAutoAdvance(25 * time.Millisecond)

	r.step(t, 3)

	s := r.engine.Stats
	if s.Sleep != 0 {
		t.Errorf("Sleep = %v, want 0", s.Sleep)
	}
	for i, d := range r.sleeper.Requests {
		if d != 0 {
			t.Errorf("request %d = %v, want 0", i, d)
		}
	}
	if s.Overruns != 3 {
		t.Errorf("Overruns = %d, want 3", s.Overruns)
	}
	if s.Frames != 3 {
		t.Errorf("Frames = %d, want 3 (no frame dropped or doubled)", s.Frames)
	}
	if r.engine.State.Frame != 3 {
		t.Errorf("frame counter = %d, want 3", r.engine.State.Frame)
	}
}

// Sleep is never negative and elapsed always covers computation, whatever the per-frame load
func TestStepTimingInvariants(t *testing.T) {
	r := newTestRig(t)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		r.clock.SetAutoAdvance(time.Duration(rng.Int63n(int64(30 * time.Millisecond))))
		r.step(t, 1)

		s := r.engine.Stats
		if s.Sleep < 0 {
			t.Fatalf("frame %d: negative sleep %v", i, s.Sleep)
		}
		if s.Elapsed < s.Computation {
			t.Fatalf("frame %d: elapsed %v < computation %v", i, s.Elapsed, s.Computation)
		}
	}
	for i, d := range r.sleeper.Requests {
		if d < 0 {
			t.Fatalf("request %d negative: %v", i, d)
		}
	}
}

func TestScoreViewByDefault(t *testing.T) {
	r := newTestRig(t)
	r.step(t, 1)

	want := []string{" Wins   : 0", " Deaths : 0", " Frame   : 1"}
	for i, w := range want {
		if got := r.rec.Line(i); got != w {
			t.Errorf("line %d = %q, want %q", i, got, w)
		}
	}
}

func TestDebugOverlayShowsTiming(t *testing.T) {
	r := newTestRig(t)
	r.rec.PushKeys('1')

	r.step(t, 1)

	if !r.engine.State.Debug {
		t.Fatal("debug overlay not enabled")
	}
	if got := r.rec.Line(0); !strings.HasPrefix(got, " Target(ms)      : 16.6667") {
		t.Errorf("line 0 = %q", got)
	}
	// First frame has no elapsed time yet
	if got := r.rec.Line(3); got != " FPS             : n/a" {
		t.Errorf("line 3 = %q", got)
	}

	r.step(t, 1)
	if got := r.rec.Line(3); got == " FPS             : n/a" || !strings.HasPrefix(got, " FPS             : ") {
		t.Errorf("line 3 after a full frame = %q", got)
	}
}

// Toggling twice returns to the score view with the taller debug panel wiped
func TestDebugToggleTwiceClearsStaleLines(t *testing.T) {
	r := newTestRig(t)
	r.rec.PushKeys('1', terminal.KeyNone, '1')

	r.step(t, 2)
	if !r.engine.State.Debug {
		t.Fatal("debug overlay not enabled")
	}
	if r.rec.Line(3) == "" {
		t.Fatal("debug panel has no fourth line")
	}
	clearsBefore := r.rec.Clears

	r.step(t, 1)

	if r.engine.State.Debug {
		t.Fatal("debug overlay still enabled")
	}
	if r.rec.Clears != clearsBefore+1 {
		t.Errorf("Clears = %d, want %d", r.rec.Clears, clearsBefore+1)
	}
	if got := r.rec.Line(0); got != " Wins   : 0" {
		t.Errorf("line 0 = %q", got)
	}
	if got := r.rec.Line(2); got != " Frame   : 3" {
		t.Errorf("line 2 = %q", got)
	}
	if got := r.rec.Line(3); got != "" {
		t.Errorf("stale debug line remains: %q", got)
	}
	// Player is redrawn after the clear
	if got := r.rec.At(20, 20); got != 'O' {
		t.Errorf("player cell = %q, want 'O'", got)
	}
}

func TestEndToEndMovement(t *testing.T) {
	r := newTestRig(t)
	r.rec.PushKeys('d', 'd', 's')

	r.step(t, 3)

	if got := r.engine.State.Player.Position; got != (game.Point{X: 22, Y: 21}) {
		t.Fatalf("Position = %v, want (22,21)", got)
	}
	for _, c := range []game.Point{{X: 20, Y: 20}, {X: 21, Y: 20}, {X: 22, Y: 20}} {
		if got := r.rec.At(c.X, c.Y); got != ' ' {
			t.Errorf("cell %v = %q, want erased", c, got)
		}
	}
	if got := r.rec.At(22, 21); got != 'O' {
		t.Errorf("final cell = %q, want 'O'", got)
	}
}

func TestAnimationPhaseOverSixtyFrames(t *testing.T) {
	r := newTestRig(t)

	for i := 1; i <= 60; i++ {
		r.step(t, 1)
		frame := r.engine.State.Frame
		if frame != i {
			t.Fatalf("frame = %d, want %d", frame, i)
		}
		if got, want := r.engine.State.Player.AnimationPhase, game.Phase(frame); got != want {
			t.Fatalf("frame %d: phase %d, want %d", frame, got, want)
		}
	}
	if r.engine.State.Player.Position != (game.Point{X: 20, Y: 20}) {
		t.Error("player moved without input")
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	r := newTestRig(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.engine.Run(ctx); err != nil {
		t.Fatalf("Run = %v", err)
	}
	if r.engine.Stats.Frames != 0 {
		t.Errorf("Frames = %d, want 0", r.engine.Stats.Frames)
	}
}

func TestRunStopsOnInterruptKey(t *testing.T) {
	r := newTestRig(t)
	r.rec.PushKeys('w', terminal.KeyInterrupt, 'w')

	if err := r.engine.Run(context.Background()); err != nil {
		t.Fatalf("Run = %v", err)
	}
	if r.engine.Stats.Frames != 2 {
		t.Errorf("Frames = %d, want 2", r.engine.Stats.Frames)
	}
	if got := r.engine.State.Player.Position; got != (game.Point{X: 20, Y: 19}) {
		t.Errorf("Position = %v, want (20,19)", got)
	}
}

func TestRunReturnsRenderError(t *testing.T) {
	r := newTestRig(t)
	r.rec.FlushErr = errors.New("terminal detached")

	err := r.engine.Run(context.Background())

	var renderErr *terminal.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("Run = %v, want *terminal.RenderError", err)
	}
}

func TestReloadAppliesAtFrameStart(t *testing.T) {
	reloads := make(chan *config.Config, 1)
	sound := &fakeSound{}
	r := newTestRig(t, WithReloads(reloads), WithSound(sound))

	cfg := config.Default()
	cfg.TargetFPS = 30
	cfg.Sound = true
	reloads <- cfg

	r.step(t, 1)

	if r.engine.Stats.Target != time.Second/30 {
		t.Errorf("Target = %v, want 1/30s", r.engine.Stats.Target)
	}
	if !sound.enabled {
		t.Error("sound not enabled by reload")
	}

	close(reloads)
	r.step(t, 1)
	if r.engine.reloads != nil {
		t.Error("closed reload channel still polled")
	}
}

func TestSoundCues(t *testing.T) {
	sound := &fakeSound{}
	r := newTestRig(t, WithSound(sound))
	r.rec.PushKeys('d', terminal.KeyNone, '1', 'a')

	r.step(t, 4)

	if sound.steps != 2 {
		t.Errorf("steps = %d, want 2", sound.steps)
	}
	if sound.toggles != 1 {
		t.Errorf("toggles = %d, want 1", sound.toggles)
	}
}

func TestWithSpawnAndTarget(t *testing.T) {
	r := newTestRig(t, WithSpawn(3, 4), WithTarget(10*time.Millisecond))

	if got := r.engine.State.Player.Position; got != (game.Point{X: 3, Y: 4}) {
		t.Errorf("spawn = %v, want (3,4)", got)
	}
	if r.engine.Stats.Target != 10*time.Millisecond {
		t.Errorf("Target = %v", r.engine.Stats.Target)
	}
}
