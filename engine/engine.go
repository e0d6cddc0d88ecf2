package engine

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/frogger/config"
	"github.com/lixenwraith/frogger/constants"
	"github.com/lixenwraith/frogger/game"
	"github.com/lixenwraith/frogger/terminal"
)

// SoundPlayer plays short cues for loop events
type SoundPlayer interface {
	PlayStep()
	PlayToggle()
	SetEnabled(enabled bool)
}

// Engine runs the fixed-timestep loop: input, update, render, then sleep out the frame budget
type Engine struct {
	console terminal.Console
	clock   TimeProvider
	sleeper Sleeper
	sound   SoundPlayer
	reloads <-chan *config.Config

	spawn game.Point

	State *game.GameState
	Stats FrameStats

	stopRequested bool
}

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces the monotonic clock
func WithClock(clock TimeProvider) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithSleeper replaces the precise sleeper
func WithSleeper(s Sleeper) Option {
	return func(e *Engine) { e.sleeper = s }
}

// WithSound attaches audio cues
func WithSound(s SoundPlayer) Option {
	return func(e *Engine) { e.sound = s }
}

// WithTarget sets the per-frame budget
func WithTarget(d time.Duration) Option {
	return func(e *Engine) { e.Stats.Target = d }
}

// WithSpawn sets the player spawn cell
func WithSpawn(x, y int) Option {
	return func(e *Engine) { e.spawn = game.Point{X: x, Y: y} }
}

// WithReloads applies configs received on ch at the top of the next frame
func WithReloads(ch <-chan *config.Config) Option {
	return func(e *Engine) { e.reloads = ch }
}

// New creates an engine rendering to console
func New(console terminal.Console, opts ...Option) *Engine {
	e := &Engine{
		console: console,
		clock:   NewMonotonicTimeProvider(),
		sleeper: NewPreciseSleeper(),
		spawn:   game.Point{X: constants.SpawnX, Y: constants.SpawnY},
		Stats:   FrameStats{Target: constants.TargetFrameDuration},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.State = game.NewGameState(e.spawn)
	return e
}

// Init prepares the console and resets entity state to spawn
func (e *Engine) Init() error {
	if err := e.console.Init(); err != nil {
		return err
	}
	e.console.HideCursor()

	e.State.Player.Init(e.spawn.X, e.spawn.Y)
	e.State.Score.Init()
	return nil
}

// Close restores the cursor and terminal. Safe to call after a failed Init
func (e *Engine) Close() {
	e.console.ShowCursor()
	e.console.Fini()
}

// Stop requests the loop to exit before its next frame
func (e *Engine) Stop() {
	e.stopRequested = true
}

// ProcessEvent reads one key without blocking and forwards it to the player.
// Returns true when the input ended the game
func (e *Engine) ProcessEvent() bool {
	key := e.console.ReadKey(false)
	if key == terminal.KeyInterrupt {
		e.Stop()
	}
	return e.State.Player.HandleInput(key)
}

// Update toggles the debug overlay on its key, then advances player and score
func (e *Engine) Update() error {
	if e.State.Player.LastInput == constants.KeyToggleDebug {
		e.State.Debug = !e.State.Debug
		if !e.State.Debug {
			// Debug panel is taller than the score view, overwrite alone leaves stale lines
			e.console.Clear()
		}
		log.Printf("engine: debug overlay %v at frame %d", e.State.Debug, e.State.Frame)
		if e.sound != nil {
			e.sound.PlayToggle()
		}
	}

	e.State.Player.Update(&e.State.Frame)
	if e.sound != nil && e.State.Player.Moved() {
		e.sound.PlayStep()
	}
	e.State.Score.Update()

	return e.console.Flush()
}

// Render draws the debug panel or the score view, then the player on top
func (e *Engine) Render() error {
	e.console.GotoTop()

	if e.State.Debug {
		renderDebugPanel(e.console, e.Stats)
	} else {
		e.State.Score.Render(e.console, e.State.Frame)
	}

	e.State.Player.Render(e.console)

	return e.console.Flush()
}

// Step runs one frame and records its timing in Stats
func (e *Engine) Step() error {
	e.applyReload()

	start := e.clock.Now()

	if e.ProcessEvent() {
		log.Printf("engine: game-ending input at frame %d", e.State.Frame)
	}
	if err := e.Update(); err != nil {
		return err
	}
	if err := e.Render(); err != nil {
		return err
	}

	e.Stats.Computation = e.clock.Now().Sub(start)

	sleep := e.Stats.Target - e.Stats.Computation
	if sleep < 0 {
		// Over budget: no catch-up, the frame just runs long
		sleep = 0
		e.Stats.Overruns++
	}
	e.Stats.Sleep = sleep
	e.sleeper.Sleep(sleep)

	e.Stats.Elapsed = e.clock.Now().Sub(start)
	e.Stats.Frames++
	return nil
}

// Run loops until ctx is cancelled, Stop is called, or the console fails
func (e *Engine) Run(ctx context.Context) error {
	log.Printf("engine: loop started, target %v", e.Stats.Target)
	defer func() {
		log.Printf("engine: loop stopped after %d frames, %d over budget", e.Stats.Frames, e.Stats.Overruns)
	}()

	for {
		if e.stopRequested || ctx.Err() != nil {
			return nil
		}
		if err := e.Step(); err != nil {
			return err
		}
	}
}

// applyReload picks up at most one pending config without blocking
func (e *Engine) applyReload() {
	if e.reloads == nil {
		return
	}

	select {
	case cfg, ok := <-e.reloads:
		if !ok {
			e.reloads = nil
			return
		}
		e.Stats.Target = cfg.TargetFrameDuration()
		if e.sound != nil {
			e.sound.SetEnabled(cfg.Sound)
		}
		log.Printf("engine: config reloaded, target %v, sound %v", e.Stats.Target, cfg.Sound)
	default:
	}
}
