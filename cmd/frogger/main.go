package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/frogger/audio"
	"github.com/lixenwraith/frogger/config"
	"github.com/lixenwraith/frogger/engine"
	"github.com/lixenwraith/frogger/terminal"
)

// options are the command-line settings layered over the config file
type options struct {
	configPath string
	cfg        *config.Config
}

// parseFlags builds the effective config: defaults, then the -config file, then flags set explicitly
func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("frogger", flag.ContinueOnError)

	configPath := fs.String("config", "", "YAML config file, watched for changes")
	backend := fs.String("backend", config.BackendTcell, "Console backend: tcell, ansi")
	fps := fs.Int("fps", 0, "Target frames per second")
	debugLog := fs.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	sound := fs.Bool("sound", false, "Play movement and toggle cues")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backend
		case "fps":
			cfg.TargetFPS = *fps
		case "debug":
			cfg.Log.Debug = *debugLog
		case "sound":
			cfg.Sound = *sound
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &options{configPath: *configPath, cfg: cfg}, nil
}

func newConsole(backend string) (terminal.Console, error) {
	switch backend {
	case config.BackendANSI:
		return terminal.NewANSIConsole(), nil
	default:
		return terminal.NewTcellConsole()
	}
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mFROGGER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "frogger: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(opts.cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts); err != nil {
		log.Printf("frogger: %v", err)
		fmt.Fprintf(os.Stderr, "frogger: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *options) error {
	cfg := opts.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console, err := newConsole(cfg.Backend)
	if err != nil {
		return err
	}

	engineOpts := []engine.Option{
		engine.WithTarget(cfg.TargetFrameDuration()),
		engine.WithSpawn(cfg.Spawn.X, cfg.Spawn.Y),
	}

	// Audio is optional; the loop runs silent without a device
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		log.Printf("audio: initialization failed: %v (continuing without audio)", err)
	} else {
		defer sm.Cleanup()
	}
	sm.SetEnabled(cfg.Sound)
	engineOpts = append(engineOpts, engine.WithSound(sm))

	if opts.configPath != "" {
		w, err := config.NewWatcher(opts.configPath)
		if err != nil {
			log.Printf("config: watch %s failed: %v (hot reload disabled)", opts.configPath, err)
		} else {
			defer w.Close()
			engineOpts = append(engineOpts, engine.WithReloads(w.Updates))
		}
	}

	eng := engine.New(console, engineOpts...)
	defer eng.Close()

	if err := eng.Init(); err != nil {
		return err
	}

	log.Printf("frogger: backend %s, target %v, spawn (%d,%d)", cfg.Backend, cfg.TargetFrameDuration(), cfg.Spawn.X, cfg.Spawn.Y)
	return eng.Run(ctx)
}
