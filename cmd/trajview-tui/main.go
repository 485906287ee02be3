// Command trajview-tui replays a trajectory dataset in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/Gllitch404/TrabalhoCG/config"
	"github.com/Gllitch404/TrabalhoCG/runner"
	"github.com/Gllitch404/TrabalhoCG/shared/trajdata"
	"github.com/Gllitch404/TrabalhoCG/sim"
	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var keyActions = map[tcell.Key]config.ActionID{
	tcell.KeyUp:    config.ActionMoveUp,
	tcell.KeyDown:  config.ActionMoveDown,
	tcell.KeyLeft:  config.ActionMoveLeft,
	tcell.KeyRight: config.ActionMoveRight,
}

var runeActions = map[rune]config.ActionID{
	'w': config.ActionMoveUp,
	's': config.ActionMoveDown,
	'a': config.ActionMoveLeft,
	'd': config.ActionMoveRight,
	' ': config.ActionPause,
	'p': config.ActionPause,
	'q': config.ActionQuit,
}

// actionFor maps a key event to a viewer action.
func actionFor(ev *tcell.EventKey) config.ActionID {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return config.ActionQuit
	case tcell.KeyRune:
		return runeActions[ev.Rune()]
	}
	return keyActions[ev.Key()]
}

func main() {
	configPath := flag.String("config", "", "optional TOML file overriding the defaults")
	dataPath := flag.String("data", "", "trajectory dataset (default from config)")
	tps := flag.Int("tps", 0, "ticks per second (default from config)")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid log level %q: %v", *logLevel, err)
	}
	log.SetLevel(level)

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *dataPath != "" {
		config.C.DataPath = *dataPath
	}
	if *tps > 0 {
		config.C.TPS = *tps
	}

	ds, err := trajdata.LoadFile(os.DirFS("."), config.C.DataPath)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	world, err := sim.New(ds)
	if err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}

	// The terminal belongs to tcell from here on.
	logFile := &lumberjack.Logger{
		Filename:   config.TUI.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}

	if err := run(screen, world); err != nil {
		screen.Fini()
		log.Fatalf("Viewer stopped: %v", err)
	}
	screen.Fini()
}

func run(screen tcell.Screen, world *sim.World) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	latch := newKeyLatch(world.Input(), config.TUI.KeyHoldTicks)
	var paused atomic.Bool

	loop := runner.NewLoop(func() {
		if !paused.Load() {
			world.Advance()
		}
		latch.Tick()
		draw(screen, world, paused.Load())
	}, config.C.TPS)

	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				// screen finalized
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch id := actionFor(ev); id {
				case config.ActionQuit:
					loop.Stop()
					return
				case config.ActionPause:
					paused.Store(!paused.Load())
					log.Debugf("paused=%v", paused.Load())
				case config.ActionNone:
				default:
					latch.Press(id)
				}
			}
		}
	}()

	log.Infof("Replaying %s at %d ticks/second", config.C.DataPath, config.C.TPS)
	err := loop.Run(ctx)
	log.Infof("Stopped after %d ticks", loop.Ticks())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
