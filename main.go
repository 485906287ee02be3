package main

import (
	"flag"
	"image"
	"os"

	"github.com/Gllitch404/TrabalhoCG/config"
	"github.com/Gllitch404/TrabalhoCG/fonts"
	"github.com/Gllitch404/TrabalhoCG/scenes"
	"github.com/Gllitch404/TrabalhoCG/shared/trajdata"
	"github.com/Gllitch404/TrabalhoCG/sim"
	"github.com/Gllitch404/TrabalhoCG/systems/window"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(world *sim.World) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewViewerScene(world),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "optional TOML file overriding the defaults")
	dataPath := flag.String("data", "", "trajectory dataset (default from config)")
	tps := flag.Int("tps", 0, "ticks per second (default from config)")
	debug := flag.Bool("debug", false, "show the proximity broad phase")
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
	if *debug {
		config.Debug.ShowIndex = true
	}

	ds, err := trajdata.LoadFile(os.DirFS("."), config.C.DataPath)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	world, err := sim.New(ds)
	if err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}
	w, h := world.WorldBounds()
	log.Infof("Loaded %d trajectories from %s, world %.2fx%.2f, %d frames",
		len(ds.Paths), config.C.DataPath, w, h, world.Ceiling()+1)

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := window.InitPersistence("trajview"); err != nil {
		log.Warnf("Could not initialize persistence: %v", err)
	}
	if saved, err := window.LoadSettings(); err != nil {
		log.Warnf("Could not load settings: %v", err)
	} else {
		window.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(world)); err != nil {
		log.Fatal(err)
	}
}
