package config

import "image/color"

// Config holds general window and playback configuration
type Config struct {
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	TPS      int    `toml:"tps"` // ticks per second, one Advance per tick
	Title    string `toml:"title"`
	DataPath string `toml:"data"`
}

// RGB is a color with real channels in [0,1].
type RGB struct {
	R float64 `toml:"r"`
	G float64 `toml:"g"`
	B float64 `toml:"b"`
}

// RGBA converts to an opaque 8-bit color for rendering.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 255}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// SimConfig contains simulation constants
type SimConfig struct {
	ProximityThreshold float64 `toml:"proximity_threshold"` // world units, strict less-than
	AvatarSpeed        float64 `toml:"avatar_speed"`        // world units per tick on the longer axis

	// Glyph edge length in world units
	TrackedSize float64 `toml:"tracked_size"`
	AvatarSize  float64 `toml:"avatar_size"`

	TrackedColor RGB `toml:"tracked_color"`
	AvatarColor  RGB `toml:"avatar_color"`
	AlertColor   RGB `toml:"alert_color"`

	// Broad phase for the proximity scan
	SpatialIndex  bool `toml:"spatial_index"`
	IndexCellSize int  `toml:"index_cell_size"` // world units, raised to cover the threshold
}

// HUDConfig contains overlay text configuration
type HUDConfig struct {
	Visible      bool       `toml:"visible"`
	Margin       float64    `toml:"margin"`
	LineHeight   float64    `toml:"line_height"`
	PulseSeconds float32    `toml:"pulse_seconds"` // proximity banner fade duration
	Background   color.RGBA `toml:"-"`
	TextColor    color.RGBA `toml:"-"`
	BannerColor  color.RGBA `toml:"-"`
	GridColor    color.RGBA `toml:"-"`
}

// TUIConfig contains terminal viewer configuration
type TUIConfig struct {
	KeyHoldTicks int    `toml:"key_hold_ticks"` // ticks a key press stays held without repeat
	TrackedRune  string `toml:"tracked_rune"`
	AvatarRune   string `toml:"avatar_rune"`
	LogFile      string `toml:"log_file"`
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	ShowIndex   bool // draw the proximity broad-phase objects
	StartPaused bool
}

// Global configuration instances
var C *Config
var Sim SimConfig
var HUD HUDConfig
var TUI TUIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Charcoal     = color.RGBA{R: 26, G: 26, B: 26, A: 255}
	GridCyan     = color.RGBA{R: 0, G: 255, B: 255, A: 120}
)

func init() {
	C = &Config{
		Width:    1200,
		Height:   800,
		TPS:      60,
		Title:    "Trajectory Viewer",
		DataPath: "Paths_D.txt",
	}

	Sim = SimConfig{
		ProximityThreshold: 0.5,
		AvatarSpeed:        0.15,
		TrackedSize:        0.2,
		AvatarSize:         0.25,
		TrackedColor:       RGB{R: 0.2, G: 0.5, B: 1.0},
		AvatarColor:        RGB{R: 1.0, G: 0.5, B: 0.2},
		AlertColor:         RGB{R: 1.0, G: 0.0, B: 0.0},
		SpatialIndex:       true,
		IndexCellSize:      1,
	}

	HUD = HUDConfig{
		Visible:      true,
		Margin:       10,
		LineHeight:   16,
		PulseSeconds: 0.6,
		Background:   Charcoal,
		TextColor:    White,
		BannerColor:  Red,
		GridColor:    GridCyan,
	}

	TUI = TUIConfig{
		KeyHoldTicks: 6,
		TrackedRune:  "o",
		AvatarRune:   "@",
		LogFile:      "trajview-tui.log",
	}
}
