package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// File mirrors the TOML override file. Sections left out keep their defaults.
type File struct {
	Window Config    `toml:"window"`
	Sim    SimConfig `toml:"sim"`
	HUD    HUDConfig `toml:"hud"`
	TUI    TUIConfig `toml:"tui"`
}

// LoadFile decodes the TOML file at path over the current configuration.
// Nothing is applied when decoding or validation fails.
func LoadFile(path string) error {
	f := File{Window: *C, Sim: Sim, HUD: HUD, TUI: TUI}

	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	window := f.Window
	C = &window
	Sim = f.Sim
	HUD = f.HUD
	TUI = f.TUI
	return nil
}

// Validate rejects values the simulation cannot run with.
func (f *File) Validate() error {
	var errs []error
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", f.Window.Width, f.Window.Height))
	}
	if f.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", f.Window.TPS))
	}
	if f.Sim.ProximityThreshold <= 0 {
		errs = append(errs, fmt.Errorf("proximity_threshold must be positive, got %v", f.Sim.ProximityThreshold))
	}
	if f.Sim.AvatarSpeed < 0 {
		errs = append(errs, fmt.Errorf("avatar_speed must not be negative, got %v", f.Sim.AvatarSpeed))
	}
	if f.Sim.TrackedSize <= 0 || f.Sim.AvatarSize <= 0 {
		errs = append(errs, errors.New("glyph sizes must be positive"))
	}
	if f.Sim.IndexCellSize < 1 {
		errs = append(errs, fmt.Errorf("index_cell_size must be at least 1, got %d", f.Sim.IndexCellSize))
	}
	for name, c := range map[string]RGB{
		"tracked_color": f.Sim.TrackedColor,
		"avatar_color":  f.Sim.AvatarColor,
		"alert_color":   f.Sim.AlertColor,
	} {
		if !c.valid() {
			errs = append(errs, fmt.Errorf("%s channels must be in [0,1], got %+v", name, c))
		}
	}
	if f.TUI.KeyHoldTicks < 1 {
		errs = append(errs, fmt.Errorf("key_hold_ticks must be at least 1, got %d", f.TUI.KeyHoldTicks))
	}
	if f.TUI.TrackedRune == "" || f.TUI.AvatarRune == "" {
		errs = append(errs, errors.New("tui runes must not be empty"))
	}
	return errors.Join(errs...)
}

func (c RGB) valid() bool {
	in := func(v float64) bool { return v >= 0 && v <= 1 }
	return in(c.R) && in(c.G) && in(c.B)
}
