package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trajview.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func snapshot(t *testing.T) {
	t.Helper()
	c, sim, hud, tui := *C, Sim, HUD, TUI
	t.Cleanup(func() {
		C, Sim, HUD, TUI = &c, sim, hud, tui
	})
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	snapshot(t)
	path := writeConfig(t, `
[window]
tps = 30
data = "other.txt"

[sim]
proximity_threshold = 0.75
alert_color = { r = 1.0, g = 1.0, b = 0.0 }
`)

	require.NoError(t, LoadFile(path))

	assert.Equal(t, 30, C.TPS)
	assert.Equal(t, "other.txt", C.DataPath)
	assert.Equal(t, 1200, C.Width, "untouched keys keep defaults")
	assert.Equal(t, 0.75, Sim.ProximityThreshold)
	assert.Equal(t, 0.15, Sim.AvatarSpeed)
	assert.Equal(t, RGB{R: 1, G: 1, B: 0}, Sim.AlertColor)
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative threshold", "[sim]\nproximity_threshold = -1\n"},
		{"zero tps", "[window]\ntps = 0\n"},
		{"color out of range", "[sim]\ntracked_color = { r = 2.0, g = 0.0, b = 0.0 }\n"},
		{"unknown key", "[sim]\nwarp_speed = 9\n"},
		{"syntax", "[sim\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot(t)
			before := Sim
			err := LoadFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Equal(t, before, Sim, "failed load must not apply anything")
		})
	}
}

func TestRGBA(t *testing.T) {
	c := RGB{R: 1, G: 0.5, B: 0}.RGBA()
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(0), c.B)
	assert.Equal(t, uint8(255), c.A)
}

func TestExampleConfigLoads(t *testing.T) {
	snapshot(t)
	require.NoError(t, LoadFile(filepath.Join("..", "trajview.example.toml")))
	assert.Equal(t, "Paths_D.txt", C.DataPath)
	assert.Equal(t, 0.5, Sim.ProximityThreshold)
}
