package window

import (
	"encoding/json"

	"github.com/Gllitch404/TrabalhoCG/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	log "github.com/sirupsen/logrus"
)

const settingsKey = "viewer"

// SavedSettings is the viewer state kept between runs. Playback state is
// never saved.
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
	ShowHUD    bool `json:"showHud"`
	ShowDebug  bool `json:"showDebug"`
}

var gdataManager *gdata.Manager

// startupSettings is applied to the viewer when it is first created.
var startupSettings *SavedSettings

// InitPersistence opens the settings store. Without it the viewer simply
// runs with defaults.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings returns nil, nil when nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(settingsKey, data)
}

// SaveViewerSettings stores the current toggles, logging failures.
func SaveViewerSettings(v *components.ViewerData) {
	err := SaveSettings(&SavedSettings{
		Fullscreen: v.Fullscreen,
		ShowHUD:    v.ShowHUD,
		ShowDebug:  v.ShowDebug,
	})
	if err != nil {
		log.Warnf("could not save viewer settings: %v", err)
	}
}

// ApplySavedSettingsGlobal applies window-level settings at startup, before
// any scene exists, and keeps the rest for the first viewer.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	startupSettings = saved
	ebiten.SetFullscreen(saved.Fullscreen)
}

func ApplySavedSettings(v *components.ViewerData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	v.Fullscreen = saved.Fullscreen
	v.ShowHUD = saved.ShowHUD
	v.ShowDebug = saved.ShowDebug
}
