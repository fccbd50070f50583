package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/reflexo/components"
	cfg "github.com/automoto/reflexo/config"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SavedSettings represents the simulator settings stored on disk. Game
// progress is never stored.
type SavedSettings struct {
	Volume float64 `json:"volume"`
	Muted  bool    `json:"muted"`
	Scale  float64 `json:"scale"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("failed to open settings storage: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when there is
// nothing usable saved.
func LoadSettings() *SavedSettings {
	if gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings")
		return nil
	}

	settings, err := decodeSettings(data)
	if err != nil {
		log.Warn().Err(err).Msg("could not parse saved settings")
		return nil
	}
	return settings
}

// decodeSettings parses saved settings, clamping values that a hand edit
// may have broken. Empty data means no saved settings.
func decodeSettings(data []byte) (*SavedSettings, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var s SavedSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	s.Volume = min(max(s.Volume, 0), 1)
	if s.Scale <= 0 {
		s.Scale = cfg.C.Scale
	}
	return &s, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Volume: s.Volume,
		Muted:  s.Muted,
		Scale:  s.Scale,
	}
	if err := SaveSettings(saved); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
	}
}

// ApplySavedSettings applies loaded settings to a running scene
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	s := GetOrCreateSettings(e)
	s.Volume = saved.Volume
	s.Muted = saved.Muted
	s.Scale = saved.Scale

	SetVolume(e, saved.Volume)
	SetMuted(e, saved.Muted)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before the scene is created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	cfg.Audio.DefaultVolume = saved.Volume
	cfg.Audio.Muted = saved.Muted
	cfg.C.Scale = saved.Scale
}
