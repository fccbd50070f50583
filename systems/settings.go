package systems

import (
	"github.com/automoto/reflexo/components"
	cfg "github.com/automoto/reflexo/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the panel and mute shortcuts.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionPanel).JustPressed {
		s := GetOrCreateSettings(e)
		s.IsOpen = !s.IsOpen
	}
	if GetAction(input, cfg.ActionMute).JustPressed {
		ToggleMute(e)
	}
}

// IsSettingsOpen returns true if the settings panel is showing
func IsSettingsOpen(e *ecs.ECS) bool {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return false
	}
	return components.Settings.Get(entry).IsOpen
}

// CloseSettings hides the settings panel
func CloseSettings(e *ecs.ECS) {
	GetOrCreateSettings(e).IsOpen = false
}

// StepVolume moves the volume to the next configured step and saves it.
func StepVolume(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.Volume = cfg.NextStep(cfg.SettingsPanel.VolumeSteps, s.Volume)
	SetVolume(e, s.Volume)
	log.Debug().Float64("volume", s.Volume).Msg("volume changed")
	SaveCurrentSettings(s)
}

// ToggleMute flips mute and saves it.
func ToggleMute(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.Muted = !s.Muted
	SetMuted(e, s.Muted)
	log.Debug().Bool("muted", s.Muted).Msg("mute toggled")
	SaveCurrentSettings(s)
}

// StepScale resizes the window to the next configured scale and saves it.
func StepScale(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.Scale = cfg.NextStep(cfg.SettingsPanel.Scales, s.Scale)
	applyScale(s.Scale)
	SaveCurrentSettings(s)
}

func applyScale(scale float64) {
	ebiten.SetWindowSize(int(float64(cfg.C.Width)*scale), int(float64(cfg.C.Height)*scale))
}

// GetOrCreateSettings returns the singleton Settings component, creating it if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Volume: cfg.Audio.DefaultVolume,
			Muted:  cfg.Audio.Muted,
			Scale:  cfg.C.Scale,
		})
	}
	return components.Settings.Get(entry)
}
