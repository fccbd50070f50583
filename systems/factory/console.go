package factory

import (
	"github.com/automoto/reflexo/archetypes"
	"github.com/automoto/reflexo/components"
	cfg "github.com/automoto/reflexo/config"
	"github.com/automoto/reflexo/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateConsole spawns the entity holding the display buffer. The
// controller is attached once the display exists, since creating it draws
// the start prompt.
func CreateConsole(ecs *ecs.ECS) *donburi.Entry {
	console := archetypes.Console.Spawn(ecs)
	components.LCD.Get(console).Clear()
	return console
}

// CreateButton spawns a console button with a square hit area around its
// circle.
func CreateButton(ecs *ecs.ECS, bc cfg.ButtonConfig) *donburi.Entry {
	button := archetypes.Button.Spawn(ecs)
	components.Button.SetValue(button, components.ButtonData{Config: bc})

	size := bc.Radius * 2
	obj := resolv.NewObject(bc.X-bc.Radius, bc.Y-bc.Radius, size, size, tags.ResolvButton)
	obj.Data = button // Link for O(1) lookup

	components.Object.SetValue(button, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return button
}

func CreateIndicator(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Indicator.Spawn(ecs)
}

func CreateAudio(ecs *ecs.ECS, volume float64, muted bool) *donburi.Entry {
	audio := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(audio, components.AudioData{
		Volume:       volume,
		Muted:        muted,
		PendingTones: make([]components.Tone, 0, 4),
	})
	return audio
}

func CreateSettings(ecs *ecs.ECS, volume float64, muted bool, scale float64) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{
		Volume: volume,
		Muted:  muted,
		Scale:  scale,
	})
	return settings
}
