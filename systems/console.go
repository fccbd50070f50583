package systems

import (
	"time"

	"github.com/automoto/reflexo/components"
	cfg "github.com/automoto/reflexo/config"
	"github.com/automoto/reflexo/game"
	"github.com/yohamta/donburi/ecs"
)

// consoleDisplay routes game text into the scene's LCD buffer.
type consoleDisplay struct {
	ecs *ecs.ECS
}

// NewConsoleDisplay returns the display the game controller draws on.
func NewConsoleDisplay(ecs *ecs.ECS) game.Display {
	return consoleDisplay{ecs: ecs}
}

func (d consoleDisplay) Clear() {
	if lcd := getLCD(d.ecs); lcd != nil {
		lcd.Clear()
	}
}

func (d consoleDisplay) WriteAt(col, row int, text string) {
	if lcd := getLCD(d.ecs); lcd != nil {
		lcd.WriteAt(col, row, text)
	}
}

// consoleBuzzer queues game tones for UpdateAudio.
type consoleBuzzer struct {
	ecs *ecs.ECS
}

// NewConsoleBuzzer returns the buzzer the game controller beeps with.
func NewConsoleBuzzer(ecs *ecs.ECS) game.Buzzer {
	return consoleBuzzer{ecs: ecs}
}

func (b consoleBuzzer) Tone(freqHz int, d time.Duration) {
	GetOrCreateAudio(b.ecs).Tone(freqHz, d)
}

// UpdateConsole feeds this frame's button levels to the game controller.
// Must run AFTER UpdateInput.
func UpdateConsole(ecs *ecs.ECS) {
	entry, ok := components.Console.First(ecs.World)
	if !ok {
		return
	}
	console := components.Console.Get(entry)
	if console.Controller == nil {
		return
	}

	levels := game.Levels{}
	// The settings panel takes the pointer, so the console sees released
	// buttons while it is open.
	if !IsSettingsOpen(ecs) {
		levels = Levels(getOrCreateInput(ecs))
	}
	console.Controller.Tick(levels)
	console.Snapshot = console.Controller.Snapshot()
}

// Levels maps merged action state to console input levels.
func Levels(input *components.InputData) game.Levels {
	return game.Levels{
		Control: input.Current[cfg.ActionControl],
		Players: [game.Players]bool{
			input.Current[cfg.ActionPlayer1],
			input.Current[cfg.ActionPlayer2],
		},
	}
}

// GetSnapshot returns the console state after the last tick.
func GetSnapshot(ecs *ecs.ECS) (game.Snapshot, bool) {
	entry, ok := components.Console.First(ecs.World)
	if !ok {
		return game.Snapshot{}, false
	}
	return components.Console.Get(entry).Snapshot, true
}

func getLCD(ecs *ecs.ECS) *components.LCDData {
	entry, ok := components.LCD.First(ecs.World)
	if !ok {
		return nil
	}
	return components.LCD.Get(entry)
}
