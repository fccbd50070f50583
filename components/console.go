package components

import (
	"github.com/automoto/reflexo/game"
	"github.com/yohamta/donburi"
)

// ConsoleData holds the game controller driven by the scene
type ConsoleData struct {
	Controller *game.Controller
	Snapshot   game.Snapshot // Refreshed after every tick
}

var Console = donburi.NewComponentType[ConsoleData]()
