package components

import (
	"github.com/automoto/reflexo/game"
	"github.com/yohamta/donburi"
)

// LCDData is the character buffer of the console display. The game writes
// to it through game.Display and the renderer reads it every frame.
type LCDData struct {
	game.Frame
	Writes int // Write calls since the scene started
}

func (l *LCDData) WriteAt(col, row int, text string) {
	l.Writes++
	l.Frame.WriteAt(col, row, text)
}

var LCD = donburi.NewComponentType[LCDData]()
