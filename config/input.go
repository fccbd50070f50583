package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical console action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionControl
	ActionPlayer1
	ActionPlayer2
	ActionPanel
	ActionMute
	ActionCount // Must be last - used for array sizing
)

// actionNames are the keys used for bindings in the config file
var actionNames = map[string]ActionID{
	"control": ActionControl,
	"player1": ActionPlayer1,
	"player2": ActionPlayer2,
	"panel":   ActionPanel,
	"mute":    ActionMute,
}

// ParseAction maps a config file binding name to its action.
func ParseAction(name string) (ActionID, bool) {
	id, ok := actionNames[name]
	return id, ok
}

func (a ActionID) String() string {
	for name, id := range actionNames {
		if id == a {
			return name
		}
	}
	return "none"
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
	MouseButtons           []ebiten.MouseButton // Pressed over the drawn button
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionControl: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionPlayer1: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyShiftLeft},
				// Left bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionPlayer2: {
				Keys: []ebiten.Key{ebiten.KeyL, ebiten.KeyShiftRight},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionPanel: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyTab},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionMute: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
		},
	}
}
