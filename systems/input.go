package systems

import (
	"strings"

	"github.com/automoto/reflexo/components"
	cfg "github.com/automoto/reflexo/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var gamepadIDs []ebiten.GamepadID

// Gamepad names are only inspected once per ID
var padKinds = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput samples every bound device into the Input component and
// mirrors the result onto the drawn buttons. Runs before UpdateConsole.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	hovered := cfg.ActionNone
	if space, ok := getSpace(ecs); ok {
		cx, cy := ebiten.CursorPosition()
		hovered = ButtonAt(space, float64(cx), float64(cy))
	}
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var used struct {
		keys, mouse bool
		pad         ebiten.GamepadID
		padUsed     bool
	}
	for id, binding := range cfg.Input.Bindings {
		if keysDown(binding.Keys) {
			input.Current[id] = true
			used.keys = true
		}
		if pad, ok := padDown(binding.StandardGamepadButtons); ok {
			input.Current[id] = true
			used.pad, used.padUsed = pad, true
		}
		// A click only presses the button under the cursor
		if hovered == id && mouseDown(binding.MouseButtons) {
			input.Current[id] = true
			used.mouse = true
		}
	}

	switch {
	case used.padUsed:
		input.LastInputMethod = padKind(used.pad)
	case used.keys:
		input.LastInputMethod = components.InputKeyboard
	case used.mouse:
		input.LastInputMethod = components.InputMouse
	}

	syncButtons(ecs, input)
}

func keysDown(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func padDown(buttons []ebiten.StandardGamepadButton) (ebiten.GamepadID, bool) {
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				return id, true
			}
		}
	}
	return 0, false
}

func mouseDown(buttons []ebiten.MouseButton) bool {
	for _, b := range buttons {
		if ebiten.IsMouseButtonPressed(b) {
			return true
		}
	}
	return false
}

// syncButtons mirrors the merged action state onto the drawn buttons.
func syncButtons(ecs *ecs.ECS, input *components.InputData) {
	components.Button.Each(ecs.World, func(entry *donburi.Entry) {
		b := components.Button.Get(entry)
		b.Pressed = input.Current[b.Config.Action]
	})
}

// padKind picks the button glyph family for the HUD from the pad name.
func padKind(id ebiten.GamepadID) components.InputMethod {
	if kind, ok := padKinds[id]; ok {
		return kind
	}
	kind := components.InputXbox
	name := strings.ToLower(ebiten.GamepadName(id))
	for _, s := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, s) {
			kind = components.InputPlayStation
			break
		}
	}
	padKinds[id] = kind
	return kind
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction derives press edges from the current and previous samples.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr, prev := input.Current[id], input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
