package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/reflexo/components"
	cfg "github.com/automoto/reflexo/config"
	"github.com/automoto/reflexo/fonts"
	"github.com/automoto/reflexo/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 8

// DrawHUD renders the status line under the console.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	snap, ok := GetSnapshot(e)
	if !ok {
		return
	}
	line := HUDLine(snap, *GetOrCreateSettings(e), getOrCreateInput(e).LastInputMethod)
	text.Draw(screen, line, fonts.Small.Get(), hudMargin, int(cfg.Panel.HUDY), cfg.Panel.HUDColor)
}

// HUDLine formats the status line.
func HUDLine(snap game.Snapshot, settings components.SettingsData, method components.InputMethod) string {
	var b strings.Builder
	b.WriteString(snap.State.String())
	if snap.Round > 0 {
		fmt.Fprintf(&b, "  round %d  %d:%d", snap.Round, snap.Scores[0], snap.Scores[1])
	}
	if settings.Muted {
		b.WriteString("  muted")
	}
	b.WriteString("  ")
	b.WriteString(panelHint(method))
	return b.String()
}

// panelHint returns the settings shortcut for the input method in use
func panelHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Share: settings"
	case components.InputXbox:
		return "Back: settings"
	}
	return "Tab: settings  M: mute"
}
