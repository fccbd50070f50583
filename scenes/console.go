package scenes

import (
	"sync"

	cfg "github.com/automoto/reflexo/config"
	"github.com/automoto/reflexo/components"
	"github.com/automoto/reflexo/game"
	"github.com/automoto/reflexo/systems"
	"github.com/automoto/reflexo/systems/factory"
	"github.com/automoto/reflexo/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// hitCellSize is the resolv cell size used for pointer hit-testing
const hitCellSize = 16

// ConsoleScene is the simulated reaction game console
type ConsoleScene struct {
	ecs   *ecs.ECS
	panel *ui.PanelUI
	clock clockwork.Clock
	saved *systems.SavedSettings
	once  sync.Once
}

// NewConsoleScene creates the console scene. saved may be nil.
func NewConsoleScene(clock clockwork.Clock, saved *systems.SavedSettings) *ConsoleScene {
	return &ConsoleScene{clock: clock, saved: saved}
}

func (cs *ConsoleScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	if systems.IsSettingsOpen(cs.ecs) {
		cs.panel.Update()
	}
}

func (cs *ConsoleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Panel.BodyColor)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)

	if systems.IsSettingsOpen(cs.ecs) {
		cs.panel.UI.Draw(screen)
	}
}

func (cs *ConsoleScene) configure() {
	cs.ecs = ecs.NewECS(donburi.NewWorld())

	factory.CreateSpace(cs.ecs, cfg.C.Width, cfg.C.Height, hitCellSize, hitCellSize)
	for _, bc := range cfg.Panel.Buttons {
		factory.CreateButton(cs.ecs, bc)
	}
	factory.CreateIndicator(cs.ecs)
	factory.CreateAudio(cs.ecs, cfg.Audio.DefaultVolume, cfg.Audio.Muted)
	factory.CreateSettings(cs.ecs, cfg.Audio.DefaultVolume, cfg.Audio.Muted, cfg.C.Scale)
	systems.ApplySavedSettings(cs.ecs, cs.saved)

	console := factory.CreateConsole(cs.ecs)
	ctrl := game.New(
		systems.NewConsoleDisplay(cs.ecs),
		systems.NewConsoleBuzzer(cs.ecs),
		game.NewSeededRoundTimer(cs.clock),
	)
	ctrl.SetLogger(log.With().Str("component", "game").Logger())
	components.Console.Get(console).Controller = ctrl

	// Input first, audio last so tones from this tick play this frame
	cs.ecs.AddSystem(systems.UpdateInput)
	cs.ecs.AddSystem(systems.UpdateSettings)
	cs.ecs.AddSystem(systems.UpdateConsole)
	cs.ecs.AddSystem(systems.UpdateIndicators)
	cs.ecs.AddSystem(systems.UpdateAudio)

	cs.ecs.AddRenderer(cfg.Default, systems.DrawConsole)
	cs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	cs.panel = ui.NewPanelUI(cs.ecs)
}
