package systems

import (
	"image/color"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/automoto/reflexo/components"
	cfg "github.com/automoto/reflexo/config"
	"github.com/automoto/reflexo/game"
	"github.com/automoto/reflexo/systems/factory"
	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type console struct {
	ecs   *ecs.ECS
	clock *clockwork.FakeClock
	entry *donburi.Entry
}

// newConsole builds a world the way the console scene does, without the
// window and the audio device.
func newConsole(t *testing.T) *console {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	for _, bc := range cfg.Panel.Buttons {
		factory.CreateButton(e, bc)
	}
	factory.CreateIndicator(e)
	factory.CreateAudio(e, 1, false)
	factory.CreateSettings(e, 1, false, 2)
	entry := factory.CreateConsole(e)

	clock := clockwork.NewFakeClock()
	ctrl := game.New(NewConsoleDisplay(e), NewConsoleBuzzer(e),
		game.NewRoundTimer(clock, rand.New(rand.NewPCG(1, 2))))
	components.Console.Get(entry).Controller = ctrl

	return &console{ecs: e, clock: clock, entry: entry}
}

func (c *console) press(actions ...cfg.ActionID) {
	input := getOrCreateInput(c.ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
	UpdateConsole(c.ecs)
}

func (c *console) lines() []string {
	lcd := getLCD(c.ecs)
	return []string{lcd.Line(0), lcd.Line(1)}
}

func TestButtonAt(t *testing.T) {
	c := newConsole(t)
	space, ok := getSpace(c.ecs)
	if !ok {
		t.Fatal("no space in the world")
	}

	for _, bc := range cfg.Panel.Buttons {
		if got := ButtonAt(space, bc.X, bc.Y); got != bc.Action {
			t.Errorf("ButtonAt(center of %s) = %v, want %v", bc.Label, got, bc.Action)
		}
		if got := ButtonAt(space, bc.X+bc.Radius-2, bc.Y); got != bc.Action {
			t.Errorf("ButtonAt(edge of %s) = %v, want %v", bc.Label, got, bc.Action)
		}
		// Inside the square hit area but outside the circle.
		if got := ButtonAt(space, bc.X-bc.Radius+1, bc.Y-bc.Radius+1); got != cfg.ActionNone {
			t.Errorf("ButtonAt(corner of %s) = %v, want none", bc.Label, got)
		}
	}
	if got := ButtonAt(space, 5, 5); got != cfg.ActionNone {
		t.Errorf("ButtonAt(empty area) = %v, want none", got)
	}
}

func TestConsoleStartsWithPrompt(t *testing.T) {
	c := newConsole(t)

	want := []string{"  BOTAO CENTRAL ", "  PARA COMECAR  "}
	if diff := cmp.Diff(want, c.lines()); diff != "" {
		t.Errorf("LCD mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateConsoleDrivesGame(t *testing.T) {
	c := newConsole(t)

	c.press(cfg.ActionControl)
	c.press()
	c.press(cfg.ActionPlayer2)

	snap, ok := GetSnapshot(c.ecs)
	if !ok {
		t.Fatal("no console snapshot")
	}
	if snap.State != game.StatePlayerSelection {
		t.Fatalf("State = %v, want %v", snap.State, game.StatePlayerSelection)
	}
	want := []string{"J1 ESPERANDO... ", "J2 ENTROU       "}
	if diff := cmp.Diff(want, c.lines()); diff != "" {
		t.Errorf("LCD mismatch (-want +got):\n%s", diff)
	}

	audio := GetOrCreateAudio(c.ecs)
	wantTones := []components.Tone{{FreqHz: game.ToneFrequency, Duration: game.JoinToneTime}}
	if diff := cmp.Diff(wantTones, audio.PendingTones); diff != "" {
		t.Errorf("PendingTones mismatch (-want +got):\n%s", diff)
	}
}

func TestSettingsPanelReleasesButtons(t *testing.T) {
	c := newConsole(t)
	GetOrCreateSettings(c.ecs).IsOpen = true

	c.press(cfg.ActionControl)
	if snap, _ := GetSnapshot(c.ecs); snap.State != game.StateStart {
		t.Errorf("State = %v, want %v while the panel is open", snap.State, game.StateStart)
	}

	CloseSettings(c.ecs)
	c.press()
	c.press(cfg.ActionControl)
	if snap, _ := GetSnapshot(c.ecs); snap.State != game.StatePlayerSelection {
		t.Errorf("State = %v, want %v after closing the panel", snap.State, game.StatePlayerSelection)
	}
}

func TestUpdateSettingsShortcuts(t *testing.T) {
	c := newConsole(t)
	input := getOrCreateInput(c.ecs)

	input.Current[cfg.ActionPanel] = true
	UpdateSettings(c.ecs)
	if !IsSettingsOpen(c.ecs) {
		t.Fatal("panel did not open")
	}
	// Held key does not toggle again.
	input.Previous = input.Current
	UpdateSettings(c.ecs)
	if !IsSettingsOpen(c.ecs) {
		t.Fatal("held key closed the panel")
	}

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionMute] = true
	UpdateSettings(c.ecs)
	if !GetOrCreateSettings(c.ecs).Muted || !GetOrCreateAudio(c.ecs).Muted {
		t.Error("mute shortcut did not mute")
	}
}

func TestStepVolume(t *testing.T) {
	c := newConsole(t)
	s := GetOrCreateSettings(c.ecs)
	s.Volume = 0.5

	StepVolume(c.ecs)
	if s.Volume != 0.75 || GetOrCreateAudio(c.ecs).Volume != 0.75 {
		t.Errorf("volume = %v / %v, want 0.75", s.Volume, GetOrCreateAudio(c.ecs).Volume)
	}
}

func TestIndicatorFollowsTones(t *testing.T) {
	c := newConsole(t)
	led := func() *components.IndicatorData {
		entry, _ := components.Indicator.First(c.ecs.World)
		return components.Indicator.Get(entry)
	}

	NewConsoleBuzzer(c.ecs).Tone(game.ToneFrequency, game.CueToneTime)
	updateIndicators(c.ecs, 0.01)
	if led().Level != 1 {
		t.Fatalf("Level = %v, want 1 on the tone frame", led().Level)
	}

	updateIndicators(c.ecs, 0.02)
	if l := led().Level; l <= 0 || l >= 1 {
		t.Errorf("Level = %v, want a partial fade", l)
	}

	for i := 0; i < 10; i++ {
		updateIndicators(c.ecs, 0.02)
	}
	if led().Level != 0 || led().Fade != nil {
		t.Errorf("Level = %v, want the LED off once the fade ends", led().Level)
	}
}

func TestButtonGlow(t *testing.T) {
	c := newConsole(t)
	entry, _ := components.Button.First(c.ecs.World)
	b := components.Button.Get(entry)

	b.Pressed = true
	updateIndicators(c.ecs, 0.01)
	if b.Glow != 1 {
		t.Fatalf("Glow = %v, want 1 while held", b.Glow)
	}

	b.Pressed = false
	updateIndicators(c.ecs, 0.05)
	if b.Glow <= 0 || b.Glow >= 1 {
		t.Errorf("Glow = %v, want a partial fade after release", b.Glow)
	}
	for i := 0; i < 20; i++ {
		updateIndicators(c.ecs, 0.05)
	}
	if b.Glow != 0 {
		t.Errorf("Glow = %v, want 0 after the fade", b.Glow)
	}
}

func TestHUDLine(t *testing.T) {
	snap := game.Snapshot{State: game.StateRoundActive, Round: 3, Scores: [game.Players]uint32{2, 1}}

	got := HUDLine(snap, components.SettingsData{Muted: true}, components.InputKeyboard)
	want := "round-active  round 3  2:1  muted  Tab: settings  M: mute"
	if got != want {
		t.Errorf("HUDLine() = %q, want %q", got, want)
	}

	got = HUDLine(game.Snapshot{}, components.SettingsData{}, components.InputXbox)
	if !strings.HasPrefix(got, "start  Back") {
		t.Errorf("HUDLine() = %q, want the start state with the gamepad hint", got)
	}
}

func TestDecodeSettings(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    *SavedSettings
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"valid", `{"volume":0.25,"muted":true,"scale":3}`, &SavedSettings{Volume: 0.25, Muted: true, Scale: 3}, false},
		{"clamped", `{"volume":7,"scale":0}`, &SavedSettings{Volume: 1, Scale: cfg.C.Scale}, false},
		{"broken", `{"volume":`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeSettings([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("decodeSettings() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLCDGeometry(t *testing.T) {
	lcd := cfg.LCDConfig{X: 10, Y: 20, CellWidth: 5, CellHeight: 8, CellGap: 1, Padding: 2}

	if got, want := CellRect(lcd, 0, 0), (Rect{12, 22, 5, 8}); got != want {
		t.Errorf("CellRect(0, 0) = %+v, want %+v", got, want)
	}
	if got, want := CellRect(lcd, 15, 1), (Rect{102, 31, 5, 8}); got != want {
		t.Errorf("CellRect(15, 1) = %+v, want %+v", got, want)
	}

	glass := GlassRect(lcd)
	last := CellRect(lcd, game.Cols-1, game.Rows-1)
	if glass.X+glass.W != last.X+last.W+lcd.Padding || glass.Y+glass.H != last.Y+last.H+lcd.Padding {
		t.Errorf("GlassRect() = %+v does not end one padding past the last cell %+v", glass, last)
	}
}

func TestBlend(t *testing.T) {
	from := color.RGBA{0, 0, 0, 255}
	to := color.RGBA{200, 100, 50, 255}

	tests := []struct {
		t    float32
		want color.RGBA
	}{
		{0, from},
		{1, to},
		{0.5, color.RGBA{100, 50, 25, 255}},
		{-1, from},
		{2, to},
	}
	for _, tt := range tests {
		if got := Blend(from, to, tt.t); got != tt.want {
			t.Errorf("Blend(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestLevels(t *testing.T) {
	var input components.InputData
	input.Current[cfg.ActionPlayer2] = true
	input.Current[cfg.ActionControl] = true

	want := game.Levels{Control: true, Players: [game.Players]bool{false, true}}
	if got := Levels(&input); got != want {
		t.Errorf("Levels() = %+v, want %+v", got, want)
	}
}
