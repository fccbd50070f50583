package systems

import (
	"image/color"

	"github.com/automoto/reflexo/components"
	cfg "github.com/automoto/reflexo/config"
	"github.com/automoto/reflexo/fonts"
	"github.com/automoto/reflexo/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// CellRect returns the screen rectangle of one LCD character cell.
func CellRect(lcd cfg.LCDConfig, col, row int) Rect {
	return Rect{
		X: lcd.X + lcd.Padding + float64(col)*(lcd.CellWidth+lcd.CellGap),
		Y: lcd.Y + lcd.Padding + float64(row)*(lcd.CellHeight+lcd.CellGap),
		W: lcd.CellWidth,
		H: lcd.CellHeight,
	}
}

// GlassRect returns the lit area of the LCD.
func GlassRect(lcd cfg.LCDConfig) Rect {
	return Rect{
		X: lcd.X,
		Y: lcd.Y,
		W: 2*lcd.Padding + game.Cols*lcd.CellWidth + (game.Cols-1)*lcd.CellGap,
		H: 2*lcd.Padding + game.Rows*lcd.CellHeight + (game.Rows-1)*lcd.CellGap,
	}
}

// DrawConsole renders the console body, the LCD, the buttons and the LED.
func DrawConsole(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Panel.BodyColor)

	if lcd := getLCD(e); lcd != nil {
		drawLCD(screen, &lcd.Frame)
	}

	labelFont := fonts.Label.Get()
	components.Button.Each(e.World, func(entry *donburi.Entry) {
		drawButton(screen, components.Button.Get(entry), labelFont)
	})

	components.Indicator.Each(e.World, func(entry *donburi.Entry) {
		led := components.Indicator.Get(entry)
		vector.FillCircle(screen,
			float32(cfg.Panel.LEDX), float32(cfg.Panel.LEDY), float32(cfg.Panel.LEDRadius),
			Blend(cfg.Panel.LEDOffColor, cfg.Panel.LEDOnColor, led.Level), true)
	})
}

func drawLCD(screen *ebiten.Image, frame *game.Frame) {
	lcd := cfg.LCD
	glass := GlassRect(lcd)

	// Bezel
	m := lcd.BezelMargin
	fillRect(screen, Rect{glass.X - m, glass.Y - m, glass.W + 2*m, glass.H + 2*m}, lcd.BezelColor)
	fillRect(screen, glass, lcd.Backlight)

	face := fonts.LCD.Get()
	metrics := face.Metrics()
	ascent, descent := metrics.Ascent.Round(), metrics.Descent.Round()

	for row := 0; row < game.Rows; row++ {
		for col := 0; col < game.Cols; col++ {
			cell := CellRect(lcd, col, row)
			fillRect(screen, cell, lcd.CellColor)

			ch := frame.Cell(col, row)
			if ch == ' ' {
				continue
			}
			adv, _ := face.GlyphAdvance(ch)
			x := int(cell.X) + (int(cell.W)-adv.Round())/2
			y := int(cell.Y) + (int(cell.H)+ascent-descent)/2
			text.Draw(screen, string(ch), face, x, y, lcd.TextColor)
		}
	}
}

func drawButton(screen *ebiten.Image, b *components.ButtonData, labelFont font.Face) {
	bc := b.Config
	x, y, r := float32(bc.X), float32(bc.Y), float32(bc.Radius)

	// Glow ring, then the cap sunk a little while held
	if b.Glow > 0 {
		vector.FillCircle(screen, x, y, r+4, Blend(cfg.Panel.BodyColor, cfg.Panel.GlowColor, b.Glow*0.6), true)
	}
	capColor := bc.Color
	if b.Pressed {
		capColor = Blend(bc.Color, cfg.Black, 0.35)
	}
	vector.FillCircle(screen, x, y, r, capColor, true)

	bounds := font.MeasureString(labelFont, bc.Label)
	lx := int(bc.X) - bounds.Round()/2
	ly := int(bc.Y+bc.Radius) + 20
	text.Draw(screen, bc.Label, labelFont, lx, ly, cfg.Panel.HUDColor)
}

func fillRect(screen *ebiten.Image, r Rect, clr color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// Blend mixes two colors, t=0 giving from and t=1 giving to.
func Blend(from, to color.RGBA, t float32) color.RGBA {
	t = min(max(t, 0), 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}
