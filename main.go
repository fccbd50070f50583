package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/reflexo/config"
	"github.com/automoto/reflexo/fonts"
	"github.com/automoto/reflexo/scenes"
	"github.com/automoto/reflexo/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(saved *systems.SavedSettings) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewConsoleScene(clockwork.NewRealClock(), saved),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (env "+config.EnvConfigPath+")")
	scale := flag.Float64("scale", 0, "window scale, overrides the config and saved settings")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	mute := flag.Bool("mute", false, "start with the buzzer muted")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load .env file if it exists
	if err := config.LoadEnv(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}
	if path := config.ConfigPath(*configPath); path != "" {
		if err := loadConfigFile(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("ignoring config file")
		}
	}
	config.ApplyEnv()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence("reflexo"); err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
	}
	saved := systems.LoadSettings()
	systems.ApplySavedSettingsGlobal(saved)

	// Flags win over everything else
	if *logLevel != "" {
		config.C.LogLevel = *logLevel
	}
	if *scale > 0 {
		config.C.Scale = *scale
		if saved != nil {
			saved.Scale = *scale
		}
	}
	if *mute {
		config.Audio.Muted = true
		if saved != nil {
			saved.Muted = true
		}
	}
	setLogLevel(config.C.LogLevel)

	if err := fonts.LoadDefaults(config.LCD.FontSize); err != nil {
		log.Fatal().Err(err).Msg("could not load fonts")
	}
	systems.PreloadTones()

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(int(float64(config.C.Width)*config.C.Scale), int(float64(config.C.Height)*config.C.Scale))

	log.Info().Str("version", "dev").Float64("scale", config.C.Scale).Msg("starting console")
	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

func loadConfigFile(path string) error {
	f, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	return f.Apply()
}

func setLogLevel(name string) {
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		log.Warn().Str("level", name).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}
