package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read at startup
const (
	EnvConfigPath = "REFLEXO_CONFIG"
	EnvLogLevel   = "REFLEXO_LOG_LEVEL"
)

// File is the optional YAML configuration file.
type File struct {
	Window struct {
		Scale float64 `yaml:"scale"`
	} `yaml:"window"`
	LogLevel string `yaml:"log_level"`
	LCD      struct {
		Backlight string `yaml:"backlight"`
		Text      string `yaml:"text"`
	} `yaml:"lcd"`
	Audio struct {
		Volume *float64 `yaml:"volume"`
		Muted  *bool    `yaml:"muted"`
	} `yaml:"audio"`
	Bindings map[string][]ebiten.Key `yaml:"bindings"`
}

// LoadEnv loads .env files into the process environment. Missing files are
// not an error and variables that are already set keep their value.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ConfigPath picks the config file path: the flag value if set, otherwise
// the environment. An empty result means no file.
func ConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &f, nil
}

// Apply copies the values set in the file over the global configuration.
// Nothing is changed if any value is invalid.
func (f *File) Apply() error {
	backlight, text := LCD.Backlight, LCD.TextColor
	var err error
	if f.LCD.Backlight != "" {
		if backlight, err = ParseColor(f.LCD.Backlight); err != nil {
			return fmt.Errorf("lcd backlight: %w", err)
		}
	}
	if f.LCD.Text != "" {
		if text, err = ParseColor(f.LCD.Text); err != nil {
			return fmt.Errorf("lcd text: %w", err)
		}
	}
	if f.Window.Scale < 0 {
		return fmt.Errorf("window scale %v is negative", f.Window.Scale)
	}
	if v := f.Audio.Volume; v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("audio volume %v is outside [0, 1]", *v)
	}

	keys := make(map[ActionID][]ebiten.Key, len(f.Bindings))
	for name, k := range f.Bindings {
		id, ok := ParseAction(name)
		if !ok {
			return fmt.Errorf("unknown action %q in bindings", name)
		}
		keys[id] = k
	}

	LCD.Backlight, LCD.TextColor = backlight, text
	if f.Window.Scale > 0 {
		C.Scale = f.Window.Scale
	}
	if f.LogLevel != "" {
		C.LogLevel = f.LogLevel
	}
	if f.Audio.Volume != nil {
		Audio.DefaultVolume = *f.Audio.Volume
	}
	if f.Audio.Muted != nil {
		Audio.Muted = *f.Audio.Muted
	}
	for id, k := range keys {
		b := Input.Bindings[id]
		b.Keys = k
		Input.Bindings[id] = b
	}
	return nil
}

// ApplyEnv applies overrides from the environment.
func ApplyEnv() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		C.LogLevel = level
	}
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
