package config

// SettingsPanelConfig contains settings panel configuration
type SettingsPanelConfig struct {
	VolumeSteps []float64
	Scales      []float64 // Selectable window size multipliers
}

// SettingsPanel is the global settings panel configuration
var SettingsPanel SettingsPanelConfig

func init() {
	SettingsPanel = SettingsPanelConfig{
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
		Scales:      []float64{1, 1.5, 2, 3},
	}
}

// NextStep returns the entry of steps following current, wrapping around.
// A value that is not in steps restarts from the first entry.
func NextStep(steps []float64, current float64) float64 {
	if len(steps) == 0 {
		return current
	}
	for i, s := range steps {
		if s == current {
			return steps[(i+1)%len(steps)]
		}
	}
	return steps[0]
}
