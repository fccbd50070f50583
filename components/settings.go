package components

import "github.com/yohamta/donburi"

// SettingsData holds the simulator settings shown in the panel
type SettingsData struct {
	IsOpen bool
	Volume float64
	Muted  bool
	Scale  float64
}

var Settings = donburi.NewComponentType[SettingsData]()
