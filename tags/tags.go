package tags

import "github.com/yohamta/donburi"

var (
	Console   = donburi.NewTag().SetName("Console")
	Button    = donburi.NewTag().SetName("Button")
	Indicator = donburi.NewTag().SetName("Indicator")
)

// Resolv tags for pointer hit-testing
const (
	ResolvButton = "button"
	ResolvCursor = "cursor"
)
