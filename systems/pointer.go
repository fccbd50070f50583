package systems

import (
	"github.com/automoto/reflexo/components"
	cfg "github.com/automoto/reflexo/config"
	"github.com/automoto/reflexo/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ButtonAt returns the action of the console button under (x, y), or
// ActionNone.
func ButtonAt(space *resolv.Space, x, y float64) cfg.ActionID {
	// A one pixel probe finds the buttons sharing the cursor's cells; the
	// round shape is checked exactly afterwards.
	probe := resolv.NewObject(x, y, 1, 1, tags.ResolvCursor)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvButton)
	if check == nil {
		return cfg.ActionNone
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvButton) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		b := components.Button.Get(entry).Config
		dx, dy := x-b.X, y-b.Y
		if dx*dx+dy*dy <= b.Radius*b.Radius {
			return b.Action
		}
	}
	return cfg.ActionNone
}

func getSpace(ecs *ecs.ECS) (*resolv.Space, bool) {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Space.Get(entry).Space, true
}
