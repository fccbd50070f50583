package archetypes

import (
	"github.com/automoto/reflexo/components"
	cfg "github.com/automoto/reflexo/config"
	"github.com/automoto/reflexo/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Console = newArchetype(
		tags.Console,
		components.Console,
		components.LCD,
	)
	Button = newArchetype(
		tags.Button,
		components.Button,
		components.Object,
	)
	Indicator = newArchetype(
		tags.Indicator,
		components.Indicator,
	)
	Space = newArchetype(
		components.Space,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
