package archetypes

import (
	"github.com/automoto/boxdrag/components"
	"github.com/automoto/boxdrag/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer
const Default ecs.LayerID = 0

var (
	Box = newArchetype(
		tags.Box,
		components.Spatial,
		components.Input,
		components.Object,
		components.Highlight,
		components.Appearance,
	)
	Space = newArchetype(
		components.Space,
	)
	Pointers = newArchetype(
		components.Pointers,
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
		Default,
		append(a.components, cs...)...,
	))
	return e
}
