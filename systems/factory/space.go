package factory

import (
	"github.com/automoto/boxdrag/archetypes"
	"github.com/automoto/boxdrag/components"
	"github.com/automoto/boxdrag/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the hit-test space along with the pointer probe
func CreateSpace(ecs *ecs.ECS, width, height, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, NewSpaceData(width, height, cellSize))
	return space
}

// NewSpaceData builds a resolv space with a 1x1 probe already added
func NewSpaceData(width, height, cellSize int) components.SpaceData {
	space := resolv.NewSpace(width, height, cellSize, cellSize)
	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	space.Add(probe)
	return components.SpaceData{Space: space, Probe: probe}
}
