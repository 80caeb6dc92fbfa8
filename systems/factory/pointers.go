package factory

import (
	"github.com/automoto/boxdrag/archetypes"
	"github.com/automoto/boxdrag/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePointers creates the singleton pointer tracker
func CreatePointers(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Pointers.Spawn(ecs)
	components.Pointers.Get(e).Focused = true
	return e
}
