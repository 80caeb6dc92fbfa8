package systems

import (
	"github.com/automoto/boxdrag/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var spatialObjects = donburi.NewQuery(filter.Contains(components.Spatial, components.Object))

// UpdateObjects copies every SpatialData into its resolv object so hit tests
// match what was drawn last frame.
func UpdateObjects(ecs *ecs.ECS) {
	syncObjects(ecs.World)
}

func syncObjects(world donburi.World) {
	spatialObjects.Each(world, func(e *donburi.Entry) {
		sp := components.Spatial.Get(e)
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}
		obj.X, obj.Y, obj.W, obj.H = sp.X, sp.Y, sp.W, sp.H
		obj.Update()
	})
}
