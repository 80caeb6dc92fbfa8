package components

import "github.com/yohamta/donburi"

// SpatialData is an entity's screen rectangle. Active is false while another
// entity owns the drag; inactive entities ignore input-driven movement.
type SpatialData struct {
	X, Y   float64
	W, H   float64
	Active bool
}

var Spatial = donburi.NewComponentType[SpatialData]()
