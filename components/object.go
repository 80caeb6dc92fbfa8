package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its resolv object for pointer hit testing.
// The object mirrors SpatialData and is synced once per frame.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the hit-test space plus the 1x1 probe moved to the pointer
type SpaceData struct {
	*resolv.Space
	Probe *resolv.Object
}

var Space = donburi.NewComponentType[SpaceData]()
