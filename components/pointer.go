package components

import "github.com/yohamta/donburi"

// MaxPointers is the number of tracked pointers: 0 is the mouse, 1-9 are touches
const MaxPointers = 10

// PointerState tracks one mouse or touch pointer between frames
type PointerState struct {
	Down         bool
	LastX, LastY float64

	// Entity the pointer was over when pressed. Every event up to the
	// release is routed to it.
	Target    donburi.Entity
	HasTarget bool

	// Touch slot bookkeeping
	TouchID int
	Used    bool
}

// PointersData is the singleton pointer tracker
type PointersData struct {
	Pointers [MaxPointers]PointerState
	Focused  bool
}

var Pointers = donburi.NewComponentType[PointersData]()
