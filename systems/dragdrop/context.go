package dragdrop

// State is the per-entity drag lifecycle state
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "Dragging"
	}
	return "Idle"
}

// Context is the transient drag record for one entity
type Context struct {
	State State

	// Pointer-to-origin offset captured on press
	OffsetX, OffsetY float64

	// Pointer position of the previous event addressed to this entity
	PrevX, PrevY float64

	VelocityX, VelocityY float64

	// Spatial size cached on first press
	Width, Height float64
	SizeCached    bool
}

// reset returns the record to neutral. The cached size survives.
func (c *Context) reset() {
	c.State = Idle
	c.OffsetX, c.OffsetY = 0, 0
	c.VelocityX, c.VelocityY = 0, 0
}

func (c *Context) clearOffset() {
	c.OffsetX, c.OffsetY = 0, 0
}
