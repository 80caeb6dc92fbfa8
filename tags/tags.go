package tags

import "github.com/yohamta/donburi"

var (
	Box = donburi.NewTag().SetName("Box")
	// Dragging marks the single entity that currently owns the drag.
	Dragging = donburi.NewTag().SetName("Dragging")
)

// Resolv tags for pointer hit testing
const (
	ResolvDraggable = "draggable"
	ResolvProbe     = "probe"
)
