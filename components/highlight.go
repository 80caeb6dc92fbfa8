package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HighlightData drives the lift effect drawn on a box while it is dragged.
// Level runs from 0 (resting) to 1 (fully lifted).
type HighlightData struct {
	Tween  *gween.Tween
	Level  float32
	Lifted bool
}

var Highlight = donburi.NewComponentType[HighlightData]()

// AppearanceData is a flat fill colour and stacking order. Higher Z draws
// on top and wins hit tests.
type AppearanceData struct {
	Fill color.RGBA
	Z    int
}

var Appearance = donburi.NewComponentType[AppearanceData]()
