package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/boxdrag/components"
	"github.com/automoto/boxdrag/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const liftPixels = 6

var (
	drawableBoxes = donburi.NewQuery(filter.Contains(components.Spatial, components.Appearance))
	shadowColor   = color.RGBA{0, 0, 0, 96}
	boxesBuf      []*donburi.Entry
)

// DrawBoxes draws every box in Z order with the dragged box on top.
// Suspended boxes are drawn dimmed.
func DrawBoxes(ecs *ecs.ECS, screen *ebiten.Image) {
	boxesBuf = boxesBuf[:0]
	drawableBoxes.Each(ecs.World, func(e *donburi.Entry) {
		boxesBuf = append(boxesBuf, e)
	})
	sort.SliceStable(boxesBuf, func(i, j int) bool {
		return drawKey(boxesBuf[i]) < drawKey(boxesBuf[j])
	})

	for _, e := range boxesBuf {
		sp := components.Spatial.Get(e)
		fill := components.Appearance.Get(e).Fill

		var level float32
		if e.HasComponent(components.Highlight) {
			level = components.Highlight.Get(e).Level
		}

		x, y := float32(sp.X), float32(sp.Y)
		w, h := float32(sp.W), float32(sp.H)
		if level > 0 {
			lift := level * liftPixels
			vector.FillRect(screen, x+lift, y+lift, w, h, shadowColor, false)
			x -= lift / 2
			y -= lift / 2
		}
		if !sp.Active {
			fill = dim(fill)
		}
		vector.FillRect(screen, x, y, w, h, fill, false)
	}
}

// drawKey orders by Z, pushing the dragged box above everything
func drawKey(e *donburi.Entry) int {
	if e.HasComponent(tags.Dragging) {
		return math.MaxInt
	}
	return components.Appearance.Get(e).Z
}

func dim(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A}
}
