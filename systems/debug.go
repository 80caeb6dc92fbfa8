package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/boxdrag/components"
	cfg "github.com/automoto/boxdrag/config"
	"github.com/automoto/boxdrag/systems/dragdrop"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var outlineColor = color.RGBA{0, 255, 255, 255}

// NewDrawDebug returns a renderer that prints the drag state of dd and
// outlines every hit-test object.
func NewDrawDebug(dd *dragdrop.System) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		if !cfg.Debug.Overlay {
			return
		}

		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			space := components.Space.Get(spaceEntry)
			for _, obj := range space.Objects() {
				if obj == space.Probe {
					continue
				}
				x, y := float32(obj.X), float32(obj.Y)
				w, h := float32(obj.W), float32(obj.H)
				vector.FillRect(screen, x, y, w, 1, outlineColor, false)     // Top
				vector.FillRect(screen, x, y+h-1, w, 1, outlineColor, false) // Bottom
				vector.FillRect(screen, x, y, 1, h, outlineColor, false)     // Left
				vector.FillRect(screen, x+w-1, y, 1, h, outlineColor, false) // Right
			}
		}

		msg := fmt.Sprintf("TPS: %0.1f\nmouse ease %.2f  touch ease %.2f",
			ebiten.ActualTPS(), cfg.Drag.Mouse.Ease, cfg.Drag.Touch.Ease)
		if owner, ok := dd.Dragging(); ok {
			if c, ok := dd.Context(owner.Entity()); ok {
				msg += fmt.Sprintf("\ndragging %v\noffset (%.0f, %.0f)\nvelocity (%.2f, %.2f)",
					owner.Entity(), c.OffsetX, c.OffsetY, c.VelocityX, c.VelocityY)
			}
		} else {
			msg += "\nidle"
		}
		ebitenutil.DebugPrintAt(screen, msg, 4, 4)
	}
}
