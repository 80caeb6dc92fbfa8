package factory

import (
	"image/color"
	"math/rand"

	"github.com/automoto/boxdrag/archetypes"
	"github.com/automoto/boxdrag/components"
	cfg "github.com/automoto/boxdrag/config"
	"github.com/automoto/boxdrag/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBox creates a draggable square box bound to the configured input
// vocabulary.
func CreateBox(ecs *ecs.ECS, x, y, size float64, fill color.RGBA, z int) *donburi.Entry {
	box := archetypes.Box.Spawn(ecs)

	components.Spatial.SetValue(box, components.SpatialData{
		X: x, Y: y, W: size, H: size,
		Active: true,
	})
	components.Input.SetValue(box, components.NewInputData(cfg.Input.States, cfg.Input.Actions))
	components.Appearance.SetValue(box, components.AppearanceData{Fill: fill, Z: z})

	obj := resolv.NewObject(x, y, size, size, tags.ResolvDraggable)
	obj.Data = box // Link for O(1) lookup
	components.Object.SetValue(box, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return box
}

// CreateBoxes lays out cfg.Boxes in a row with random colours
func CreateBoxes(ecs *ecs.ECS) []*donburi.Entry {
	boxes := make([]*donburi.Entry, 0, cfg.Boxes.Count)
	for i := 0; i < cfg.Boxes.Count; i++ {
		x := cfg.Boxes.X + float64(i)*cfg.Boxes.Spacing
		boxes = append(boxes, CreateBox(ecs, x, cfg.Boxes.Y, cfg.Boxes.Size, randomFill(), i))
	}
	return boxes
}

func randomFill() color.RGBA {
	return color.RGBA{
		R: uint8(64 + rand.Intn(192)),
		G: uint8(64 + rand.Intn(192)),
		B: uint8(64 + rand.Intn(192)),
		A: 255,
	}
}
