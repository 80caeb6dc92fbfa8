package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/boxdrag/components"
	"github.com/automoto/boxdrag/systems/factory"
)

func TestSyncObjectsMirrorsSpatial(t *testing.T) {
	e := newTestECS()
	box := factory.CreateBox(e, 10, 10, 20, color.RGBA{A: 255}, 0)

	sp := components.Spatial.Get(box)
	sp.X, sp.Y, sp.W = 50, 60, 30
	syncObjects(e.World)

	obj := components.Object.Get(box)
	if obj.X != 50 || obj.Y != 60 || obj.W != 30 || obj.H != 20 {
		t.Errorf("object = (%v, %v, %v, %v), want (50, 60, 30, 20)", obj.X, obj.Y, obj.W, obj.H)
	}
}
