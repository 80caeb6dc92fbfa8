package factory

import (
	"image/color"
	"testing"

	"github.com/automoto/boxdrag/components"
	cfg "github.com/automoto/boxdrag/config"
	"github.com/automoto/boxdrag/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestNewSpaceDataAddsProbe(t *testing.T) {
	sd := NewSpaceData(640, 480, 16)
	if sd.Probe == nil || !sd.Probe.HasTags(tags.ResolvProbe) {
		t.Fatal("probe missing or untagged")
	}
	found := false
	for _, obj := range sd.Objects() {
		if obj == sd.Probe {
			found = true
		}
	}
	if !found {
		t.Error("probe not added to space")
	}
}

func TestCreateBoxLinksObject(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 800, 600, 32)

	fill := color.RGBA{10, 20, 30, 255}
	box := CreateBox(e, 40, 60, 75, fill, 3)

	sp := components.Spatial.Get(box)
	if sp.X != 40 || sp.Y != 60 || sp.W != 75 || sp.H != 75 || !sp.Active {
		t.Errorf("spatial = %+v", *sp)
	}
	if !box.HasComponent(tags.Box) {
		t.Error("missing Box tag")
	}
	if a := components.Appearance.Get(box); a.Fill != fill || a.Z != 3 {
		t.Errorf("appearance = %+v", *a)
	}

	obj := components.Object.Get(box).Object
	if obj == nil || !obj.HasTags(tags.ResolvDraggable) {
		t.Fatal("resolv object missing or untagged")
	}
	if linked, ok := obj.Data.(*donburi.Entry); !ok || linked.Entity() != box.Entity() {
		t.Error("object not linked back to entry")
	}
	spaceEntry, _ := components.Space.First(e.World)
	var inSpace *resolv.Object
	for _, o := range components.Space.Get(spaceEntry).Objects() {
		if o == obj {
			inSpace = o
		}
	}
	if inSpace == nil {
		t.Error("object not added to space")
	}

	if _, ok := components.Input.Get(box).ResolveAction("box clicked"); !ok {
		t.Error("box did not receive the configured input bindings")
	}
}

func TestCreateBoxesLaysOutRow(t *testing.T) {
	prev := cfg.Boxes
	t.Cleanup(func() { cfg.Boxes = prev })
	cfg.Boxes = cfg.BoxesConfig{Count: 4, X: 10, Y: 20, Spacing: 30, Size: 5}

	e := ecs.NewECS(donburi.NewWorld())
	boxes := CreateBoxes(e)
	if len(boxes) != 4 {
		t.Fatalf("got %d boxes, want 4", len(boxes))
	}
	for i, b := range boxes {
		sp := components.Spatial.Get(b)
		if want := 10 + float64(i)*30; sp.X != want || sp.Y != 20 {
			t.Errorf("box %d at (%v, %v), want (%v, 20)", i, sp.X, sp.Y, want)
		}
		if z := components.Appearance.Get(b).Z; z != i {
			t.Errorf("box %d Z = %d", i, z)
		}
	}
}

func TestCreatePointersStartsFocused(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	p := components.Pointers.Get(CreatePointers(e))
	if !p.Focused {
		t.Error("pointer tracker should start focused")
	}
}
