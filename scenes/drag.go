package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/boxdrag/archetypes"
	"github.com/automoto/boxdrag/components"
	cfg "github.com/automoto/boxdrag/config"
	"github.com/automoto/boxdrag/systems"
	"github.com/automoto/boxdrag/systems/dragdrop"
	"github.com/automoto/boxdrag/systems/factory"
	"github.com/automoto/boxdrag/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const hitTestCellSize = 32

var background = color.RGBA{24, 24, 32, 255}

// DragScene shows a row of boxes that can be dragged with mouse or touch
type DragScene struct {
	ecs     *ecs.ECS
	drag    *dragdrop.System
	watcher *cfg.Watcher
	once    sync.Once
}

// NewDragScene creates the scene. watcher may be nil to disable live
// reloading of drag tuning.
func NewDragScene(watcher *cfg.Watcher) *DragScene {
	return &DragScene{watcher: watcher}
}

func (ds *DragScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
}

func (ds *DragScene) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DragScene) configure() {
	ds.ecs = ecs.NewECS(donburi.NewWorld())

	factory.CreateSpace(ds.ecs, cfg.C.Width, cfg.C.Height, hitTestCellSize)
	factory.CreatePointers(ds.ecs)
	factory.CreateBoxes(ds.ecs)

	members := dragdrop.QueryMembers(ds.ecs.World,
		donburi.NewQuery(filter.Contains(tags.Box, components.Spatial)))
	ds.drag = dragdrop.NewSystem(members, nil)
	systems.SubscribeDragDrop(ds.ecs.World, ds.drag)

	if ds.watcher != nil {
		ds.ecs.AddSystem(systems.NewUpdateConfigReload(ds.watcher))
	}
	ds.ecs.AddSystem(systems.UpdateObjects)
	ds.ecs.AddSystem(systems.NewUpdatePointers(ds.drag))
	ds.ecs.AddSystem(systems.ProcessActionEvents)
	ds.ecs.AddSystem(func(e *ecs.ECS) { ds.drag.Update(e.World) })
	ds.ecs.AddSystem(systems.UpdateHighlights)

	ds.ecs.AddRenderer(archetypes.Default, systems.DrawBoxes)
	ds.ecs.AddRenderer(archetypes.Default, systems.NewDrawDebug(ds.drag))
}
