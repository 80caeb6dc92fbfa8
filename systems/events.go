package systems

import (
	"log"

	"github.com/automoto/boxdrag/systems/dragdrop"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ActionEvent is one resolved action addressed to an entity
type ActionEvent struct {
	Action string
	Event  dragdrop.Event
	Pos    dragdrop.Point
	Target donburi.Entity
}

// ActionEventType carries pointer actions from the pointer system to the drag system
var ActionEventType = events.NewEventType[ActionEvent]()

// SubscribeDragDrop delivers every ActionEvent in world to dd.OnAction.
// Structural errors are logged and the event is dropped.
func SubscribeDragDrop(world donburi.World, dd *dragdrop.System) {
	ActionEventType.Subscribe(world, func(w donburi.World, e ActionEvent) {
		if !w.Valid(e.Target) {
			return
		}
		if err := dd.OnAction(e.Action, e.Event, e.Pos, w.Entry(e.Target)); err != nil {
			log.Printf("[dragdrop] %q (%v) on %v: %v", e.Action, e.Event.Trigger, e.Target, err)
		}
	})
}

// ProcessActionEvents flushes queued ActionEvents in publish order
func ProcessActionEvents(ecs *ecs.ECS) {
	ActionEventType.ProcessEvents(ecs.World)
}
