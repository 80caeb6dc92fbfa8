package systems

import (
	"slices"

	"github.com/automoto/boxdrag/components"
	cfg "github.com/automoto/boxdrag/config"
	"github.com/automoto/boxdrag/shared/gamemath"
	"github.com/automoto/boxdrag/systems/dragdrop"
	"github.com/automoto/boxdrag/systems/factory"
	"github.com/automoto/boxdrag/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for touch IDs to avoid allocations
var (
	touchIDs []ebiten.TouchID
	present  []int
)

// NewUpdatePointers returns a system that polls the mouse and touches and
// publishes one ActionEvent per action bound to each resulting trigger.
// Must run after UpdateObjects so hit tests see this frame's positions.
// dd, if set, is force-released when the window loses focus.
func NewUpdatePointers(dd *dragdrop.System) ecs.System {
	return func(ecs *ecs.ECS) {
		pointers := getOrCreatePointers(ecs)

		focused := ebiten.IsFocused()
		if !focused && pointers.Focused {
			loseFocus(ecs.World, pointers, dd)
		}
		pointers.Focused = focused
		if !focused {
			return
		}

		mx, my := ebiten.CursorPosition()
		left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		processPointer(ecs.World, pointers, 0, float64(mx), float64(my), left, false)

		processTouches(ecs.World, pointers)
	}
}

// loseFocus cancels every held pointer. Losing focus mid-drag would swallow
// the release, and entities that bind no cancel action would stay dragged,
// so the drag itself is also dropped.
func loseFocus(world donburi.World, pointers *components.PointersData, dd *dragdrop.System) {
	cancelPointers(world, pointers)
	if dd != nil {
		dd.ForceRelease()
	}
}

// processTouches handles touch input (pointers 1-9)
func processTouches(world donburi.World, pointers *components.PointersData) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])

	present = present[:0]
	for _, tid := range touchIDs {
		slot := touchSlot(pointers, int(tid))
		if slot < 0 {
			continue
		}
		present = append(present, int(tid))
		tx, ty := ebiten.TouchPosition(tid)
		processPointer(world, pointers, slot, float64(tx), float64(ty), true, true)
	}

	endMissingTouches(world, pointers, present)
}

// endMissingTouches frees every touch slot whose ID is not in present. A
// touch that vanished without us seeing it lift still ends its drag.
func endMissingTouches(world donburi.World, pointers *components.PointersData, present []int) {
	for i := 1; i < components.MaxPointers; i++ {
		ps := &pointers.Pointers[i]
		if !ps.Used || slices.Contains(present, ps.TouchID) {
			continue
		}
		if ps.Down {
			processPointer(world, pointers, i, ps.LastX, ps.LastY, false, true)
		}
		ps.Used = false
		ps.TouchID = 0
	}
}

// touchSlot maps a touch ID to a pointer slot (1-9), allocating one if
// needed. Returns -1 if every slot is taken.
func touchSlot(pointers *components.PointersData, tid int) int {
	for i := 1; i < components.MaxPointers; i++ {
		if pointers.Pointers[i].Used && pointers.Pointers[i].TouchID == tid {
			return i
		}
	}
	for i := 1; i < components.MaxPointers; i++ {
		if !pointers.Pointers[i].Used {
			pointers.Pointers[i] = components.PointerState{Used: true, TouchID: tid}
			return i
		}
	}
	return -1
}

// sampleTrigger advances one pointer's state and returns the trigger the
// sample produced, or TriggerNone.
func sampleTrigger(ps *components.PointerState, x, y float64, pressed, touch bool) cfg.Trigger {
	moved := x != ps.LastX || y != ps.LastY
	ps.LastX, ps.LastY = x, y

	switch {
	case pressed && !ps.Down:
		ps.Down = true
		if touch {
			return cfg.TriggerTouch
		}
		return cfg.TriggerMouseLeftDown
	case !pressed && ps.Down:
		ps.Down = false
		if touch {
			return cfg.TriggerTouchEnd
		}
		return cfg.TriggerMouseLeftUp
	case moved && ps.Down && touch:
		return cfg.TriggerTouchMove
	case moved && !touch:
		// Hover moves are reported too; the lifecycle ignores them when idle.
		return cfg.TriggerMouseMove
	}
	return cfg.TriggerNone
}

// pressTriggerFor returns the trigger whose held states a release ends
func pressTriggerFor(release cfg.Trigger) cfg.Trigger {
	switch release {
	case cfg.TriggerMouseLeftUp, cfg.TriggerPointerCancel:
		return cfg.TriggerMouseLeftDown
	case cfg.TriggerTouchEnd, cfg.TriggerTouchCancel:
		return cfg.TriggerTouch
	}
	return cfg.TriggerNone
}

func processPointer(world donburi.World, pointers *components.PointersData, id int, x, y float64, pressed, touch bool) {
	ps := &pointers.Pointers[id]
	trigger := sampleTrigger(ps, x, y, pressed, touch)
	if trigger == cfg.TriggerNone {
		return
	}

	var target *donburi.Entry
	switch trigger {
	case cfg.TriggerMouseLeftDown, cfg.TriggerTouch:
		target = hitTest(world, x, y)
		ps.HasTarget = target != nil
		if target != nil {
			ps.Target = target.Entity()
		}
		updateHeldStates(world, trigger, target, true)
	case cfg.TriggerMouseLeftUp, cfg.TriggerTouchEnd:
		target = capturedTarget(world, ps)
		ps.HasTarget = false
		updateHeldStates(world, pressTriggerFor(trigger), nil, false)
	default:
		if ps.Down {
			target = capturedTarget(world, ps)
		} else {
			target = hitTest(world, x, y)
		}
	}

	publishTrigger(world, target, trigger, id, x, y)
}

// cancelPointers ends every held pointer with a cancel trigger addressed to
// the entity it captured.
func cancelPointers(world donburi.World, pointers *components.PointersData) {
	for i := range pointers.Pointers {
		ps := &pointers.Pointers[i]
		if !ps.Down {
			continue
		}
		trigger := cfg.TriggerPointerCancel
		if i > 0 {
			trigger = cfg.TriggerTouchCancel
		}
		target := capturedTarget(world, ps)
		ps.Down = false
		ps.HasTarget = false
		updateHeldStates(world, pressTriggerFor(trigger), nil, false)
		publishTrigger(world, target, trigger, i, ps.LastX, ps.LastY)
	}
}

func capturedTarget(world donburi.World, ps *components.PointerState) *donburi.Entry {
	if !ps.HasTarget || !world.Valid(ps.Target) {
		return nil
	}
	return world.Entry(ps.Target)
}

// updateHeldStates marks states bound to trigger on every entity with an
// Input component. Exclusive states are only set on target.
func updateHeldStates(world donburi.World, trigger cfg.Trigger, target *donburi.Entry, held bool) {
	if trigger == cfg.TriggerNone {
		return
	}
	components.Input.Each(world, func(entry *donburi.Entry) {
		input := components.Input.Get(entry)
		isTarget := target != nil && entry.Entity() == target.Entity()
		for _, s := range input.StatesFor(trigger) {
			if held && s.Exclusive && !isTarget {
				continue
			}
			input.SetHeld(s.Name, held)
		}
	})
}

func publishTrigger(world donburi.World, target *donburi.Entry, trigger cfg.Trigger, pointerID int, x, y float64) {
	if target == nil || !target.HasComponent(components.Input) {
		return
	}
	input := components.Input.Get(target)
	for _, name := range input.ActionsFor(trigger) {
		ActionEventType.Publish(world, ActionEvent{
			Action: name,
			Event:  dragdrop.Event{Trigger: trigger, PointerID: pointerID},
			Pos:    dragdrop.Point{X: x, Y: y},
			Target: target.Entity(),
		})
	}
}

// hitTest returns the topmost draggable entity under (x, y). The entity
// owning the drag always wins; otherwise the highest Z does.
func hitTest(world donburi.World, x, y float64) *donburi.Entry {
	spaceEntry, ok := components.Space.First(world)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)
	probe := space.Probe
	probe.X, probe.Y = x, y
	probe.Update()

	collision := probe.Check(0, 0, tags.ResolvDraggable)
	if collision == nil {
		return nil
	}

	var best *donburi.Entry
	bestZ := 0
	for _, obj := range collision.Objects {
		if !gamemath.PointInRect(x, y, obj.X, obj.Y, obj.W, obj.H) {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if entry.HasComponent(tags.Dragging) {
			return entry
		}
		z := 0
		if entry.HasComponent(components.Appearance) {
			z = components.Appearance.Get(entry).Z
		}
		if best == nil || z > bestZ {
			best, bestZ = entry, z
		}
	}
	return best
}

// getOrCreatePointers returns the singleton pointer tracker, creating if needed
func getOrCreatePointers(ecs *ecs.ECS) *components.PointersData {
	entry, ok := components.Pointers.First(ecs.World)
	if !ok {
		entry = factory.CreatePointers(ecs)
	}
	return components.Pointers.Get(entry)
}
