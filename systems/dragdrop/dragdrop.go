// Package dragdrop turns resolved pointer actions into exclusive, smoothed
// drags of Spatial entities.
//
// The engine calls System.OnAction once per input event addressed to an
// entity and System.Update once per frame. Only one entity owns the drag at
// a time; while it does, every other managed entity is suspended
// (SpatialData.Active = false) and ignores movement.
package dragdrop

import (
	"log"

	"github.com/automoto/boxdrag/components"
	cfg "github.com/automoto/boxdrag/config"
	"github.com/automoto/boxdrag/shared/gamemath"
	"github.com/automoto/boxdrag/tags"
	"github.com/yohamta/donburi"
)

// Point is a pointer position in screen space
type Point struct {
	X, Y float64
}

// Event is the raw input event that produced an action. The lifecycle does
// not inspect it; it is carried for callers and hooks.
type Event struct {
	Trigger   cfg.Trigger
	PointerID int
}

type transition int

const (
	transitionNone transition = iota
	transitionPress
	transitionMove
	transitionRelease
	transitionCancel
)

type path int

const (
	pathMouse path = iota
	pathTouch
)

func classify(t cfg.Trigger) (transition, path) {
	switch t {
	case cfg.TriggerMouseLeftDown:
		return transitionPress, pathMouse
	case cfg.TriggerTouch:
		return transitionPress, pathTouch
	case cfg.TriggerMouseMove:
		return transitionMove, pathMouse
	case cfg.TriggerTouchMove:
		return transitionMove, pathTouch
	case cfg.TriggerMouseLeftUp:
		return transitionRelease, pathMouse
	case cfg.TriggerTouchEnd:
		return transitionRelease, pathTouch
	case cfg.TriggerTouchCancel:
		return transitionCancel, pathTouch
	case cfg.TriggerPointerCancel:
		return transitionCancel, pathMouse
	}
	return transitionNone, pathMouse
}

// System is the drag lifecycle for one set of managed entities
type System struct {
	activation *Activation
	members    Members
	conf       *cfg.DragConfig

	contexts map[donburi.Entity]*Context
	owner    *donburi.Entry

	// OnProcess, if set, is called by Process for every managed entity.
	OnProcess func(entry *donburi.Entry)
}

// NewSystem creates a drag system over members. A nil conf reads the global
// cfg.Drag on every event so reloads take effect immediately.
func NewSystem(members Members, conf *cfg.DragConfig) *System {
	if conf == nil {
		conf = &cfg.Drag
	}
	return &System{
		activation: NewActivation(members),
		members:    members,
		conf:       conf,
		contexts:   make(map[donburi.Entity]*Context),
	}
}

// Dragging returns the entity that currently owns the drag
func (s *System) Dragging() (*donburi.Entry, bool) {
	if s.owner == nil || !s.owner.Valid() {
		return nil, false
	}
	return s.owner, true
}

// Context returns the drag record for entity, if one has been created
func (s *System) Context(entity donburi.Entity) (*Context, bool) {
	c, ok := s.contexts[entity]
	return c, ok
}

// OnAction handles one resolved input event. Unknown actions and events
// for entities without an Input component are ignored. A press on an
// entity without a Spatial component returns a *MissingComponentError
// before anything is changed.
func (s *System) OnAction(actionName string, ev Event, pos Point, target *donburi.Entry) error {
	if target == nil || !target.Valid() || !target.HasComponent(components.Input) {
		return nil
	}
	input := components.Input.Get(target)
	trigger, ok := input.ResolveAction(actionName)
	if !ok {
		return nil
	}

	kind, via := classify(trigger)
	switch kind {
	case transitionPress:
		if err := s.press(target, pos); err != nil {
			return err
		}
	case transitionMove:
		s.move(target, input, pos, via)
	case transitionRelease:
		s.release(target)
	case transitionCancel:
		s.cancel()
	default:
		return nil
	}

	if c, ok := s.contexts[target.Entity()]; ok {
		c.PrevX, c.PrevY = pos.X, pos.Y
	}
	return nil
}

func (s *System) press(target *donburi.Entry, pos Point) error {
	if !target.HasComponent(components.Spatial) {
		return &MissingComponentError{Entity: target.Entity(), Component: "spatial"}
	}
	if owner, ok := s.Dragging(); ok && owner.Entity() != target.Entity() {
		return nil
	}

	spatial := components.Spatial.Get(target)
	c := s.context(target.Entity())
	c.State = Dragging
	c.OffsetX = pos.X - spatial.X
	c.OffsetY = pos.Y - spatial.Y
	c.VelocityX, c.VelocityY = 0, 0
	if !c.SizeCached {
		c.Width, c.Height = spatial.W, spatial.H
		c.SizeCached = true
	}

	if !target.HasComponent(tags.Dragging) {
		target.AddComponent(tags.Dragging)
	}
	s.owner = target
	s.activation.SuspendOthers(target)
	return nil
}

func (s *System) move(target *donburi.Entry, input *components.InputData, pos Point, via path) {
	c, ok := s.contexts[target.Entity()]
	if !ok || c.State != Dragging || !target.HasComponent(components.Spatial) {
		return
	}
	spatial := components.Spatial.Get(target)
	if !spatial.Active {
		return
	}

	if s.conf.RequirePositiveOffset && (c.OffsetX <= 0 || c.OffsetY <= 0) {
		c.clearOffset()
		return
	}

	smoothing := s.conf.Touch
	if via == pathMouse {
		// The mouse path only follows while the button state is held.
		if name, declared := input.ResolveStateName(cfg.TriggerMouseLeftDown); declared && !input.IsHeld(name) {
			c.clearOffset()
			return
		}
		smoothing = s.conf.Mouse
	}

	c.VelocityX, c.VelocityY = gamemath.Smooth(
		c.VelocityX, c.VelocityY,
		pos.X-c.PrevX, pos.Y-c.PrevY,
		smoothing.Speed, smoothing.Ease,
	)

	x := pos.X - c.OffsetX + c.VelocityX
	y := pos.Y - c.OffsetY + c.VelocityY
	if via == pathMouse && s.conf.FloorMouse {
		x, y = gamemath.FloorPoint(x, y)
	}
	spatial.X, spatial.Y = x, y
}

func (s *System) release(target *donburi.Entry) {
	if owner, ok := s.Dragging(); ok && owner.Entity() != target.Entity() {
		return
	}
	s.drop(target)
}

// cancel force-releases the current owner regardless of which entity the
// cancelling event was addressed to.
func (s *System) cancel() {
	owner, ok := s.Dragging()
	if !ok {
		return
	}
	log.Printf("[dragdrop] drag of %v cancelled", owner.Entity())
	s.drop(owner)
}

// ForceRelease drops the current drag, if any. Use it when the engine loses
// track of the pointer that started the drag.
func (s *System) ForceRelease() {
	s.cancel()
}

func (s *System) drop(entry *donburi.Entry) {
	if c, ok := s.contexts[entry.Entity()]; ok {
		c.reset()
	}
	if entry.Valid() && entry.HasComponent(tags.Dragging) {
		entry.RemoveComponent(tags.Dragging)
	}
	if s.owner != nil && s.owner.Entity() == entry.Entity() {
		s.owner = nil
	}
	s.activation.ResumeAll()
}

func (s *System) context(e donburi.Entity) *Context {
	c, ok := s.contexts[e]
	if !ok {
		c = &Context{}
		s.contexts[e] = c
	}
	return c
}

// Process is the per-frame hook for one entity. The base lifecycle does no
// continuous work; it forwards to OnProcess when set.
func (s *System) Process(entry *donburi.Entry) {
	if s.OnProcess != nil {
		s.OnProcess(entry)
	}
}

// Update runs Process for every managed entity and forgets contexts of
// entities that no longer exist. Losing the owner resumes everyone.
func (s *System) Update(world donburi.World) {
	for e := range s.contexts {
		if world.Valid(e) {
			continue
		}
		delete(s.contexts, e)
		if s.owner != nil && s.owner.Entity() == e {
			log.Printf("[dragdrop] owner %v removed mid-drag", e)
			s.owner = nil
			s.activation.ResumeAll()
		}
	}
	s.members.Each(s.Process)
}
