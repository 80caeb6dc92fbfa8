package dragdrop

import (
	"github.com/automoto/boxdrag/components"
	"github.com/automoto/boxdrag/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Members is the collection of entities whose input activation is managed
// together. Iteration order is unspecified.
type Members interface {
	Each(fn func(*donburi.Entry))
}

type queryMembers struct {
	world donburi.World
	query *donburi.Query
}

// QueryMembers manages every entity matched by query
func QueryMembers(world donburi.World, query *donburi.Query) Members {
	return &queryMembers{world: world, query: query}
}

// WorldMembers manages every entity in world that has a Spatial component
func WorldMembers(world donburi.World) Members {
	return QueryMembers(world, donburi.NewQuery(filter.Contains(components.Spatial)))
}

func (m *queryMembers) Each(fn func(*donburi.Entry)) {
	m.query.Each(m.world, fn)
}

// Activation toggles SpatialData.Active across a Members collection so only
// the dragged entity accepts movement.
type Activation struct {
	members Members
}

func NewActivation(members Members) *Activation {
	return &Activation{members: members}
}

// SuspendOthers deactivates every member except active and any entity
// tagged Dragging.
func (a *Activation) SuspendOthers(active *donburi.Entry) {
	a.members.Each(func(entry *donburi.Entry) {
		if active != nil && entry.Entity() == active.Entity() {
			return
		}
		if entry.HasComponent(tags.Dragging) || !entry.HasComponent(components.Spatial) {
			return
		}
		components.Spatial.Get(entry).Active = false
	})
}

// ResumeAll activates every member unconditionally
func (a *Activation) ResumeAll() {
	a.members.Each(func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Spatial) {
			return
		}
		components.Spatial.Get(entry).Active = true
	})
}
