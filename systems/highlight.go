package systems

import (
	"github.com/automoto/boxdrag/components"
	cfg "github.com/automoto/boxdrag/config"
	"github.com/automoto/boxdrag/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHighlights eases each box toward lifted while it carries the
// Dragging tag and back to resting once dropped.
func UpdateHighlights(ecs *ecs.ECS) {
	stepHighlights(ecs.World, 1/float32(ebiten.TPS()))
}

func stepHighlights(world donburi.World, dt float32) {
	components.Highlight.Each(world, func(e *donburi.Entry) {
		h := components.Highlight.Get(e)

		lifted := e.HasComponent(tags.Dragging)
		if lifted != h.Lifted {
			h.Lifted = lifted
			var to float32
			easing := ease.InQuad
			if lifted {
				to = 1
				easing = ease.OutQuad
			}
			h.Tween = gween.New(h.Level, to, float32(cfg.Boxes.LiftSeconds), easing)
		}

		if h.Tween == nil {
			return
		}
		level, done := h.Tween.Update(dt)
		h.Level = level
		if done {
			h.Tween = nil
		}
	})
}
