package systems

import (
	"log"

	cfg "github.com/automoto/boxdrag/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateConfigReload returns a system that applies drag tuning changes
// written to the watched config file. Window and box layout are read once
// at startup and are not reloaded.
func NewUpdateConfigReload(w *cfg.Watcher) ecs.System {
	return func(ecs *ecs.ECS) {
		for {
			select {
			case path := <-w.Events:
				reloadDragConfig(path)
			case err := <-w.Errors:
				log.Printf("[config] watch error: %v", err)
			default:
				return
			}
		}
	}
}

func reloadDragConfig(path string) {
	f, err := cfg.Load(path)
	if err != nil {
		log.Printf("[config] reload of %s failed, keeping previous settings: %v", path, err)
		return
	}
	cfg.Drag = f.Drag
	cfg.Debug = f.Debug
	log.Printf("[config] reloaded %s (mouse %+v, touch %+v)", path, f.Drag.Mouse, f.Drag.Touch)
}
