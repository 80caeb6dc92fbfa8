package systems

import (
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/automoto/boxdrag/config"
)

func TestReloadDragConfig(t *testing.T) {
	prevDrag, prevDebug := cfg.Drag, cfg.Debug
	t.Cleanup(func() {
		cfg.Drag, cfg.Debug = prevDrag, prevDebug
	})

	path := filepath.Join(t.TempDir(), "boxdrag.yaml")
	data := []byte("drag:\n  mouse:\n    ease: 0.25\nwindow:\n  width: 320\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	prevWindow := cfg.C

	reloadDragConfig(path)

	if cfg.Drag.Mouse.Ease != 0.25 {
		t.Errorf("mouse ease = %v, want 0.25", cfg.Drag.Mouse.Ease)
	}
	if cfg.C != prevWindow {
		t.Error("window settings should not reload")
	}
}

func TestReloadDragConfigKeepsPreviousOnError(t *testing.T) {
	prevDrag := cfg.Drag
	t.Cleanup(func() { cfg.Drag = prevDrag })

	path := filepath.Join(t.TempDir(), "boxdrag.yaml")
	if err := os.WriteFile(path, []byte("drag:\n  mouse:\n    ease: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	before := cfg.Drag

	reloadDragConfig(path)

	if cfg.Drag != before {
		t.Errorf("drag = %+v, want unchanged %+v", cfg.Drag, before)
	}
}
