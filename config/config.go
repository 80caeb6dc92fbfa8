package config

// Smoothing holds the velocity smoothing constants for one pointer path
type Smoothing struct {
	Speed float64 `yaml:"speed"` // Magnitude of the per-event direction push
	Ease  float64 `yaml:"ease"`  // Blend factor applied to the accumulated velocity
}

// DragConfig contains drag-and-drop tuning values
type DragConfig struct {
	Touch Smoothing `yaml:"touch"`
	Mouse Smoothing `yaml:"mouse"`

	// Ignore moves unless the grab offset is strictly positive on both axes.
	// Drags anchored at or above/left of the entity origin are not tracked.
	RequirePositiveOffset bool `yaml:"require_positive_offset"`

	// Floor positions to whole pixels on the mouse path
	FloorMouse bool `yaml:"floor_mouse"`
}

// WindowConfig contains window dimensions
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// BoxesConfig lays out the demo boxes in a row
type BoxesConfig struct {
	Count   int     `yaml:"count"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Spacing float64 `yaml:"spacing"`
	Size    float64 `yaml:"size"`

	// Duration of the lift highlight tween
	LiftSeconds float64 `yaml:"lift_seconds"`
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	Overlay bool `yaml:"overlay"`
}

// File is the on-disk shape of the configuration
type File struct {
	Drag   DragConfig   `yaml:"drag"`
	Window WindowConfig `yaml:"window"`
	Boxes  BoxesConfig  `yaml:"boxes"`
	Input  InputConfig  `yaml:"input"`
	Debug  DebugConfig  `yaml:"debug"`
}

// Global configuration instances
var (
	Drag  DragConfig
	C     WindowConfig
	Boxes BoxesConfig
	Debug DebugConfig
)

func init() {
	Apply(Defaults())
}

// Defaults returns the built-in configuration
func Defaults() File {
	return File{
		Drag: DragConfig{
			Touch:                 Smoothing{Speed: 5, Ease: 0.05},
			Mouse:                 Smoothing{Speed: 5, Ease: 0.5},
			RequirePositiveOffset: true,
			FloorMouse:            true,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "boxdrag",
		},
		Boxes: BoxesConfig{
			Count:   3,
			X:       200,
			Y:       200,
			Spacing: 100,
			Size:    75,

			LiftSeconds: 0.12,
		},
		Input: defaultInput(),
		Debug: DebugConfig{Overlay: true},
	}
}

// Apply replaces the global configuration with f
func Apply(f File) {
	Drag = f.Drag
	C = f.Window
	Boxes = f.Boxes
	Input = f.Input
	Debug = f.Debug
}

// Current returns the global configuration as a File
func Current() File {
	return File{
		Drag:   Drag,
		Window: C,
		Boxes:  Boxes,
		Input:  Input,
		Debug:  Debug,
	}
}
