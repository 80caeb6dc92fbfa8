package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Load reads a YAML configuration file. Keys missing from the file keep
// their default values.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration on top of the defaults and validates it
func Parse(data []byte) (File, error) {
	f := Defaults()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Marshal encodes f as YAML
func Marshal(f File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Validate checks value ranges
func (f File) Validate() error {
	if err := f.Drag.Touch.validate("drag.touch"); err != nil {
		return err
	}
	if err := f.Drag.Mouse.validate("drag.mouse"); err != nil {
		return err
	}
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, f.Window.Width, f.Window.Height)
	}
	if f.Boxes.Count < 0 {
		return fmt.Errorf("%w: boxes.count %d", ErrInvalidConfig, f.Boxes.Count)
	}
	if f.Boxes.Count > 0 && f.Boxes.Size <= 0 {
		return fmt.Errorf("%w: boxes.size %v", ErrInvalidConfig, f.Boxes.Size)
	}
	if f.Boxes.LiftSeconds < 0 {
		return fmt.Errorf("%w: boxes.lift_seconds %v", ErrInvalidConfig, f.Boxes.LiftSeconds)
	}
	for _, a := range f.Input.Actions {
		if a.Name == "" || len(a.Triggers) == 0 {
			return fmt.Errorf("%w: action %q needs a name and at least one trigger", ErrInvalidConfig, a.Name)
		}
	}
	for _, s := range f.Input.States {
		if s.Name == "" || len(s.Triggers) == 0 {
			return fmt.Errorf("%w: state %q needs a name and at least one trigger", ErrInvalidConfig, s.Name)
		}
	}
	return nil
}

func (s Smoothing) validate(key string) error {
	if s.Speed <= 0 {
		return fmt.Errorf("%w: %s.speed must be positive, got %v", ErrInvalidConfig, key, s.Speed)
	}
	if s.Ease <= 0 || s.Ease > 1 {
		return fmt.Errorf("%w: %s.ease must be in (0, 1], got %v", ErrInvalidConfig, key, s.Ease)
	}
	return nil
}
