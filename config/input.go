package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Trigger represents a raw engine-level pointer signal
type Trigger int

const (
	TriggerNone Trigger = iota
	TriggerMouseLeftDown
	TriggerMouseLeftUp
	TriggerMouseMove
	TriggerTouch
	TriggerTouchMove
	TriggerTouchEnd
	TriggerTouchCancel
	TriggerPointerCancel
	TriggerCount // Must be last - used for array sizing
)

var triggerNames = [TriggerCount]string{
	TriggerNone:          "NONE",
	TriggerMouseLeftDown: "MOUSE_BUTTON_LEFT_DOWN",
	TriggerMouseLeftUp:   "MOUSE_BUTTON_LEFT_UP",
	TriggerMouseMove:     "MOUSE_MOVE",
	TriggerTouch:         "TOUCH",
	TriggerTouchMove:     "TOUCH_MOVE",
	TriggerTouchEnd:      "TOUCH_END",
	TriggerTouchCancel:   "TOUCH_CANCEL",
	TriggerPointerCancel: "POINTER_CANCEL",
}

func (t Trigger) String() string {
	if t < 0 || t >= TriggerCount {
		return fmt.Sprintf("Trigger(%d)", int(t))
	}
	return triggerNames[t]
}

// ParseTrigger returns the trigger with the given name, e.g. "MOUSE_MOVE".
func ParseTrigger(name string) (Trigger, error) {
	for i, n := range triggerNames {
		if n == name {
			return Trigger(i), nil
		}
	}
	return TriggerNone, fmt.Errorf("unknown trigger %q", name)
}

func (t Trigger) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *Trigger) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseTrigger(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// StateBinding names a trigger that can be queried as "currently held".
// Exclusive states only count as held for the entity the pointer was over
// when the trigger fired.
type StateBinding struct {
	Name      string    `yaml:"name"`
	Triggers  []Trigger `yaml:"triggers"`
	Exclusive bool      `yaml:"exclusive"`
}

// ActionBinding binds a user-declared action name to one or more triggers
type ActionBinding struct {
	Name     string    `yaml:"name"`
	Triggers []Trigger `yaml:"triggers"`
}

// InputConfig holds the bindings given to every draggable box
type InputConfig struct {
	States  []StateBinding  `yaml:"states"`
	Actions []ActionBinding `yaml:"actions"`
}

// Input is the global box input configuration
var Input InputConfig

func defaultInput() InputConfig {
	return InputConfig{
		States: []StateBinding{
			{Name: "clicking box", Triggers: []Trigger{TriggerMouseLeftDown}, Exclusive: true},
		},
		Actions: []ActionBinding{
			{Name: "box clicked", Triggers: []Trigger{TriggerMouseLeftDown}},
			{Name: "box clicked moved", Triggers: []Trigger{TriggerMouseMove}},
			{Name: "box unclicked", Triggers: []Trigger{TriggerMouseLeftUp}},
			{Name: "box touched", Triggers: []Trigger{TriggerTouch}},
			{Name: "box touched stopped", Triggers: []Trigger{TriggerTouchEnd}},
			{Name: "box touched moved", Triggers: []Trigger{TriggerTouchMove}},
			{Name: "box dropped", Triggers: []Trigger{TriggerTouchCancel, TriggerPointerCancel}},
		},
	}
}
