package components

import (
	cfg "github.com/automoto/boxdrag/config"
	"github.com/yohamta/donburi"
)

// InputData holds an entity's declared input vocabulary. The trigger
// indexes are built once by NewInputData; States and Actions must not be
// edited afterwards.
type InputData struct {
	States  []cfg.StateBinding
	Actions []cfg.ActionBinding

	actionTrigger  map[string]cfg.Trigger   // action name -> first trigger of first declaration
	stateName      map[cfg.Trigger]string   // first trigger -> name of first declaring state
	triggerActions map[cfg.Trigger][]string // trigger -> every action bound to it
	held           map[string]bool          // state name -> currently held
}

var Input = donburi.NewComponentType[InputData]()

// NewInputData copies the bindings and precomputes the lookup tables.
// Duplicate action or state names are shadowed by the first declaration.
func NewInputData(states []cfg.StateBinding, actions []cfg.ActionBinding) InputData {
	in := InputData{
		States:         append([]cfg.StateBinding(nil), states...),
		Actions:        append([]cfg.ActionBinding(nil), actions...),
		actionTrigger:  make(map[string]cfg.Trigger, len(actions)),
		stateName:      make(map[cfg.Trigger]string, len(states)),
		triggerActions: make(map[cfg.Trigger][]string),
		held:           make(map[string]bool, len(states)),
	}

	for _, a := range in.Actions {
		if len(a.Triggers) == 0 {
			continue
		}
		if _, ok := in.actionTrigger[a.Name]; !ok {
			in.actionTrigger[a.Name] = a.Triggers[0]
		}
		for _, t := range a.Triggers {
			if !containsName(in.triggerActions[t], a.Name) {
				in.triggerActions[t] = append(in.triggerActions[t], a.Name)
			}
		}
	}

	for _, s := range in.States {
		if len(s.Triggers) == 0 {
			continue
		}
		if _, ok := in.stateName[s.Triggers[0]]; !ok {
			in.stateName[s.Triggers[0]] = s.Name
		}
	}

	return in
}

// ResolveAction returns the trigger behind a declared action name.
// ok is false when the entity declares no such action.
func (in *InputData) ResolveAction(name string) (cfg.Trigger, bool) {
	t, ok := in.actionTrigger[name]
	return t, ok
}

// ResolveStateName returns the name of the state bound to trigger.
func (in *InputData) ResolveStateName(trigger cfg.Trigger) (string, bool) {
	name, ok := in.stateName[trigger]
	return name, ok
}

// ActionsFor returns every action name bound to trigger in declaration order.
func (in *InputData) ActionsFor(trigger cfg.Trigger) []string {
	return in.triggerActions[trigger]
}

// StatesFor returns the states whose trigger list contains trigger.
func (in *InputData) StatesFor(trigger cfg.Trigger) []cfg.StateBinding {
	var out []cfg.StateBinding
	for _, s := range in.States {
		for _, t := range s.Triggers {
			if t == trigger {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// SetHeld marks a state as held or released
func (in *InputData) SetHeld(name string, held bool) {
	if in.held == nil {
		in.held = make(map[string]bool)
	}
	if held {
		in.held[name] = true
	} else {
		delete(in.held, name)
	}
}

// IsHeld reports whether the named state is currently held
func (in *InputData) IsHeld(name string) bool {
	return in.held[name]
}

// ClearHeld releases every state
func (in *InputData) ClearHeld() {
	clear(in.held)
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
