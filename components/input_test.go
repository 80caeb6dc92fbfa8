package components

import (
	"reflect"
	"testing"

	cfg "github.com/automoto/boxdrag/config"
)

func TestResolveAction(t *testing.T) {
	in := cfg.Defaults().Input
	data := NewInputData(in.States, in.Actions)

	tests := []struct {
		name   string
		want   cfg.Trigger
		wantOK bool
	}{
		{"box clicked", cfg.TriggerMouseLeftDown, true},
		{"box clicked moved", cfg.TriggerMouseMove, true},
		{"box touched stopped", cfg.TriggerTouchEnd, true},
		{"box dropped", cfg.TriggerTouchCancel, true},
		{"box kicked", cfg.TriggerNone, false},
		{"", cfg.TriggerNone, false},
	}
	for _, tt := range tests {
		got, ok := data.ResolveAction(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ResolveAction(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestResolveActionFirstDeclarationWins(t *testing.T) {
	data := NewInputData(nil, []cfg.ActionBinding{
		{Name: "grab", Triggers: []cfg.Trigger{cfg.TriggerTouch, cfg.TriggerMouseLeftDown}},
		{Name: "grab", Triggers: []cfg.Trigger{cfg.TriggerMouseMove}},
	})

	got, ok := data.ResolveAction("grab")
	if !ok || got != cfg.TriggerTouch {
		t.Errorf("ResolveAction(grab) = %v, %v; want %v (first trigger of first declaration)", got, ok, cfg.TriggerTouch)
	}

	// The shadowed declaration still answers reverse lookups.
	if names := data.ActionsFor(cfg.TriggerMouseMove); !reflect.DeepEqual(names, []string{"grab"}) {
		t.Errorf("ActionsFor(MOUSE_MOVE) = %v, want [grab]", names)
	}
}

func TestResolveStateName(t *testing.T) {
	data := NewInputData([]cfg.StateBinding{
		{Name: "holding", Triggers: []cfg.Trigger{cfg.TriggerMouseLeftDown}},
		{Name: "holding again", Triggers: []cfg.Trigger{cfg.TriggerMouseLeftDown}},
		{Name: "touching", Triggers: []cfg.Trigger{cfg.TriggerTouch, cfg.TriggerMouseLeftDown}},
	}, nil)

	if name, ok := data.ResolveStateName(cfg.TriggerMouseLeftDown); !ok || name != "holding" {
		t.Errorf("ResolveStateName(MOUSE_BUTTON_LEFT_DOWN) = %q, %v; want holding", name, ok)
	}
	if name, ok := data.ResolveStateName(cfg.TriggerTouch); !ok || name != "touching" {
		t.Errorf("ResolveStateName(TOUCH) = %q, %v; want touching", name, ok)
	}
	if _, ok := data.ResolveStateName(cfg.TriggerTouchEnd); ok {
		t.Error("ResolveStateName(TOUCH_END) resolved an undeclared state")
	}
	if got := len(data.StatesFor(cfg.TriggerMouseLeftDown)); got != 3 {
		t.Errorf("StatesFor(MOUSE_BUTTON_LEFT_DOWN) returned %d states, want 3", got)
	}
}

func TestActionsFor(t *testing.T) {
	data := NewInputData(nil, []cfg.ActionBinding{
		{Name: "drop", Triggers: []cfg.Trigger{cfg.TriggerMouseLeftUp, cfg.TriggerTouchEnd}},
		{Name: "release", Triggers: []cfg.Trigger{cfg.TriggerTouchEnd}},
		{Name: "drop", Triggers: []cfg.Trigger{cfg.TriggerTouchEnd}},
	})

	got := data.ActionsFor(cfg.TriggerTouchEnd)
	want := []string{"drop", "release"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ActionsFor(TOUCH_END) = %v, want %v", got, want)
	}
	if got := data.ActionsFor(cfg.TriggerMouseMove); len(got) != 0 {
		t.Errorf("ActionsFor(MOUSE_MOVE) = %v, want none", got)
	}
}

func TestNewInputDataCopiesBindings(t *testing.T) {
	actions := []cfg.ActionBinding{{Name: "grab", Triggers: []cfg.Trigger{cfg.TriggerTouch}}}
	data := NewInputData(nil, actions)
	actions[0].Name = "changed"

	if _, ok := data.ResolveAction("grab"); !ok {
		t.Error("index lost after caller mutated its slice")
	}
	if data.Actions[0].Name != "grab" {
		t.Errorf("Actions[0].Name = %q, want grab", data.Actions[0].Name)
	}
}

func TestHeldStates(t *testing.T) {
	var data InputData
	data.SetHeld("clicking", true)
	if !data.IsHeld("clicking") {
		t.Fatal("state not held after SetHeld(true)")
	}
	data.SetHeld("clicking", false)
	if data.IsHeld("clicking") {
		t.Fatal("state held after SetHeld(false)")
	}
	data.SetHeld("a", true)
	data.SetHeld("b", true)
	data.ClearHeld()
	if data.IsHeld("a") || data.IsHeld("b") {
		t.Error("states held after ClearHeld")
	}
}
