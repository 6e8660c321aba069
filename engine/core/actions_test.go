package core

import (
	"errors"
	"testing"
)

func TestActionStateEdges(t *testing.T) {
	held := map[Action]bool{}
	as := NewActionState()
	sample := func(a Action) bool { return held[a] }

	held[ACTION_FOCUS] = true
	as.Update(sample)
	if !as.Pressed(ACTION_FOCUS) || !as.JustPressed(ACTION_FOCUS) {
		t.Fatalf("expected Focus to be pressed and just pressed")
	}

	as.Update(sample)
	if !as.Pressed(ACTION_FOCUS) || as.JustPressed(ACTION_FOCUS) {
		t.Fatalf("expected Focus held without a rising edge")
	}

	held[ACTION_FOCUS] = false
	as.Update(sample)
	if as.Pressed(ACTION_FOCUS) || !as.JustReleased(ACTION_FOCUS) {
		t.Fatalf("expected Focus just released")
	}

	as.Update(sample)
	if as.JustReleased(ACTION_FOCUS) {
		t.Fatalf("expected the release edge to last a single frame")
	}
}

func TestActionNames(t *testing.T) {
	names := []string{
		"AdjustSpeed", "Forward", "Back", "Left", "Right", "Up", "Down",
		"Primary", "Secondary", "ClickHoldSecondary", "Focus",
	}
	if len(names) != int(ACTION_MAX_ACTIONS) {
		t.Fatalf("expected %d actions, got %d", len(names), ACTION_MAX_ACTIONS)
	}
	for i, name := range names {
		a, err := ActionFromName(name)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", name, err)
		}
		if a != Action(i) || a.String() != name {
			t.Errorf("expected %s at %d, got %s at %d", name, i, a, a)
		}
	}
	if _, err := ActionFromName("Jump"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestParseBindings(t *testing.T) {
	bindings, err := ParseBindings(map[string][]string{
		"forward":   {"w", "UP"},
		"Secondary": {"MOUSE_RIGHT"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input := NewInputState(nil, 4)
	as := NewActionState()

	input.ProcessKey(KEY_UP, true)
	input.ProcessButton(BUTTON_RIGHT, true)
	as.Update(bindings.Pressed(input))

	if !as.Pressed(ACTION_FORWARD) {
		t.Errorf("expected Forward bound to the up arrow")
	}
	if !as.Pressed(ACTION_SECONDARY) {
		t.Errorf("expected Secondary bound to the right mouse button")
	}
	if as.Pressed(ACTION_BACK) {
		t.Errorf("expected Back to be unbound")
	}

	if _, err := ParseBindings(map[string][]string{"Forward": {"NOPE"}}); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", err)
	}
}

func TestDefaultBindingsCoverEveryAction(t *testing.T) {
	bindings := DefaultBindings()
	for a := Action(0); a < ACTION_MAX_ACTIONS; a++ {
		if len(bindings[a]) == 0 {
			t.Errorf("expected a default binding for %s", a)
		}
	}
}
