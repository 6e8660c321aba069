package core

import (
	"fmt"
	"strings"
)

// Action is a named, rebindable camera input.
type Action uint8

const (
	ACTION_ADJUST_SPEED Action = iota
	ACTION_FORWARD
	ACTION_BACK
	ACTION_LEFT
	ACTION_RIGHT
	ACTION_UP
	ACTION_DOWN
	ACTION_PRIMARY
	ACTION_SECONDARY
	ACTION_CLICK_HOLD_SECONDARY
	ACTION_FOCUS
	ACTION_MAX_ACTIONS
)

var actionNames = [ACTION_MAX_ACTIONS]string{
	ACTION_ADJUST_SPEED:         "AdjustSpeed",
	ACTION_FORWARD:              "Forward",
	ACTION_BACK:                 "Back",
	ACTION_LEFT:                 "Left",
	ACTION_RIGHT:                "Right",
	ACTION_UP:                   "Up",
	ACTION_DOWN:                 "Down",
	ACTION_PRIMARY:              "Primary",
	ACTION_SECONDARY:            "Secondary",
	ACTION_CLICK_HOLD_SECONDARY: "ClickHoldSecondary",
	ACTION_FOCUS:                "Focus",
}

// DirectionalActions are the six actions that translate the camera.
var DirectionalActions = [...]Action{
	ACTION_FORWARD,
	ACTION_BACK,
	ACTION_LEFT,
	ACTION_RIGHT,
	ACTION_UP,
	ACTION_DOWN,
}

func (a Action) String() string {
	if a >= ACTION_MAX_ACTIONS {
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
	return actionNames[a]
}

// ActionFromName resolves an action by its name, ignoring case.
func ActionFromName(name string) (Action, error) {
	for i, n := range actionNames {
		if strings.EqualFold(n, name) {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// ActionState tracks which actions are held this frame and which were held
// the frame before.
type ActionState struct {
	current  [ACTION_MAX_ACTIONS]bool
	previous [ACTION_MAX_ACTIONS]bool
}

func NewActionState() *ActionState {
	return &ActionState{}
}

// Update starts a new frame, sampling every action through pressed.
func (as *ActionState) Update(pressed func(Action) bool) {
	as.previous = as.current
	for a := Action(0); a < ACTION_MAX_ACTIONS; a++ {
		as.current[a] = pressed(a)
	}
}

func (as *ActionState) Pressed(a Action) bool {
	return as.current[a]
}

func (as *ActionState) JustPressed(a Action) bool {
	return as.current[a] && !as.previous[a]
}

func (as *ActionState) JustReleased(a Action) bool {
	return !as.current[a] && as.previous[a]
}

// Binding is a single key or mouse button bound to an action.
type Binding struct {
	Key      KeyCode
	Button   Button
	IsButton bool
}

// ParseBinding accepts key names ("W", "LSHIFT") and mouse button names ("MOUSE_RIGHT").
func ParseBinding(name string) (Binding, error) {
	if button, ok := ButtonByName(name); ok {
		return Binding{Button: button, IsButton: true}, nil
	}
	key, err := KeyByName(name)
	if err != nil {
		return Binding{}, err
	}
	return Binding{Key: key}, nil
}

// Bindings maps every action to the inputs that trigger it.
type Bindings map[Action][]Binding

// DefaultBindings moves with QWEASD, focuses with F, toggles slow mode with
// left shift and rotates while the right mouse button is held.
func DefaultBindings() Bindings {
	return Bindings{
		ACTION_ADJUST_SPEED:         {{Key: KEY_LSHIFT}},
		ACTION_FORWARD:              {{Key: KEY_W}},
		ACTION_BACK:                 {{Key: KEY_S}},
		ACTION_LEFT:                 {{Key: KEY_A}},
		ACTION_RIGHT:                {{Key: KEY_D}},
		ACTION_UP:                   {{Key: KEY_E}},
		ACTION_DOWN:                 {{Key: KEY_Q}},
		ACTION_PRIMARY:              {{Button: BUTTON_LEFT, IsButton: true}},
		ACTION_SECONDARY:            {{Button: BUTTON_RIGHT, IsButton: true}},
		ACTION_CLICK_HOLD_SECONDARY: {{Button: BUTTON_RIGHT, IsButton: true}},
		ACTION_FOCUS:                {{Key: KEY_F}},
	}
}

// ParseBindings builds bindings from action names to input names.
func ParseBindings(raw map[string][]string) (Bindings, error) {
	bindings := make(Bindings, len(raw))
	for actionName, inputs := range raw {
		action, err := ActionFromName(actionName)
		if err != nil {
			return nil, err
		}
		for _, input := range inputs {
			binding, err := ParseBinding(input)
			if err != nil {
				return nil, fmt.Errorf("binding for %s: %w", action, err)
			}
			bindings[action] = append(bindings[action], binding)
		}
	}
	return bindings, nil
}

// Pressed returns a sampler for ActionState.Update that reads the current
// input state.
func (b Bindings) Pressed(input *InputState) func(Action) bool {
	return func(a Action) bool {
		for _, binding := range b[a] {
			if binding.IsButton && input.IsButtonDown(binding.Button) {
				return true
			}
			if !binding.IsButton && input.IsKeyDown(binding.Key) {
				return true
			}
		}
		return false
	}
}
