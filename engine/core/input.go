package core

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/flycam/engine/containers"
)

type Button uint16

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_MAX_BUTTONS
)

// Key code definitions
type KeyCode uint16

const (
	KEY_BACKSPACE    KeyCode = 0x08
	KEY_ENTER        KeyCode = 0x0D
	KEY_TAB          KeyCode = 0x09
	KEY_SHIFT        KeyCode = 0x10
	KEY_PAUSE        KeyCode = 0x13
	KEY_CAPITAL      KeyCode = 0x14
	KEY_ESCAPE       KeyCode = 0x1B
	KEY_CONVERT      KeyCode = 0x1C
	KEY_NONCONVERT   KeyCode = 0x1D
	KEY_ACCEPT       KeyCode = 0x1E
	KEY_MODECHANGE   KeyCode = 0x1F
	KEY_SPACE        KeyCode = 0x20
	KEY_PRIOR        KeyCode = 0x21
	KEY_NEXT         KeyCode = 0x22
	KEY_END          KeyCode = 0x23
	KEY_HOME         KeyCode = 0x24
	KEY_LEFT         KeyCode = 0x25
	KEY_UP           KeyCode = 0x26
	KEY_RIGHT        KeyCode = 0x27
	KEY_DOWN         KeyCode = 0x28
	KEY_SELECT       KeyCode = 0x29
	KEY_PRINT        KeyCode = 0x2A
	KEY_EXECUTE      KeyCode = 0x2B
	KEY_SNAPSHOT     KeyCode = 0x2C
	KEY_INSERT       KeyCode = 0x2D
	KEY_DELETE       KeyCode = 0x2E
	KEY_HELP         KeyCode = 0x2F
	KEY_A            KeyCode = 0x41
	KEY_B            KeyCode = 0x42
	KEY_C            KeyCode = 0x43
	KEY_D            KeyCode = 0x44
	KEY_E            KeyCode = 0x45
	KEY_F            KeyCode = 0x46
	KEY_G            KeyCode = 0x47
	KEY_H            KeyCode = 0x48
	KEY_I            KeyCode = 0x49
	KEY_J            KeyCode = 0x4A
	KEY_K            KeyCode = 0x4B
	KEY_L            KeyCode = 0x4C
	KEY_M            KeyCode = 0x4D
	KEY_N            KeyCode = 0x4E
	KEY_O            KeyCode = 0x4F
	KEY_P            KeyCode = 0x50
	KEY_Q            KeyCode = 0x51
	KEY_R            KeyCode = 0x52
	KEY_S            KeyCode = 0x53
	KEY_T            KeyCode = 0x54
	KEY_U            KeyCode = 0x55
	KEY_V            KeyCode = 0x56
	KEY_W            KeyCode = 0x57
	KEY_X            KeyCode = 0x58
	KEY_Y            KeyCode = 0x59
	KEY_Z            KeyCode = 0x5A
	KEY_LWIN         KeyCode = 0x5B
	KEY_RWIN         KeyCode = 0x5C
	KEY_APPS         KeyCode = 0x5D
	KEY_SLEEP        KeyCode = 0x5F
	KEY_NUMPAD0      KeyCode = 0x60
	KEY_NUMPAD1      KeyCode = 0x61
	KEY_NUMPAD2      KeyCode = 0x62
	KEY_NUMPAD3      KeyCode = 0x63
	KEY_NUMPAD4      KeyCode = 0x64
	KEY_NUMPAD5      KeyCode = 0x65
	KEY_NUMPAD6      KeyCode = 0x66
	KEY_NUMPAD7      KeyCode = 0x67
	KEY_NUMPAD8      KeyCode = 0x68
	KEY_NUMPAD9      KeyCode = 0x69
	KEY_MULTIPLY     KeyCode = 0x6A
	KEY_ADD          KeyCode = 0x6B
	KEY_SEPARATOR    KeyCode = 0x6C
	KEY_SUBTRACT     KeyCode = 0x6D
	KEY_DECIMAL      KeyCode = 0x6E
	KEY_DIVIDE       KeyCode = 0x6F
	KEY_F1           KeyCode = 0x70
	KEY_F2           KeyCode = 0x71
	KEY_F3           KeyCode = 0x72
	KEY_F4           KeyCode = 0x73
	KEY_F5           KeyCode = 0x74
	KEY_F6           KeyCode = 0x75
	KEY_F7           KeyCode = 0x76
	KEY_F8           KeyCode = 0x77
	KEY_F9           KeyCode = 0x78
	KEY_F10          KeyCode = 0x79
	KEY_F11          KeyCode = 0x7A
	KEY_F12          KeyCode = 0x7B
	KEY_F13          KeyCode = 0x7C
	KEY_F14          KeyCode = 0x7D
	KEY_F15          KeyCode = 0x7E
	KEY_F16          KeyCode = 0x7F
	KEY_F17          KeyCode = 0x80
	KEY_F18          KeyCode = 0x81
	KEY_F19          KeyCode = 0x82
	KEY_F20          KeyCode = 0x83
	KEY_F21          KeyCode = 0x84
	KEY_F22          KeyCode = 0x85
	KEY_F23          KeyCode = 0x86
	KEY_F24          KeyCode = 0x87
	KEY_NUMLOCK      KeyCode = 0x90
	KEY_SCROLL       KeyCode = 0x91
	KEY_NUMPAD_EQUAL KeyCode = 0x92
	KEY_LSHIFT       KeyCode = 0xA0
	KEY_RSHIFT       KeyCode = 0xA1
	KEY_LCONTROL     KeyCode = 0xA2
	KEY_RCONTROL     KeyCode = 0xA3
	KEY_LMENU        KeyCode = 0xA4
	KEY_RMENU        KeyCode = 0xA5
	KEY_SEMICOLON    KeyCode = 0xBA
	KEY_PLUS         KeyCode = 0xBB
	KEY_COMMA        KeyCode = 0xBC
	KEY_MINUS        KeyCode = 0xBD
	KEY_PERIOD       KeyCode = 0xBE
	KEY_SLASH        KeyCode = 0xBF
	KEY_GRAVE        KeyCode = 0xC0
	KEYS_MAX_KEYS
)

// MOUSE_LEFT, MOUSE_RIGHT and MOUSE_MIDDLE name the buttons in bindings.
var buttonNames = map[string]Button{
	"MOUSE_LEFT":   BUTTON_LEFT,
	"MOUSE_RIGHT":  BUTTON_RIGHT,
	"MOUSE_MIDDLE": BUTTON_MIDDLE,
}

var keyNames = map[string]KeyCode{
	"BACKSPACE": KEY_BACKSPACE,
	"ENTER":     KEY_ENTER,
	"TAB":       KEY_TAB,
	"SHIFT":     KEY_SHIFT,
	"ESCAPE":    KEY_ESCAPE,
	"SPACE":     KEY_SPACE,
	"LEFT":      KEY_LEFT,
	"UP":        KEY_UP,
	"RIGHT":     KEY_RIGHT,
	"DOWN":      KEY_DOWN,
	"INSERT":    KEY_INSERT,
	"DELETE":    KEY_DELETE,
	"HOME":      KEY_HOME,
	"END":       KEY_END,
	"LSHIFT":    KEY_LSHIFT,
	"RSHIFT":    KEY_RSHIFT,
	"LCONTROL":  KEY_LCONTROL,
	"RCONTROL":  KEY_RCONTROL,
	"LALT":      KEY_LMENU,
	"RALT":      KEY_RMENU,
	"COMMA":     KEY_COMMA,
	"PERIOD":    KEY_PERIOD,
	"MINUS":     KEY_MINUS,
	"PLUS":      KEY_PLUS,
}

func init() {
	for c := KEY_A; c <= KEY_Z; c++ {
		keyNames[string(rune(c))] = c
	}
	for i := KeyCode(0); i < 12; i++ {
		keyNames[fmt.Sprintf("F%d", i+1)] = KEY_F1 + i
	}
	for i := KeyCode(0); i < 10; i++ {
		keyNames[fmt.Sprintf("NUMPAD%d", i)] = KEY_NUMPAD0 + i
	}
}

// KeyByName resolves a key name such as "W", "SPACE" or "F5". Names are case insensitive.
func KeyByName(name string) (KeyCode, error) {
	key, ok := keyNames[strings.ToUpper(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return key, nil
}

// ButtonByName resolves a mouse button name such as "MOUSE_RIGHT".
func ButtonByName(name string) (Button, bool) {
	button, ok := buttonNames[strings.ToUpper(name)]
	return button, ok
}

// Mouse state structure
type MouseState struct {
	X       float32
	Y       float32
	Buttons [BUTTON_MAX_BUTTONS]bool // button states (pressed/released)
}

// Keyboard state structure
type KeyboardState struct {
	Keys [256]bool
}

// InputState holds current and previous states for keyboard and mouse, plus
// the pointer motion and scroll deltas received since the last frame.
type InputState struct {
	keyboardCurrent  KeyboardState
	keyboardPrevious KeyboardState
	mouseCurrent     MouseState
	mousePrevious    MouseState

	hasCursor bool
	motion    *containers.RingQueue[mgl32.Vec2]
	scroll    *containers.RingQueue[float32]
	events    *EventBus
}

// NewInputState creates the input state. capacity bounds how many motion and
// scroll events are kept per frame; beyond that, the oldest event is folded
// into the newest so the per-frame sum is preserved. events may be nil.
func NewInputState(events *EventBus, capacity int) *InputState {
	if capacity < 1 {
		capacity = 1
	}
	LogInfo("Input subsystem initialized.")
	return &InputState{
		motion: containers.NewRingQueue[mgl32.Vec2](capacity),
		scroll: containers.NewRingQueue[float32](capacity),
		events: events,
	}
}

// Update ends the frame: current states become previous states and any
// undrained motion or scroll is discarded.
func (is *InputState) Update() {
	// Copy current states to previous states.
	is.keyboardPrevious = is.keyboardCurrent
	is.mousePrevious = is.mouseCurrent

	is.motion.Drain()
	is.scroll.Drain()
}

func (is *InputState) fire(context EventContext) {
	if is.events != nil {
		is.events.Fire(context)
	}
}

// keyboard input
func (is *InputState) IsKeyDown(key KeyCode) bool {
	return is.keyboardCurrent.Keys[key]
}

func (is *InputState) IsKeyUp(key KeyCode) bool {
	return !is.keyboardCurrent.Keys[key]
}

func (is *InputState) WasKeyDown(key KeyCode) bool {
	return is.keyboardPrevious.Keys[key]
}

func (is *InputState) WasKeyUp(key KeyCode) bool {
	return !is.keyboardPrevious.Keys[key]
}

func (is *InputState) ProcessKey(key KeyCode, pressed bool) {
	// Only handle this if the state actually changed.
	if is.keyboardCurrent.Keys[key] == pressed {
		return
	}
	is.keyboardCurrent.Keys[key] = pressed

	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}
	// Fire off an event for immediate processing.
	is.fire(EventContext{
		Type: code,
		Data: &KeyEvent{
			KeyCode: key,
		},
	})
}

// mouse input
func (is *InputState) IsButtonDown(button Button) bool {
	return is.mouseCurrent.Buttons[button]
}

func (is *InputState) IsButtonUp(button Button) bool {
	return !is.mouseCurrent.Buttons[button]
}

func (is *InputState) WasButtonDown(button Button) bool {
	return is.mousePrevious.Buttons[button]
}

func (is *InputState) WasButtonUp(button Button) bool {
	return !is.mousePrevious.Buttons[button]
}

// MousePosition returns the last known cursor position and whether one was
// ever reported.
func (is *InputState) MousePosition() (mgl32.Vec2, bool) {
	return mgl32.Vec2{is.mouseCurrent.X, is.mouseCurrent.Y}, is.hasCursor
}

func (is *InputState) ProcessButton(button Button, pressed bool) {
	// If the state changed, fire an event.
	if is.mouseCurrent.Buttons[button] == pressed {
		return
	}
	is.mouseCurrent.Buttons[button] = pressed

	code := EVENT_CODE_BUTTON_RELEASED
	if pressed {
		code = EVENT_CODE_BUTTON_PRESSED
	}
	is.fire(EventContext{
		Type: code,
		Data: &MouseEvent{
			Button: button,
		},
	})
}

// ProcessMouseMove records a new absolute cursor position. The first report
// only establishes the position; later ones queue the delta.
func (is *InputState) ProcessMouseMove(x, y float32) {
	if is.hasCursor && is.mouseCurrent.X == x && is.mouseCurrent.Y == y {
		return
	}
	delta := mgl32.Vec2{x - is.mouseCurrent.X, y - is.mouseCurrent.Y}
	first := !is.hasCursor

	is.mouseCurrent.X = x
	is.mouseCurrent.Y = y
	is.hasCursor = true
	if first {
		return
	}

	is.ProcessMouseMotion(delta)
	is.fire(EventContext{
		Type: EVENT_CODE_MOUSE_MOVED,
		Data: &MouseEvent{
			PosX:   x,
			PosY:   y,
			DeltaX: delta.X(),
			DeltaY: delta.Y(),
		},
	})
}

// ProcessMouseMotion queues a raw motion delta for this frame.
func (is *InputState) ProcessMouseMotion(delta mgl32.Vec2) {
	if is.motion.IsFull() {
		oldest, _ := is.motion.Dequeue()
		delta = delta.Add(oldest)
	}
	_ = is.motion.Enqueue(delta)
}

// WarpMouse moves the known cursor position without producing motion.
func (is *InputState) WarpMouse(x, y float32) {
	is.mouseCurrent.X = x
	is.mouseCurrent.Y = y
	is.hasCursor = true
}

func (is *InputState) ProcessMouseWheel(delta float32) {
	if is.scroll.IsFull() {
		oldest, _ := is.scroll.Dequeue()
		delta += oldest
	}
	_ = is.scroll.Enqueue(delta)

	is.fire(EventContext{
		Type: EVENT_CODE_MOUSE_WHEEL,
		Data: &MouseEvent{
			Scroll: delta,
		},
	})
}

// DrainMotion returns and clears the motion deltas queued this frame.
func (is *InputState) DrainMotion() []mgl32.Vec2 {
	return is.motion.Drain()
}

// DrainScroll returns and clears the scroll deltas queued this frame.
func (is *InputState) DrainScroll() []float32 {
	return is.scroll.Drain()
}
