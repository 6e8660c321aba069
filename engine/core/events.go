package core

// System internal event codes. Application should use codes beyond 255.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed. Data: *KeyEvent
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released. Data: *KeyEvent
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Mouse button pressed. Data: *MouseEvent
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04

	// Mouse button released. Data: *MouseEvent
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05

	// Mouse moved. Data: *MouseEvent with position and delta
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06

	// Mouse wheel scrolled. Data: *MouseEvent with scroll
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07

	// Resized/resolution changed from the OS. Data: *SystemEvent
	EVENT_CODE_RESIZED EventCode = 0x08

	// Configuration file reloaded from disk. Data: the new configuration
	EVENT_CODE_CONFIG_RELOADED EventCode = 0x09

	// A camera started orbiting its pivot. Sender: the camera system
	EVENT_CODE_CAMERA_FOCUSED EventCode = 0x0A

	// A camera went back to free flight. Sender: the camera system
	EVENT_CODE_CAMERA_RELEASED EventCode = 0x0B

	MAX_EVENT_CODE EventCode = 0xFF
)

type EventContext struct {
	Type   EventCode
	Sender interface{}
	Data   interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
}

type MouseEvent struct {
	Button Button
	PosX   float32
	PosY   float32
	DeltaX float32
	DeltaY float32
	Scroll float32
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

// Should return true if handled.
type FnOnEvent func(context EventContext) bool

type registeredEvent struct {
	id       uint32
	callback FnOnEvent
}

// EventBus dispatches events synchronously, in registration order.
type EventBus struct {
	registered map[EventCode][]*registeredEvent
	ids        *IdentifierPool
}

func NewEventBus() *EventBus {
	return &EventBus{
		registered: make(map[EventCode][]*registeredEvent),
		ids:        NewIdentifierPool(),
	}
}

/**
 * Register to listen for when events are sent with the provided code.
 * @param code The event code to listen for.
 * @param onEvent The callback to be invoked when the event code is fired.
 * @returns The listener id, used to unregister.
 */
func (eb *EventBus) Register(code EventCode, onEvent FnOnEvent) uint32 {
	event := &registeredEvent{
		callback: onEvent,
	}
	event.id = eb.ids.Acquire(event)
	eb.registered[code] = append(eb.registered[code], event)
	return event.id
}

/**
 * Unregister from listening for when events are sent with the provided code.
 * @returns true if the listener was found and removed; otherwise false.
 */
func (eb *EventBus) Unregister(code EventCode, id uint32) bool {
	events := eb.registered[code]
	for i, e := range events {
		if e.id == id {
			eb.registered[code] = append(events[:i], events[i+1:]...)
			if err := eb.ids.Release(id); err != nil {
				LogWarn("%s", err)
			}
			return true
		}
	}
	// Not found.
	return false
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * true, the event is considered handled and is not passed on to any more listeners.
 * @returns true if handled, otherwise false.
 */
func (eb *EventBus) Fire(context EventContext) bool {
	for _, e := range eb.registered[context.Type] {
		if e.callback(context) {
			// Message has been handled, do not send to other listeners.
			return true
		}
	}
	return false
}

// Shutdown drops every listener.
func (eb *EventBus) Shutdown() {
	for code := range eb.registered {
		for _, e := range eb.registered[code] {
			_ = eb.ids.Release(e.id)
		}
		delete(eb.registered, code)
	}
}
