package osier

import "github.com/hajimehoshi/ebiten/v2"

// TouchAction is what a pointer or touch did this frame.
type TouchAction uint8

const (
	TouchPressed  TouchAction = iota // button or finger went down
	TouchReleased                    // button or finger went up
	TouchDragged                     // moved while down
	TouchMoved                       // present without a button held (hover)
	TouchClicked                     // released close to where it was pressed
	TouchWheel                       // scroll wheel; see WheelX/WheelY
	TouchExited                      // pointer left the window
)

var touchActionNames = [...]string{"pressed", "released", "dragged", "moved", "clicked", "wheel", "exited"}

func (a TouchAction) String() string {
	if int(a) < len(touchActionNames) {
		return touchActionNames[a]
	}
	return "unknown"
}

// TouchEvent is one pointer or touch sample. It lives for a single dispatch
// pass; once consumed it stays consumed.
type TouchEvent struct {
	// ID is 0 for the mouse and 1+ for touch points.
	ID     int
	X, Y   float64
	Action TouchAction
	Button MouseButton

	WheelX, WheelY float64
	Modifiers      KeyModifiers

	consumed bool
}

// Consume marks the touch as handled. Views later in the pass ignore it.
func (e *TouchEvent) Consume() {
	e.consumed = true
}

// Consumed reports whether a view has claimed the touch.
func (e *TouchEvent) Consumed() bool {
	return e.consumed
}

// KeyAction is what a key did this frame.
type KeyAction uint8

const (
	KeyPressed  KeyAction = iota // key went down
	KeyTyped                     // a character was produced
	KeyReleased                  // key went up
)

var keyActionNames = [...]string{"pressed", "typed", "released"}

func (a KeyAction) String() string {
	if int(a) < len(keyActionNames) {
		return keyActionNames[a]
	}
	return "unknown"
}

// KeyEvent is one keyboard event. Only focused views receive it.
type KeyEvent struct {
	Action    KeyAction
	Key       ebiten.Key
	Char      rune
	Modifiers KeyModifiers

	consumed bool
}

// Consume marks the key as handled.
func (e *KeyEvent) Consume() {
	e.consumed = true
}

// Consumed reports whether a view has claimed the key.
func (e *KeyEvent) Consumed() bool {
	return e.consumed
}

// eventKind maps a key action to the callback tag it fires.
func (a KeyAction) eventKind() EventKind {
	switch a {
	case KeyTyped:
		return EventKeyTyped
	case KeyReleased:
		return EventKeyReleased
	default:
		return EventKeyPressed
	}
}

// Fired records one callback notification made during a dispatch pass.
type Fired struct {
	View *View
	Kind EventKind
	// Touch is the touch that triggered the notification, or nil.
	Touch *TouchEvent
}

// DispatchContext carries the input of one dispatch pass and collects the
// notifications it produced. Create one per pass.
type DispatchContext struct {
	// Touches holds every touch of the frame. Views consume entries in place.
	Touches []*TouchEvent
	// Key is the key event for a key pass; nil for touch passes.
	Key *KeyEvent
	// Fired lists notifications in the order they were made.
	Fired []Fired

	inside []*TouchEvent // scratch buffer reused per view
}

// anyPressed reports whether any touch of the frame, consumed or not, is a press.
func (c *DispatchContext) anyPressed() bool {
	for _, t := range c.Touches {
		if t.Action == TouchPressed {
			return true
		}
	}
	return false
}
