package osier

// EventKind tags a callback list in a view's registry. Values at or above
// EventUser are free for widget-defined events.
type EventKind uint16

const (
	EventFocusGained       EventKind = iota // view became the focused view
	EventFocusLost                          // view lost focus (press elsewhere, hidden, or released)
	EventMouseEnter                         // first frame a touch is inside the view
	EventMouseHover                         // every later frame a touch stays inside
	EventMouseExit                          // first frame no touch is inside
	EventClick                              // a CLICKED touch inside the view
	EventPress                              // a PRESSED touch inside the view
	EventRelease                            // a RELEASED touch inside the view
	EventDrag                               // a DRAGGED touch inside the view
	EventWheel                              // a WHEEL touch inside the view
	EventKeyPressed                         // key pressed while focused
	EventKeyTyped                           // character typed while focused
	EventKeyReleased                        // key released while focused
	EventVisibilityChanged                  // SetVisible changed the flag

	// EventUser is the first tag available to widgets.
	EventUser EventKind = 256
)

var eventKindNames = [...]string{
	EventFocusGained:       "focus-gained",
	EventFocusLost:         "focus-lost",
	EventMouseEnter:        "mouse-enter",
	EventMouseHover:        "mouse-hover",
	EventMouseExit:         "mouse-exit",
	EventClick:             "click",
	EventPress:             "press",
	EventRelease:           "release",
	EventDrag:              "drag",
	EventWheel:             "wheel",
	EventKeyPressed:        "key-pressed",
	EventKeyTyped:          "key-typed",
	EventKeyReleased:       "key-released",
	EventVisibilityChanged: "visibility-changed",
}

// String returns a readable name for built-in kinds.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	if k >= EventUser {
		return "user"
	}
	return "unknown"
}

// Event is passed to listeners.
type Event struct {
	Kind EventKind
	View *View

	// Touch is set for touch-driven kinds, Key for key kinds.
	Touch *TouchEvent
	Key   *KeyEvent

	// LocalX and LocalY are the touch position in the view's normalized
	// space, in [-0.5, 0.5] when inside.
	LocalX, LocalY float64

	// Payload carries widget data for EventUser kinds.
	Payload any
}

type listener struct {
	id uint32
	fn func(Event)
}

// CallbackRegistry maps event kinds to ordered listener lists. Listeners run
// in registration order; registering the same function twice runs it twice.
//
// The zero value is ready to use.
type CallbackRegistry struct {
	lists  map[EventKind][]listener
	nextID uint32
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id   uint32
	kind EventKind
	reg  *CallbackRegistry
}

// Register appends fn to the list for kind.
func (r *CallbackRegistry) Register(kind EventKind, fn func(Event)) CallbackHandle {
	if r.lists == nil {
		r.lists = make(map[EventKind][]listener)
	}
	r.nextID++
	r.lists[kind] = append(r.lists[kind], listener{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, kind: kind, reg: r}
}

// Notify invokes every listener registered for kind, in order.
// Reports whether any listener ran.
func (r *CallbackRegistry) Notify(kind EventKind, ev Event) bool {
	list := r.lists[kind]
	if len(list) == 0 {
		return false
	}
	ev.Kind = kind
	for _, l := range list {
		l.fn(ev)
	}
	return true
}

// Len returns the number of listeners registered for kind.
func (r *CallbackRegistry) Len(kind EventKind) int {
	return len(r.lists[kind])
}

// Clear drops all listeners.
func (r *CallbackRegistry) Clear() {
	r.lists = nil
}

// Remove unregisters this listener so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.lists[h.kind]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			h.reg.lists[h.kind] = s[:len(s)-1]
			return
		}
	}
}
