package osier

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// MessageBus is the interface for decoupled inter-view communication.
// When set on a Page, every notification fired by a dispatch pass is sent
// to the bus, and widgets may send their own messages through Page.Send.
type MessageBus interface {
	Send(msg Message)
}

// Message is the unit carried by a MessageBus.
type Message struct {
	Kind     EventKind
	ViewID   uint32
	ViewName string
	// X and Y are the screen position of the triggering touch; zero for
	// notifications without one (key events, exits, focus loss).
	X, Y    float64
	Payload any
}

// InputSource supplies the touches and key events of one frame. Touches must
// be fresh values each frame since dispatch consumes them in place.
type InputSource interface {
	Poll(p *Page) (touches []*TouchEvent, keys []*KeyEvent)
}

// DefaultTPS is the update rate assumed until SetTPS is called.
const DefaultTPS = 60

// Page owns a view tree and runs its frame phases in a fixed order:
// layout and animation, then dispatch, then draw.
type Page struct {
	root  *View
	bus   MessageBus
	input InputSource
	debug bool

	// Screen state. design is the size the layout was authored for; the
	// ratio between screen and design feeds responsive clamps.
	screen  Transform
	designW float64
	designH float64
	tps     float64

	// Dispatch state
	ctx   DispatchContext
	fired []Fired

	// Synthetic input
	injectQueue []syntheticFrame
	testRunner  *TestRunner

	// Render scratch
	outline  []Vec2
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewPage creates a page for a screen authored at designW×designH pixels.
// The root is a group that fills the screen.
func NewPage(designW, designH float64) *Page {
	p := &Page{
		root:    NewGroup("root"),
		designW: designW,
		designH: designH,
		tps:     DefaultTPS,
	}
	p.Resize(designW, designH)
	return p
}

// Root returns the page's root group.
func (p *Page) Root() *View {
	return p.root
}

// Resize sets the current screen size. Layout picks it up on the next update.
func (p *Page) Resize(w, h float64) {
	p.screen = Transform{X: w / 2, Y: h / 2, Width: max(w, 0), Height: max(h, 0)}
}

// ScreenSize returns the current screen size.
func (p *Page) ScreenSize() (w, h float64) {
	return p.screen.Width, p.screen.Height
}

// Ratio returns the responsive ratio: current screen size over design size.
func (p *Page) Ratio() Vec2 {
	r := Vec2{1, 1}
	if p.designW > 0 {
		r.X = p.screen.Width / p.designW
	}
	if p.designH > 0 {
		r.Y = p.screen.Height / p.designH
	}
	return r
}

// SetTPS sets the update rate used to normalize animation steps.
func (p *Page) SetTPS(tps float64) {
	if tps > 0 {
		p.tps = tps
	}
}

// SetMessageBus sets the optional message bus.
func (p *Page) SetMessageBus(bus MessageBus) {
	p.bus = bus
}

// SetInputSource sets where Update reads frame input from. Injected input
// takes priority while queued.
func (p *Page) SetInputSource(src InputSource) {
	p.input = src
}

// Send forwards msg to the message bus, if any.
func (p *Page) Send(msg Message) {
	if p.bus != nil {
		p.bus.Send(msg)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-view
// access panics, tree depth and child count warnings are printed, and
// per-frame timing stats are logged to stderr.
func (p *Page) SetDebugMode(enabled bool) {
	p.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Page debug flag so that view
// operations (which lack a Page pointer) can check it cheaply. Only valid
// with a single Page.
var globalDebug bool

// Update runs one frame: the test runner step, layout and animation for the
// whole tree, then one touch pass and one pass per key event.
func (p *Page) Update() {
	if p.testRunner != nil {
		p.testRunner.step(p)
	}

	var stats debugStats
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}

	p.Layout()

	if p.debug {
		stats.layoutTime = time.Since(t0)
		t0 = time.Now()
	}

	touches, keys := p.collectInput()
	p.Dispatch(touches, keys)

	if p.debug {
		stats.dispatchTime = time.Since(t0)
		stats.viewCount = countViews(p.root)
		stats.touchCount = len(touches)
		stats.keyCount = len(keys)
		stats.firedCount = len(p.fired)
		p.debugLog(stats)
	}
}

// Layout runs only the update phase: expansion, transforms and geometry.
func (p *Page) Layout() {
	updateView(p.root, p.screen, &layoutParams{
		ratio: p.Ratio(),
		fps:   p.tps,
		dt:    1 / p.tps,
	})
}

// Dispatch runs one touch pass over touches and then one key pass per key
// event, forwarding notifications to the message bus. Use it directly when
// the backend polls input itself.
func (p *Page) Dispatch(touches []*TouchEvent, keys []*KeyEvent) {
	p.fired = p.fired[:0]

	ctx := &p.ctx
	ctx.Touches = touches
	ctx.Key = nil
	ctx.Fired = ctx.Fired[:0]
	DispatchTouches(p.root, ctx)
	p.publish(ctx.Fired)

	for _, k := range keys {
		ctx.Key = k
		ctx.Fired = ctx.Fired[:0]
		DispatchKey(p.root, ctx)
		p.publish(ctx.Fired)
	}
	ctx.Touches = nil
	ctx.Key = nil
}

// Fired returns the notifications made by the last Dispatch, in order.
// The returned slice MUST NOT be mutated and is reused by the next frame.
func (p *Page) Fired() []Fired {
	return p.fired
}

func (p *Page) publish(fired []Fired) {
	p.fired = append(p.fired, fired...)
	if p.bus == nil {
		return
	}
	for _, f := range fired {
		msg := Message{Kind: f.Kind, ViewID: f.View.ID, ViewName: f.View.Name}
		if f.Touch != nil {
			msg.X, msg.Y = f.Touch.X, f.Touch.Y
		}
		p.bus.Send(msg)
	}
}

// collectInput drains one injected frame if any, otherwise polls the input source.
func (p *Page) collectInput() ([]*TouchEvent, []*KeyEvent) {
	if touches, keys, ok := p.popInjected(); ok {
		return touches, keys
	}
	if p.input != nil {
		return p.input.Poll(p)
	}
	return nil, nil
}
