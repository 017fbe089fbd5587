package osier

import (
	"math"
	"testing"
)

type recordingBus struct {
	msgs []Message
}

func (b *recordingBus) Send(msg Message) {
	b.msgs = append(b.msgs, msg)
}

type scriptedInput struct {
	frames [][]*TouchEvent
	polls  int
}

func (s *scriptedInput) Poll(*Page) ([]*TouchEvent, []*KeyEvent) {
	s.polls++
	if len(s.frames) == 0 {
		return nil, nil
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f, nil
}

// newButtonPage returns a 200×200 page with a 40×40 button in the center.
func newButtonPage() (*Page, *View) {
	p := NewPage(200, 200)
	btn := NewView("button")
	btn.Style = Style{X: 0.5, Y: 0.5, Width: 0.2, Height: 0.2}
	p.Root().AddChild(btn)
	return p, btn
}

func TestNewPage(t *testing.T) {
	p := NewPage(320, 240)
	if w, h := p.ScreenSize(); w != 320 || h != 240 {
		t.Errorf("ScreenSize = (%v, %v), want (320, 240)", w, h)
	}
	if r := p.Ratio(); r != (Vec2{1, 1}) {
		t.Errorf("Ratio = %+v, want (1, 1)", r)
	}
	if !p.Root().IsGroup() {
		t.Error("root should be a group")
	}
}

func TestPageLayout(t *testing.T) {
	p, btn := newButtonPage()
	panel := NewGroup("panel")
	panel.Style = Style{X: 0.25, Y: 0.25, Width: 0.5, Height: 0.5}
	inner := NewView("inner")
	inner.Style = Style{X: 1, Y: 1, Width: 0.5, Height: 0.5}
	p.Root().AddChild(panel)
	panel.AddChild(inner)

	p.Layout()

	b := btn.Bounds()
	assertNear(t, "btn.X", b.X, 100)
	assertNear(t, "btn.Width", b.Width, 40)

	// panel covers (0,0)-(100,100); inner is centered on its bottom-right corner.
	in := inner.Bounds()
	assertNear(t, "inner.X", in.X, 100)
	assertNear(t, "inner.Y", in.Y, 100)
	assertNear(t, "inner.Width", in.Width, 50)
}

func TestPageLayoutSkipsHidden(t *testing.T) {
	p, btn := newButtonPage()
	p.Layout()
	btn.SetVisible(false)
	btn.Style.Width = 1
	p.Layout()
	assertNear(t, "Width", btn.Bounds().Width, 40)
}

func TestPageResize(t *testing.T) {
	p, btn := newButtonPage()
	btn.Style.MaxWidth = 30
	btn.Style.ResponsiveClamps = true

	p.Resize(400, 100)
	if r := p.Ratio(); r != (Vec2{2, 0.5}) {
		t.Errorf("Ratio = %+v, want (2, 0.5)", r)
	}
	p.Layout()
	assertNear(t, "Width", btn.Bounds().Width, 60)
	assertNear(t, "Height", btn.Bounds().Height, 20)
}

func TestPageSetTPS(t *testing.T) {
	p := NewPage(10, 10)
	var dt float64
	p.Root().OnUpdate = func(d float64) { dt = d }

	p.SetTPS(0)
	p.Layout()
	assertNear(t, "dt", dt, 1.0/DefaultTPS)

	p.SetTPS(30)
	p.Layout()
	assertNear(t, "dt", dt, 1.0/30)
}

func TestPageUpdateInjectedClick(t *testing.T) {
	p, btn := newButtonPage()
	clicks := 0
	btn.On(EventClick, func(Event) { clicks++ })

	p.InjectClick(100, 100)
	p.Update()
	assertFired(t, p.Fired(), "button:focus-gained", "button:mouse-enter", "button:press")
	p.Update()
	assertFired(t, p.Fired(), "button:mouse-hover", "button:release", "button:click")

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if !btn.IsOnFocus() {
		t.Error("button should keep focus after the click")
	}
}

func TestPageUpdateGroupSeesUnclaimedTouches(t *testing.T) {
	p, _ := newButtonPage()
	p.InjectMove(10, 10)
	p.Update()
	assertFired(t, p.Fired(), "root:mouse-enter")
}

func TestPageMessageBus(t *testing.T) {
	p, btn := newButtonPage()
	bus := &recordingBus{}
	p.SetMessageBus(bus)

	p.InjectPress(100, 100)
	p.Update()
	if len(bus.msgs) != 3 {
		t.Fatalf("bus got %d messages, want 3", len(bus.msgs))
	}
	m := bus.msgs[0]
	if m.Kind != EventFocusGained || m.ViewID != btn.ID || m.ViewName != "button" {
		t.Errorf("first message = %+v", m)
	}
	if m.X != 100 || m.Y != 100 {
		t.Errorf("message position = (%v, %v), want (100, 100)", m.X, m.Y)
	}

	p.Send(Message{Kind: EventUser, ViewName: "custom"})
	if last := bus.msgs[len(bus.msgs)-1]; last.ViewName != "custom" {
		t.Errorf("Send did not reach the bus: %+v", last)
	}

	p.SetMessageBus(nil)
	p.Send(Message{}) // no bus: dropped
}

func TestPageKeyDispatch(t *testing.T) {
	p, btn := newButtonPage()
	var typed rune
	btn.On(EventKeyTyped, func(e Event) { typed = e.Key.Char })

	p.InjectClick(100, 100)
	p.InjectKey(0, 'q')
	for p.PendingInjections() > 0 {
		p.Update()
	}
	if typed != 'q' {
		t.Errorf("typed = %q, want 'q'", typed)
	}
}

func TestPageInputSource(t *testing.T) {
	p, btn := newButtonPage()
	src := &scriptedInput{frames: [][]*TouchEvent{
		{touch(100, 100, TouchMoved)},
	}}
	p.SetInputSource(src)

	p.Update()
	if !btn.IsHovered() {
		t.Error("polled move should hover the button")
	}

	// Injected frames take priority over the source.
	p.InjectMove(0, 0)
	p.Update()
	if src.polls != 1 {
		t.Errorf("source polled %d times, want 1", src.polls)
	}
	p.Update()
	if src.polls != 2 {
		t.Errorf("source polled %d times, want 2", src.polls)
	}
}

func TestPageExpansionOnHover(t *testing.T) {
	p, btn := newButtonPage()
	btn.Expansion = NewExpansion(1.5, 1.5)

	p.InjectMove(100, 100)
	p.Update() // hover latched after layout
	assertNear(t, "Width", btn.Bounds().Width, 40)

	p.InjectMove(100, 100)
	p.Update()
	want := 40 * (1 + 0.5/(DefaultTPS*DefaultExpansionDuration))
	if math.Abs(btn.Bounds().Width-want) > 1e-4 {
		t.Errorf("Width = %v, want %v", btn.Bounds().Width, want)
	}

	for i := 0; i < 20; i++ {
		p.InjectMove(190, 190)
		p.Update()
	}
	assertNear(t, "Width", btn.Bounds().Width, 40)
}

func TestPageDebugUpdate(t *testing.T) {
	p, _ := newButtonPage()
	p.SetDebugMode(true)
	defer p.SetDebugMode(false)
	if !globalDebug {
		t.Fatal("SetDebugMode should set the global flag")
	}
	p.InjectClick(100, 100)
	p.Update()
	p.Update()
}

func TestCountViews(t *testing.T) {
	p, _ := newButtonPage()
	g := NewGroup("g")
	g.AddChild(NewView("a"))
	p.Root().AddChild(g)
	if n := countViews(p.Root()); n != 4 {
		t.Errorf("countViews = %d, want 4", n)
	}
}

func TestPageMessagePositionFromTriggeringTouch(t *testing.T) {
	p, _ := newButtonPage()
	bus := &recordingBus{}
	p.SetMessageBus(bus)

	mouse := &TouchEvent{ID: 0, X: 5, Y: 5, Action: TouchMoved}
	finger := &TouchEvent{ID: 1, X: 100, Y: 100, Action: TouchPressed}
	p.Layout()
	p.Dispatch([]*TouchEvent{mouse, finger}, []*KeyEvent{{Action: KeyPressed}})

	type pos struct {
		name string
		x, y float64
	}
	want := []pos{
		{"button:focus-gained", 100, 100},
		{"button:mouse-enter", 100, 100},
		{"button:press", 100, 100},
		{"root:mouse-enter", 5, 5},
		{"button:key-pressed", 0, 0},
	}
	if len(bus.msgs) != len(want) {
		t.Fatalf("bus got %d messages, want %d", len(bus.msgs), len(want))
	}
	for i, w := range want {
		m := bus.msgs[i]
		if got := m.ViewName + ":" + m.Kind.String(); got != w.name {
			t.Errorf("message %d = %s, want %s", i, got, w.name)
		}
		if m.X != w.x || m.Y != w.y {
			t.Errorf("message %d (%s) at (%v, %v), want (%v, %v)", i, w.name, m.X, m.Y, w.x, w.y)
		}
	}
}

func TestPageMessageWithoutTouchHasNoPosition(t *testing.T) {
	p, _ := newButtonPage()
	bus := &recordingBus{}
	p.SetMessageBus(bus)
	p.Layout()

	p.Dispatch([]*TouchEvent{touch(100, 100, TouchMoved)}, nil)
	bus.msgs = bus.msgs[:0]
	p.Dispatch(nil, nil)

	if len(bus.msgs) != 1 || bus.msgs[0].Kind != EventMouseExit {
		t.Fatalf("messages = %+v, want one mouse-exit", bus.msgs)
	}
	if m := bus.msgs[0]; m.X != 0 || m.Y != 0 {
		t.Errorf("exit at (%v, %v), want (0, 0)", m.X, m.Y)
	}
}
