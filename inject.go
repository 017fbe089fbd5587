package osier

import "github.com/hajimehoshi/ebiten/v2"

// syntheticFrame is the input of one injected frame. Touch values are copied
// into fresh TouchEvents when the frame is consumed.
type syntheticFrame struct {
	touches []TouchEvent
	keys    []KeyEvent
}

func (p *Page) enqueue(f syntheticFrame) {
	p.injectQueue = append(p.injectQueue, f)
}

func touchFrame(x, y float64, actions ...TouchAction) syntheticFrame {
	f := syntheticFrame{touches: make([]TouchEvent, len(actions))}
	for i, a := range actions {
		f.touches[i] = TouchEvent{X: x, Y: y, Action: a, Button: MouseButtonLeft}
	}
	return f
}

// InjectPress queues a frame with a left-button press at (x, y).
// Each queued frame is consumed by one Update.
func (p *Page) InjectPress(x, y float64) {
	p.enqueue(touchFrame(x, y, TouchPressed))
}

// InjectMove queues a frame with a hovering pointer at (x, y).
func (p *Page) InjectMove(x, y float64) {
	p.enqueue(touchFrame(x, y, TouchMoved))
}

// InjectRelease queues a frame releasing the pointer at (x, y) without a click.
func (p *Page) InjectRelease(x, y float64) {
	p.enqueue(touchFrame(x, y, TouchReleased))
}

// InjectClick queues a press frame followed by a frame carrying both the
// release and the click at the same position. Consumes two frames.
func (p *Page) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.enqueue(touchFrame(x, y, TouchReleased, TouchClicked))
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated drag frames, and a release at (toX, toY). The total sequence
// consumes `frames` frames. Minimum frames is 2 (press + release).
func (p *Page) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		p.enqueue(touchFrame(x, y, TouchDragged))
	}
	p.InjectRelease(toX, toY)
}

// InjectWheel queues a frame with a wheel event at (x, y).
func (p *Page) InjectWheel(x, y, dx, dy float64) {
	f := touchFrame(x, y, TouchWheel)
	f.touches[0].WheelX, f.touches[0].WheelY = dx, dy
	p.enqueue(f)
}

// InjectKey queues a frame with a key press (plus a typed event when char is
// non-zero) followed by a frame with the release. Consumes two frames.
func (p *Page) InjectKey(key ebiten.Key, char rune) {
	down := syntheticFrame{keys: []KeyEvent{{Action: KeyPressed, Key: key}}}
	if char != 0 {
		down.keys = append(down.keys, KeyEvent{Action: KeyTyped, Key: key, Char: char})
	}
	p.enqueue(down)
	p.enqueue(syntheticFrame{keys: []KeyEvent{{Action: KeyReleased, Key: key}}})
}

// PendingInjections returns the number of queued synthetic frames.
func (p *Page) PendingInjections() int {
	return len(p.injectQueue)
}

// popInjected removes the next synthetic frame and returns fresh events for it.
func (p *Page) popInjected() ([]*TouchEvent, []*KeyEvent, bool) {
	if len(p.injectQueue) == 0 {
		return nil, nil, false
	}
	f := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue[len(p.injectQueue)-1] = syntheticFrame{}
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	touches := make([]*TouchEvent, len(f.touches))
	for i := range f.touches {
		t := f.touches[i]
		touches[i] = &t
	}
	keys := make([]*KeyEvent, len(f.keys))
	for i := range f.keys {
		k := f.keys[i]
		keys[i] = &k
	}
	return touches, keys, true
}
