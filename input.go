package osier

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// defaultClickSlop is how far in pixels a pointer may travel between press
// and release and still produce a click.
const defaultClickSlop = 4.0

// pointerState tracks one pointer across frames to turn edge events into
// press, drag, release and click actions.
type pointerState struct {
	down           bool
	button         MouseButton // button recorded at press
	startX, startY float64
	lastX, lastY   float64
}

// EbitenInput is the InputSource that reads the mouse, touch screen,
// wheel and keyboard from ebiten. The mouse is touch 0 and is reported every
// frame while it is over the window, so hover persists while it rests.
type EbitenInput struct {
	// ClickSlop is the maximum press-to-release travel of a click in pixels.
	ClickSlop float64

	mouse   pointerState
	touches map[ebiten.TouchID]*pointerState

	touchIDs []ebiten.TouchID
	keys     []ebiten.Key
	chars    []rune
	outT     []*TouchEvent
	outK     []*KeyEvent
}

// NewEbitenInput creates an input source with the default click slop.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{
		ClickSlop: defaultClickSlop,
		touches:   make(map[ebiten.TouchID]*pointerState),
	}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// Poll implements InputSource.
func (in *EbitenInput) Poll(p *Page) ([]*TouchEvent, []*KeyEvent) {
	in.outT = in.outT[:0]
	in.outK = in.outK[:0]
	mods := readModifiers()

	in.pollMouse(p, mods)
	in.pollTouches(mods)
	in.pollKeys(mods)
	return in.outT, in.outK
}

func (in *EbitenInput) emit(id int, x, y float64, a TouchAction, b MouseButton, mods KeyModifiers) *TouchEvent {
	t := &TouchEvent{ID: id, X: x, Y: y, Action: a, Button: b, Modifiers: mods}
	in.outT = append(in.outT, t)
	return t
}

// pollMouse reports the mouse as pointer 0.
func (in *EbitenInput) pollMouse(p *Page, mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	w, h := p.ScreenSize()

	button, pressed := selectButton(
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
	)
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle)

	in.stepMouse(x, y, w, h, pressed, justPressed, button, mods)

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		t := in.emit(0, x, y, TouchWheel, in.mouse.button, mods)
		t.WheelX, t.WheelY = wx, wy
	}
}

// stepMouse advances the mouse pointer state by one frame. A new press
// records its button; drag, release and click reuse the recorded button so
// it cannot change mid-interaction.
func (in *EbitenInput) stepMouse(x, y, w, h float64, pressed, justPressed bool, button MouseButton, mods KeyModifiers) {
	ms := &in.mouse
	switch {
	case pressed && (justPressed || !ms.down):
		ms.down = true
		ms.button = button
		ms.startX, ms.startY = x, y
		in.emit(0, x, y, TouchPressed, button, mods)
	case !pressed && ms.down:
		ms.down = false
		in.emit(0, x, y, TouchReleased, ms.button, mods)
		if in.withinSlop(ms, x, y) {
			in.emit(0, x, y, TouchClicked, ms.button, mods)
		}
	case pressed && (x != ms.lastX || y != ms.lastY):
		in.emit(0, x, y, TouchDragged, ms.button, mods)
	case x < 0 || y < 0 || x >= w || y >= h:
		in.emit(0, x, y, TouchExited, ms.button, mods)
	default:
		in.emit(0, x, y, TouchMoved, ms.button, mods)
	}
	ms.lastX, ms.lastY = x, y
}

// selectButton picks the button of a press from the held buttons, left
// first. Reports false when none is held.
func selectButton(left, right, middle bool) (MouseButton, bool) {
	switch {
	case left:
		return MouseButtonLeft, true
	case right:
		return MouseButtonRight, true
	case middle:
		return MouseButtonMiddle, true
	}
	return MouseButtonLeft, false
}

// pollTouches reports touch points as pointers 1 and up.
func (in *EbitenInput) pollTouches(mods KeyModifiers) {
	in.touchIDs = inpututil.AppendJustReleasedTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		ts, ok := in.touches[id]
		if !ok {
			continue
		}
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		x, y := float64(tx), float64(ty)
		in.emit(int(id)+1, x, y, TouchReleased, MouseButtonLeft, mods)
		if in.withinSlop(ts, x, y) {
			in.emit(int(id)+1, x, y, TouchClicked, MouseButtonLeft, mods)
		}
		delete(in.touches, id)
	}

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		x, y := float64(tx), float64(ty)
		ts, ok := in.touches[id]
		if !ok {
			ts = &pointerState{down: true, startX: x, startY: y, lastX: x, lastY: y}
			in.touches[id] = ts
			in.emit(int(id)+1, x, y, TouchPressed, MouseButtonLeft, mods)
			continue
		}
		in.emit(int(id)+1, x, y, TouchDragged, MouseButtonLeft, mods)
		ts.lastX, ts.lastY = x, y
	}
}

func (in *EbitenInput) withinSlop(ps *pointerState, x, y float64) bool {
	return math.Hypot(x-ps.startX, y-ps.startY) <= in.ClickSlop
}

// pollKeys reports key presses, typed characters and releases, in that order.
func (in *EbitenInput) pollKeys(mods KeyModifiers) {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		in.outK = append(in.outK, &KeyEvent{Action: KeyPressed, Key: k, Modifiers: mods})
	}
	in.chars = ebiten.AppendInputChars(in.chars[:0])
	for _, r := range in.chars {
		in.outK = append(in.outK, &KeyEvent{Action: KeyTyped, Char: r, Modifiers: mods})
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		in.outK = append(in.outK, &KeyEvent{Action: KeyReleased, Key: k, Modifiers: mods})
	}
}
