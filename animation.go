package osier

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields of a View's Style or Color
// simultaneously. Create one via the convenience constructors and call
// Update(dt) each frame, typically from the view's OnUpdate hook. If the
// target view is disposed, the group stops immediately.
//
// Layout reads the style every frame, so no invalidation is needed.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *View
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target view has been disposed, Done is set and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenPosition animates the view's relative position (Style.X, Style.Y).
func TweenPosition(v *View, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: v}
	g.add(&v.Style.X, toX, duration, fn)
	g.add(&v.Style.Y, toY, duration, fn)
	return g
}

// TweenSize animates the view's relative size (Style.Width, Style.Height).
func TweenSize(v *View, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: v}
	g.add(&v.Style.Width, toW, duration, fn)
	g.add(&v.Style.Height, toH, duration, fn)
	return g
}

// TweenRotation animates the view's relative rotation.
func TweenRotation(v *View, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: v}
	g.add(&v.Style.Rotation, to, duration, fn)
	return g
}

// TweenColor animates all four components of the view's fill color.
func TweenColor(v *View, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: v}
	g.add(&v.Color.R, to.R, duration, fn)
	g.add(&v.Color.G, to.G, duration, fn)
	g.add(&v.Color.B, to.B, duration, fn)
	g.add(&v.Color.A, to.A, duration, fn)
	return g
}
