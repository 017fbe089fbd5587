package osier

import "github.com/tanema/gween/ease"

const (
	// DefaultExpansionLimit is the hover scale used by NewExpansion callers
	// that do not pick their own.
	DefaultExpansionLimit = 1.05
	// DefaultExpansionDuration is the time in seconds to grow from 1 to the limit.
	DefaultExpansionDuration = 0.125
)

// Expansion grows a view's rendered size while it is hovered and shrinks it
// back afterwards. The scale always stays within [1, Limit].
//
// Progress moves by 1/(fps × Duration) per frame; with the default
// ease.Linear the scale changes by (Limit-1)/(fps × Duration) per frame.
type Expansion struct {
	LimitX, LimitY float64
	Duration       float64
	Ease           ease.TweenFunc

	progress       float64
	scaleX, scaleY float64
}

// NewExpansion creates an expansion animator with the default duration and
// a linear ease. Limits below 1 are raised to 1.
func NewExpansion(limitX, limitY float64) *Expansion {
	return &Expansion{
		LimitX:   max(limitX, 1),
		LimitY:   max(limitY, 1),
		Duration: DefaultExpansionDuration,
		Ease:     ease.Linear,
		scaleX:   1,
		scaleY:   1,
	}
}

// Step advances the animation by one frame at fps frames per second.
func (e *Expansion) Step(hovered bool, fps float64) {
	if fps <= 0 {
		return
	}
	d := e.Duration
	step := 1.0
	if d > 0 {
		step = 1 / (fps * d)
	}
	if hovered {
		e.progress = min(1, e.progress+step)
	} else {
		e.progress = max(0, e.progress-step)
	}
	e.scaleX = e.scaleAt(e.LimitX)
	e.scaleY = e.scaleAt(e.LimitY)
}

func (e *Expansion) scaleAt(limit float64) float64 {
	limit = max(limit, 1)
	fn := e.Ease
	if fn == nil {
		fn = ease.Linear
	}
	span := limit - 1
	v := float64(fn(float32(e.progress), 0, 1, 1))
	if e.progress >= 1 {
		v = 1
	} else if e.progress <= 0 {
		v = 0
	}
	return min(limit, max(1, 1+span*v))
}

// Scale returns the current scale factors.
func (e *Expansion) Scale() (sx, sy float64) {
	if e.scaleX == 0 {
		return 1, 1
	}
	return e.scaleX, e.scaleY
}

// Progress returns the animation position in [0, 1].
func (e *Expansion) Progress() float64 {
	return e.progress
}

// Reset snaps the animation back to scale 1.
func (e *Expansion) Reset() {
	e.progress = 0
	e.scaleX, e.scaleY = 1, 1
}
