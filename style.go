package osier

import "math"

// Style places a view relative to its parent. Positions and sizes are
// fractions of the parent's size: X=0.5, Y=0.5 centers the view, and
// Width=1, Height=1 fills the parent.
//
// The pixel clamps are optional; zero means unset.
type Style struct {
	X, Y          float64
	Width, Height float64
	// Rotation is added to the parent's rotation (radians).
	Rotation float64

	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
	// ResponsiveClamps scales the pixel clamps by the page's responsive
	// ratio (current screen size over design size).
	ResponsiveClamps bool
}

// FillStyle returns a Style that covers the whole parent.
func FillStyle() Style {
	return Style{X: 0.5, Y: 0.5, Width: 1, Height: 1}
}

// Resolve computes the view's Transform from the parent's Transform.
// ratio is the page's responsive ratio and scale the current expansion scale.
func (s Style) Resolve(parent Transform, ratio, scale Vec2) Transform {
	w := s.Width * parent.Width
	h := s.Height * parent.Height

	rx, ry := 1.0, 1.0
	if s.ResponsiveClamps {
		rx, ry = ratio.X, ratio.Y
	}
	w = clampSize(w, s.MinWidth*rx, s.MaxWidth*rx)
	h = clampSize(h, s.MinHeight*ry, s.MaxHeight*ry)

	w *= scale.X
	h *= scale.Y

	ox, oy := Rotate((s.X-0.5)*parent.Width, (s.Y-0.5)*parent.Height, parent.Rotation)

	return Transform{
		X:        parent.X + ox,
		Y:        parent.Y + oy,
		Width:    w,
		Height:   h,
		Rotation: parent.Rotation + s.Rotation,
	}.Normalized()
}

// clampSize applies min then max; non-positive bounds are unset.
func clampSize(v, lo, hi float64) float64 {
	if lo > 0 {
		v = math.Max(v, lo)
	}
	if hi > 0 {
		v = math.Min(v, hi)
	}
	return v
}
