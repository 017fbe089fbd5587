package osier

import "math"

const twoPi = 2 * math.Pi

// Transform is a view's resolved placement in screen space: the center
// (X, Y), the size, and the rotation in radians about the center.
//
// Transforms are derived every update from the view's Style, the parent's
// Transform, and the expansion scale. Nothing accumulates across frames.
type Transform struct {
	X, Y          float64
	Width, Height float64
	Rotation      float64
}

// ComputeAbsolute maps a normalized vertex into screen space: scale by
// (w, h), rotate by rot about the origin, then translate by (x, y).
// The sine and cosine are taken from the absolute rotation on every call.
func ComputeAbsolute(v Vertex, x, y, w, h, rot float64) (ax, ay float64) {
	rx, ry := Rotate(v.X*w, v.Y*h, rot)
	return rx + x, ry + y
}

// Rotate rotates (x, y) by rot radians about the origin.
func Rotate(x, y, rot float64) (float64, float64) {
	if rot == 0 {
		return x, y
	}
	sin, cos := math.Sincos(rot)
	return x*cos - y*sin, x*sin + y*cos
}

// RotatedBoundingBox returns the axis-aligned bounding size of a w×h
// rectangle rotated by rot.
func RotatedBoundingBox(w, h, rot float64) (bw, bh float64) {
	sin, cos := math.Sincos(rot)
	sin, cos = math.Abs(sin), math.Abs(cos)
	return math.Abs(w)*cos + math.Abs(h)*sin, math.Abs(h)*cos + math.Abs(w)*sin
}

// NormalizeAngle wraps rot into [0, 2π).
func NormalizeAngle(rot float64) float64 {
	r := math.Mod(rot, twoPi)
	if r < 0 {
		r += twoPi
	}
	if r >= twoPi {
		r = 0
	}
	return r
}

// Normalized returns t with negative sizes clamped to zero and the rotation
// wrapped into [0, 2π).
func (t Transform) Normalized() Transform {
	t.Width = math.Max(t.Width, 0)
	t.Height = math.Max(t.Height, 0)
	t.Rotation = NormalizeAngle(t.Rotation)
	return t
}

// Degenerate reports whether t has no area. Degenerate transforms contain no points.
func (t Transform) Degenerate() bool {
	return !(t.Width > 0) || !(t.Height > 0)
}

// Apply maps a normalized vertex into screen space.
func (t Transform) Apply(v Vertex) (float64, float64) {
	return ComputeAbsolute(v, t.X, t.Y, t.Width, t.Height, t.Rotation)
}

// ToLocal maps a screen point back into normalized space. It returns
// (0, 0) for degenerate transforms.
func (t Transform) ToLocal(px, py float64) (lx, ly float64) {
	if t.Degenerate() {
		return 0, 0
	}
	rx, ry := Rotate(px-t.X, py-t.Y, -t.Rotation)
	return rx / t.Width, ry / t.Height
}

// BoundingSize returns the size of the axis-aligned box around the rotated view.
func (t Transform) BoundingSize() (bw, bh float64) {
	return RotatedBoundingBox(t.Width, t.Height, t.Rotation)
}

// BoundingRect returns the axis-aligned box around the rotated view.
func (t Transform) BoundingRect() Rect {
	bw, bh := t.BoundingSize()
	return Rect{X: t.X - bw/2, Y: t.Y - bh/2, Width: bw, Height: bh}
}

// AppendAbsolute appends the screen-space position of every vertex of g to buf.
func (t Transform) AppendAbsolute(g *Geometry, buf []Vec2) []Vec2 {
	sin, cos := math.Sincos(t.Rotation)
	for _, v := range g.vertices {
		sx, sy := v.X*t.Width, v.Y*t.Height
		buf = append(buf, Vec2{
			X: sx*cos - sy*sin + t.X,
			Y: sx*sin + sy*cos + t.Y,
		})
	}
	return buf
}
