package osier

import (
	"errors"
	"math"
)

// ErrInvalidCollider is returned when an unknown ColliderPolicy is installed.
var ErrInvalidCollider = errors.New("osier: invalid collider policy")

// ColliderPolicy selects how a view decides whether a screen point lies
// inside its rendered area.
type ColliderPolicy uint8

const (
	// ColliderPolygon runs an exact point-in-polygon test against the
	// transformed geometry.
	ColliderPolygon ColliderPolicy = iota
	// ColliderAABB tests against the axis-aligned box around the rotated view.
	ColliderAABB
	// ColliderCircle tests the distance to the center against half the
	// rotated bounding width.
	ColliderCircle

	colliderPolicyCount
)

// Valid reports whether p is a known policy.
func (p ColliderPolicy) Valid() bool {
	return p < colliderPolicyCount
}

// String returns the policy name.
func (p ColliderPolicy) String() string {
	switch p {
	case ColliderPolygon:
		return "polygon"
	case ColliderAABB:
		return "aabb"
	case ColliderCircle:
		return "circle"
	default:
		return "invalid"
	}
}

// Contains reports whether the screen point (px, py) lies inside the area
// described by t and g under the given policy. Degenerate transforms and
// unknown policies contain nothing.
func Contains(policy ColliderPolicy, t Transform, g *Geometry, px, py float64) bool {
	if t.Degenerate() {
		return false
	}
	switch policy {
	case ColliderAABB:
		return containsAABB(t, px, py)
	case ColliderCircle:
		return containsCircle(t, px, py)
	case ColliderPolygon:
		return containsPolygon(t, g, px, py)
	default:
		return false
	}
}

func containsAABB(t Transform, px, py float64) bool {
	bw, bh := t.BoundingSize()
	return math.Abs(px-t.X) <= bw/2 && math.Abs(py-t.Y) <= bh/2
}

func containsCircle(t Transform, px, py float64) bool {
	bw, _ := t.BoundingSize()
	r := bw / 2
	dx := px - t.X
	dy := py - t.Y
	return dx*dx+dy*dy <= r*r
}

// containsPolygon maps every vertex into screen space and runs the
// crossing-number test over the flattened vertex list; contour markers do
// not split the loop.
//
// On-boundary rule: edges are half-open in y (the lower endpoint counts, the
// upper does not) and a point exactly on an edge toggles only when the edge
// lies strictly to its right. For an unrotated rectangle the minimum x and y
// boundaries are therefore inside and the maximum ones outside.
func containsPolygon(t Transform, g *Geometry, px, py float64) bool {
	if g == nil || len(g.vertices) < 3 {
		return false
	}
	if !t.BoundingRect().Contains(px, py) {
		return false
	}
	sin, cos := math.Sincos(t.Rotation)
	abs := func(v Vertex) (float64, float64) {
		sx, sy := v.X*t.Width, v.Y*t.Height
		return sx*cos - sy*sin + t.X, sx*sin + sy*cos + t.Y
	}

	verts := g.vertices
	inside := false
	xj, yj := abs(verts[len(verts)-1])
	for i := range verts {
		xi, yi := abs(verts[i])
		if (yi > py) != (yj > py) && px < (xj-xi)*(py-yi)/(yj-yi)+xi {
			inside = !inside
		}
		xj, yj = xi, yi
	}
	return inside
}
