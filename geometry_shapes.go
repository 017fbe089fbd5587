package osier

import "math"

// --- Ready-made geometry builders ---

// RectBuilder fills the full normalized square, clockwise from top-left.
func RectBuilder(g *Geometry, _ *View) {
	g.AddVertices(
		-0.5, -0.5,
		0.5, -0.5,
		0.5, 0.5,
		-0.5, 0.5,
	)
}

// EllipseBuilder returns a builder approximating an ellipse inscribed in the
// normalized square with the given number of segments (minimum 3).
func EllipseBuilder(segments int) GeometryBuilder {
	return RegularPolygonBuilder(segments)
}

// RegularPolygonBuilder returns a builder for a regular polygon with the
// given number of sides (minimum 3), first vertex pointing up.
func RegularPolygonBuilder(sides int) GeometryBuilder {
	if sides < 3 {
		sides = 3
	}
	return func(g *Geometry, _ *View) {
		appendArc(g, sides, 0.5, true)
	}
}

// RingBuilder returns a builder for an annulus made of two contours: the
// outer circle and an inner hole of innerRatio × the outer radius.
//
// Each contour is closed by repeating its first vertex, so the two bridge
// edges between contours coincide and cancel in the crossing test.
func RingBuilder(segments int, innerRatio float64) GeometryBuilder {
	if segments < 3 {
		segments = 3
	}
	innerRatio = clamp01(innerRatio)
	return func(g *Geometry, _ *View) {
		appendClosedArc(g, segments, 0.5)
		appendClosedArc(g, segments, 0.5*innerRatio)
	}
}

// RoundedRectBuilder returns a builder for a rectangle whose corners are
// rounded by radius (normalized, at most 0.5) using segments per corner.
func RoundedRectBuilder(radius float64, segments int) GeometryBuilder {
	if radius < 0 {
		radius = 0
	}
	if radius > 0.5 {
		radius = 0.5
	}
	if segments < 1 {
		segments = 1
	}
	return func(g *Geometry, _ *View) {
		if radius == 0 {
			RectBuilder(g, nil)
			return
		}
		inner := 0.5 - radius
		// Corner centers clockwise from top-right, each sweeping 90°.
		corners := [4]struct{ cx, cy, start float64 }{
			{inner, -inner, -math.Pi / 2},
			{inner, inner, 0},
			{-inner, inner, math.Pi / 2},
			{-inner, -inner, math.Pi},
		}
		for _, c := range corners {
			for i := 0; i <= segments; i++ {
				a := c.start + (math.Pi/2)*float64(i)/float64(segments)
				sin, cos := math.Sincos(a)
				g.AddVertex(c.cx+radius*cos, c.cy+radius*sin, false)
			}
		}
	}
}

// appendArc appends n vertices evenly spaced on a circle of radius r.
func appendArc(g *Geometry, n int, r float64, newContour bool) {
	for i := 0; i < n; i++ {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		sin, cos := math.Sincos(a)
		g.AddVertex(r*cos, r*sin, newContour && i == 0)
	}
}

// appendClosedArc appends a new contour of n vertices and repeats its first vertex.
func appendClosedArc(g *Geometry, n int, r float64) {
	start := len(g.vertices)
	appendArc(g, n, r, true)
	first := g.vertices[start]
	g.AddVertex(first.X, first.Y, false)
}
