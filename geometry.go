package osier

import (
	"errors"
	"fmt"
)

// ErrVertexIndex is returned by Geometry.VertexAt for an index outside
// [0, Len()).
var ErrVertexIndex = errors.New("osier: vertex index out of range")

// ErrNilBuilder is returned when a nil GeometryBuilder is installed.
var ErrNilBuilder = errors.New("osier: nil geometry builder")

// Vertex is a point of a shape outline in normalized space. X and Y are
// always within [-0.5, 0.5]; (0, 0) is the view's center.
type Vertex struct {
	X, Y float64
	// StartsContour marks the first vertex of a sub-contour (e.g. the hole
	// of a ring). The first vertex of a Geometry always has it set.
	StartsContour bool
}

// Geometry is an ordered outline of normalized vertices. Insertion order
// defines the winding and the contours.
//
// The zero value is an empty geometry ready to use.
type Geometry struct {
	vertices []Vertex
	contours int

	// appliedGen is the builder generation that produced the current
	// vertices; 0 means nothing has been built yet.
	appliedGen uint32
}

// Clear removes all vertices. The backing buffer is retained.
func (g *Geometry) Clear() {
	g.vertices = g.vertices[:0]
	g.contours = 0
}

// AddVertex appends a vertex with coordinates clamped to [-0.5, 0.5].
// The very first vertex always starts a contour regardless of startsContour.
func (g *Geometry) AddVertex(x, y float64, startsContour bool) {
	if len(g.vertices) == 0 {
		startsContour = true
	}
	if startsContour {
		g.contours++
	}
	g.vertices = append(g.vertices, Vertex{
		X:             clampUnit(x),
		Y:             clampUnit(y),
		StartsContour: startsContour,
	})
}

// AddVertices appends x,y pairs from a flat slice. An odd-length slice is
// malformed and ignored entirely.
func (g *Geometry) AddVertices(flat ...float64) {
	if len(flat)%2 != 0 {
		return
	}
	for i := 0; i < len(flat); i += 2 {
		g.AddVertex(flat[i], flat[i+1], false)
	}
}

// Len returns the number of vertices.
func (g *Geometry) Len() int {
	return len(g.vertices)
}

// Contours returns the number of sub-contours.
func (g *Geometry) Contours() int {
	return g.contours
}

// VertexAt returns the vertex at index i.
func (g *Geometry) VertexAt(i int) (Vertex, error) {
	if i < 0 || i >= len(g.vertices) {
		return Vertex{}, fmt.Errorf("%w: %d (len %d)", ErrVertexIndex, i, len(g.vertices))
	}
	return g.vertices[i], nil
}

// Vertices returns the vertex list. The returned slice MUST NOT be mutated by the caller.
func (g *Geometry) Vertices() []Vertex {
	return g.vertices
}

// clampUnit clamps v into the normalized range [-0.5, 0.5].
func clampUnit(v float64) float64 {
	if v < -0.5 {
		return -0.5
	}
	if v > 0.5 {
		return 0.5
	}
	return v
}

// --- Builders ---

// GeometryBuilder fills g from the state of v. Builders are called with an
// already cleared Geometry and must not modify v.
type GeometryBuilder func(g *Geometry, v *View)

// BuilderMode selects when a view's GeometryBuilder runs.
type BuilderMode uint8

const (
	// BuildOnce runs the builder the first time it is applied and again only
	// after the builder is replaced.
	BuildOnce BuilderMode = iota
	// BuildEveryFrame reruns the builder on every update, for geometry that
	// depends on animated view state.
	BuildEveryFrame
)

// rebuild runs builder into g when the generation changed or the mode is dynamic.
func (g *Geometry) rebuild(builder GeometryBuilder, mode BuilderMode, gen uint32, v *View) {
	if builder == nil {
		return
	}
	if mode != BuildEveryFrame && g.appliedGen == gen {
		return
	}
	g.Clear()
	builder(g, v)
	g.appliedGen = gen
}
