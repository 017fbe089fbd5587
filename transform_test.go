package osier

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertNearTol(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

// --- ComputeAbsolute ---

func TestComputeAbsoluteIdentity(t *testing.T) {
	x, y := ComputeAbsolute(Vertex{X: 0.5, Y: -0.5}, 0, 0, 1, 1, 0)
	assertNear(t, "x", x, 0.5)
	assertNear(t, "y", y, -0.5)
}

func TestComputeAbsoluteScaleTranslate(t *testing.T) {
	x, y := ComputeAbsolute(Vertex{X: 0.5, Y: 0.5}, 100, 50, 40, 20, 0)
	assertNear(t, "x", x, 120)
	assertNear(t, "y", y, 60)
}

func TestComputeAbsoluteRotation90(t *testing.T) {
	// (0.5*40, 0) rotated by 90° → (0, 20)
	x, y := ComputeAbsolute(Vertex{X: 0.5, Y: 0}, 100, 100, 40, 20, math.Pi/2)
	assertNear(t, "x", x, 100)
	assertNear(t, "y", y, 120)
}

func TestComputeAbsoluteNoDrift(t *testing.T) {
	v := Vertex{X: 0.3, Y: -0.2}
	want1, want2 := ComputeAbsolute(v, 10, 20, 30, 40, 1.234)
	for i := 0; i < 1000; i++ {
		ComputeAbsolute(v, 10, 20, 30, 40, float64(i)*0.01)
	}
	got1, got2 := ComputeAbsolute(v, 10, 20, 30, 40, 1.234)
	if got1 != want1 || got2 != want2 {
		t.Errorf("repeated calls drifted: (%v, %v) vs (%v, %v)", got1, got2, want1, want2)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	angles := []float64{0, math.Pi / 4, math.Pi / 2, math.Pi, 3 * math.Pi / 2}
	points := [][2]float64{{1, 0}, {0.3, -0.7}, {-12.5, 4}, {100, 200}}
	for _, a := range angles {
		for _, p := range points {
			rx, ry := Rotate(p[0], p[1], a)
			bx, by := Rotate(rx, ry, -a)
			assertNearTol(t, "x", bx, p[0], 1e-4)
			assertNearTol(t, "y", by, p[1], 1e-4)
		}
	}
}

func TestToLocalInvertsApply(t *testing.T) {
	tr := Transform{X: 50, Y: 80, Width: 40, Height: 20, Rotation: 0.7}
	v := Vertex{X: 0.25, Y: -0.4}
	ax, ay := tr.Apply(v)
	lx, ly := tr.ToLocal(ax, ay)
	assertNearTol(t, "lx", lx, v.X, 1e-9)
	assertNearTol(t, "ly", ly, v.Y, 1e-9)

	lx, ly = Transform{Width: 0, Height: 10}.ToLocal(3, 4)
	if lx != 0 || ly != 0 {
		t.Errorf("degenerate ToLocal = (%v, %v), want (0, 0)", lx, ly)
	}
}

// --- RotatedBoundingBox ---

func TestRotatedBoundingBox(t *testing.T) {
	tests := []struct {
		name   string
		w, h   float64
		rot    float64
		bw, bh float64
	}{
		{"unrotated", 40, 20, 0, 40, 20},
		{"quarter turn", 40, 20, math.Pi / 2, 20, 40},
		{"half turn", 40, 20, math.Pi, 40, 20},
		{"45 degrees square", 10, 10, math.Pi / 4, 10 * math.Sqrt2, 10 * math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bw, bh := RotatedBoundingBox(tt.w, tt.h, tt.rot)
			assertNearTol(t, "bw", bw, tt.bw, 1e-9)
			assertNearTol(t, "bh", bh, tt.bh, 1e-9)
		})
	}
}

func TestRotatedBoundingBoxMonotonicity(t *testing.T) {
	sizes := [][2]float64{{40, 20}, {1, 100}, {7, 7}, {0, 5}}
	for _, s := range sizes {
		w, h := s[0], s[1]
		for i := 0; i <= 720; i++ {
			rot := float64(i) * math.Pi / 180
			bw, bh := RotatedBoundingBox(w, h, rot)
			lo, hi := math.Min(w, h)-1e-9, w+h+1e-9
			if bw < lo || bw > hi || bh < lo || bh > hi {
				t.Fatalf("RotatedBoundingBox(%v, %v, %v) = (%v, %v), outside [%v, %v]",
					w, h, rot, bw, bh, lo, hi)
			}
		}
	}
}

// --- Normalization ---

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		assertNearTol(t, "NormalizeAngle", got, tt.want, 1e-9)
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("NormalizeAngle(%v) = %v, outside [0, 2π)", tt.in, got)
		}
	}
}

func TestTransformNormalizedClampsSize(t *testing.T) {
	tr := Transform{Width: -5, Height: 10, Rotation: -math.Pi}.Normalized()
	if tr.Width != 0 {
		t.Errorf("Width = %v, want 0", tr.Width)
	}
	if !tr.Degenerate() {
		t.Error("zero-width transform should be degenerate")
	}
	assertNearTol(t, "Rotation", tr.Rotation, math.Pi, 1e-9)
}

func TestTransformBoundingRect(t *testing.T) {
	r := Transform{X: 100, Y: 100, Width: 40, Height: 20, Rotation: math.Pi / 2}.BoundingRect()
	assertNearTol(t, "X", r.X, 90, 1e-9)
	assertNearTol(t, "Y", r.Y, 80, 1e-9)
	assertNearTol(t, "Width", r.Width, 20, 1e-9)
	assertNearTol(t, "Height", r.Height, 40, 1e-9)
}

func TestTransformAppendAbsolute(t *testing.T) {
	var g Geometry
	RectBuilder(&g, nil)
	tr := Transform{X: 10, Y: 20, Width: 4, Height: 2}
	pts := tr.AppendAbsolute(&g, nil)
	want := []Vec2{{8, 19}, {12, 19}, {12, 21}, {8, 21}}
	if len(pts) != len(want) {
		t.Fatalf("len = %d, want %d", len(pts), len(want))
	}
	for i := range want {
		assertNear(t, "x", pts[i].X, want[i].X)
		assertNear(t, "y", pts[i].Y, want[i].Y)
	}
}
