package osier

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whitePixel is a 1x1 white image used as the source for solid fills.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// Draw renders the view tree onto screen. Views are painted parent first,
// then children in insertion order, so the last child is on top. Hidden
// subtrees and transparent views are skipped.
func (p *Page) Draw(screen *ebiten.Image) {
	var stats debugStats
	var t0 time.Time
	if p.debug {
		t0 = time.Now()
	}
	p.drawView(screen, p.root, &stats)
	if p.debug {
		stats.drawTime = time.Since(t0)
		p.debugLogDraw(stats)
	}
}

func (p *Page) drawView(dst *ebiten.Image, v *View, stats *debugStats) {
	if !v.visible || !v.rendered {
		return
	}
	if v.Color.A > 0 && v.geometry.Len() >= 3 && p.onScreen(v.transform) {
		p.fillView(dst, v)
		stats.drawnCount++
	}
	for _, c := range v.children {
		p.drawView(dst, c, stats)
	}
}

// onScreen reports whether any part of t's bounding box overlaps the screen.
// Degenerate transforms are never drawn.
func (p *Page) onScreen(t Transform) bool {
	if t.Degenerate() {
		return false
	}
	w, h := p.ScreenSize()
	return t.BoundingRect().Intersects(Rect{Width: w, Height: h})
}

// fillView tessellates the view's outline, one subpath per contour, and fills
// it with the even-odd rule so inner contours become holes.
func (p *Page) fillView(dst *ebiten.Image, v *View) {
	p.outline = v.AppendAbsolute(p.outline[:0])
	verts := v.geometry.Vertices()

	var path vector.Path
	for i, pt := range p.outline {
		if verts[i].StartsContour {
			if i > 0 {
				path.Close()
			}
			path.MoveTo(float32(pt.X), float32(pt.Y))
			continue
		}
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()

	p.vertices, p.indices = path.AppendVerticesAndIndicesForFilling(p.vertices[:0], p.indices[:0])
	c := v.Color
	r, g, b, a := float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A)
	for i := range p.vertices {
		p.vertices[i].SrcX = 0.5
		p.vertices[i].SrcY = 0.5
		p.vertices[i].ColorR = r
		p.vertices[i].ColorG = g
		p.vertices[i].ColorB = b
		p.vertices[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.EvenOdd,
		AntiAlias: true,
	}
	dst.DrawTriangles(p.vertices, p.indices, ensureWhitePixel(), op)
}
