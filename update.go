package osier

// layoutParams is the per-frame input to the layout phase.
type layoutParams struct {
	ratio Vec2
	fps   float64
	dt    float64
}

// updateView runs the update phase for v's subtree: user hook, expansion
// step, transform resolution against parent, then geometry rebuild.
// Hidden subtrees keep their last transform.
func updateView(v *View, parent Transform, p *layoutParams) {
	if !v.visible {
		return
	}
	if v.OnUpdate != nil {
		v.OnUpdate(p.dt)
	}

	scale := Vec2{1, 1}
	if v.Expansion != nil {
		v.Expansion.Step(v.hover, p.fps)
		scale.X, scale.Y = v.Expansion.Scale()
	}

	v.transform = v.Style.Resolve(parent, p.ratio, scale)
	v.rendered = true
	v.geometry.rebuild(v.builder, v.builderMode, v.builderGen, v)

	for _, child := range v.children {
		updateView(child, v.transform, p)
	}
}

// countViews returns the number of views in v's subtree, v included.
func countViews(v *View) int {
	n := 1
	for _, c := range v.children {
		n += countViews(c)
	}
	return n
}
