package osier

// DispatchTouches runs one touch pass over the tree rooted at root.
//
// Children are visited before their group, most recently added first, so the
// visually topmost view sees a touch before the views beneath it. Hidden
// subtrees are skipped. Callers must not add or remove views from listeners
// invoked during the pass.
func DispatchTouches(root *View, ctx *DispatchContext) {
	if root == nil || ctx == nil || !root.visible {
		return
	}
	for i := len(root.children) - 1; i >= 0; i-- {
		DispatchTouches(root.children[i], ctx)
	}
	root.dispatchTouches(ctx)
}

// dispatchTouches applies the per-view hover/focus state machine against the
// unconsumed touches of the pass.
func (v *View) dispatchTouches(ctx *DispatchContext) {
	inside := ctx.inside[:0]
	for _, t := range ctx.Touches {
		if t.consumed || t.Action == TouchExited {
			continue
		}
		if v.Contains(t.X, t.Y) {
			inside = append(inside, t)
		}
	}
	ctx.inside = inside

	if len(inside) == 0 {
		if v.focus && ctx.anyPressed() {
			v.focus = false
			v.fire(ctx, EventFocusLost, Event{})
		}
		if v.hover {
			v.hover = false
			if v.visible {
				v.fire(ctx, EventMouseExit, Event{})
			}
		}
		return
	}

	if v.Focusable && !v.focus && v.visible {
		for _, t := range inside {
			if t.Action == TouchPressed {
				v.focus = true
				v.fire(ctx, EventFocusGained, Event{Touch: t})
				break
			}
		}
	}

	if !v.hover {
		v.hover = true
		v.fire(ctx, EventMouseEnter, Event{Touch: inside[0]})
	} else {
		v.fire(ctx, EventMouseHover, Event{Touch: inside[0]})
	}

	for _, t := range inside {
		if kind, ok := touchEventKind(t.Action); ok {
			v.fire(ctx, kind, Event{Touch: t})
		}
	}

	if v.Consumer {
		for _, t := range inside {
			t.Consume()
		}
	}
}

// touchEventKind maps a touch action to the callback it fires inside a view.
// Moves only drive hover.
func touchEventKind(a TouchAction) (EventKind, bool) {
	switch a {
	case TouchClicked:
		return EventClick, true
	case TouchPressed:
		return EventPress, true
	case TouchReleased:
		return EventRelease, true
	case TouchDragged:
		return EventDrag, true
	case TouchWheel:
		return EventWheel, true
	default:
		return 0, false
	}
}

// DispatchKey delivers ctx.Key to focused, visible views in the same order
// as DispatchTouches until a view consumes it.
func DispatchKey(root *View, ctx *DispatchContext) {
	if root == nil || ctx == nil || ctx.Key == nil || !root.visible {
		return
	}
	for i := len(root.children) - 1; i >= 0; i-- {
		if ctx.Key.consumed {
			return
		}
		DispatchKey(root.children[i], ctx)
	}
	root.dispatchKey(ctx)
}

func (v *View) dispatchKey(ctx *DispatchContext) {
	k := ctx.Key
	if k.consumed || !v.focus || !v.visible {
		return
	}
	v.fire(ctx, k.Action.eventKind(), Event{Key: k})
	if v.KeyConsumer {
		k.Consume()
	}
}
