package osier

import "fmt"

// viewIDCounter is a plain counter; osier is single-threaded.
var viewIDCounter uint32

func nextViewID() uint32 {
	viewIDCounter++
	return viewIDCounter
}

// View is the single element type of the view tree. Widgets are built by
// composing a View and registering callbacks on it rather than by
// specializing it.
//
// A View is either a leaf or a group (see ViewKind). Groups own their
// children exclusively; a child is dispatched before its parent and later
// children before earlier ones.
type View struct {
	// Identity
	ID   uint32
	Name string
	kind ViewKind

	// Hierarchy
	parent   *View
	children []*View

	// Layout
	Style     Style
	Expansion *Expansion // nil disables the hover expansion

	// Geometry and its resolved placement
	geometry     Geometry
	builder      GeometryBuilder
	builderMode  BuilderMode
	builderGen   uint32
	transform    Transform
	collider     ColliderPolicy
	rendered     bool // transform has been resolved at least once

	// Interaction state. hover and focus are latched across frames.
	visible bool
	hover   bool
	focus   bool

	// Consumer makes the view consume touches that land inside it, so views
	// below it in the same pass never see them.
	Consumer bool
	// KeyConsumer makes the view consume key events delivered to it.
	KeyConsumer bool
	// Focusable allows a press inside the view to focus it.
	Focusable bool

	// Rendering
	Color Color

	// Metadata
	UserData any

	// OnUpdate runs once per frame before layout with the frame time in seconds.
	OnUpdate func(dt float64)

	callbacks CallbackRegistry

	disposed bool
}

// viewDefaults sets the common default field values shared by all constructors.
func viewDefaults(v *View) {
	v.ID = nextViewID()
	v.Style = FillStyle()
	v.visible = true
	v.Consumer = true
	v.KeyConsumer = true
	v.Focusable = true
	v.builder = RectBuilder
	v.builderGen = 1
}

// NewView creates a leaf view filling its parent with a rectangle geometry,
// a polygon collider and a white fill.
func NewView(name string) *View {
	v := &View{Name: name, kind: ViewLeaf}
	viewDefaults(v)
	v.collider = ColliderPolygon
	v.Color = ColorWhite
	return v
}

// NewGroup creates a container view. Groups are transparent, use the cheap
// AABB collider, and neither consume touches nor take focus by default, so
// they only react to input their children left unclaimed.
func NewGroup(name string) *View {
	v := &View{Name: name, kind: ViewGroup}
	viewDefaults(v)
	v.collider = ColliderAABB
	v.Color = ColorTransparent
	v.Consumer = false
	v.Focusable = false
	return v
}

// Kind reports whether v is a leaf or a group.
func (v *View) Kind() ViewKind {
	return v.kind
}

// IsGroup reports whether v can own children.
func (v *View) IsGroup() bool {
	return v.kind == ViewGroup
}

// --- Geometry and collision ---

// SetGeometryBuilder installs the function that fills the view's geometry.
// A nil builder is rejected and the previous one stays in effect.
func (v *View) SetGeometryBuilder(builder GeometryBuilder, mode BuilderMode) error {
	if builder == nil {
		return fmt.Errorf("set geometry builder on %q: %w", v.Name, ErrNilBuilder)
	}
	v.builder = builder
	v.builderMode = mode
	v.builderGen++
	return nil
}

// Geometry returns the view's geometry. It is rebuilt during update; callers
// outside a builder should treat it as read-only.
func (v *View) Geometry() *Geometry {
	return &v.geometry
}

// SetColliderPolicy selects the hit-test algorithm. Unknown policies are
// rejected and the previous policy stays in effect.
func (v *View) SetColliderPolicy(p ColliderPolicy) error {
	if !p.Valid() {
		return fmt.Errorf("set collider on %q: %w (%d)", v.Name, ErrInvalidCollider, p)
	}
	v.collider = p
	return nil
}

// ColliderPolicy returns the current hit-test algorithm.
func (v *View) ColliderPolicy() ColliderPolicy {
	return v.collider
}

// Bounds returns the transform resolved by the last update.
func (v *View) Bounds() Transform {
	return v.transform
}

// SetBounds overrides the resolved transform until the next update. Useful for
// views positioned by an external layout and in tests.
func (v *View) SetBounds(t Transform) {
	v.transform = t.Normalized()
	v.rendered = true
	v.geometry.rebuild(v.builder, v.builderMode, v.builderGen, v)
}

// Contains reports whether the screen point (x, y) lies inside the view
// under its collider policy.
func (v *View) Contains(x, y float64) bool {
	if !v.rendered {
		return false
	}
	return Contains(v.collider, v.transform, &v.geometry, x, y)
}

// AppendAbsolute appends the screen-space outline of the view to buf.
func (v *View) AppendAbsolute(buf []Vec2) []Vec2 {
	return v.transform.AppendAbsolute(&v.geometry, buf)
}

// --- Interaction state ---

// IsVisible reports the visibility flag.
func (v *View) IsVisible() bool {
	return v.visible
}

// IsOnFocus reports whether the view currently holds focus.
func (v *View) IsOnFocus() bool {
	return v.focus
}

// IsHovered reports whether a touch was inside the view in the last pass.
func (v *View) IsHovered() bool {
	return v.hover
}

// SetVisible shows or hides the view. Hiding clears hover and focus on the
// view and all its descendants immediately, firing EventFocusLost for views
// that held focus; no EventMouseExit fires for hidden views.
func (v *View) SetVisible(visible bool) {
	if v.visible == visible {
		return
	}
	v.visible = visible
	if !visible {
		clearInteraction(v)
	}
	v.callbacks.Notify(EventVisibilityChanged, Event{View: v})
}

// clearInteraction resets hover and focus on v's subtree.
func clearInteraction(v *View) {
	v.hover = false
	if v.focus {
		v.focus = false
		v.callbacks.Notify(EventFocusLost, Event{View: v})
	}
	for _, c := range v.children {
		clearInteraction(c)
	}
}

// RequestFocus gives focus to (or takes it from) the view outside of a
// dispatch pass. Hidden views cannot gain focus.
func (v *View) RequestFocus(focus bool) {
	if focus == v.focus {
		return
	}
	if focus && !v.visible {
		return
	}
	v.focus = focus
	if focus {
		v.callbacks.Notify(EventFocusGained, Event{View: v})
	} else {
		v.callbacks.Notify(EventFocusLost, Event{View: v})
	}
}

// --- Callbacks ---

// On registers fn for kind. Listeners run in registration order.
func (v *View) On(kind EventKind, fn func(Event)) CallbackHandle {
	return v.callbacks.Register(kind, fn)
}

// Notify invokes the listeners registered for kind with payload.
// Reports whether any listener ran.
func (v *View) Notify(kind EventKind, payload any) bool {
	return v.callbacks.Notify(kind, Event{View: v, Payload: payload})
}

// Callbacks returns the view's registry.
func (v *View) Callbacks() *CallbackRegistry {
	return &v.callbacks
}

// fire notifies listeners and records the notification in ctx.
func (v *View) fire(ctx *DispatchContext, kind EventKind, ev Event) {
	ev.View = v
	if ev.Touch != nil {
		ev.LocalX, ev.LocalY = v.transform.ToLocal(ev.Touch.X, ev.Touch.Y)
	}
	if ctx != nil {
		ctx.Fired = append(ctx.Fired, Fired{View: v, Kind: kind, Touch: ev.Touch})
	}
	v.callbacks.Notify(kind, ev)
}

// --- Tree manipulation ---

// Parent returns the owning group, or nil.
func (v *View) Parent() *View {
	return v.parent
}

// AddChild appends child to this group's children; it becomes the topmost child.
// If child already has a parent, it is removed from that parent first.
// Panics if v is a leaf, child is nil, or child is an ancestor of v (cycle).
func (v *View) AddChild(child *View) {
	v.checkAdd(child, "AddChild")
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = v
	v.children = append(v.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(v)
	}
}

// AddChildAt inserts child at the given index. Same reparenting and checks as AddChild.
func (v *View) AddChildAt(child *View, index int) {
	v.checkAdd(child, "AddChildAt")
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(v.children) {
		panic("osier: child index out of range")
	}
	child.parent = v
	v.children = append(v.children, nil)
	copy(v.children[index+1:], v.children[index:])
	v.children[index] = child
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(v)
	}
}

func (v *View) checkAdd(child *View, op string) {
	if child == nil {
		panic("osier: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(v, op+" (parent)")
		debugCheckDisposed(child, op+" (child)")
	}
	if v.kind != ViewGroup {
		panic(fmt.Sprintf("osier: cannot add child to leaf view %q", v.Name))
	}
	if isAncestor(child, v) {
		panic("osier: adding child would create a cycle")
	}
}

// RemoveChild detaches child from this group.
// Panics if child.Parent() != v.
func (v *View) RemoveChild(child *View) {
	if globalDebug {
		debugCheckDisposed(v, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.parent != v {
		panic("osier: child's parent is not this view")
	}
	v.removeChildByPtr(child)
	child.parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (v *View) RemoveChildAt(index int) *View {
	if index < 0 || index >= len(v.children) {
		panic("osier: child index out of range")
	}
	child := v.children[index]
	copy(v.children[index:], v.children[index+1:])
	v.children[len(v.children)-1] = nil
	v.children = v.children[:len(v.children)-1]
	child.parent = nil
	return child
}

// RemoveFromParent detaches this view from its parent.
// No-op if this view has no parent.
func (v *View) RemoveFromParent() {
	if v.parent == nil {
		return
	}
	v.parent.RemoveChild(v)
}

// RemoveChildren detaches all children. Children are NOT disposed.
func (v *View) RemoveChildren() {
	for i, child := range v.children {
		child.parent = nil
		v.children[i] = nil
	}
	v.children = v.children[:0]
}

// Children returns the child list in insertion order. The returned slice
// MUST NOT be mutated by the caller.
func (v *View) Children() []*View {
	return v.children
}

// NumChildren returns the number of children.
func (v *View) NumChildren() int {
	return len(v.children)
}

// ChildAt returns the child at the given index.
func (v *View) ChildAt(index int) *View {
	return v.children[index]
}

// Find returns the first view named name in v's subtree (depth-first,
// including v), or nil.
func (v *View) Find(name string) *View {
	if v.Name == name {
		return v
	}
	for _, c := range v.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Disposal ---

// Dispose removes this view from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (v *View) Dispose() {
	if v.disposed {
		return
	}
	v.RemoveFromParent()
	v.dispose()
}

func (v *View) dispose() {
	v.disposed = true
	v.ID = 0
	for _, child := range v.children {
		child.parent = nil
		child.dispose()
	}
	v.children = nil
	v.parent = nil
	v.builder = nil
	v.Expansion = nil
	v.UserData = nil
	v.OnUpdate = nil
	v.hover = false
	v.focus = false
	v.callbacks.Clear()
}

// IsDisposed returns true if this view has been disposed.
func (v *View) IsDisposed() bool {
	return v.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is v or one of its ancestors.
func isAncestor(candidate, v *View) bool {
	for p := v; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from v.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (v *View) removeChildByPtr(child *View) {
	for i, c := range v.children {
		if c == child {
			copy(v.children[i:], v.children[i+1:])
			v.children[len(v.children)-1] = nil
			v.children = v.children[:len(v.children)-1]
			return
		}
	}
}
