// Package osier is the view core of a retained-mode desktop widget toolkit
// for [Ebitengine].
//
// Osier places normalized view geometry on screen, decides which view a
// pointer or key belongs to, and routes input through the view tree so that
// exactly one view reacts to each touch. Concrete widgets (buttons, sliders,
// lists) are built on top by composing a [View] and registering callbacks.
//
// # Quick start
//
//	page := osier.NewPage(800, 600)
//
//	button := osier.NewView("ok")
//	button.Style = osier.Style{X: 0.5, Y: 0.8, Width: 0.2, Height: 0.08}
//	button.Expansion = osier.NewExpansion(1.1, 1.1)
//	button.On(osier.EventClick, func(ev osier.Event) { fmt.Println("clicked") })
//	page.Root().AddChild(button)
//
//	cfg, _ := osier.LoadRunConfig("osier")
//	osier.Run(page, cfg)
//
// For full control, implement [ebiten.Game] yourself and call [Page.Update]
// and [Page.Draw] directly, or feed input from another backend with
// [Page.Layout] and [Page.Dispatch].
//
// # Frame phases
//
// Every frame runs three phases in a fixed order, each over the whole tree:
//
//  1. Layout: each view's [Style] is resolved against its parent's
//     [Transform], scaled by its hover [Expansion], and its [Geometry] is
//     rebuilt when its builder changed (or every frame for [BuildEveryFrame]).
//  2. Dispatch: one touch pass, then one pass per key event. Children are
//     visited before their group, most recently added first. A view that
//     consumes a touch hides it from every view visited after it.
//  3. Draw: views are filled parent first, children in insertion order.
//
// Hover and focus are latched: each pass starts from the state the previous
// frame left behind.
//
// # Geometry and collision
//
// Geometry vertices live in [-0.5, 0.5] around the view's center. A
// [Transform] scales them by the view size, rotates them, and moves them to
// the view's center. Hit testing uses one of three [ColliderPolicy] values:
// the rotated bounding box, a circle, or the exact polygon.
//
// # Threading
//
// All of osier runs on the update goroutine. Views must not be mutated from
// other goroutines, and listeners must not add or remove views during a
// dispatch pass.
//
// [Ebitengine]: https://ebitengine.org
package osier
