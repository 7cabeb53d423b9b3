// Package rowan is a scene-graph and object-lifecycle engine for real-time
// simulations built on [Ebitengine].
//
// Rowan provides a hierarchical object model with propagated
// activation/destruction semantics, pluggable per-instance lifecycle
// handlers, and a behavior-combinator algebra that composes small primitive
// behaviors into emergent motion and timing without subclassing. Rendering,
// input polling, asset loading, and the outer frame pacing loop belong to the
// host: rowan receives an opaque draw surface and a delta-time scalar.
//
// # Quick start
//
// Implement [ebiten.Game] yourself and call [Root.Update] and [Root.Draw]
// once per frame:
//
//	type Game struct{ root *rowan.Root }
//
//	func (g *Game) Update() error              { g.root.Update(1.0 / float64(ebiten.TPS())); return nil }
//	func (g *Game) Draw(screen *ebiten.Image)  { g.root.Draw(screen) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Object tree
//
// Every entity is a [GameObject]. Objects form a forest owned by [Root].
// The active flag propagates to the whole subtree on change; Enabled (gates
// update) and Visible (gates draw) stay local. Activation settles parent
// before children; destruction invalidates children before the parent's own
// teardown. A destroyed object never reactivates and is detached by its
// parent at the start of the parent's next update, so child lists are never
// mutated mid-traversal.
//
//	hud := rowan.NewGameObject(rowan.Config{
//		Name: "hud",
//		DrawHandlers: []rowan.DrawHandler{drawScore},
//	})
//	root.Add(hud)
//
// # Behaviors
//
// A [Behavior] is a per-tick policy applied to a sprite. Leaves like [Move]
// and [CalculatedPosition] do one thing; combinators like [Sequence],
// [Whilst], [Exactly], and [RemoveWhenFinished] compose them:
//
//	swoop := rowan.NewRemoveWhenFinished(rowan.NewSequence(
//		rowan.NewMove(rowan.Vec2{Y: 80}, rowan.Vec2{Y: 120}),
//		rowan.NewTweenTo(rowan.Vec2{X: 300, Y: 40}, 1.5, ease.OutQuad),
//	))
//	alien := rowan.NewSprite(rowan.Vec2{X: 300, Y: -20}, frames, swoop)
//
// [Ebitengine]: https://ebitengine.org
package rowan
