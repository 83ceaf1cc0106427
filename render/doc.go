// Package render draws kuiper simulations with [Ebitengine].
//
// The core package knows nothing about graphics; this package is the
// graphics collaborator. A [System] holds sprites and text labels that read
// their positions from [kuiper.Transform]s at draw time, so anything the
// physics moves is drawn where it ended up with no syncing step:
//
//	renderer := render.NewSystem()
//	sprite := renderer.NewSprite(obj, tr, img)
//
// Drawables bind to an [kuiper.Object] and detach themselves when it is
// destroyed; a dead entity disappears from the screen without bookkeeping.
//
// [Game] hosts the whole per-frame cycle as an [ebiten.Game]: scene update,
// clock, physics step, then drawing. [Run] opens a window around it:
//
//	render.Run(game, render.RunConfig{
//		Title: "My Game", Width: 800, Height: 600,
//	})
//
// [Ebitengine]: https://ebitengine.org
package render
