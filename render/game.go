package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/timoffex/kuiper"
)

// Game hosts a kuiper simulation as an [ebiten.Game]. Each tick runs the
// frame cycle in a fixed order: UpdateFunc, scene update hooks, clock
// callbacks, physics step. Draw then paints the render system, so every
// frame is drawn from fully stepped state.
//
// All fields are optional; nil collaborators are skipped. A Game is
// usually started through [Run], but it is a plain ebiten.Game and works
// under [ebiten.RunGame] directly.
type Game struct {
	Scene   *kuiper.Scene
	Clock   *kuiper.Clock
	Physics *kuiper.PhysicsSystem
	Render  *System

	// UpdateFunc runs first each tick, before the simulation; input
	// polling belongs here. Returning an error stops the game.
	UpdateFunc func(dt float64) error

	// ClearColor fills the screen before drawing. Nil keeps ebiten's
	// black.
	ClearColor color.Color

	width, height int
}

// Update advances the simulation by one tick of 1/TPS seconds.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if g.UpdateFunc != nil {
		if err := g.UpdateFunc(dt); err != nil {
			return err
		}
	}
	if g.Scene != nil {
		g.Scene.Update(dt)
	}
	if g.Clock != nil {
		g.Clock.Update(dt)
	}
	if g.Physics != nil {
		g.Physics.Step(dt)
	}
	return nil
}

// Draw fills the screen with ClearColor and paints the render system.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.ClearColor != nil {
		screen.Fill(g.ClearColor)
	}
	if g.Render != nil {
		g.Render.Draw(screen)
	}
}

// Layout reports the logical screen size: the RunConfig size under [Run],
// or the outside size when the game is hosted directly.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.width == 0 {
		return outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// RunConfig configures the window [Run] opens.
type RunConfig struct {
	Title   string
	Width   int  // logical and window width, 640 when zero
	Height  int  // logical and window height, 480 when zero
	TPS     int  // simulation ticks per second, ebiten's default when zero
	ShowFPS bool // overlay an FPS widget in the top-left corner
}

// Run opens a window and runs g until the window closes or an update
// returns an error.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	g.width, g.height = cfg.Width, cfg.Height
	if cfg.ShowFPS && g.Scene != nil && g.Render != nil {
		tr := kuiper.NewTransform()
		// The widget image is 100x32 and drawn centered; this puts its
		// top-left corner at (8, 8).
		tr.SetLocalPosition(kuiper.Vec2{X: 58, Y: 24})
		g.Render.NewFPSWidget(g.Scene.NewObject(), tr)
	}
	return ebiten.RunGame(g)
}
