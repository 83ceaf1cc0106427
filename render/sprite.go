package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/timoffex/kuiper"
)

// Sprite draws an image centered on a transform. The transform's world
// angle rotates the image counterclockwise on screen, matching the core's
// angle convention. Create sprites with [System.NewSprite].
type Sprite struct {
	system    *System
	transform *kuiper.Transform
	img       *ebiten.Image
	unbind    func()
	removed   bool
}

// Transform returns the transform the sprite follows.
func (sp *Sprite) Transform() *kuiper.Transform { return sp.transform }

// Image returns the sprite's current image, which may be nil.
func (sp *Sprite) Image() *ebiten.Image { return sp.img }

// SetImage swaps the drawn image. A nil img draws nothing.
func (sp *Sprite) SetImage(img *ebiten.Image) { sp.img = img }

// Destroy detaches the sprite from its system and releases its object
// binding. Destroying a destroyed sprite is a no-op; destroying the bound
// object calls this automatically.
func (sp *Sprite) Destroy() {
	if sp.removed {
		return
	}
	sp.removed = true
	if sp.unbind != nil {
		sp.unbind()
		sp.unbind = nil
	}
	sp.system.remove(sp)
}

func (sp *Sprite) draw(screen *ebiten.Image) {
	if sp.img == nil {
		return
	}
	bounds := sp.img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	// GeoM.Rotate is clockwise on screen; the core's angles are
	// counterclockwise.
	op.GeoM.Rotate(-sp.transform.Angle())
	pos := sp.transform.Position()
	op.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(sp.img, op)
}
