package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/timoffex/kuiper"
)

// NewFPSWidget creates a sprite showing the current FPS and TPS, repainted
// every half second from obj's update hook. It goes away with obj like any
// other sprite. Panics if obj or transform is nil.
func (s *System) NewFPSWidget(obj *kuiper.Object, transform *kuiper.Transform) *Sprite {
	if obj == nil {
		panic("render: nil object")
	}

	// 100x32 fits "FPS: 60.0\nTPS: 60.0".
	img := ebiten.NewImage(100, 32)
	sprite := s.NewSprite(obj, transform, img)

	var sinceRepaint float64
	obj.OnUpdate(func(dt float64) {
		sinceRepaint += dt
		if sinceRepaint < 0.5 {
			return
		}
		sinceRepaint = 0

		img.Clear()
		// Semi-transparent background for readability.
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	})
	return sprite
}
