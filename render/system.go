package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/timoffex/kuiper"
)

// drawable is a registered visual: a [Sprite] or a [Text].
type drawable interface {
	draw(screen *ebiten.Image)
}

// System is a registry of drawables painted back-to-front in creation
// order. It reads transforms at draw time and never writes them.
type System struct {
	drawables []drawable
}

// NewSystem creates an empty render system.
func NewSystem() *System {
	return &System{}
}

// Len returns the number of registered drawables.
func (s *System) Len() int { return len(s.drawables) }

// Draw paints every drawable onto screen, oldest first.
func (s *System) Draw(screen *ebiten.Image) {
	for _, d := range s.drawables {
		d.draw(screen)
	}
}

// NewSprite registers a sprite that draws img centered on transform's world
// position, rotated by its world angle. A nil img draws nothing until
// SetImage. The sprite detaches itself when obj is destroyed; a nil obj
// leaves detachment to [Sprite.Destroy]. Panics if transform is nil.
func (s *System) NewSprite(obj *kuiper.Object, transform *kuiper.Transform, img *ebiten.Image) *Sprite {
	if transform == nil {
		panic("render: nil transform")
	}
	sp := &Sprite{system: s, transform: transform, img: img}
	s.drawables = append(s.drawables, sp)
	if obj != nil {
		sp.unbind = obj.OnDestroy(sp.Destroy)
	}
	return sp
}

// NewText registers a text label anchored at transform's world position
// (top-left corner of the first line), drawn unrotated in white unless
// SetColor says otherwise. The label detaches itself when obj is destroyed;
// a nil obj leaves detachment to [Text.Destroy]. Panics if transform or
// face is nil.
func (s *System) NewText(obj *kuiper.Object, transform *kuiper.Transform, face text.Face, str string) *Text {
	if transform == nil {
		panic("render: nil transform")
	}
	if face == nil {
		panic("render: nil face")
	}
	m := face.Metrics()
	t := &Text{
		system:     s,
		transform:  transform,
		face:       face,
		str:        str,
		lineHeight: m.HAscent + m.HDescent + m.HLineGap,
	}
	s.drawables = append(s.drawables, t)
	if obj != nil {
		t.unbind = obj.OnDestroy(t.Destroy)
	}
	return t
}

// remove unregisters a drawable. Uses copy+nil so the backing array does
// not retain a dangling pointer.
func (s *System) remove(d drawable) {
	for i, cur := range s.drawables {
		if cur == d {
			copy(s.drawables[i:], s.drawables[i+1:])
			s.drawables[len(s.drawables)-1] = nil
			s.drawables = s.drawables[:len(s.drawables)-1]
			return
		}
	}
}
