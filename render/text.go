package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/timoffex/kuiper"
)

// Text draws a string at a transform's world position, anchored at the
// top-left corner of its first line. Rotation is ignored; labels are HUD
// furniture, not world geometry. Create labels with [System.NewText].
type Text struct {
	system     *System
	transform  *kuiper.Transform
	face       text.Face
	str        string
	color      color.Color
	lineHeight float64
	unbind     func()
	removed    bool
}

// Transform returns the transform the label follows.
func (t *Text) Transform() *kuiper.Transform { return t.transform }

// Text returns the drawn string.
func (t *Text) Text() string { return t.str }

// SetText replaces the drawn string.
func (t *Text) SetText(str string) { t.str = str }

// SetColor sets the text color. A nil c restores the default white.
func (t *Text) SetColor(c color.Color) { t.color = c }

// Destroy detaches the label from its system and releases its object
// binding. Destroying a destroyed label is a no-op; destroying the bound
// object calls this automatically.
func (t *Text) Destroy() {
	if t.removed {
		return
	}
	t.removed = true
	if t.unbind != nil {
		t.unbind()
		t.unbind = nil
	}
	t.system.remove(t)
}

func (t *Text) draw(screen *ebiten.Image) {
	if t.str == "" {
		return
	}
	pos := t.transform.Position()
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.LineSpacing = t.lineHeight
	if t.color != nil {
		op.ColorScale.ScaleWithColor(t.color)
	}
	text.Draw(screen, t.str, t.face, op)
}
