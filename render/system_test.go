package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timoffex/kuiper"
)

func testFace(t *testing.T) text.Face {
	t.Helper()
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	require.NoError(t, err, "goregular should parse")
	return &text.GoTextFace{Source: source, Size: 14}
}

func TestNewSprite_Registers(t *testing.T) {
	sys := NewSystem()
	scene := kuiper.NewScene()
	obj := scene.NewObject()

	sprite := sys.NewSprite(obj, kuiper.NewTransform(), nil)

	require.NotNil(t, sprite)
	assert.Equal(t, 1, sys.Len())
}

func TestDrawables_CreationOrder(t *testing.T) {
	sys := NewSystem()
	scene := kuiper.NewScene()
	obj := scene.NewObject()

	first := sys.NewSprite(obj, kuiper.NewTransform(), nil)
	second := sys.NewText(obj, kuiper.NewTransform(), testFace(t), "hud")
	third := sys.NewSprite(obj, kuiper.NewTransform(), nil)

	require.Len(t, sys.drawables, 3)
	assert.Same(t, first, sys.drawables[0], "oldest drawable paints first")
	assert.Same(t, second, sys.drawables[1])
	assert.Same(t, third, sys.drawables[2])
}

func TestSpriteDestroy_Detaches(t *testing.T) {
	sys := NewSystem()
	scene := kuiper.NewScene()
	sprite := sys.NewSprite(scene.NewObject(), kuiper.NewTransform(), nil)

	sprite.Destroy()
	assert.Equal(t, 0, sys.Len())

	sprite.Destroy() // no-op
	assert.Equal(t, 0, sys.Len())
}

func TestObjectDestroy_DetachesDrawables(t *testing.T) {
	sys := NewSystem()
	scene := kuiper.NewScene()
	obj := scene.NewObject()
	sys.NewSprite(obj, kuiper.NewTransform(), nil)
	sys.NewText(obj, kuiper.NewTransform(), testFace(t), "score")

	other := sys.NewSprite(scene.NewObject(), kuiper.NewTransform(), nil)

	obj.Destroy()

	require.Equal(t, 1, sys.Len(), "only the other object's sprite remains")
	assert.Same(t, other, sys.drawables[0])
}

func TestSpriteDestroy_ReleasesObjectBinding(t *testing.T) {
	sys := NewSystem()
	scene := kuiper.NewScene()
	obj := scene.NewObject()

	early := sys.NewSprite(obj, kuiper.NewTransform(), nil)
	early.Destroy()

	kept := sys.NewSprite(obj, kuiper.NewTransform(), nil)
	require.Equal(t, 1, sys.Len())

	// Destroying the object must not re-remove the already destroyed
	// sprite, only the live one.
	obj.Destroy()
	assert.Equal(t, 0, sys.Len())
	assert.True(t, kept.removed)
}

func TestNewSprite_NilObject(t *testing.T) {
	sys := NewSystem()
	sprite := sys.NewSprite(nil, kuiper.NewTransform(), nil)

	assert.Equal(t, 1, sys.Len())
	sprite.Destroy()
	assert.Equal(t, 0, sys.Len())
}

func TestNewSprite_NilTransformPanics(t *testing.T) {
	sys := NewSystem()
	assert.Panics(t, func() { sys.NewSprite(nil, nil, nil) })
}

func TestNewText_NilFacePanics(t *testing.T) {
	sys := NewSystem()
	assert.Panics(t, func() { sys.NewText(nil, kuiper.NewTransform(), nil, "x") })
}

func TestSprite_SetImage(t *testing.T) {
	sys := NewSystem()
	sprite := sys.NewSprite(nil, kuiper.NewTransform(), nil)

	assert.Nil(t, sprite.Image())

	img := ebiten.NewImage(4, 4)
	sprite.SetImage(img)
	assert.Same(t, img, sprite.Image())
}

func TestText_SetTextAndColor(t *testing.T) {
	sys := NewSystem()
	label := sys.NewText(nil, kuiper.NewTransform(), testFace(t), "3 hearts")

	assert.Equal(t, "3 hearts", label.Text())

	label.SetText("2 hearts")
	assert.Equal(t, "2 hearts", label.Text())

	label.SetColor(color.RGBA{R: 255, A: 255})
	label.SetColor(nil) // back to default white
}

func TestSystemDraw(t *testing.T) {
	sys := NewSystem()
	scene := kuiper.NewScene()
	obj := scene.NewObject()

	parent := kuiper.NewTransform()
	parent.SetLocalPosition(kuiper.Vec2{X: 32, Y: 32})
	parent.SetLocalAngle(0.5)
	child := kuiper.NewChildTransform(parent)
	child.SetLocalPosition(kuiper.Vec2{X: 10, Y: 0})

	sys.NewSprite(obj, child, ebiten.NewImage(8, 8))
	sys.NewSprite(obj, parent, nil) // imageless, skipped
	sys.NewText(obj, kuiper.NewTransform(), testFace(t), "FPS: 60.0\nTPS: 60.0")

	screen := ebiten.NewImage(64, 64)
	assert.NotPanics(t, func() { sys.Draw(screen) })
}

func TestNewFPSWidget(t *testing.T) {
	sys := NewSystem()
	scene := kuiper.NewScene()
	obj := scene.NewObject()

	widget := sys.NewFPSWidget(obj, kuiper.NewTransform())
	require.NotNil(t, widget)
	assert.Equal(t, 1, sys.Len())

	// Accumulate past the repaint interval so the paint path runs.
	scene.Update(0.3)
	scene.Update(0.3)

	obj.Destroy()
	assert.Equal(t, 0, sys.Len())
}

func TestNewFPSWidget_NilObjectPanics(t *testing.T) {
	sys := NewSystem()
	assert.Panics(t, func() { sys.NewFPSWidget(nil, kuiper.NewTransform()) })
}
