package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"starshipcatch/game"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

var _ game.Canvas = (*Canvas)(nil)

// Canvas draws game primitives onto an ebiten image.
// The current transform is kept as a GeoM and applied to every draw.
type Canvas struct {
	dst     *ebiten.Image
	sprites *Sprites
	geo     ebiten.GeoM
	moved   bool
	pixel   *ebiten.Image
}

// NewCanvas creates a canvas drawing sprites from set.
func NewCanvas(sprites *Sprites) *Canvas {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Canvas{sprites: sprites, pixel: pixel}
}

// Begin targets dst for the next frame.
func (c *Canvas) Begin(dst *ebiten.Image) {
	c.dst = dst
	c.ResetTransform()
}

func (c *Canvas) Translate(x, y float64) {
	var op ebiten.GeoM
	op.Translate(x, y)
	op.Concat(c.geo)
	c.geo = op
	c.moved = true
}

func (c *Canvas) Rotate(radians float64) {
	var op ebiten.GeoM
	op.Rotate(radians)
	op.Concat(c.geo)
	c.geo = op
	c.moved = true
}

func (c *Canvas) ResetTransform() {
	c.geo.Reset()
	c.moved = false
}

func (c *Canvas) DrawSprite(id game.SpriteID) {
	img := c.sprites.Get(id)
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Concat(c.geo)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

func (c *Canvas) DrawSpriteRect(id game.SpriteID, x, y, w, h float64) {
	img := c.sprites.Get(id)
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	if !c.moved {
		vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
		return
	}
	// Rotated rectangles go through a scaled white pixel
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.geo)
	op.ColorScale.ScaleWithColor(clr)
	c.dst.DrawImage(c.pixel, op)
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	ax, ay := c.geo.Apply(x1, y1)
	bx, by := c.geo.Apply(x2, y2)
	vector.StrokeLine(c.dst, float32(ax), float32(ay), float32(bx), float32(by), float32(width), clr, true)
}

// Text draws s with its baseline at y, like a browser canvas.
func (c *Canvas) Text(s string, x, y float64, align game.TextAlign, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-hudFace.Metrics().HAscent)
	op.GeoM.Concat(c.geo)
	op.ColorScale.ScaleWithColor(clr)
	if align == game.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(c.dst, s, hudFace, op)
}
