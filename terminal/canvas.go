// Package terminal hosts a mission on a character-cell screen.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"starshipcatch/game"
)

// Each cell stands for a CellWidth x CellHeight block of world pixels.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

var _ game.Canvas = (*Canvas)(nil)

type glyph struct {
	r   rune
	clr color.NRGBA
}

var spriteGlyphs = map[game.SpriteID]glyph{
	game.SpriteShip:       {'█', color.NRGBA{205, 208, 214, 255}},
	game.SpriteShipTop:    {'█', color.NRGBA{205, 208, 214, 255}},
	game.SpriteShipBottom: {'█', color.NRGBA{170, 172, 180, 255}},
	game.SpriteSatellite:  {'▪', color.NRGBA{90, 130, 230, 255}},
	game.SpriteLaunchpad:  {'▄', color.NRGBA{70, 72, 80, 255}},
	game.SpriteTower:      {'#', color.NRGBA{110, 112, 120, 255}},
	game.SpriteChopsticks: {'=', color.NRGBA{230, 140, 40, 255}},
	game.SpriteGround:     {'▀', color.NRGBA{40, 160, 40, 255}},
	game.SpriteEarth:      {' ', color.NRGBA{30, 90, 200, 255}},
	game.SpriteArrow:      {'▲', color.NRGBA{255, 255, 255, 255}},
}

// Canvas rasterizes game primitives into screen cells. Coordinates are
// world pixels; the transform is an affine matrix applied before the
// pixel to cell mapping.
type Canvas struct {
	screen tcell.Screen
	m      mgl64.Mat3
}

// NewCanvas creates a canvas over screen.
func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{screen: screen, m: mgl64.Ident3()}
}

func (c *Canvas) Translate(x, y float64) {
	c.m = c.m.Mul3(mgl64.Translate2D(x, y))
}

func (c *Canvas) Rotate(radians float64) {
	c.m = c.m.Mul3(mgl64.HomogRotate2D(radians))
}

func (c *Canvas) ResetTransform() {
	c.m = mgl64.Ident3()
}

func (c *Canvas) apply(x, y float64) (float64, float64) {
	v := c.m.Mul3x1(mgl64.Vec3{x, y, 1})
	return v[0], v[1]
}

// DrawSprite fills every cell whose center lies inside the transformed
// sprite rectangle. Sprites smaller than a cell still mark their origin.
func (c *Canvas) DrawSprite(id game.SpriteID) {
	g, ok := spriteGlyphs[id]
	if !ok {
		return
	}
	w, h := game.SpriteSize(id)
	inv := c.m.Inv()
	minC, minR, maxC, maxR := c.cellBounds(-w/2, -h/2, w, h)

	drawn := false
	for row := minR; row <= maxR; row++ {
		for col := minC; col <= maxC; col++ {
			px, py := (float64(col)+0.5)*CellWidth, (float64(row)+0.5)*CellHeight
			local := inv.Mul3x1(mgl64.Vec3{px, py, 1})
			if math.Abs(local[0]) <= w/2 && math.Abs(local[1]) <= h/2 {
				c.setGlyph(col, row, g.r, g.clr)
				drawn = true
			}
		}
	}
	if !drawn {
		x, y := c.apply(0, 0)
		c.setGlyph(toCol(x), toRow(y), g.r, g.clr)
	}
}

// DrawSpriteRect fills a screen rectangle. Earth is drawn as the inscribed disc.
func (c *Canvas) DrawSpriteRect(id game.SpriteID, x, y, w, h float64) {
	g, ok := spriteGlyphs[id]
	if !ok || w <= 0 || h <= 0 {
		return
	}
	cx, cy := x+w/2, y+h/2
	for row := max(toRow(y), 0); row <= toRow(y+h); row++ {
		for col := max(toCol(x), 0); col <= toCol(x+w); col++ {
			px, py := (float64(col)+0.5)*CellWidth, (float64(row)+0.5)*CellHeight
			if id == game.SpriteEarth {
				dx, dy := (px-cx)/(w/2), (py-cy)/(h/2)
				if dx*dx+dy*dy > 1 {
					continue
				}
				c.setBackground(col, row, g.clr)
				continue
			}
			if px >= x && px < x+w && py >= y && py < y+h {
				c.setGlyph(col, row, g.r, g.clr)
			}
		}
	}
}

// FillRect paints cell backgrounds. A rectangle smaller than a cell
// becomes a dot so particles stay visible.
func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	n := toNRGBA(clr)
	if n.A < 32 {
		return
	}
	minX, minY, maxX, maxY := c.bounds(x, y, w, h)
	if maxX-minX < CellWidth && maxY-minY < CellHeight {
		px, py := c.apply(x+w/2, y+h/2)
		c.setGlyph(toCol(px), toRow(py), '•', n)
		return
	}
	minC, minR, maxC, maxR := c.cellBounds(x, y, w, h)
	for row := minR; row < maxR; row++ {
		for col := minC; col < maxC; col++ {
			c.setBackground(col, row, n)
		}
	}
}

// StrokeLine walks the cells between the endpoints.
func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	ax, ay := c.apply(x1, y1)
	bx, by := c.apply(x2, y2)
	c0, r0, c1, r1 := toCol(ax), toRow(ay), toCol(bx), toRow(by)

	n := toNRGBA(clr)
	ch := '·'
	switch {
	case r0 == r1:
		ch = '─'
	case c0 == c1:
		ch = '│'
	}

	dc, dr := abs(c1-c0), -abs(r1-r0)
	sc, sr := sign(c1-c0), sign(r1-r0)
	e := dc + dr
	for {
		c.setGlyph(c0, r0, ch, n)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

// Text writes s on the row holding the baseline y.
func (c *Canvas) Text(s string, x, y float64, align game.TextAlign, clr color.Color) {
	px, py := c.apply(x, y)
	runes := []rune(s)
	col, row := toCol(px), toRow(py)
	if align == game.AlignCenter {
		col -= len(runes) / 2
	}
	n := toNRGBA(clr)
	for i, r := range runes {
		c.setGlyph(col+i, row, r, n)
	}
}

// cellBounds returns the cell range covered by the transformed rectangle.
// The max bounds are exclusive when the rectangle spans whole cells.
func (c *Canvas) cellBounds(x, y, w, h float64) (minC, minR, maxC, maxR int) {
	minX, minY, maxX, maxY := c.bounds(x, y, w, h)
	return toCol(minX), toRow(minY), int(math.Ceil(maxX / CellWidth)), int(math.Ceil(maxY / CellHeight))
}

// bounds returns the pixel bounding box of the transformed rectangle.
func (c *Canvas) bounds(x, y, w, h float64) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}} {
		px, py := c.apply(p[0], p[1])
		minX, maxX = math.Min(minX, px), math.Max(maxX, px)
		minY, maxY = math.Min(minY, py), math.Max(maxY, py)
	}
	return minX, minY, maxX, maxY
}

// setGlyph draws r in the foreground, keeping the cell background.
func (c *Canvas) setGlyph(col, row int, r rune, clr color.NRGBA) {
	if !c.inside(col, row) {
		return
	}
	_, _, style, _ := c.screen.GetContent(col, row)
	_, bg, _ := style.Decompose()
	c.screen.SetContent(col, row, r, nil, tcell.StyleDefault.Foreground(tcellColor(clr)).Background(bg))
}

func (c *Canvas) setBackground(col, row int, clr color.NRGBA) {
	if !c.inside(col, row) {
		return
	}
	c.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(tcellColor(clr)))
}

func (c *Canvas) inside(col, row int) bool {
	w, h := c.screen.Size()
	return col >= 0 && row >= 0 && col < w && row < h
}

func toCol(x float64) int { return int(math.Floor(x / CellWidth)) }
func toRow(y float64) int { return int(math.Floor(y / CellHeight)) }

func toNRGBA(clr color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

// tcellColor drops alpha by scaling toward black, the sky behind most
// translucent particles.
func tcellColor(n color.NRGBA) tcell.Color {
	a := int32(n.A)
	return tcell.NewRGBColor(int32(n.R)*a/255, int32(n.G)*a/255, int32(n.B)*a/255)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
