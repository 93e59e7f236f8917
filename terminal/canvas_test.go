package terminal

import (
	"image/color"
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starshipcatch/game"
)

var white = color.NRGBA{255, 255, 255, 255}

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func runeAt(s tcell.Screen, col, row int) rune {
	r, _, _, _ := s.GetContent(col, row)
	return r
}

func bgAt(s tcell.Screen, col, row int) tcell.Color {
	_, _, style, _ := s.GetContent(col, row)
	_, bg, _ := style.Decompose()
	return bg
}

func TestCanvasText(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	c := NewCanvas(screen)

	c.Text("Hi", 16, 40, game.AlignLeft, white)
	assert.Equal(t, 'H', runeAt(screen, 2, 2))
	assert.Equal(t, 'i', runeAt(screen, 3, 2))

	c.Text("abcd", 160, 80, game.AlignCenter, white)
	assert.Equal(t, 'a', runeAt(screen, 18, 5))
	assert.Equal(t, 'd', runeAt(screen, 21, 5))

	c.Translate(8, 16)
	c.Text("x", 0, 0, game.AlignLeft, white)
	assert.Equal(t, 'x', runeAt(screen, 1, 1))
}

func TestCanvasText_ClipsOffscreen(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	c := NewCanvas(screen)

	assert.NotPanics(t, func() {
		c.Text("far too long for this screen", 40, 16, game.AlignLeft, white)
		c.Text("above", 0, -100, game.AlignLeft, white)
	})
	assert.Equal(t, 'f', runeAt(screen, 5, 1))
}

func TestCanvasFillRect(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	c := NewCanvas(screen)
	blue := color.NRGBA{0, 0, 255, 255}

	c.FillRect(0, 0, 320, 320, blue)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bgAt(screen, 0, 0))
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bgAt(screen, 39, 19))

	// Glyphs keep the background underneath
	c.Text("Z", 0, 20, game.AlignLeft, white)
	assert.Equal(t, 'Z', runeAt(screen, 0, 1))
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bgAt(screen, 0, 1))
}

func TestCanvasFillRect_ParticleDot(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	c := NewCanvas(screen)

	c.Translate(100, 50)
	c.Rotate(0.3)
	c.FillRect(-2, -2, 4, 4, color.NRGBA{255, 165, 0, 255})
	assert.Equal(t, '•', runeAt(screen, 12, 3))

	c.ResetTransform()
	c.FillRect(200, 200, 4, 4, color.NRGBA{255, 165, 0, 0})
	assert.Equal(t, ' ', runeAt(screen, 25, 12))
}

func TestCanvasStrokeLine(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	c := NewCanvas(screen)

	c.StrokeLine(0, 40, 80, 40, 8, white)
	for col := 0; col <= 10; col++ {
		assert.Equal(t, '─', runeAt(screen, col, 2), col)
	}

	c.StrokeLine(0, 0, 80, 160, 1, white)
	assert.Equal(t, '·', runeAt(screen, 0, 0))
	assert.Equal(t, '·', runeAt(screen, 10, 10))
}

func TestCanvasDrawSprite(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	c := NewCanvas(screen)

	c.Translate(80, 160)
	c.DrawSprite(game.SpriteTower)
	c.ResetTransform()
	for _, col := range []int{8, 9, 10, 11} {
		assert.Equal(t, '#', runeAt(screen, col, 5), col)
	}
	assert.Equal(t, ' ', runeAt(screen, 12, 5))
	assert.Equal(t, ' ', runeAt(screen, 7, 5))
}

func TestCanvasDrawSprite_Rotated(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	c := NewCanvas(screen)

	c.Translate(160, 160)
	c.Rotate(3 * math.Pi / 2)
	c.DrawSprite(game.SpriteShip)

	assert.Equal(t, '█', runeAt(screen, 19, 10))
	assert.Equal(t, '█', runeAt(screen, 19, 6))
	assert.Equal(t, ' ', runeAt(screen, 10, 10))
}

func TestCanvasDrawSprite_SmallerThanCell(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	c := NewCanvas(screen)

	c.Translate(100, 50)
	c.DrawSprite(game.SpriteSatellite)

	assert.Equal(t, '▪', runeAt(screen, 12, 3))
}

func TestCanvasDrawSpriteRect_Earth(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	c := NewCanvas(screen)

	c.DrawSpriteRect(game.SpriteEarth, 0, 0, 160, 160)

	assert.Equal(t, tcell.NewRGBColor(30, 90, 200), bgAt(screen, 9, 4))
	assert.NotEqual(t, tcell.NewRGBColor(30, 90, 200), bgAt(screen, 0, 0))
}
