package game

import "math/rand"

// Camera represents the viewport into the world.
// X and Y are the screen offset added to world coordinates.
type Camera struct {
	X, Y      float64
	Width     float64 // Viewport width
	Height    float64 // Viewport height
	Smoothing float64 // Fraction of the remaining distance covered per frame
}

// NewCamera creates a new camera
func NewCamera(width, height float64) *Camera {
	return &Camera{
		Width:     width,
		Height:    height,
		Smoothing: cameraSmoothing,
	}
}

// Offset returns the world-to-screen translation. A nil camera does not translate.
func (c *Camera) Offset() (float64, float64) {
	if c == nil {
		return 0, 0
	}
	return c.X, c.Y
}

// Follow moves the camera a Smoothing fraction toward centering the world point.
func (c *Camera) Follow(wx, wy float64) {
	c.X += ((c.Width/2 - wx) - c.X) * c.Smoothing
	c.Y += ((c.Height/2 - wy) - c.Y) * c.Smoothing
}

// Shake jitters the camera by up to amount/2 on each axis.
func (c *Camera) Shake(amount float64, rnd *rand.Rand) {
	if amount <= 0 {
		return
	}
	c.X += rnd.Float64()*amount - amount/2
	c.Y += rnd.Float64()*amount - amount/2
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx + c.X, wy + c.Y
}

// Visible reports whether a world point lands inside the viewport.
func (c *Camera) Visible(wx, wy float64) bool {
	sx, sy := c.WorldToScreen(wx, wy)
	return sx >= 0 && sx <= c.Width && sy >= 0 && sy <= c.Height
}

// Resize updates the viewport size after a window change.
func (c *Camera) Resize(width, height float64) {
	c.Width = width
	c.Height = height
}
