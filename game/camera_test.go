package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraFollow(t *testing.T) {
	cam := NewCamera(1000, 800)

	cam.Follow(100, 100)

	assert.InDelta(t, 40.0, cam.X, 1e-9)
	assert.InDelta(t, 30.0, cam.Y, 1e-9)

	for i := 0; i < 200; i++ {
		cam.Follow(100, 100)
	}
	assert.InDelta(t, 400.0, cam.X, 1e-6)
	assert.InDelta(t, 300.0, cam.Y, 1e-6)
}

func TestCameraShake(t *testing.T) {
	cam := NewCamera(1000, 800)
	rnd := rand.New(rand.NewSource(1))

	cam.Shake(0, rnd)
	assert.Zero(t, cam.X)
	assert.Zero(t, cam.Y)

	for i := 0; i < 50; i++ {
		cam.X, cam.Y = 0, 0
		cam.Shake(10, rnd)
		assert.LessOrEqual(t, math.Abs(cam.X), 5.0)
		assert.LessOrEqual(t, math.Abs(cam.Y), 5.0)
	}
}

func TestCameraVisible(t *testing.T) {
	cam := &Camera{X: -100, Y: 0, Width: 200, Height: 100}

	assert.True(t, cam.Visible(150, 50))
	assert.False(t, cam.Visible(50, 50))
	assert.False(t, cam.Visible(150, 150))
}
