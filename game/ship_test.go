package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGravityFactor(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"ground", 0, 1},
		{"space boundary", SpaceAltitude, 0},
		{"halfway", SpaceAltitude / 2, 0.5},
		{"quarter", SpaceAltitude * 3 / 4, 0.25},
		{"beyond space", SpaceAltitude * 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GravityFactor(tt.y), 1e-9)
		})
	}
}

func TestShipIntegrate_Gravity(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"full strength at ground", 0, GravityStrength * 0.1},
		{"none in space", SpaceAltitude, 0},
		{"none beyond space", SpaceAltitude - 5000, 0},
		{"half way up", SpaceAltitude / 2, GravityStrength * 0.5 * 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewShip(ShipFull, 0, tt.y, upright, SpriteShip)
			s.Integrate(0.1)
			assert.InDelta(t, tt.want, s.Velocity.Y, 1e-9)
			assert.GreaterOrEqual(t, s.Velocity.Y, 0.0)
		})
	}
}

func TestShipIntegrate_GravityDisabled(t *testing.T) {
	s := NewShip(ShipTop, 0, 0, upright, SpriteShipTop)
	s.Gravity = false

	s.Integrate(0.1)

	assert.Zero(t, s.Velocity.Y)
}

func TestShipIntegrate_DragConverges(t *testing.T) {
	s := NewShip(ShipFull, 0, SpaceAltitude, 0, SpriteShip)
	s.Velocity = Velocity{X: 500, Y: -300, Rotation: 90}

	prevX, prevY, prevR := math.Abs(s.Velocity.X), math.Abs(s.Velocity.Y), math.Abs(s.Velocity.Rotation)
	for i := 0; i < 200; i++ {
		s.Integrate(0.1)
		x, y, r := math.Abs(s.Velocity.X), math.Abs(s.Velocity.Y), math.Abs(s.Velocity.Rotation)
		require.Less(t, x, prevX)
		require.Less(t, y, prevY)
		require.Less(t, r, prevR)
		prevX, prevY, prevR = x, y, r
	}
	assert.Less(t, prevX, 1.0)
	assert.Less(t, prevY, 1.0)
}

func TestShipThrustAndRotate(t *testing.T) {
	s := NewShip(ShipFull, 0, 0, upright, SpriteShip)

	s.Thrust(0.1)
	assert.InDelta(t, 0.0, s.Velocity.X, 1e-9)
	assert.InDelta(t, -180.0, s.Velocity.Y, 1e-9)

	s.Thrust(-0.1)
	assert.InDelta(t, 0.0, s.Velocity.Y, 1e-9)

	s.Rotate(0.5, 0)
	assert.InDelta(t, 100.0, s.Velocity.Rotation, 1e-9)

	s.Rotate(-0.5, 2)
	assert.InDelta(t, -100.0, s.Velocity.Rotation, 1e-9)

	s.Stop()
	assert.Equal(t, Velocity{}, s.Velocity)
}

func TestShipLandBottom_DecaysByDT(t *testing.T) {
	const dt = 0.1
	s := NewShip(ShipBottom, 200, -500, 250, SpriteShipBottom)
	s.SetBehavior(BehaviorLandBottom)

	x, rotErr, yErr := s.X, upright-s.Rotation, boosterRestY-s.Y
	for i := 0; i < 10; i++ {
		s.Update(nil, dt)
		x *= 1 - dt
		rotErr *= 1 - dt
		yErr *= 1 - dt
		assert.InDelta(t, x, s.X, 1e-6)
		assert.InDelta(t, rotErr, upright-s.Rotation, 1e-6)
		assert.InDelta(t, yErr, boosterRestY-s.Y, 1e-6)
	}
}

func TestCaptured(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		rotation float64
		want     bool
	}{
		{"aligned", 0, shipCaptureY, upright, true},
		{"within tolerances", 0.4, shipCaptureY + 0.9, upright - 0.9, true},
		{"x off", 0.6, shipCaptureY, upright, false},
		{"y off", 0, shipCaptureY + 1, upright, false},
		{"rotation off", 0, shipCaptureY, upright + 1, false},
		{"x and y ok, rotation off", 0.2, shipCaptureY - 0.5, upright + 3, false},
		{"only rotation ok", 3, shipCaptureY - 5, upright, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Captured(tt.x, tt.y, tt.rotation))
		})
	}
}

func TestShipLandTop_CapturesAndDocks(t *testing.T) {
	m, _, hook := newTestMission(t)
	s := m.Top
	s.X, s.Y, s.Rotation = 0.2, shipCaptureY-0.5, upright+0.5
	s.SetBehavior(BehaviorLandTop)

	s.Update(m, 0.1)

	require.Equal(t, BehaviorDocking, s.Behavior())
	assert.False(t, s.Gravity)
	assert.Equal(t, 0.0, s.X)
	assert.Equal(t, upright, s.Rotation)
	assert.Equal(t, 1, countMessages(hook, "Upper stage captured by chopsticks"))

	for i := 0; i < 100 && !m.Won(); i++ {
		s.Update(m, 0.5)
	}

	assert.True(t, m.Won())
	assert.Equal(t, BehaviorNone, s.Behavior())
	assert.Less(t, math.Abs(shipDockedY-s.Y), 1.0)
	assert.Less(t, math.Abs(chopsticksDockY-m.Chopsticks.Y), 1.0)
}

func TestShipLandTop_NoCaptureWhileMisaligned(t *testing.T) {
	m, _, _ := newTestMission(t)
	s := m.Top
	s.X, s.Y, s.Rotation = 300, 0, 200
	s.SetBehavior(BehaviorLandTop)

	s.Update(m, 0.1)

	assert.Equal(t, BehaviorLandTop, s.Behavior())
	assert.False(t, m.Won())
}

func TestShipPlayerControl_OnlyForController(t *testing.T) {
	m, _, _ := newTestMission(t)
	m.input.Set(KeyW, true)

	other := m.Bottom
	other.SetBehavior(BehaviorPlayerControl)
	other.Gravity = false
	other.Update(m, 0.1)
	assert.Zero(t, other.Velocity.Y)

	full := m.Full
	full.Gravity = false
	full.Update(m, 0.1)
	assert.Less(t, full.Velocity.Y, 0.0)
}

func TestShipBehaviorIsSingleSlot(t *testing.T) {
	s := NewShip(ShipTop, 0, 0, 0, SpriteShipTop)
	s.SetBehavior(BehaviorPlayerControl)
	s.SetBehavior(BehaviorLandTop)

	assert.Equal(t, BehaviorLandTop, s.Behavior())
	assert.Zero(t, s.ListenerCount(EventUpdate))
	assert.Equal(t, "land top", s.Behavior().String())
}
