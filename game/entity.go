package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Velocity is per-tick motion for plain entities and per-second motion for ships.
type Velocity struct {
	X, Y     float64
	Rotation float64 // degrees
}

// Entity is the base simulated object: ground, tower, satellites and the
// embedded state of particles and ships.
type Entity struct {
	EventBus

	// Position in world units; +Y points down, the ground sits near Y=100
	X, Y float64

	// Rotation in degrees, always in [0,360) after an update tick
	Rotation float64

	Velocity Velocity

	// Sprite drawn at the entity position, SpriteNone draws nothing
	Sprite SpriteID
}

// NewEntity creates an entity at rest.
func NewEntity(x, y, rotation float64, sprite SpriteID) *Entity {
	return &Entity{
		X:        x,
		Y:        y,
		Rotation: rotation,
		Sprite:   sprite,
	}
}

// Update dispatches "update" then applies one tick of velocity.
func (e *Entity) Update(m *Mission, dt float64) {
	e.Dispatch(&Event{Name: EventUpdate, Mission: m, DT: dt})
	e.X += e.Velocity.X
	e.Y += e.Velocity.Y
	e.Rotation = NormalizeDegrees(e.Rotation + e.Velocity.Rotation)
}

// Render dispatches "render" then draws the sprite at the camera-adjusted position.
func (e *Entity) Render(c Canvas, cam *Camera) {
	e.Dispatch(&Event{Name: EventRender, Canvas: c, Camera: cam})
	ox, oy := cam.Offset()
	c.Translate(e.X+ox, e.Y+oy)
	c.Rotate(mgl64.DegToRad(e.Rotation))
	if e.Sprite != SpriteNone {
		c.DrawSprite(e.Sprite)
	}
	c.ResetTransform()
}

// Position returns the entity position as a vector.
func (e *Entity) Position() mgl64.Vec2 {
	return mgl64.Vec2{e.X, e.Y}
}

// DistanceTo returns the Euclidean distance to a world point.
func (e *Entity) DistanceTo(x, y float64) float64 {
	return e.Position().Sub(mgl64.Vec2{x, y}).Len()
}

// Heading returns the unit vector the entity points along.
func (e *Entity) Heading() mgl64.Vec2 {
	return headingVec(e.Rotation)
}

func headingVec(degrees float64) mgl64.Vec2 {
	r := mgl64.DegToRad(degrees)
	return mgl64.Vec2{math.Cos(r), math.Sin(r)}
}

// NormalizeDegrees maps any finite angle into [0,360). Non-finite input maps to 0.
func NormalizeDegrees(d float64) float64 {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	d = math.Mod(d, 360)
	for d < 0 {
		d += 360
	}
	for d >= 360 {
		d -= 360
	}
	return d
}
