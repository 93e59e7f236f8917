package game

import (
	"image/color"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Particle is a ballistic puff used for exhaust, explosions and stars.
// It has no lifetime of its own: callers attach an "update" listener that
// removes it from its collection.
type Particle struct {
	Entity

	// Force is the current radial speed in units per second
	Force float64

	// Color is r, g, b in 0..255 and alpha in 0..1
	Color [4]float64

	// Heading in radians, fixed at construction
	Heading float64

	// Born is the creation time used by lifetime listeners
	Born time.Time
}

// NewParticle creates a particle moving along direction (degrees).
// A three-component color gets alpha 1.
func NewParticle(x, y, direction, force float64, rgba ...float64) *Particle {
	p := &Particle{
		Entity:  Entity{X: x, Y: y},
		Force:   force,
		Heading: mgl64.DegToRad(direction),
		Color:   [4]float64{0, 0, 0, 1},
	}
	copy(p.Color[:], rgba)
	return p
}

// Update dispatches "update", advances along the heading and grows the force.
func (p *Particle) Update(m *Mission, dt float64) {
	p.Dispatch(&Event{Name: EventUpdate, Mission: m, DT: dt})
	p.X += math.Cos(p.Heading) * p.Force * dt
	p.Y += math.Sin(p.Heading) * p.Force * dt
	p.Force += p.Force * forceMultiplier * dt
}

// Render draws a 4x4 square in the particle color.
func (p *Particle) Render(c Canvas, cam *Camera) {
	p.Dispatch(&Event{Name: EventRender, Canvas: c, Camera: cam})
	ox, oy := cam.Offset()
	c.Translate(p.X+ox, p.Y+oy)
	c.Rotate(p.Heading)
	c.FillRect(-2, -2, 4, 4, p.NRGBA())
	c.ResetTransform()
}

// NRGBA converts the particle color, clamping each channel.
func (p *Particle) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel(p.Color[0]),
		G: channel(p.Color[1]),
		B: channel(p.Color[2]),
		A: channel(p.Color[3] * 255),
	}
}

func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
