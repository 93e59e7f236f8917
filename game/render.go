package game

import (
	"fmt"
	"image/color"
	"math"
)

// Render draws one frame: sky, ground, stars, Earth, the scene, visible
// particles and the HUD.
func (m *Mission) Render(c Canvas) {
	c.ResetTransform()
	f := m.focus
	cam := m.Camera
	w, h := cam.Width, cam.Height

	c.FillRect(0, 0, w, h, skyColor(f.Y))

	groundY := cam.Y + GroundLevel + groundBandOffset
	if groundY < h {
		c.StrokeLine(0, groundY, w, groundY, groundLineWidth, colorGrassEdge)
		c.FillRect(0, groundY, w, h-groundY, colorGrass)
	}

	m.stars.Render(c, cam)

	if f.Y < StarAltitude {
		scale := 2 - math.Min(-(f.Y-StarAltitude)/7500, 2)
		offset := math.Max((f.Y-StarAltitude)/100, -200)
		size := w * scale
		c.DrawSpriteRect(SpriteEarth, w/2-size/2, h+offset, size, size)
	}

	m.scene.Render(c, cam)

	m.particles.Each(func(a Actor) {
		if p, ok := a.(*Particle); ok && !cam.Visible(p.X, p.Y) {
			return
		}
		a.Render(c, cam)
	})

	m.renderHUD(c)
}

// skyColor fades from daylight blue at the ground to black in space.
func skyColor(y float64) color.NRGBA {
	k := GravityFactor(y)
	return color.NRGBA{
		R: uint8(float64(colorSky.R) * k),
		G: uint8(float64(colorSky.G) * k),
		B: uint8(float64(colorSky.B) * k),
		A: 255,
	}
}

func (m *Mission) renderHUD(c Canvas) {
	f := m.focus
	w, h := m.Camera.Width, m.Camera.Height
	cx, cy := math.Floor(w/2), math.Floor(h/4)

	switch {
	case !m.started:
		c.Text("Press space to start!", cx, cy, AlignCenter, colorHUD)
	case !m.launched:
		t := m.clock.Now().Sub(m.launchAt).Seconds()
		c.Text(fmt.Sprintf("Launch in T%.2f", t), cx, cy, AlignCenter, colorHUD)
	case m.won:
		c.Text("Mission Success!", cx, cy, AlignCenter, colorHUD)
	}

	c.Text(m.Objective.Text, 10, 30, AlignLeft, colorHUD)
	c.Text(fmt.Sprintf("Rotation: %d°", int(math.Round(f.Rotation))%360), 10, 55, AlignLeft, colorHUD)
	c.Text(fmt.Sprintf("Altitude: %.2fkm", math.Abs(f.Y/unitsPerKm)), 10, 80, AlignLeft, colorHUD)

	if m.Objective.Type != ObjectiveLocation {
		return
	}
	o := m.Objective
	c.Translate(w/2, 60)
	c.Rotate(math.Atan2(o.Y-f.Y, o.X-f.X) + math.Pi/2)
	c.DrawSprite(SpriteArrow)
	c.ResetTransform()
	dist := f.DistanceTo(o.X, o.Y) / unitsPerKm
	c.Text(fmt.Sprintf("%.2fkm to %s", dist, o.Phase), w/2, 130, AlignCenter, colorHUD)
}
