package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// explode bursts count particles around (x, y): four fifths orange inside
// half the spread, one fifth red inside the full spread. Each fades over a
// second and is then dropped.
func (m *Mission) explode(x, y, spread float64, count int) {
	fifth := count / 5
	for i := 0; i < 4*fifth; i++ {
		m.addDebris(
			x+m.rnd.Float64()*spread-spread/2,
			y+m.rnd.Float64()*spread-spread/2,
			explosionOuter,
		)
	}
	for i := 0; i < fifth; i++ {
		m.addDebris(
			x+m.rnd.Float64()*spread*2-spread,
			y+m.rnd.Float64()*spread*2-spread,
			explosionInner,
		)
	}
}

func (m *Mission) addDebris(x, y float64, rgba [4]float64) {
	p := NewParticle(x, y, m.rnd.Float64()*360, explosionForce, rgba[:]...)
	p.Born = m.clock.Now()
	p.AddListener(EventUpdate, func(ev *Event) {
		p.Color[3] -= ev.DT
		if ev.Mission != nil && ev.Mission.clock.Now().Sub(p.Born) > explosionLifetime {
			ev.Mission.particles.Remove(p)
		}
	})
	m.particles.Add(p)
}

// emitExhaust sprays a few particles out of the engine while thrust is held
// by a controlled ship, up to the live particle cap.
func (m *Mission) emitExhaust() {
	if m.Objective.Controller == nil || !m.input.Pressed(ThrustKeys...) {
		return
	}
	if m.particles.Len() >= maxExhaustParticles {
		return
	}
	s := m.focus
	back := mgl64.DegToRad(s.Rotation + 180)
	for i := 0; i < exhaustPerTick; i++ {
		x := s.X + math.Cos(back)*(80+m.rnd.Float64()*40-20)
		y := s.Y + math.Sin(back)*(80+math.Ceil(m.rnd.Float64()*20))
		p := NewParticle(x, y, s.Rotation+180+m.rnd.Float64()*30-15, exhaustForce, exhaustColor[:]...)
		p.Born = m.clock.Now()
		p.AddListener(EventUpdate, func(ev *Event) {
			if ev.Mission != nil && ev.Mission.clock.Now().Sub(p.Born) >= exhaustLifetime {
				ev.Mission.particles.Remove(p)
			}
		})
		m.particles.Add(p)
	}
}

// updateStars keeps a viewport's worth of stars around the focus ship above
// StarAltitude and clears them below it.
func (m *Mission) updateStars(dt float64) {
	f := m.focus
	w, h := m.Camera.Width, m.Camera.Height
	if f.Y < StarAltitude {
		want := w * h / starDensity
		for float64(m.stars.Len()) < want {
			m.stars.Add(m.newStar(f, w, h))
		}
	} else {
		m.stars.Clear()
	}
	m.stars.Update(m, dt)
}

func (m *Mission) newStar(f *Ship, w, h float64) *Particle {
	y := f.Y + m.rnd.Float64()*h - h/2
	alpha := 1.0
	if y > starFadeTop {
		alpha = 1 - (-starFadeTop+y)/starFadeDepth
	}
	star := NewParticle(f.X+m.rnd.Float64()*w-w/2, y, m.rnd.Float64()*360, 0,
		starColor[0], starColor[1], starColor[2], alpha)
	star.AddListener(EventUpdate, func(ev *Event) {
		if ev.Mission == nil {
			return
		}
		focus, cam := ev.Mission.focus, ev.Mission.Camera
		if math.Abs(focus.X-star.X) > cam.Width || math.Abs(focus.Y-star.Y) > cam.Height {
			ev.Mission.stars.Remove(star)
		}
	})
	return star
}

// updateCamera centers the focus ship and shakes with its speed.
func (m *Mission) updateCamera() {
	f := m.focus
	m.Camera.Follow(f.X, f.Y)
	if !m.started {
		return
	}
	avg := math.Floor(math.Abs(f.Velocity.X+f.Velocity.Y) / 2)
	m.Camera.Shake(avg*shakeConstant, m.rnd)
	if !m.launched && m.Objective.Phase == PhaseAscent && m.input.Pressed(ThrustKeys...) {
		m.Camera.Shake(launchShake*shakeConstant, m.rnd)
	}
}
