package game

import (
	"math"
	"time"
)

// Satellite is one deployed payload unit. It accelerates along its heading
// and leaves the scene once it is a viewport away from the focus ship.
type Satellite struct {
	Entity
	ID int
}

// releaseSatellites schedules satelliteCount deployments, one per PayloadInterval.
func (m *Mission) releaseSatellites() {
	m.released = true
	for i := 1; i <= satelliteCount; i++ {
		id := i
		m.scheduler.After(time.Duration(id)*m.cfg.PayloadInterval, func(m *Mission) {
			m.deploySatellite(id)
		})
	}
	m.log.WithField("count", satelliteCount).Info("Satellite release armed")
}

// deploySatellite ejects satellite id just behind the focus ship, pointing
// sideways from it.
func (m *Mission) deploySatellite(id int) *Satellite {
	f := m.focus
	back := f.Heading().Mul(-satelliteEjectDist)
	sat := &Satellite{
		Entity: Entity{
			X:        f.X + back.X(),
			Y:        f.Y + back.Y(),
			Rotation: f.Rotation - 90,
			Sprite:   SpriteSatellite,
		},
		ID: id,
	}
	sat.AddListener(EventUpdate, func(ev *Event) {
		sat.drift(ev.Mission, ev.DT)
	})
	m.scene.Add(sat)
	m.metrics.satellite()
	m.log.WithField("id", id).Debug("Satellite deployed")
	return sat
}

func (s *Satellite) drift(m *Mission, dt float64) {
	push := headingVec(s.Rotation).Mul(satelliteAccel * dt)
	s.Velocity.X += push.X()
	s.Velocity.Y += push.Y()
	if m == nil {
		return
	}
	f := m.focus
	if math.Abs(f.X-s.X) > m.Camera.Width || math.Abs(f.Y-s.Y) > m.Camera.Height {
		m.scene.Remove(s)
		if s.ID == satelliteCount && m.Objective.Phase == PhasePayload {
			m.payloadDeployed()
		}
	}
}

// payloadDeployed hands control to the booster for the return.
func (m *Mission) payloadDeployed() {
	m.Top.SetBehavior(BehaviorNone)
	m.Bottom.SetBehavior(BehaviorPlayerControl)
	m.focus = m.Bottom
	m.setPhase(PhaseLandBooster)
	m.Objective.Controller = m.Bottom
}

func (m *Mission) removeSatellites() {
	var sats []Actor
	m.scene.Each(func(a Actor) {
		if _, ok := a.(*Satellite); ok {
			sats = append(sats, a)
		}
	})
	for _, a := range sats {
		m.scene.Remove(a)
	}
}
