package game

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/metric"
)

// Options wires a Mission to its host. Nil Clock, Input, Logger and Rand
// get defaults. Config fields that cannot be zero (screen size, title,
// frame cap, log and profile settings) get defaults; an all-zero Config
// is DefaultConfig.
type Options struct {
	Config Config
	Clock  Clock
	Input  *Input
	Logger *logrus.Entry
	Meter  metric.Meter
	Rand   *rand.Rand
}

// Mission is the single owning session: scene, ships, effects, objective,
// camera and deferred work. It is not safe for concurrent use; hosts call
// Update and Render from their frame callback.
type Mission struct {
	cfg       Config
	clock     Clock
	input     *Input
	rnd       *rand.Rand
	log       *logrus.Entry
	metrics   *metrics
	scheduler *Scheduler

	scene     *Scene
	particles *Scene
	stars     *Scene

	// The three vehicles are created once and only ever repositioned
	Full, Top, Bottom *Ship
	focus             *Ship

	// Scenery
	Ground, Launchpad, Tower, Chopsticks *Entity

	Objective Objective
	Camera    *Camera

	started      bool
	launched     bool
	launchAt     time.Time
	released     bool
	won          bool
	resetPending bool
}

// NewMission builds the launch site and puts the full stack on the pad.
func NewMission(opts Options) (*Mission, error) {
	cfg := opts.Config.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mission config: %w", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	input := opts.Input
	if input == nil {
		input = NewInput()
	}
	entry := opts.Logger
	if entry == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		entry = logrus.NewEntry(l)
	}
	rnd := opts.Rand
	if rnd == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = clock.Now().UnixNano()
		}
		rnd = rand.New(rand.NewSource(seed))
	}
	mt, err := newMetrics(opts.Meter)
	if err != nil {
		return nil, err
	}

	m := &Mission{
		cfg:       cfg,
		clock:     clock,
		input:     input,
		rnd:       rnd,
		log:       entry.WithField("component", "mission"),
		metrics:   mt,
		scheduler: NewScheduler(clock),
		scene:     NewScene(),
		particles: NewScene(),
		stars:     NewScene(),
		Camera:    NewCamera(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight)),

		Full:   NewShip(ShipFull, 0, startY, upright, SpriteShip),
		Top:    NewShip(ShipTop, 0, 0, 0, SpriteShipTop),
		Bottom: NewShip(ShipBottom, 0, 0, 0, SpriteShipBottom),

		Ground:     NewEntity(0, 220, 0, SpriteGround),
		Launchpad:  NewEntity(40, 200, 0, SpriteLaunchpad),
		Tower:      NewEntity(70, 0, 0, SpriteTower),
		Chopsticks: NewEntity(35, chopsticksRestY, 0, SpriteChopsticks),
	}
	m.scene.Add(m.Ground, m.Launchpad, m.Tower, m.Chopsticks)
	m.restore()

	return m, nil
}

// Update advances the mission by dt seconds.
func (m *Mission) Update(dt float64) {
	m.scheduler.Run(m)

	if m.started {
		if m.launched || !m.clock.Now().Before(m.launchAt) {
			if !m.launched {
				m.liftoff()
			}
			m.scene.Update(m, dt)
		}
		m.advance()
		m.emitExhaust()
	} else if m.input.Pressed(StartKeys...) {
		m.start()
	}

	m.particles.Update(m, dt)
	m.updateStars(dt)
	m.updateCamera()

	if m.resetPending {
		m.Reset()
	}
}

// advance evaluates the exit condition of the active phase.
func (m *Mission) advance() {
	f := m.focus
	switch m.Objective.Phase {
	case PhaseAscent:
		if f.Y < m.Objective.Y {
			m.setPhase(PhaseOrbitInsertion)
		}
	case PhaseOrbitInsertion:
		if f.DistanceTo(m.Objective.X, m.Objective.Y) < orbitTolerance {
			m.setPhase(PhaseStageSeparation)
			m.Objective.Controller = nil
		}
	case PhaseStageSeparation:
		if m.input.Consume(KeyE) {
			m.separate()
		}
	case PhasePayload:
		f.Stop()
		if !m.released && m.input.Consume(KeyE) {
			m.releaseSatellites()
		}
	case PhaseLandBooster:
		if m.catchable(f) {
			m.Bottom.SetBehavior(BehaviorLandBottom)
			m.Top.SetBehavior(BehaviorPlayerControl)
			m.focus = m.Top
			m.setPhase(PhaseLandShip)
			m.Objective.Controller = m.Top
			m.log.Info("Booster caught")
		}
	case PhaseLandShip:
		if m.catchable(f) {
			m.Top.SetBehavior(BehaviorLandTop)
			m.setPhase(PhaseDocking)
			m.Objective.Controller = nil
			m.log.Info("Upper stage catch started")
		}
	}
}

// catchable consumes C when s is close enough and upright enough to be caught.
func (m *Mission) catchable(s *Ship) bool {
	if !m.input.Pressed(KeyC) {
		return false
	}
	inRange := math.Abs(s.X-m.Objective.X) < catchRange && math.Abs(s.Y-m.Objective.Y) < catchRange
	level := s.Rotation > catchMinAngle && s.Rotation < catchMaxAngle
	if !inRange || !level {
		return false
	}
	m.input.Consume(KeyC)
	return true
}

func (m *Mission) start() {
	m.started = true
	m.launched = false
	m.launchAt = m.clock.Now().Add(m.cfg.LaunchDelay)
	m.log.WithField("delay", m.cfg.LaunchDelay).Info("Launch countdown started")
}

// liftoff tips the stack off the pad.
func (m *Mission) liftoff() {
	m.launched = true
	m.focus.X = launchOffsetX
	m.focus.Rotation = launchRotation
	m.metrics.launch()
	m.log.Info("Liftoff")
}

// separate splits the full stack into its two halves.
func (m *Mission) separate() {
	full := m.Full
	for _, half := range []*Ship{m.Top, m.Bottom} {
		half.X, half.Y, half.Rotation = full.X, full.Y, full.Rotation
		half.Velocity = Velocity{Rotation: full.Velocity.Rotation}
	}
	offset := full.Heading().Mul(separationOffset)
	m.Top.X += offset.X()
	m.Top.Y += offset.Y()
	m.Top.Thrust(separationImpulse)
	m.Bottom.X -= offset.X()
	m.Bottom.Y -= offset.Y()
	m.Bottom.Thrust(-separationImpulse)

	m.scene.Remove(full)
	full.SetBehavior(BehaviorNone)
	m.scene.Add(m.Top, m.Bottom)
	m.Top.SetBehavior(BehaviorPlayerControl)
	m.focus = m.Top

	m.setPhase(PhasePayload)
	m.Objective.Controller = m.Top
	m.log.WithFields(logrus.Fields{"x": full.X, "y": full.Y}).Info("Stage separation")
}

func (m *Mission) setPhase(p Phase) {
	from := m.Objective.Phase
	m.Objective.enter(p)
	m.metrics.transition(p)
	m.log.WithFields(logrus.Fields{
		"from": from.String(),
		"to":   p.String(),
	}).Info("Objective changed")
}

// destroy blows up s, takes it out of the scene and resets after ResetDelay.
func (m *Mission) destroy(s *Ship) {
	m.scene.Remove(s)
	m.explode(s.X, s.Y, explosionSpread, explosionCount)
	m.metrics.explosion(s.Kind)
	m.log.WithFields(logrus.Fields{
		"ship": s.Kind.String(),
		"x":    s.X,
		"y":    s.Y,
	}).Info("Ship destroyed")
	m.scheduler.After(m.cfg.ResetDelay, func(m *Mission) {
		m.Reset()
	})
}

// requestReset resets at the end of the current Update.
func (m *Mission) requestReset() {
	m.resetPending = true
}

func (m *Mission) complete() {
	if m.won {
		return
	}
	m.won = true
	m.log.Info("Mission success")
}

// Reset returns the mission to the pad. Deferred work scheduled before the
// reset is dropped.
func (m *Mission) Reset() {
	m.scheduler.Invalidate()
	m.metrics.reset()
	m.log.Info("Mission reset")
	m.restore()
}

func (m *Mission) restore() {
	m.resetPending = false

	full := m.Full
	full.Gravity = true
	full.X, full.Y, full.Rotation = 0, startY, upright
	full.Stop()
	full.SetBehavior(BehaviorNone)
	for _, half := range []*Ship{m.Top, m.Bottom} {
		half.Gravity = true
		half.X, half.Y, half.Rotation = 0, 0, 0
		half.Stop()
		half.SetBehavior(BehaviorNone)
	}

	m.scene.Remove(m.Full)
	m.scene.Remove(m.Top)
	m.scene.Remove(m.Bottom)
	m.removeSatellites()

	m.started = false
	m.launched = false
	m.launchAt = time.Time{}
	m.released = false
	m.won = false
	m.Chopsticks.Y = chopsticksRestY

	m.Objective.enter(PhaseAscent)
	m.Objective.Controller = full
	m.focus = full
	full.SetBehavior(BehaviorPlayerControl)
	m.scene.Add(full)
}

// Resize follows a host window change.
func (m *Mission) Resize(width, height int) {
	m.Camera.Resize(float64(width), float64(height))
}

// Started reports whether the countdown has been armed.
func (m *Mission) Started() bool { return m.started }

// Launched reports whether the stack has left the pad.
func (m *Mission) Launched() bool { return m.launched }

// Won reports whether the upper stage has docked.
func (m *Mission) Won() bool { return m.won }

// Released reports whether the satellites have been let go.
func (m *Mission) Released() bool { return m.released }

// LaunchAt returns the end of the countdown, zero before start.
func (m *Mission) LaunchAt() time.Time { return m.launchAt }

// Focus returns the ship the camera follows.
func (m *Mission) Focus() *Ship { return m.focus }

// Scene returns the main scene.
func (m *Mission) Scene() *Scene { return m.scene }

// Particles returns the live exhaust and explosion particles.
func (m *Mission) Particles() *Scene { return m.particles }

// Stars returns the live starfield.
func (m *Mission) Stars() *Scene { return m.stars }

// Scheduler returns the deferred work queue.
func (m *Mission) Scheduler() *Scheduler { return m.scheduler }

// Input returns the key snapshot the host writes to.
func (m *Mission) Input() *Input { return m.input }

// Config returns the mission configuration.
func (m *Mission) Config() Config { return m.cfg }

// Stats returns the mission counters.
func (m *Mission) Stats() Stats { return m.metrics.stats }
