package game

import "math"

// ShipKind identifies which of the three vehicles a Ship is.
type ShipKind int

const (
	ShipFull ShipKind = iota
	ShipTop
	ShipBottom
)

func (k ShipKind) String() string {
	switch k {
	case ShipFull:
		return "full stack"
	case ShipTop:
		return "upper stage"
	case ShipBottom:
		return "booster"
	default:
		return "unknown"
	}
}

// Behavior is the single update routine a ship runs before physics.
// Swapping behaviors replaces the previous one; there is never more than one.
type Behavior int

const (
	BehaviorNone Behavior = iota
	BehaviorPlayerControl
	BehaviorLandBottom
	BehaviorLandTop
	BehaviorDocking
)

var behaviorNames = map[Behavior]string{
	BehaviorNone:          "none",
	BehaviorPlayerControl: "player control",
	BehaviorLandBottom:    "land bottom",
	BehaviorLandTop:       "land top",
	BehaviorDocking:       "docking",
}

func (b Behavior) String() string {
	if name, ok := behaviorNames[b]; ok {
		return name
	}
	return "unknown"
}

// Ship is a steerable vehicle with drag and altitude-scaled gravity.
type Ship struct {
	Entity

	Kind    ShipKind
	Gravity bool

	behavior Behavior
}

// NewShip creates a ship with gravity enabled and no behavior.
func NewShip(kind ShipKind, x, y, rotation float64, sprite SpriteID) *Ship {
	return &Ship{
		Entity:  Entity{X: x, Y: y, Rotation: rotation, Sprite: sprite},
		Kind:    kind,
		Gravity: true,
	}
}

// Behavior returns the active behavior.
func (s *Ship) Behavior() Behavior { return s.behavior }

// SetBehavior replaces the active behavior.
func (s *Ship) SetBehavior(b Behavior) { s.behavior = b }

// Thrust accelerates along the heading. Negative dt thrusts backwards.
func (s *Ship) Thrust(dt float64) {
	push := s.Heading().Mul(ThrustSpeed * dt)
	s.Velocity.X += push.X()
	s.Velocity.Y += push.Y()
}

// Rotate adds angular velocity; amp scales it (0 means 1).
func (s *Ship) Rotate(dt, amp float64) {
	if amp == 0 {
		amp = 1
	}
	s.Velocity.Rotation += RotationSpeed * dt * amp
}

// Stop zeroes linear and angular velocity.
func (s *Ship) Stop() {
	s.Velocity = Velocity{}
}

// Update runs the active behavior then integrates one physics step.
func (s *Ship) Update(m *Mission, dt float64) {
	s.Dispatch(&Event{Name: EventUpdate, Mission: m, DT: dt})
	switch s.behavior {
	case BehaviorPlayerControl:
		s.playerControl(m, dt)
	case BehaviorLandBottom:
		s.landBottom(dt)
	case BehaviorLandTop:
		s.landTop(m, dt)
	case BehaviorDocking:
		s.dock(m, dt)
	}
	s.Integrate(dt)
}

// Integrate applies velocity, drag and gravity for dt seconds.
func (s *Ship) Integrate(dt float64) {
	s.X += s.Velocity.X * dt
	s.Y += s.Velocity.Y * dt
	s.Rotation = NormalizeDegrees(s.Rotation + s.Velocity.Rotation*dt)
	s.Velocity.X -= s.Velocity.X * linearDrag * dt
	s.Velocity.Y -= s.Velocity.Y * linearDrag * dt
	if s.Gravity {
		s.Velocity.Y += GravityStrength * GravityFactor(s.Y) * dt
	}
	s.Velocity.Rotation -= s.Velocity.Rotation * angularDrag * dt
}

// GravityFactor is 0 at SpaceAltitude and above it, 1 at Y=0, linear in between.
func GravityFactor(y float64) float64 {
	return math.Abs((math.Max(y, SpaceAltitude) - SpaceAltitude) / math.Abs(SpaceAltitude))
}

func (s *Ship) playerControl(m *Mission, dt float64) {
	if m == nil || m.Objective.Controller != s {
		return
	}
	in := m.input
	if in.Pressed(ThrustKeys...) {
		s.Thrust(dt)
	}
	if in.Pressed(RotateLeftKeys...) {
		s.Rotate(-dt, in.Amplification())
	}
	if in.Pressed(RotateRightKeys...) {
		s.Rotate(dt, in.Amplification())
	}
	selfDestruct := in.Consume(KeyEscape)
	if selfDestruct || s.Y > GroundLevel+crashMargin {
		m.destroy(s)
	}
	if in.Consume(KeyR) {
		m.requestReset()
	}
}

// approach eases toward x=0 and upright by a dt fraction of the remaining error.
func (s *Ship) approach(targetY, dt float64) {
	s.Stop()
	s.Rotation += (upright - s.Rotation) * dt
	s.X += -s.X * dt
	s.Y += (targetY - s.Y) * dt
}

func (s *Ship) landBottom(dt float64) {
	s.approach(boosterRestY, dt)
}

func (s *Ship) landTop(m *Mission, dt float64) {
	s.Gravity = false
	s.approach(shipCaptureY, dt)
	if Captured(s.X, s.Y, s.Rotation) {
		s.X = 0
		s.Rotation = upright
		s.behavior = BehaviorDocking
		if m != nil {
			m.log.WithField("ship", s.Kind).Info("Upper stage captured by chopsticks")
		}
	}
}

// Captured reports whether the upper stage is aligned with the chopsticks.
func Captured(x, y, rotation float64) bool {
	return math.Round(math.Abs(x)) == 0 &&
		math.Abs(shipCaptureY-y) < 1 &&
		math.Abs(upright-rotation) < 1
}

func (s *Ship) dock(m *Mission, dt float64) {
	s.Y += (shipDockedY - s.Y) * dt
	if m != nil {
		m.Chopsticks.Y += (chopsticksDockY - m.Chopsticks.Y) * dt
	}
	if math.Abs(shipDockedY-s.Y) < 1 {
		s.behavior = BehaviorNone
		if m != nil {
			m.complete()
		}
	}
}
