package game

// Actor is anything a Scene can advance and draw.
type Actor interface {
	Update(m *Mission, dt float64)
	Render(c Canvas, cam *Camera)
}

// Scene is an ordered collection of actors. Insertion order is update and
// render order, so later actors draw over earlier ones.
type Scene struct {
	EventBus
	actors []Actor
}

// NewScene creates a scene holding the given actors.
func NewScene(actors ...Actor) *Scene {
	s := &Scene{}
	s.Add(actors...)
	return s
}

// Add appends actors. Duplicates are allowed.
func (s *Scene) Add(actors ...Actor) {
	s.actors = append(s.actors, actors...)
}

// Remove drops the first occurrence of a and reports whether it was present.
func (s *Scene) Remove(a Actor) bool {
	for i, member := range s.actors {
		if member == a {
			s.actors = append(s.actors[:i], s.actors[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether a is a member.
func (s *Scene) Contains(a Actor) bool {
	for _, member := range s.actors {
		if member == a {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (s *Scene) Len() int { return len(s.actors) }

// Clear removes every member.
func (s *Scene) Clear() {
	clear(s.actors)
	s.actors = s.actors[:0]
}

// Each calls fn for every member in order.
func (s *Scene) Each(fn func(Actor)) {
	for _, a := range s.actors {
		fn(a)
	}
}

// Update dispatches the scene's own "update" then updates members in order.
// Members added or removed during the tick take effect on the next tick.
func (s *Scene) Update(m *Mission, dt float64) {
	s.Dispatch(&Event{Name: EventUpdate, Mission: m, DT: dt})
	for _, a := range s.snapshot() {
		a.Update(m, dt)
	}
}

// Render dispatches the scene's own "render" then renders members in order.
func (s *Scene) Render(c Canvas, cam *Camera) {
	s.Dispatch(&Event{Name: EventRender, Canvas: c, Camera: cam})
	for _, a := range s.actors {
		a.Render(c, cam)
	}
}

func (s *Scene) snapshot() []Actor {
	out := make([]Actor, len(s.actors))
	copy(out, s.actors)
	return out
}
