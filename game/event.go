package game

// Event names dispatched by entities and scenes
const (
	EventUpdate = "update"
	EventRender = "render"
)

// Event carries the arguments of a dispatch. Update events fill DT,
// render events fill Canvas and Camera. Mission is the owning session.
type Event struct {
	Name    string
	Mission *Mission
	DT      float64
	Canvas  Canvas
	Camera  *Camera
}

// Handler reacts to a dispatched event.
type Handler func(ev *Event)

type listener struct {
	name    string
	handler Handler
}

// EventBus is a small named publish/subscribe list embedded in entities and scenes.
// Names are not deduplicated: adding twice fires twice.
type EventBus struct {
	listeners []listener
}

// AddListener registers h under name and returns the number of listeners.
func (b *EventBus) AddListener(name string, h Handler) int {
	b.listeners = append(b.listeners, listener{name: name, handler: h})
	return len(b.listeners)
}

// RemoveListener removes the first listener registered under name.
func (b *EventBus) RemoveListener(name string) bool {
	for i, l := range b.listeners {
		if l.name == name {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount returns how many listeners are registered under name.
func (b *EventBus) ListenerCount(name string) int {
	n := 0
	for _, l := range b.listeners {
		if l.name == name {
			n++
		}
	}
	return n
}

// Dispatch calls every listener registered under ev.Name in registration order.
func (b *EventBus) Dispatch(ev *Event) {
	for i := 0; i < len(b.listeners); i++ {
		if b.listeners[i].name == ev.Name {
			b.listeners[i].handler(ev)
		}
	}
}
