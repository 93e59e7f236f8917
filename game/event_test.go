package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBus_DispatchOrder(t *testing.T) {
	var bus EventBus
	var order []string

	bus.AddListener(EventUpdate, func(*Event) { order = append(order, "first") })
	bus.AddListener(EventRender, func(*Event) { order = append(order, "render") })
	n := bus.AddListener(EventUpdate, func(*Event) { order = append(order, "second") })

	assert.Equal(t, 3, n)

	bus.Dispatch(&Event{Name: EventUpdate})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestEventBus_UnknownNameIsNoop(t *testing.T) {
	var bus EventBus
	called := false
	bus.AddListener(EventUpdate, func(*Event) { called = true })

	bus.Dispatch(&Event{Name: "collide"})

	assert.False(t, called)
}

func TestEventBus_RemoveListener(t *testing.T) {
	var bus EventBus
	var order []string
	bus.AddListener(EventUpdate, func(*Event) { order = append(order, "a") })
	bus.AddListener(EventUpdate, func(*Event) { order = append(order, "b") })

	assert.True(t, bus.RemoveListener(EventUpdate))
	assert.Equal(t, 1, bus.ListenerCount(EventUpdate))

	bus.Dispatch(&Event{Name: EventUpdate})
	assert.Equal(t, []string{"b"}, order)

	assert.True(t, bus.RemoveListener(EventUpdate))
	assert.False(t, bus.RemoveListener(EventUpdate))
	assert.False(t, bus.RemoveListener(EventRender))
	assert.Zero(t, bus.ListenerCount(EventUpdate))
}

func TestEventBus_DuplicatesFireTwice(t *testing.T) {
	var bus EventBus
	calls := 0
	h := func(*Event) { calls++ }
	bus.AddListener(EventUpdate, h)
	bus.AddListener(EventUpdate, h)

	bus.Dispatch(&Event{Name: EventUpdate})

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, bus.ListenerCount(EventUpdate))
}

func TestEventBus_ListenerRemovingItself(t *testing.T) {
	var bus EventBus
	calls := 0
	bus.AddListener(EventUpdate, func(*Event) {
		calls++
		bus.RemoveListener(EventUpdate)
	})

	bus.Dispatch(&Event{Name: EventUpdate})
	bus.Dispatch(&Event{Name: EventUpdate})

	assert.Equal(t, 1, calls)
}
