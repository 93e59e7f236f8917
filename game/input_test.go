package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput_PressedAny(t *testing.T) {
	in := NewInput()
	assert.False(t, in.Pressed(ThrustKeys...))

	in.Set(KeyArrowUp, true)
	assert.True(t, in.Pressed(ThrustKeys...))
	assert.True(t, in.Pressed(StartKeys...))
	assert.False(t, in.Pressed(RotateLeftKeys...))

	in.Set(KeyArrowUp, false)
	assert.False(t, in.Pressed(ThrustKeys...))
}

func TestInput_ConsumeFiresOnce(t *testing.T) {
	in := NewInput()
	in.Set(KeyE, true)

	assert.True(t, in.Consume(KeyE))
	assert.False(t, in.Consume(KeyE))
	assert.False(t, in.Pressed(KeyE))
}

func TestInput_Amplification(t *testing.T) {
	in := NewInput()
	assert.Equal(t, 1.0, in.Amplification())

	in.RotationAmplification = 2.5
	assert.Equal(t, 2.5, in.Amplification())

	in.Set(KeyW, true)
	in.Clear()
	assert.Equal(t, 1.0, in.Amplification())
	assert.False(t, in.Pressed(KeyW))
}

func TestInput_ZeroValue(t *testing.T) {
	tests := []struct {
		name string
		run  func(in *Input)
		held bool
	}{
		{"press", func(in *Input) { in.Set(KeySpace, true) }, true},
		{"release", func(in *Input) { in.Set(KeySpace, false) }, false},
		{"clear", func(in *Input) { in.Clear() }, false},
		{"consume", func(in *Input) { in.Consume(KeySpace) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in Input
			assert.NotPanics(t, func() { tt.run(&in) })
			assert.Equal(t, tt.held, in.Pressed(KeySpace))
		})
	}
}
