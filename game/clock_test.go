package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimer_Tick(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		ticks []time.Duration
		want  []time.Duration
	}{
		{"first tick is zero after slow start-up", []time.Duration{3 * time.Second}, []time.Duration{0}},
		{"steady frames", []time.Duration{0, 16 * time.Millisecond, 32 * time.Millisecond}, []time.Duration{0, 16 * time.Millisecond, 16 * time.Millisecond}},
		{"stall after first frame", []time.Duration{time.Second, 3 * time.Second}, []time.Duration{0, 2 * time.Second}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FrameTimer
			for i, offset := range tt.ticks {
				assert.Equal(t, tt.want[i], f.Tick(start.Add(offset)), "tick %d", i)
			}
		})
	}
}
