package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "starshipcatch/game"

// Stats mirrors the mission counters for in-process readers such as the debug overlay.
type Stats struct {
	Launches    int64
	Transitions int64
	Explosions  int64
	Resets      int64
	Satellites  int64
}

type metrics struct {
	launches    metric.Int64Counter
	transitions metric.Int64Counter
	explosions  metric.Int64Counter
	resets      metric.Int64Counter
	satellites  metric.Int64Counter

	stats Stats
}

// newMetrics creates the mission counters on m, or on the global
// provider (no-op unless configured) when m is nil.
func newMetrics(m metric.Meter) (*metrics, error) {
	if m == nil {
		m = otel.Meter(instrumentationName)
	}
	mt := &metrics{}

	var err error
	mt.launches, err = m.Int64Counter(
		"mission.launches",
		metric.WithDescription("Total liftoffs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating launches counter: %w", err)
	}

	mt.transitions, err = m.Int64Counter(
		"mission.phase.transitions",
		metric.WithDescription("Total objective phase changes"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transitions counter: %w", err)
	}

	mt.explosions, err = m.Int64Counter(
		"mission.explosions",
		metric.WithDescription("Total ships destroyed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating explosions counter: %w", err)
	}

	mt.resets, err = m.Int64Counter(
		"mission.resets",
		metric.WithDescription("Total mission resets"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resets counter: %w", err)
	}

	mt.satellites, err = m.Int64Counter(
		"mission.satellites.released",
		metric.WithDescription("Total satellites deployed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating satellites counter: %w", err)
	}

	return mt, nil
}

func (mt *metrics) launch() {
	mt.stats.Launches++
	mt.launches.Add(context.Background(), 1)
}

func (mt *metrics) transition(to Phase) {
	mt.stats.Transitions++
	mt.transitions.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("phase", to.String())))
}

func (mt *metrics) explosion(kind ShipKind) {
	mt.stats.Explosions++
	mt.explosions.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("ship", kind.String())))
}

func (mt *metrics) reset() {
	mt.stats.Resets++
	mt.resets.Add(context.Background(), 1)
}

func (mt *metrics) satellite() {
	mt.stats.Satellites++
	mt.satellites.Add(context.Background(), 1)
}
