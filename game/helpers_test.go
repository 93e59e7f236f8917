package game

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestMission builds a seeded mission on a manual clock with a captured logger.
func newTestMission(t *testing.T, mutate ...func(*Config)) (*Mission, *ManualClock, *test.Hook) {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Seed = 42
	for _, fn := range mutate {
		fn(&cfg)
	}

	clock := NewManualClock(epoch)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	m, err := NewMission(Options{
		Config: cfg,
		Clock:  clock,
		Logger: logrus.NewEntry(logger),
	})
	require.NoError(t, err)
	return m, clock, hook
}

// step advances the clock by d and runs one frame of d.
func step(m *Mission, clock *ManualClock, d time.Duration) {
	clock.Advance(d)
	m.Update(d.Seconds())
}

// launch starts the countdown, waits it out and lifts off with no keys held.
func launch(t *testing.T, m *Mission, clock *ManualClock) {
	t.Helper()

	m.input.Set(KeyEnter, true)
	m.Update(0)
	m.input.Set(KeyEnter, false)
	require.True(t, m.Started())

	clock.Advance(m.cfg.LaunchDelay)
	m.Update(0)
	require.True(t, m.Launched())
	m.particles.Clear()
}

// toStageSeparation parks the full stack on the orbit target waiting for E.
func toStageSeparation(t *testing.T, m *Mission, clock *ManualClock) {
	t.Helper()

	launch(t, m, clock)
	m.Full.X, m.Full.Y = orbitTargetX, orbitTargetY
	m.Full.Stop()
	m.setPhase(PhaseOrbitInsertion)
	m.Update(0)
	require.Equal(t, PhaseStageSeparation, m.Objective.Phase)
	require.Nil(t, m.Objective.Controller)
}

func shipsInScene(m *Mission) []*Ship {
	var ships []*Ship
	m.scene.Each(func(a Actor) {
		if s, ok := a.(*Ship); ok {
			ships = append(ships, s)
		}
	})
	return ships
}

func satellitesInScene(m *Mission) int {
	n := 0
	m.scene.Each(func(a Actor) {
		if _, ok := a.(*Satellite); ok {
			n++
		}
	})
	return n
}

func countMessages(hook *test.Hook, msg string) int {
	n := 0
	for _, e := range hook.AllEntries() {
		if e.Message == msg {
			n++
		}
	}
	return n
}
