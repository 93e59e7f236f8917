package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starshipcatch/game"
)

func newTestRunner(t *testing.T, cols, rows int) (*Runner, *game.ManualClock, tcell.SimulationScreen) {
	t.Helper()
	screen := newTestScreen(t, cols, rows)
	clock := game.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	log, _ := test.NewNullLogger()

	cfg := game.DefaultConfig()
	cfg.Seed = 42
	m, err := game.NewMission(game.Options{
		Config: cfg,
		Clock:  clock,
		Logger: logrus.NewEntry(log),
	})
	require.NoError(t, err)

	return NewRunner(screen, m, clock, logrus.NewEntry(log)), clock, screen
}

func rowText(s tcell.Screen, row int) string {
	cols, _ := s.Size()
	var b strings.Builder
	for col := 0; col < cols; col++ {
		b.WriteRune(runeAt(s, col, row))
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, rows := s.Size()
	lines := make([]string, rows)
	for row := range lines {
		lines[row] = rowText(s, row)
	}
	return strings.Join(lines, "\n")
}

func TestRunner_SizesMissionToGrid(t *testing.T) {
	r, _, screen := newTestRunner(t, 100, 30)

	assert.Equal(t, 800.0, r.mission.Camera.Width)
	assert.Equal(t, 480.0, r.mission.Camera.Height)

	screen.SetSize(60, 20)
	r.Resize()
	assert.Equal(t, 480.0, r.mission.Camera.Width)
	assert.Equal(t, 320.0, r.mission.Camera.Height)
}

func TestRunner_StepDrawsHUD(t *testing.T) {
	r, clock, screen := newTestRunner(t, 100, 30)

	clock.Advance(frameRate)
	r.Step()

	assert.Contains(t, rowText(screen, 7), "Press space to start!")
	assert.Contains(t, rowText(screen, 1), "Exit the atmosphere")
	assert.Contains(t, screenText(screen), "Altitude:")
}

func TestRunner_KeysDriveMission(t *testing.T) {
	r, clock, screen := newTestRunner(t, 100, 30)

	r.keys.press(game.KeyEnter, clock.Now())
	clock.Advance(frameRate)
	r.Step()
	require.True(t, r.mission.Started())
	assert.Contains(t, screenText(screen), "Launch in T-")

	clock.Advance(r.mission.Config().LaunchDelay)
	r.Step()
	assert.True(t, r.mission.Launched())
	assert.Equal(t, int64(1), r.mission.Stats().Launches)
}

func TestRunner_HeldKeyReleasedAfterWindow(t *testing.T) {
	r, clock, _ := newTestRunner(t, 100, 30)
	in := r.mission.Input()

	r.keys.press(game.KeyA, clock.Now())
	clock.Advance(frameRate)
	r.Step()
	assert.True(t, in.Pressed(game.KeyA))

	clock.Advance(holdWindow + frameRate)
	r.Step()
	assert.False(t, in.Pressed(game.KeyA))
}

func TestRunner_FirstStepIgnoresStartup(t *testing.T) {
	r, clock, _ := newTestRunner(t, 100, 30)

	r.mission.Input().Set(game.KeySpace, true)
	r.Step()
	require.True(t, r.mission.Started())

	// A fresh runner whose first frame lands after a long start-up
	clock.Advance(r.mission.Config().LaunchDelay + time.Second)
	fresh := NewRunner(r.screen, r.mission, clock, r.log)
	y := r.mission.Full.Y
	fresh.Step()

	require.True(t, r.mission.Launched())
	assert.Equal(t, y, r.mission.Full.Y)
	assert.Equal(t, game.Velocity{}, r.mission.Full.Velocity)
}
