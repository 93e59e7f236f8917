package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"starshipcatch/game"
)

// frameRate is the redraw interval, about 60 FPS.
const frameRate = 16 * time.Millisecond

// Runner drives a mission from tcell events and a frame ticker.
type Runner struct {
	screen  tcell.Screen
	mission *game.Mission
	clock   game.Clock
	canvas  *Canvas
	keys    *keyState
	log     *logrus.Entry
	frames  game.FrameTimer
}

// NewRunner sizes the mission to the screen. The screen must already be
// initialized; the caller owns Fini.
func NewRunner(screen tcell.Screen, m *game.Mission, clock game.Clock, log *logrus.Entry) *Runner {
	r := &Runner{
		screen:  screen,
		mission: m,
		clock:   clock,
		canvas:  NewCanvas(screen),
		keys:    newKeyState(m.Input()),
		log:     log,
	}
	r.Resize()
	return r
}

// Resize maps the cell grid to world pixels.
func (r *Runner) Resize() {
	cols, rows := r.screen.Size()
	r.mission.Resize(int(float64(cols)*CellWidth), int(float64(rows)*CellHeight))
}

// HandleEvent applies one terminal event. It returns false to quit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev.Key(), ev.Rune()) {
			return false
		}
		if k, ok := keyFor(ev.Key(), ev.Rune()); ok {
			r.keys.press(k, r.clock.Now())
		}
	case *tcell.EventResize:
		r.Resize()
		r.screen.Sync()
	}
	return true
}

// Step advances the mission and redraws the screen.
func (r *Runner) Step() {
	now := r.clock.Now()
	dt := game.ClampDelta(r.frames.Tick(now), r.mission.Config().MaxFrame)

	r.keys.expire(now)
	r.mission.Update(dt)

	r.screen.Clear()
	r.canvas.ResetTransform()
	r.mission.Render(r.canvas)
	r.screen.Show()
}

// Run loops until ctx is done or the player quits.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	r.log.Info("Terminal session started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !r.HandleEvent(ev) {
				r.log.Info("Terminal session ended")
				return nil
			}

		case <-ticker.C:
			r.Step()
		}
	}
}
