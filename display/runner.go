// Package display hosts a mission in an ebiten window.
package display

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"starshipcatch/game"
	"starshipcatch/profiler"
)

// Runner adapts a Mission to ebiten.Game.
type Runner struct {
	mission  *game.Mission
	clock    game.Clock
	canvas   *Canvas
	profiler *profiler.Profiler
	log      *logrus.Entry

	frames    game.FrameTimer
	width     int
	height    int
	showDebug bool
}

// NewRunner wires the mission to an ebiten window. prof may be nil.
func NewRunner(m *game.Mission, clock game.Clock, sprites *Sprites, prof *profiler.Profiler, log *logrus.Entry) *Runner {
	cfg := m.Config()
	return &Runner{
		mission:  m,
		clock:    clock,
		canvas:   NewCanvas(sprites),
		profiler: prof,
		log:      log,
		width:    cfg.ScreenWidth,
		height:   cfg.ScreenHeight,
	}
}

// Update advances the mission by the clamped wall-clock delta.
func (r *Runner) Update() error {
	elapsed := r.frames.Tick(r.clock.Now())
	cfg := r.mission.Config()

	// F1 toggles the debug overlay
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		r.showDebug = !r.showDebug
	}

	pollKeys(r.mission.Input())
	r.mission.Update(game.ClampDelta(elapsed, cfg.MaxFrame))

	if r.profiler != nil && cfg.ProfileThreshold > 0 && elapsed > cfg.ProfileThreshold {
		reason := fmt.Sprintf("frame%dms-%s", elapsed.Milliseconds(), r.mission.Objective.Phase)
		if err := r.profiler.CaptureProfile(reason); err == nil {
			r.log.WithFields(logrus.Fields{
				"frame":     elapsed,
				"threshold": cfg.ProfileThreshold,
			}).Warn("Slow frame detected, capturing profile")
		}
	}
	return nil
}

// Draw renders the mission and, when enabled, the debug overlay.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.canvas.Begin(screen)
	r.mission.Render(r.canvas)
	if r.showDebug {
		ebitenutil.DebugPrintAt(screen, r.debugText(), r.width-220, 10)
	}
}

// Layout tracks the window size so the camera matches the viewport.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != r.width || outsideHeight != r.height {
		r.width, r.height = outsideWidth, outsideHeight
		r.mission.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (r *Runner) profilingState() string {
	switch {
	case r.profiler == nil:
		return "off"
	case r.profiler.IsProfiling():
		return "capturing"
	default:
		return "armed"
	}
}

func (r *Runner) debugText() string {
	m := r.mission
	st := m.Stats()
	f := m.Focus()
	return fmt.Sprintf(
		"FPS: %.1f TPS: %.1f\nProfiling: %s\nPhase: %s\nFocus: %s (%.0f, %.0f)\nParticles: %d Stars: %d\nLaunches: %d Resets: %d\nExplosions: %d Satellites: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		r.profilingState(),
		m.Objective.Phase,
		f.Kind, f.X, f.Y,
		m.Particles().Len(), m.Stars().Len(),
		st.Launches, st.Resets,
		st.Explosions, st.Satellites,
	)
}
