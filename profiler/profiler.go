// Package profiler captures CPU profiles and execution traces when a
// frame runs long.
package profiler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	// ErrCooldown is returned when a capture was started too recently.
	ErrCooldown = errors.New("capture on cooldown")
	// ErrBusy is returned while another capture is running.
	ErrBusy = errors.New("already profiling")
)

// Profiler handles automatic performance profiling
type Profiler struct {
	mu              sync.Mutex
	wg              sync.WaitGroup
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
	log             *logrus.Entry
	now             func() time.Time
}

// New creates a profiler writing into dir. The directory is created lazily
// on the first capture.
func New(dir string, log *logrus.Entry) *Profiler {
	if dir == "" {
		dir = "profiles"
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Profiler{
		captureCooldown: 10 * time.Second,
		profilesDir:     dir,
		captureDuration: 5 * time.Second,
		log:             log.WithField("component", "profiler"),
		now:             time.Now,
	}
}

// SetDuration changes how long each capture runs.
func (p *Profiler) SetDuration(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.captureDuration = d
}

// SetCooldown changes the minimum gap between captures.
func (p *Profiler) SetCooldown(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.captureCooldown = d
}

// CaptureProfile starts a CPU profile and trace in the background.
// It returns ErrCooldown or ErrBusy instead of stacking captures.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return ErrBusy
	}
	if !p.lastCaptureTime.IsZero() {
		if since := p.now().Sub(p.lastCaptureTime); since < p.captureCooldown {
			return fmt.Errorf("%w (last capture was %v ago)", ErrCooldown, since)
		}
	}
	if err := os.MkdirAll(p.profilesDir, 0755); err != nil {
		return fmt.Errorf("failed to create profile dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = p.now()
	baseName := p.baseName(reason)
	duration := p.captureDuration

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		if err := p.capture(baseName, duration); err != nil {
			p.log.WithError(err).Warn("Profile capture failed")
		}
	}()

	return nil
}

// Wait blocks until a background capture finishes.
func (p *Profiler) Wait() { p.wg.Wait() }

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// Dir returns the output directory.
func (p *Profiler) Dir() string { return p.profilesDir }

func (p *Profiler) baseName(reason string) string {
	reason = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ' ' {
			return '_'
		}
		return r
	}, reason)
	return fmt.Sprintf("frame-drop-%s-%s", p.now().Format("20060102-150405"), reason)
}

// capture runs the CPU profile and trace in parallel, then logs a summary.
func (p *Profiler) capture(baseName string, duration time.Duration) error {
	var wg sync.WaitGroup
	var cpuErr, traceErr error
	wg.Add(2)

	go func() {
		defer wg.Done()
		cpuErr = p.captureCPUProfile(baseName, duration)
	}()

	go func() {
		defer wg.Done()
		traceErr = p.captureTrace(baseName, duration)
	}()

	wg.Wait()
	p.analyzeProfile(baseName)

	return errors.Join(cpuErr, traceErr)
}

func (p *Profiler) captureCPUProfile(baseName string, duration time.Duration) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(duration)
	pprof.StopCPUProfile()

	p.log.WithField("path", profilePath).Info("CPU profile saved")
	return nil
}

func (p *Profiler) captureTrace(baseName string, duration time.Duration) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(duration)
	trace.Stop()

	p.log.WithField("path", tracePath).Info("Trace saved")
	return nil
}

// analyzeProfile logs the profile size and memory stats at capture time.
func (p *Profiler) analyzeProfile(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	info, err := os.Stat(profilePath)
	if err != nil {
		p.log.WithError(err).Warn("Could not analyze profile")
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.WithFields(logrus.Fields{
		"profile":      profilePath,
		"size_kb":      float64(info.Size()) / 1024,
		"alloc_kb":     m.Alloc / 1024,
		"sys_kb":       m.Sys / 1024,
		"num_gc":       m.NumGC,
		"heap_objects": m.HeapObjects,
	}).Info("Performance capture complete, inspect with go tool pprof -http=:8080")
}
