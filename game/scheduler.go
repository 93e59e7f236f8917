package game

import (
	"sort"
	"time"
)

type deferred struct {
	due        time.Time
	generation uint64
	seq        uint64
	fn         func(m *Mission)
}

// Scheduler runs deferred callbacks from the frame loop. Each callback
// remembers the generation it was scheduled in; Invalidate advances the
// generation so callbacks from before a reset never fire.
type Scheduler struct {
	clock      Clock
	generation uint64
	seq        uint64
	pending    []deferred
}

// NewScheduler creates a scheduler reading time from clock.
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run on the first Run at or after now+d.
func (s *Scheduler) After(d time.Duration, fn func(m *Mission)) {
	s.seq++
	s.pending = append(s.pending, deferred{
		due:        s.clock.Now().Add(d),
		generation: s.generation,
		seq:        s.seq,
		fn:         fn,
	})
}

// Invalidate drops every pending callback and starts a new generation.
func (s *Scheduler) Invalidate() {
	s.generation++
	s.pending = s.pending[:0]
}

// Generation returns the current generation token.
func (s *Scheduler) Generation() uint64 { return s.generation }

// Pending returns the number of callbacks waiting to run.
func (s *Scheduler) Pending() int { return len(s.pending) }

// Run fires every due callback in due order. Callbacks may schedule more
// work or invalidate; anything from a stale generation is skipped.
func (s *Scheduler) Run(m *Mission) int {
	now := s.clock.Now()
	var due []deferred
	kept := s.pending[:0]
	for _, d := range s.pending {
		if !d.due.After(now) {
			due = append(due, d)
		} else {
			kept = append(kept, d)
		}
	}
	s.pending = kept
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})

	ran := 0
	for _, d := range due {
		if d.generation != s.generation {
			continue
		}
		d.fn(m)
		ran++
	}
	return ran
}
