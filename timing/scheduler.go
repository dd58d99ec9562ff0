package timing

import "time"

// Handle identifies a scheduled task. The zero Handle is never issued.
type Handle uint64

type task struct {
	id       Handle
	next     time.Duration
	interval time.Duration
	repeat   bool
	fn       func()
}

// Scheduler owns every delayed and recurring task of one entity (or of the
// match itself). Tasks only fire from Advance, so all callbacks run on the
// game loop in a deterministic order: earliest due time first, then
// scheduling order.
//
// Pausing suspends the scheduler without losing any task. CancelAll discards
// everything and is final: a stopped scheduler refuses new tasks.
type Scheduler struct {
	now     time.Duration
	nextID  Handle
	tasks   []*task
	paused  bool
	stopped bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After runs fn once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	return s.add(d, false, fn)
}

// Every runs fn each d, first firing d from now.
func (s *Scheduler) Every(d time.Duration, fn func()) Handle {
	return s.add(d, true, fn)
}

func (s *Scheduler) add(d time.Duration, repeat bool, fn func()) Handle {
	if s.stopped || fn == nil {
		return 0
	}
	if d <= 0 {
		d = time.Nanosecond
	}
	s.nextID++
	s.tasks = append(s.tasks, &task{
		id:       s.nextID,
		next:     s.now + d,
		interval: d,
		repeat:   repeat,
		fn:       fn,
	})
	return s.nextID
}

// Cancel removes the task. It reports whether the task was still pending.
func (s *Scheduler) Cancel(h Handle) bool {
	for i, t := range s.tasks {
		if t.id == h {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Pending reports whether h is still scheduled.
func (s *Scheduler) Pending(h Handle) bool {
	for _, t := range s.tasks {
		if t.id == h {
			return true
		}
	}
	return false
}

// CancelAll drops every task and stops the scheduler for good.
func (s *Scheduler) CancelAll() {
	s.tasks = nil
	s.stopped = true
}

func (s *Scheduler) Stopped() bool {
	return s.stopped
}

func (s *Scheduler) Pause() {
	s.paused = true
}

func (s *Scheduler) Resume() {
	s.paused = false
}

func (s *Scheduler) IsPaused() bool {
	return s.paused
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Now returns the scheduler's local time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Advance moves the scheduler forward by dt and fires every task that became
// due, including tasks scheduled by callbacks within the same window. Each
// callback runs with Now at its own due time.
func (s *Scheduler) Advance(dt time.Duration) {
	if s.paused || s.stopped || dt <= 0 {
		return
	}
	target := s.now + dt

	for !s.stopped && !s.paused {
		t := s.due(target)
		if t == nil {
			break
		}
		s.now = t.next
		if t.repeat {
			t.next += t.interval
		} else {
			s.Cancel(t.id)
		}
		t.fn()
	}
	s.now = target
}

// due returns the earliest task due at or before target.
func (s *Scheduler) due(target time.Duration) *task {
	var best *task
	for _, t := range s.tasks {
		if t.next > target {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.id < best.id) {
			best = t
		}
	}
	return best
}
