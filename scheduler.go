package phoneinput

import (
	"sync"
	"time"
)

// Timer is the handle returned by an AfterFunc.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run after d. It mirrors time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Scheduler runs deferred work keyed by a logical name. Scheduling a key
// that already has pending work cancels that work, so only the most recent
// unit for a key ever runs.
type Scheduler struct {
	mu        sync.Mutex
	afterFunc AfterFunc
	pending   map[string]scheduledTask
	next      uint64
	stopped   bool
}

type scheduledTask struct {
	timer Timer
	id    uint64
}

// SchedulerOption mutates a Scheduler during construction
type SchedulerOption func(*Scheduler)

// WithAfterFunc replaces the timer source, mostly for tests.
func WithAfterFunc(fn AfterFunc) SchedulerOption {
	return func(s *Scheduler) {
		if fn != nil {
			s.afterFunc = fn
		}
	}
}

func NewScheduler(opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		afterFunc: realAfterFunc,
		pending:   make(map[string]scheduledTask),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Schedule runs fn after delay unless key is rescheduled or cancelled
// first. It reports false once the scheduler is stopped.
func (s *Scheduler) Schedule(key string, delay time.Duration, fn func()) bool {
	if s == nil || fn == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false
	}

	if task, ok := s.pending[key]; ok {
		task.timer.Stop()
	}

	s.next++
	id := s.next
	timer := s.afterFunc(delay, func() {
		s.fire(key, id, fn)
	})
	s.pending[key] = scheduledTask{timer: timer, id: id}
	return true
}

// Cancel drops pending work for key and reports whether there was any.
func (s *Scheduler) Cancel(key string) bool {
	if s == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.pending[key]
	if !ok {
		return false
	}
	task.timer.Stop()
	delete(s.pending, key)
	return true
}

// Pending reports whether key has work waiting to run.
func (s *Scheduler) Pending(key string) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[key]
	return ok
}

// Stop cancels all pending work. Later calls to Schedule are ignored.
func (s *Scheduler) Stop() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for key, task := range s.pending {
		task.timer.Stop()
		delete(s.pending, key)
	}
}

func (s *Scheduler) fire(key string, id uint64, fn func()) {
	s.mu.Lock()
	task, ok := s.pending[key]
	// a timer that lost the race with Stop or a reschedule must not run
	if !ok || task.id != id {
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	s.mu.Unlock()

	fn()
}
