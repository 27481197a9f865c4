package timeutil

import (
	"sort"
	"sync"
	"time"
)

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop cancels the callback; it reports false if it already ran or was stopped.
	Stop() bool
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler is backed by time.AfterFunc.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualScheduler fires callbacks only when Advance moves its clock past
// their deadline. Callbacks run on the goroutine calling Advance.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	pending []*manualTimer
}

type manualTimer struct {
	s    *ManualScheduler
	at   time.Duration
	f    func()
	done bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{s: s, at: s.now + d, f: f}
	s.pending = append(s.pending, t)
	return t
}

// Advance moves the clock forward by d and runs every callback now due,
// earliest first.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*manualTimer
	rest := s.pending[:0]
	for _, t := range s.pending {
		if t.at <= s.now {
			t.done = true
			due = append(due, t)
			continue
		}
		rest = append(rest, t)
	}
	s.pending = rest
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.f()
	}
}

// Pending returns the number of callbacks not yet run or stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	for i, p := range t.s.pending {
		if p == t {
			t.s.pending = append(t.s.pending[:i], t.s.pending[i+1:]...)
			break
		}
	}
	return true
}
