package clock

import (
	"sort"
	"sync"
	"time"
)

type manualTask struct {
	id        int
	due       time.Duration
	run       func()
	cancelled bool
}

// ManualScheduler holds tasks until Advance or RunAll is called.
// Tasks run on the caller's goroutine, in due order.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	nextID int
	tasks  []*manualTask
	delays []time.Duration
}

// NewManualScheduler creates a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule queues task to run once the clock has advanced by delay.
func (s *ManualScheduler) Schedule(delay time.Duration, task func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t := &manualTask{id: s.nextID, due: s.now + delay, run: task}
	s.tasks = append(s.tasks, t)
	s.delays = append(s.delays, delay)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		t.cancelled = true
	}
}

// Advance moves the clock forward by d and runs every task that became due.
// It returns the number of tasks run.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	s.now += d
	due := s.takeLocked(func(t *manualTask) bool { return t.due <= s.now })
	s.mu.Unlock()

	return runTasks(due)
}

// RunAll runs every queued task regardless of its delay.
func (s *ManualScheduler) RunAll() int {
	s.mu.Lock()
	due := s.takeLocked(func(*manualTask) bool { return true })
	s.mu.Unlock()

	return runTasks(due)
}

// Pending returns the number of queued, uncancelled tasks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Delays returns the delay passed to every Schedule call, in call order.
func (s *ManualScheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, len(s.delays))
	copy(out, s.delays)
	return out
}

// takeLocked removes matching tasks and returns the live ones in due order.
func (s *ManualScheduler) takeLocked(match func(*manualTask) bool) []*manualTask {
	var taken, kept []*manualTask
	for _, t := range s.tasks {
		switch {
		case t.cancelled:
		case match(t):
			taken = append(taken, t)
		default:
			kept = append(kept, t)
		}
	}
	s.tasks = kept

	sort.SliceStable(taken, func(i, j int) bool {
		if taken[i].due == taken[j].due {
			return taken[i].id < taken[j].id
		}
		return taken[i].due < taken[j].due
	})
	return taken
}

func runTasks(tasks []*manualTask) int {
	for _, t := range tasks {
		t.run()
	}
	return len(tasks)
}
