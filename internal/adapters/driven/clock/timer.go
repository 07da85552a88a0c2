// Package clock provides reply schedulers.
//
// TimerScheduler runs tasks on the runtime timer. ManualScheduler runs them
// only when told to, which makes delayed replies deterministic in tests.
package clock

import (
	"sync"
	"time"

	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
)

// Ensure the schedulers implement the interface.
var (
	_ driven.ReplyScheduler = (*TimerScheduler)(nil)
	_ driven.ReplyScheduler = (*ManualScheduler)(nil)
)

// TimerScheduler schedules tasks with time.AfterFunc.
type TimerScheduler struct{}

// NewTimerScheduler creates a timer-backed scheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

// Schedule runs task on its own goroutine after delay.
// A non-positive delay still runs the task asynchronously.
func (s *TimerScheduler) Schedule(delay time.Duration, task func()) func() {
	if delay < 0 {
		delay = 0
	}
	t := time.AfterFunc(delay, task)

	var once sync.Once
	return func() {
		once.Do(func() { t.Stop() })
	}
}
