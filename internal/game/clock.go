package game

import "time"

// Scheduler abstracts wall clock and one-shot timers so room tests can fire
// timer events deterministically.
type Scheduler interface {
	Now() time.Time
	Schedule(d time.Duration, fn func())
}

type realScheduler struct{}

func (realScheduler) Now() time.Time { return time.Now() }

func (realScheduler) Schedule(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

func NewScheduler() Scheduler {
	return realScheduler{}
}
