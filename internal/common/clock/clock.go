package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/creatorsconnections/tokboard/internal/common/clock Clock,Timer
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
}

// Timer is a cancellable single-shot timer
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// NewTimer returns a timer backed by time.Timer
func (c *DefaultClock) NewTimer(d time.Duration) Timer {
	return &defaultTimer{timer: time.NewTimer(d)}
}

type defaultTimer struct {
	timer *time.Timer
}

func (t *defaultTimer) C() <-chan time.Time {
	return t.timer.C
}

func (t *defaultTimer) Stop() bool {
	return t.timer.Stop()
}
