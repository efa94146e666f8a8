package clock

import (
	"time"

	"github.com/obedfeni/dailytrivia/internal/model"
)

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the current calendar day for the given clock.
func Today(c Clock) model.GameDate {
	return model.DateOf(c.Now())
}
