package mocks

import (
	"time"

	"github.com/mohamed566-11/sqrew/internal/dependencies/clock"
)

// MockClock returns CurrentTime and then moves it forward by Step.
// A zero Step freezes the clock. Callers serialize access themselves;
// the game controller reads it under its own lock.
type MockClock struct {
	CurrentTime time.Time
	Step        time.Duration
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock returns a frozen clock
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// NewSteppingMockClock returns a clock that ticks forward by step on each read,
// so consecutive rounds get distinct timestamps
func NewSteppingMockClock(t time.Time, step time.Duration) *MockClock {
	return &MockClock{CurrentTime: t, Step: step}
}

func (c *MockClock) Now() time.Time {
	now := c.CurrentTime
	c.CurrentTime = now.Add(c.Step)
	return now
}
