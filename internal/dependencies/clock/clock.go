package clock

import "time"

// Clock is the time source for round timestamps
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock in UTC, truncated to the millisecond
// resolution snapshots are persisted at. Truncating here keeps an in-memory
// snapshot equal to the one reloaded from storage.
type RealClock struct{}

func New() *RealClock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
