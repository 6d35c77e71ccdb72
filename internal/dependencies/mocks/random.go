package mocks

import (
	"sync"

	"github.com/mohamed566-11/sqrew/internal/dependencies/random"
)

// MockRandom hands out queued strings in order, so tests can predict
// player and round ids. An empty queue yields "" which NewID turns into
// "id", "id-2" and so on.
type MockRandom struct {
	mu      sync.Mutex
	strings []string
}

var _ random.Random = (*MockRandom)(nil)

func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn always returns 0
func (r *MockRandom) Intn(int) int {
	return 0
}

// String pops the next queued value; length and alphabet are ignored
func (r *MockRandom) String(int, string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.strings) == 0 {
		return ""
	}
	next := r.strings[0]
	r.strings = r.strings[1:]
	return next
}

// QueueString appends values to the queue.
// Each generated player or round id consumes one value.
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strings = append(r.strings, values...)
}

// Pending returns how many queued strings have not been consumed
func (r *MockRandom) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.strings)
}
