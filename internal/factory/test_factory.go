package factory

import (
	"context"
	"time"

	"github.com/mohamed566-11/sqrew/internal/dependencies/mocks"
	"github.com/mohamed566-11/sqrew/internal/storage"
	"github.com/mohamed566-11/sqrew/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	Memory     *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	app := NewTestAppWithSlot(store)
	app.Memory = store
	return app
}

// NewTestAppWithSlot wires a test App over an existing slot, loading whatever it holds
func NewTestAppWithSlot(slot storage.Slot) *TestApp {
	mockClock := mocks.NewSteppingMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), time.Minute)
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(context.Background(), slot, mockClock, mockRandom, "", nil)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
