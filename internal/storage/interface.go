package storage

import (
	"context"
)

// Slot is a durable key-value store holding opaque values.
// Get returns model.ErrSlotNotFound when the key has no value.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
