package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mohamed566-11/sqrew/internal/model"
	"github.com/mohamed566-11/sqrew/internal/storage"
)

const pingTimeout = 5 * time.Second

// Storage keeps each slot as a single Redis string under KeyPrefix
type Storage struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ storage.Slot = (*Storage)(nil)

// New connects to cfg.URL and pings the server before returning
func New(ctx context.Context, cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	s := NewWithClient(redis.NewClient(opts), cfg)
	if err := s.Ping(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// NewWithClient wraps an existing client without checking the connection
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		prefix: cfg.KeyPrefix,
		ttl:    cfg.SlotTTL,
	}
}

// Ping checks that the server answers within pingTimeout
func (s *Storage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, slotKey(s.prefix, key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, model.ErrSlotNotFound
	case err != nil:
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

func (s *Storage) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, slotKey(s.prefix, key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes the slot; a missing slot is not an error
func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, slotKey(s.prefix, key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
