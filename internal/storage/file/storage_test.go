package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mohamed566-11/sqrew/internal/model"
)

type StorageSuite struct {
	suite.Suite
	dir     string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.dir = filepath.Join(s.T().TempDir(), "state")
	store, err := New(s.dir)
	s.Require().NoError(err)
	s.storage = store
	s.ctx = context.Background()
}

func (s *StorageSuite) TestNewCreatesDirectory() {
	info, err := os.Stat(s.dir)
	s.Require().NoError(err)
	s.True(info.IsDir())
	s.Equal(s.dir, s.storage.Dir())
}

func (s *StorageSuite) TestNewRequiresDirectory() {
	_, err := New("  ")
	s.Error(err)
}

func (s *StorageSuite) TestPutAndGet() {
	err := s.storage.Put(s.ctx, "skrew_elite_state_v1", []byte(`{"status":"SETUP"}`))
	s.Require().NoError(err)

	value, err := s.storage.Get(s.ctx, "skrew_elite_state_v1")
	s.Require().NoError(err)
	s.Equal(`{"status":"SETUP"}`, string(value))

	onDisk, err := os.ReadFile(filepath.Join(s.dir, "skrew_elite_state_v1.json"))
	s.Require().NoError(err)
	s.Equal(`{"status":"SETUP"}`, string(onDisk))
}

func (s *StorageSuite) TestPutOverwrites() {
	_ = s.storage.Put(s.ctx, "state", []byte("a longer first value"))
	_ = s.storage.Put(s.ctx, "state", []byte("short"))

	value, err := s.storage.Get(s.ctx, "state")
	s.Require().NoError(err)
	s.Equal("short", string(value))
}

func (s *StorageSuite) TestGetNotFound() {
	_, err := s.storage.Get(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSlotNotFound)
}

func (s *StorageSuite) TestDelete() {
	_ = s.storage.Put(s.ctx, "state", []byte("value"))

	s.Require().NoError(s.storage.Delete(s.ctx, "state"))

	_, err := s.storage.Get(s.ctx, "state")
	s.ErrorIs(err, model.ErrSlotNotFound)
}

func (s *StorageSuite) TestDeleteMissingKey() {
	s.NoError(s.storage.Delete(s.ctx, "nonexistent"))
}

func (s *StorageSuite) TestRejectsPathKeys() {
	for _, key := range []string{"", "..", "../escape", `a\b`, "nested/key"} {
		err := s.storage.Put(s.ctx, key, []byte("value"))
		s.ErrorIs(err, ErrInvalidKey, "key %q", key)
	}
}

func (s *StorageSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.ErrorIs(s.storage.Put(ctx, "state", []byte("value")), context.Canceled)
	_, err := s.storage.Get(ctx, "state")
	s.ErrorIs(err, context.Canceled)
}
