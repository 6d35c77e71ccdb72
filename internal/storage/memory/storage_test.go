package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mohamed566-11/sqrew/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestPutAndGet() {
	err := s.storage.Put(s.ctx, "state", []byte(`{"status":"SETUP"}`))
	s.Require().NoError(err)

	value, err := s.storage.Get(s.ctx, "state")
	s.Require().NoError(err)
	s.Equal(`{"status":"SETUP"}`, string(value))
	s.True(s.storage.Has("state"))
}

func (s *StorageSuite) TestGetNotFound() {
	_, err := s.storage.Get(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSlotNotFound)
}

func (s *StorageSuite) TestPutOverwrites() {
	_ = s.storage.Put(s.ctx, "state", []byte("one"))
	_ = s.storage.Put(s.ctx, "state", []byte("two"))

	value, err := s.storage.Get(s.ctx, "state")
	s.Require().NoError(err)
	s.Equal("two", string(value))
}

func (s *StorageSuite) TestDelete() {
	_ = s.storage.Put(s.ctx, "state", []byte("one"))

	err := s.storage.Delete(s.ctx, "state")
	s.Require().NoError(err)

	_, err = s.storage.Get(s.ctx, "state")
	s.ErrorIs(err, model.ErrSlotNotFound)
	s.False(s.storage.Has("state"))
}

func (s *StorageSuite) TestDeleteMissingKey() {
	s.NoError(s.storage.Delete(s.ctx, "nonexistent"))
}

func (s *StorageSuite) TestValuesAreCopied() {
	value := []byte("abc")
	_ = s.storage.Put(s.ctx, "state", value)
	value[0] = 'x'

	got, _ := s.storage.Get(s.ctx, "state")
	s.Equal("abc", string(got))

	got[1] = 'y'
	again, _ := s.storage.Get(s.ctx, "state")
	s.Equal("abc", string(again))
}
