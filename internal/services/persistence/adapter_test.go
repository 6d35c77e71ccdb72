package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mohamed566-11/sqrew/internal/model"
	"github.com/mohamed566-11/sqrew/internal/services/scoring"
	"github.com/mohamed566-11/sqrew/internal/storage/memory"
	"github.com/mohamed566-11/sqrew/internal/testutil"
)

// failingSlot returns err from every operation
type failingSlot struct {
	err     error
	deletes int
}

func (f *failingSlot) Get(ctx context.Context, key string) ([]byte, error) { return nil, f.err }
func (f *failingSlot) Put(ctx context.Context, key string, value []byte) error {
	return f.err
}
func (f *failingSlot) Delete(ctx context.Context, key string) error {
	f.deletes++
	return f.err
}

type AdapterSuite struct {
	suite.Suite
	storage *memory.Storage
	adapter *Adapter
	ctx     context.Context
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterSuite))
}

func (s *AdapterSuite) SetupTest() {
	s.storage = memory.New()
	s.adapter = New(s.storage, "", scoring.New(), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *AdapterSuite) playingSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Status: model.GameStatusPlaying,
		Players: []model.Player{
			{ID: "p1", Name: "Alice", TotalScore: 7, History: []int{5, 2}},
			{ID: "p2", Name: "Bob", TotalScore: 13, History: []int{3, 10}},
		},
		Rounds: []model.Round{
			{
				ID:        "r1",
				Number:    1,
				Scores:    map[model.PlayerID]int{"p1": 5, "p2": 3},
				Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			},
			{
				ID:        "r2",
				Number:    2,
				Scores:    map[model.PlayerID]int{"p1": 2, "p2": 10},
				Timestamp: time.Date(2024, 1, 1, 12, 5, 0, 0, time.UTC),
			},
		},
	}
}

func (s *AdapterSuite) TestDefaultKey() {
	s.Equal("skrew_elite_state_v1", s.adapter.Key())
	s.Equal("custom", New(s.storage, "custom", scoring.New(), nil).Key())
}

// Load tests

func (s *AdapterSuite) TestLoadMissingSlotReturnsInitial() {
	snapshot := s.adapter.Load(s.ctx)

	s.Equal(model.NewSnapshot(), snapshot)
}

func (s *AdapterSuite) TestLoadCorruptSlotReturnsInitial() {
	_ = s.storage.Put(s.ctx, DefaultKey, []byte("{not json"))

	snapshot := s.adapter.Load(s.ctx)

	s.Equal(model.NewSnapshot(), snapshot)
}

func (s *AdapterSuite) TestLoadReadErrorReturnsInitial() {
	logger, logs := testutil.CaptureLogger()
	adapter := New(&failingSlot{err: errors.New("disk on fire")}, "", scoring.New(), logger)

	s.Equal(model.NewSnapshot(), adapter.Load(s.ctx))

	entries := logs.Entries()
	s.Require().Len(entries, 1)
	s.Equal("WARN", entries[0]["level"])
	s.Equal("failed to read snapshot", entries[0]["msg"])
	s.Equal("disk on fire", entries[0]["error"])
}

func (s *AdapterSuite) TestSaveThenLoadRoundTrips() {
	original := s.playingSnapshot()

	s.adapter.Save(s.ctx, original)
	loaded := s.adapter.Load(s.ctx)

	s.Equal(original, loaded)
}

func (s *AdapterSuite) TestLoadRecomputesTamperedTotals() {
	tampered := s.playingSnapshot()
	tampered.Players[0].TotalScore = 999
	tampered.Players[1].History = []int{1}
	s.adapter.Save(s.ctx, tampered)

	loaded := s.adapter.Load(s.ctx)

	s.Equal(7, loaded.Players[0].TotalScore)
	s.Equal([]int{3, 10}, loaded.Players[1].History)
}

func (s *AdapterSuite) TestLoadRenumbersRounds() {
	raw := `{"status":"PLAYING","players":[{"id":"p1","name":"Alice","totalScore":0,"history":[]}],
		"rounds":[{"id":"b","number":7,"scores":{"p1":2},"timestamp":0},{"id":"a","number":3,"scores":{"p1":1},"timestamp":0}]}`
	_ = s.storage.Put(s.ctx, DefaultKey, []byte(raw))

	loaded := s.adapter.Load(s.ctx)

	s.Require().Len(loaded.Rounds, 2)
	s.Equal(model.RoundID("a"), loaded.Rounds[0].ID)
	s.Equal(1, loaded.Rounds[0].Number)
	s.Equal(model.RoundID("b"), loaded.Rounds[1].ID)
	s.Equal(2, loaded.Rounds[1].Number)
	s.Equal([]int{1, 2}, loaded.Players[0].History)
}

func (s *AdapterSuite) TestLoadUnknownStatusFallsBackToSetup() {
	raw := `{"status":"PAUSED","players":[{"id":"p1","name":"Alice","totalScore":4,"history":[4]}],
		"rounds":[{"id":"a","number":1,"scores":{"p1":4},"timestamp":0}]}`
	_ = s.storage.Put(s.ctx, DefaultKey, []byte(raw))

	loaded := s.adapter.Load(s.ctx)

	s.Equal(model.GameStatusSetup, loaded.Status)
	s.Empty(loaded.Rounds)
	s.Equal(0, loaded.Players[0].TotalScore)
}

func (s *AdapterSuite) TestLoadFillsNilCollections() {
	_ = s.storage.Put(s.ctx, DefaultKey, []byte(`{"status":"PLAYING","players":[{"id":"p1","name":"Alice"}],"rounds":[{"id":"r","number":1}]}`))

	loaded := s.adapter.Load(s.ctx)

	s.NotNil(loaded.Players[0].History)
	s.NotNil(loaded.Rounds[0].Scores)
	s.Empty(loaded.Players[0].History)
}

func (s *AdapterSuite) TestDecodeAcceptsBase36IDs() {
	raw := []byte(`{"status":"PLAYING","players":[{"id":"k3x9a","name":"Alice","totalScore":5,"history":[5]}],` +
		`"rounds":[{"id":"q81zz","number":1,"scores":{"k3x9a":5},"timestamp":1704110400000}]}`)

	snapshot, err := s.adapter.Decode(raw)
	s.Require().NoError(err)

	s.Equal(model.GameStatusPlaying, snapshot.Status)
	s.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), snapshot.Rounds[0].Timestamp)
	s.Equal(5, snapshot.Players[0].TotalScore)
}

// Encode tests

func (s *AdapterSuite) TestEncodeFieldNames() {
	data, err := s.adapter.Encode(s.playingSnapshot())
	s.Require().NoError(err)

	var raw map[string]any
	s.Require().NoError(json.Unmarshal(data, &raw))
	s.Equal("PLAYING", raw["status"])

	players := raw["players"].([]any)
	player := players[0].(map[string]any)
	s.Equal("p1", player["id"])
	s.Equal("Alice", player["name"])
	s.Equal(float64(7), player["totalScore"])
	s.Equal([]any{float64(5), float64(2)}, player["history"])

	rounds := raw["rounds"].([]any)
	round := rounds[0].(map[string]any)
	s.Equal("r1", round["id"])
	s.Equal(float64(1), round["number"])
	s.Equal(map[string]any{"p1": float64(5), "p2": float64(3)}, round["scores"])
	s.Equal(float64(1704110400000), round["timestamp"])
}

func (s *AdapterSuite) TestEncodeInitialSnapshot() {
	data, err := s.adapter.Encode(model.NewSnapshot())
	s.Require().NoError(err)

	s.JSONEq(`{"status":"SETUP","players":[],"rounds":[]}`, string(data))
}

// Save / Clear tests

func (s *AdapterSuite) TestSaveErrorIsSwallowed() {
	logger, logs := testutil.CaptureLogger()
	adapter := New(&failingSlot{err: errors.New("read-only")}, "", scoring.New(), logger)

	s.NotPanics(func() { adapter.Save(s.ctx, s.playingSnapshot()) })
	s.Equal([]string{"failed to save snapshot"}, logs.Messages())
}

func (s *AdapterSuite) TestClearRemovesSlot() {
	s.adapter.Save(s.ctx, s.playingSnapshot())
	s.True(s.storage.Has(DefaultKey))

	s.adapter.Clear(s.ctx)

	s.False(s.storage.Has(DefaultKey))
	s.Equal(model.NewSnapshot(), s.adapter.Load(s.ctx))
}

func (s *AdapterSuite) TestClearErrorIsSwallowed() {
	slot := &failingSlot{err: errors.New("read-only")}
	adapter := New(slot, "", scoring.New(), testutil.NopLogger())

	adapter.Clear(s.ctx)

	s.Equal(1, slot.deletes)
}
