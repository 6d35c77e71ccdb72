package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/mohamed566-11/sqrew/internal/model"
	"github.com/mohamed566-11/sqrew/internal/services/scoring"
	"github.com/mohamed566-11/sqrew/internal/storage"
)

// DefaultKey is the version-tagged slot holding the snapshot
const DefaultKey = "skrew_elite_state_v1"

// Adapter reads and writes the game snapshot in a single storage slot
type Adapter struct {
	slot    storage.Slot
	key     string
	scoring *scoring.Service
	logger  *slog.Logger
}

// New creates a new persistence adapter. An empty key selects DefaultKey.
func New(slot storage.Slot, key string, scoringService *scoring.Service, logger *slog.Logger) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Adapter{
		slot:    slot,
		key:     key,
		scoring: scoringService,
		logger:  logger.With(slog.String("component", "persistence"), slog.String("key", key)),
	}
}

// Key returns the slot key
func (a *Adapter) Key() string {
	return a.key
}

// Load returns the persisted snapshot, or the initial snapshot when the
// slot is empty or unreadable. It never fails.
func (a *Adapter) Load(ctx context.Context) *model.Snapshot {
	data, err := a.slot.Get(ctx, a.key)
	if err != nil {
		if errors.Is(err, model.ErrSlotNotFound) {
			a.logger.Info("no saved snapshot, starting fresh")
		} else {
			a.logger.Warn("failed to read snapshot", slog.String("error", err.Error()))
		}
		return model.NewSnapshot()
	}

	snapshot, err := a.Decode(data)
	if err != nil {
		a.logger.Warn("failed to parse snapshot", slog.String("error", err.Error()))
		return model.NewSnapshot()
	}

	a.logger.Info("snapshot loaded",
		slog.String("status", string(snapshot.Status)),
		slog.Int("player_count", len(snapshot.Players)),
		slog.Int("round_count", len(snapshot.Rounds)),
	)
	return snapshot
}

// Save writes the snapshot. Failures are logged and otherwise ignored.
func (a *Adapter) Save(ctx context.Context, snapshot *model.Snapshot) {
	data, err := a.Encode(snapshot)
	if err != nil {
		a.logger.Error("failed to encode snapshot", slog.String("error", err.Error()))
		return
	}
	if err := a.slot.Put(ctx, a.key, data); err != nil {
		a.logger.Warn("failed to save snapshot", slog.String("error", err.Error()))
	}
}

// Clear erases the slot. Failures are logged and otherwise ignored.
func (a *Adapter) Clear(ctx context.Context) {
	if err := a.slot.Delete(ctx, a.key); err != nil {
		a.logger.Warn("failed to clear snapshot", slog.String("error", err.Error()))
		return
	}
	a.logger.Info("snapshot cleared")
}

// Encode serializes a snapshot in the persisted JSON format
func (a *Adapter) Encode(snapshot *model.Snapshot) ([]byte, error) {
	if snapshot == nil {
		snapshot = model.NewSnapshot()
	}
	data, err := json.Marshal(recordFromSnapshot(snapshot))
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// Decode parses the persisted JSON format and normalizes the result
func (a *Adapter) Decode(data []byte) (*model.Snapshot, error) {
	var rec snapshotRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return a.normalize(rec.toSnapshot()), nil
}

// normalize restores the snapshot invariants on data that was edited or
// written by an older build.
func (a *Adapter) normalize(s *model.Snapshot) *model.Snapshot {
	if !s.Status.Valid() {
		a.logger.Warn("unknown snapshot status, resetting to setup", slog.String("status", string(s.Status)))
		s.Status = model.GameStatusSetup
	}

	if s.Status == model.GameStatusSetup {
		s.Rounds = []model.Round{}
	}

	// Stable on the stored number so equal numbers keep file order
	sort.SliceStable(s.Rounds, func(i, j int) bool {
		return s.Rounds[i].Number < s.Rounds[j].Number
	})
	s.Rounds = a.scoring.Renumber(s.Rounds)
	s.Players = a.scoring.Recompute(s.Players, s.Rounds)
	return s
}
