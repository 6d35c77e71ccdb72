package game

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/mohamed566-11/sqrew/internal/dependencies/clock"
	"github.com/mohamed566-11/sqrew/internal/dependencies/random"
	"github.com/mohamed566-11/sqrew/internal/model"
	"github.com/mohamed566-11/sqrew/internal/services/scoring"
)

// Persister writes snapshots to durable storage. Implementations swallow
// their own failures; the in-memory snapshot is never rolled back.
type Persister interface {
	Save(ctx context.Context, snapshot *model.Snapshot)
	Clear(ctx context.Context)
}

// Notifier is told about every new snapshot
type Notifier interface {
	Publish(snapshot *model.Snapshot)
}

// Controller owns the current game snapshot and applies actions to it.
// Every applied action builds a new snapshot and swaps it in whole.
// Invalid actions are silent no-ops that return the unchanged snapshot.
type Controller struct {
	mu      sync.Mutex
	current *model.Snapshot

	persister Persister
	scoring   *scoring.Service
	clock     clock.Clock
	random    random.Random
	notifier  Notifier
	logger    *slog.Logger
}

// NewController creates a new GameController starting from initial.
// A nil initial snapshot starts a fresh game; notifier may be nil.
func NewController(
	initial *model.Snapshot,
	persister Persister,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	notifier Notifier,
	logger *slog.Logger,
) *Controller {
	if initial == nil {
		initial = model.NewSnapshot()
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Controller{
		current:   initial.Clone(),
		persister: persister,
		scoring:   scoringService,
		clock:     clock,
		random:    random,
		notifier:  notifier,
		logger:    logger.With(slog.String("component", "game")),
	}
}

// Snapshot returns a copy of the current snapshot
func (c *Controller) Snapshot() *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tx().Snapshot()
}

// Standings returns the ranked scoreboard for the current snapshot
func (c *Controller) Standings() []model.Standing {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tx().Standings()
}

// Update runs fn with exclusive access to the game. Checks made on
// tx.Snapshot() still hold when fn applies an action through tx.
// The Tx must not be used after fn returns.
func (c *Controller) Update(fn func(tx *Tx) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fn(c.tx())
}

// AddPlayer appends a player with the trimmed name. Empty names are ignored.
// Roster size limits are the caller's responsibility.
func (c *Controller) AddPlayer(ctx context.Context, name string) *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tx().AddPlayer(ctx, name)
}

// RemovePlayer drops the player from the roster. Rounds keep their score
// entries for the removed id; recomputation ignores them.
func (c *Controller) RemovePlayer(ctx context.Context, id model.PlayerID) *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tx().RemovePlayer(ctx, id)
}

// UpdatePlayerName renames the player. The name is trimmed and an empty
// result is ignored, the same guard AddPlayer applies.
func (c *Controller) UpdatePlayerName(ctx context.Context, id model.PlayerID, name string) *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tx().UpdatePlayerName(ctx, id, name)
}

// StartGame moves a SETUP game to PLAYING with zeroed scores and no rounds.
// Minimum roster size is the caller's responsibility.
func (c *Controller) StartGame(ctx context.Context) *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tx().StartGame(ctx)
}

// SubmitRound appends a round with the given scores and recomputes totals.
// Incomplete or stale score maps are accepted; the report lists them.
// Outside PLAYING this is a no-op and the report is empty.
func (c *Controller) SubmitRound(ctx context.Context, scores map[model.PlayerID]int) (*model.Snapshot, model.RoundReport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tx().SubmitRound(ctx, scores)
}

// DeleteRound removes the round, renumbers the rest 1..N and recomputes totals
func (c *Controller) DeleteRound(ctx context.Context, id model.RoundID) *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tx().DeleteRound(ctx, id)
}

// ResetScores clears all rounds and scores of a PLAYING game, keeping the roster
func (c *Controller) ResetScores(ctx context.Context) *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tx().ResetScores(ctx)
}

// ResetGame returns to the initial snapshot, dropping the roster
func (c *Controller) ResetGame(ctx context.Context) *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tx().ResetGame(ctx)
}

// ClearAllData returns to the initial snapshot and erases the durable slot
func (c *Controller) ClearAllData(ctx context.Context) *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tx().ClearAllData(ctx)
}

func (c *Controller) tx() *Tx {
	return &Tx{c: c}
}

func (c *Controller) publish() {
	if c.notifier != nil {
		c.notifier.Publish(c.current.Clone())
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	Snapshot() *model.Snapshot
	Standings() []model.Standing
	AddPlayer(ctx context.Context, name string) *model.Snapshot
	RemovePlayer(ctx context.Context, id model.PlayerID) *model.Snapshot
	UpdatePlayerName(ctx context.Context, id model.PlayerID, name string) *model.Snapshot
	StartGame(ctx context.Context) *model.Snapshot
	SubmitRound(ctx context.Context, scores map[model.PlayerID]int) (*model.Snapshot, model.RoundReport)
	DeleteRound(ctx context.Context, id model.RoundID) *model.Snapshot
	ResetScores(ctx context.Context) *model.Snapshot
	ResetGame(ctx context.Context) *model.Snapshot
	ClearAllData(ctx context.Context) *model.Snapshot
	Update(fn func(tx *Tx) error) error
}

var _ ControllerInterface = (*Controller)(nil)
