package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mohamed566-11/sqrew/internal/dependencies/random"
	"github.com/mohamed566-11/sqrew/internal/model"
)

// Tx applies actions while the controller lock is held.
// Obtain one through Controller.Update.
type Tx struct {
	c *Controller
}

// Snapshot returns a copy of the current snapshot
func (t *Tx) Snapshot() *model.Snapshot {
	return t.c.current.Clone()
}

// Standings returns the ranked scoreboard for the current snapshot
func (t *Tx) Standings() []model.Standing {
	return t.c.scoring.Standings(t.c.current)
}

func (t *Tx) AddPlayer(ctx context.Context, name string) *model.Snapshot {
	name = strings.TrimSpace(name)
	return t.apply(ctx, "player added", func(next *model.Snapshot) []slog.Attr {
		if name == "" {
			return nil
		}
		id := model.PlayerID(random.NewID(t.c.random, func(id string) bool {
			return next.PlayerIndex(model.PlayerID(id)) >= 0
		}))
		next.Players = append(next.Players, model.Player{
			ID:         id,
			Name:       name,
			TotalScore: 0,
			History:    []int{},
		})
		return []slog.Attr{slog.String("player_id", string(id))}
	})
}

func (t *Tx) RemovePlayer(ctx context.Context, id model.PlayerID) *model.Snapshot {
	return t.apply(ctx, "player removed", func(next *model.Snapshot) []slog.Attr {
		idx := next.PlayerIndex(id)
		if idx < 0 {
			return nil
		}
		next.Players = append(next.Players[:idx], next.Players[idx+1:]...)
		return []slog.Attr{slog.String("player_id", string(id))}
	})
}

func (t *Tx) UpdatePlayerName(ctx context.Context, id model.PlayerID, name string) *model.Snapshot {
	name = strings.TrimSpace(name)
	return t.apply(ctx, "player renamed", func(next *model.Snapshot) []slog.Attr {
		player := next.GetPlayer(id)
		if player == nil || name == "" || player.Name == name {
			return nil
		}
		player.Name = name
		return []slog.Attr{slog.String("player_id", string(id))}
	})
}

func (t *Tx) StartGame(ctx context.Context) *model.Snapshot {
	return t.apply(ctx, "game started", func(next *model.Snapshot) []slog.Attr {
		if next.Status != model.GameStatusSetup {
			return nil
		}
		next.Status = model.GameStatusPlaying
		next.Rounds = []model.Round{}
		next.Players = t.c.scoring.Recompute(next.Players, next.Rounds)
		return []slog.Attr{slog.Int("player_count", len(next.Players))}
	})
}

func (t *Tx) SubmitRound(ctx context.Context, scores map[model.PlayerID]int) (*model.Snapshot, model.RoundReport) {
	var report model.RoundReport
	snapshot := t.apply(ctx, "round submitted", func(next *model.Snapshot) []slog.Attr {
		if !next.IsPlaying() {
			return nil
		}
		id := model.RoundID(random.NewID(t.c.random, func(id string) bool {
			return next.RoundIndex(model.RoundID(id)) >= 0
		}))
		round := model.Round{
			ID:        id,
			Number:    len(next.Rounds) + 1,
			Scores:    scores,
			Timestamp: t.c.clock.Now(),
		}.Clone()
		next.Rounds = append(next.Rounds, round)
		next.Players = t.c.scoring.Recompute(next.Players, next.Rounds)

		report = t.c.scoring.Report(id, next.Players, round.Scores)
		attrs := []slog.Attr{
			slog.String("round_id", string(id)),
			slog.Int("round_number", round.Number),
		}
		if !report.Complete() {
			attrs = append(attrs,
				slog.Int("missing_count", len(report.Missing)),
				slog.Int("unknown_count", len(report.Unknown)),
			)
		}
		return attrs
	})
	return snapshot, report
}

func (t *Tx) DeleteRound(ctx context.Context, id model.RoundID) *model.Snapshot {
	return t.apply(ctx, "round deleted", func(next *model.Snapshot) []slog.Attr {
		idx := next.RoundIndex(id)
		if idx < 0 {
			return nil
		}
		remaining := append(next.Rounds[:idx], next.Rounds[idx+1:]...)
		next.Rounds = t.c.scoring.Renumber(remaining)
		next.Players = t.c.scoring.Recompute(next.Players, next.Rounds)
		return []slog.Attr{
			slog.String("round_id", string(id)),
			slog.Int("round_count", len(next.Rounds)),
		}
	})
}

func (t *Tx) ResetScores(ctx context.Context) *model.Snapshot {
	return t.apply(ctx, "scores reset", func(next *model.Snapshot) []slog.Attr {
		if !next.IsPlaying() {
			return nil
		}
		next.Rounds = []model.Round{}
		next.Players = t.c.scoring.Recompute(next.Players, next.Rounds)
		return []slog.Attr{slog.Int("player_count", len(next.Players))}
	})
}

func (t *Tx) ResetGame(ctx context.Context) *model.Snapshot {
	return t.reset(ctx, "game reset", false)
}

func (t *Tx) ClearAllData(ctx context.Context) *model.Snapshot {
	return t.reset(ctx, "all data cleared", true)
}

// persistCtx keeps request values for logging but drops cancellation: an
// action already swapped in must reach storage even if the client left.
func persistCtx(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

func (t *Tx) reset(ctx context.Context, action string, erase bool) *model.Snapshot {
	c := t.c
	c.current = model.NewSnapshot()
	if erase {
		c.persister.Clear(persistCtx(ctx))
	} else {
		c.persister.Save(persistCtx(ctx), c.current)
	}
	c.publish()

	c.logger.InfoContext(ctx, action)
	return c.current.Clone()
}

// apply runs mutate on a copy of the current snapshot. A nil result from
// mutate means the action did not apply and nothing is published.
func (t *Tx) apply(ctx context.Context, action string, mutate func(next *model.Snapshot) []slog.Attr) *model.Snapshot {
	c := t.c
	next := c.current.Clone()
	attrs := mutate(next)
	if attrs == nil {
		c.logger.DebugContext(ctx, "action ignored", slog.String("action", action))
		return c.current.Clone()
	}

	c.current = next
	c.persister.Save(persistCtx(ctx), c.current)
	c.publish()

	attrs = append(attrs, slog.String("status", string(c.current.Status)))
	c.logger.LogAttrs(ctx, slog.LevelInfo, action, attrs...)
	return c.current.Clone()
}
