package persistence

import (
	"time"

	"github.com/mohamed566-11/sqrew/internal/model"
)

// snapshotRecord is the persisted JSON shape of a snapshot
type snapshotRecord struct {
	Status  string         `json:"status"`
	Players []playerRecord `json:"players"`
	Rounds  []roundRecord  `json:"rounds"`
}

type playerRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TotalScore int    `json:"totalScore"`
	History    []int  `json:"history"`
}

type roundRecord struct {
	ID        string         `json:"id"`
	Number    int            `json:"number"`
	Scores    map[string]int `json:"scores"`
	Timestamp int64          `json:"timestamp"` // Unix milliseconds
}

func recordFromSnapshot(s *model.Snapshot) snapshotRecord {
	rec := snapshotRecord{
		Status:  string(s.Status),
		Players: make([]playerRecord, len(s.Players)),
		Rounds:  make([]roundRecord, len(s.Rounds)),
	}
	for i, p := range s.Players {
		history := p.History
		if history == nil {
			history = []int{}
		}
		rec.Players[i] = playerRecord{
			ID:         string(p.ID),
			Name:       p.Name,
			TotalScore: p.TotalScore,
			History:    history,
		}
	}
	for i, r := range s.Rounds {
		scores := make(map[string]int, len(r.Scores))
		for id, score := range r.Scores {
			scores[string(id)] = score
		}
		rec.Rounds[i] = roundRecord{
			ID:        string(r.ID),
			Number:    r.Number,
			Scores:    scores,
			Timestamp: r.Timestamp.UnixMilli(),
		}
	}
	return rec
}

func (rec snapshotRecord) toSnapshot() *model.Snapshot {
	s := &model.Snapshot{
		Status:  model.GameStatus(rec.Status),
		Players: make([]model.Player, 0, len(rec.Players)),
		Rounds:  make([]model.Round, 0, len(rec.Rounds)),
	}
	for _, p := range rec.Players {
		history := make([]int, len(p.History))
		copy(history, p.History)
		s.Players = append(s.Players, model.Player{
			ID:         model.PlayerID(p.ID),
			Name:       p.Name,
			TotalScore: p.TotalScore,
			History:    history,
		})
	}
	for _, r := range rec.Rounds {
		scores := make(map[model.PlayerID]int, len(r.Scores))
		for id, score := range r.Scores {
			scores[model.PlayerID(id)] = score
		}
		s.Rounds = append(s.Rounds, model.Round{
			ID:        model.RoundID(r.ID),
			Number:    r.Number,
			Scores:    scores,
			Timestamp: time.UnixMilli(r.Timestamp).UTC(),
		})
	}
	return s
}
