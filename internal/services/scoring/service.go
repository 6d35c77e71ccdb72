package scoring

import (
	"sort"

	"github.com/mohamed566-11/sqrew/internal/model"
)

// Service derives player totals and rankings from the round list.
// All methods are pure: they never mutate their arguments.
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// Recompute rebuilds every roster player's TotalScore and History from scratch.
// Rounds are applied in slice order, which is chronological order. Within a
// round, entries are applied in roster order. Entries for ids not in the
// roster are dropped.
func (s *Service) Recompute(players []model.Player, rounds []model.Round) []model.Player {
	result := make([]model.Player, len(players))
	for i, p := range players {
		result[i] = p.Reset()
	}

	for _, round := range rounds {
		for i := range result {
			score, ok := round.Scores[result[i].ID]
			if !ok {
				continue // No entry: history skips this round
			}
			result[i].History = append(result[i].History, score)
			result[i].TotalScore += score
		}
	}

	return result
}

// Renumber returns copies of the rounds numbered 1..N by position
func (s *Service) Renumber(rounds []model.Round) []model.Round {
	result := make([]model.Round, len(rounds))
	for i, r := range rounds {
		result[i] = r.Clone()
		result[i].Number = i + 1
	}
	return result
}

// Report compares a score map against the roster
func (s *Service) Report(roundID model.RoundID, players []model.Player, scores map[model.PlayerID]int) model.RoundReport {
	report := model.RoundReport{
		RoundID: roundID,
		Missing: []model.PlayerID{},
		Unknown: []model.PlayerID{},
	}

	known := make(map[model.PlayerID]bool, len(players))
	for _, p := range players {
		known[p.ID] = true
		if _, ok := scores[p.ID]; !ok {
			report.Missing = append(report.Missing, p.ID)
		}
	}

	for id := range scores {
		if !known[id] {
			report.Unknown = append(report.Unknown, id)
		}
	}
	// Map iteration order is random
	sort.Slice(report.Unknown, func(i, j int) bool {
		return report.Unknown[i] < report.Unknown[j]
	})

	return report
}

// Standings ranks players by ascending total; the lowest total leads.
// Ties keep roster order. Nobody leads before the first round.
func (s *Service) Standings(snapshot *model.Snapshot) []model.Standing {
	players := make([]model.Player, len(snapshot.Players))
	for i, p := range snapshot.Players {
		players[i] = p.Clone()
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].TotalScore < players[j].TotalScore
	})

	standings := make([]model.Standing, len(players))
	for i, p := range players {
		standings[i] = model.Standing{
			Rank:     i + 1,
			Player:   p,
			IsLeader: i == 0 && len(snapshot.Rounds) > 0,
		}
	}
	return standings
}

// Interface for dependency injection
type ServiceInterface interface {
	Recompute(players []model.Player, rounds []model.Round) []model.Player
	Renumber(rounds []model.Round) []model.Round
	Report(roundID model.RoundID, players []model.Player, scores map[model.PlayerID]int) model.RoundReport
	Standings(snapshot *model.Snapshot) []model.Standing
}

var _ ServiceInterface = (*Service)(nil)
