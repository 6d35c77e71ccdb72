package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mohamed566-11/sqrew/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

// Helper to build a roster with empty score fields
func (s *ServiceSuite) roster(ids ...model.PlayerID) []model.Player {
	players := make([]model.Player, len(ids))
	for i, id := range ids {
		players[i] = model.Player{ID: id, Name: string(id), History: []int{}}
	}
	return players
}

// Helper to build rounds from score maps, numbered in order
func (s *ServiceSuite) rounds(scores ...map[model.PlayerID]int) []model.Round {
	rounds := make([]model.Round, len(scores))
	for i, sc := range scores {
		rounds[i] = model.Round{
			ID:        model.RoundID("round-" + string(rune('a'+i))),
			Number:    i + 1,
			Scores:    sc,
			Timestamp: time.Date(2024, 1, 1, 12, i, 0, 0, time.UTC),
		}
	}
	return rounds
}

// Recompute tests

func (s *ServiceSuite) TestRecomputeNoRounds() {
	players := s.roster("p1", "p2")
	players[0].TotalScore = 40
	players[0].History = []int{40}

	result := s.service.Recompute(players, nil)

	s.Require().Len(result, 2)
	for _, p := range result {
		s.Equal(0, p.TotalScore)
		s.Empty(p.History)
		s.NotNil(p.History)
	}
}

func (s *ServiceSuite) TestRecomputeSumsInRoundOrder() {
	players := s.roster("p1", "p2")
	rounds := s.rounds(
		map[model.PlayerID]int{"p1": 5, "p2": 3},
		map[model.PlayerID]int{"p1": 2, "p2": 10},
	)

	result := s.service.Recompute(players, rounds)

	s.Equal(7, result[0].TotalScore)
	s.Equal([]int{5, 2}, result[0].History)
	s.Equal(13, result[1].TotalScore)
	s.Equal([]int{3, 10}, result[1].History)
}

func (s *ServiceSuite) TestRecomputeDropsUnknownIDs() {
	players := s.roster("p1")
	rounds := s.rounds(map[model.PlayerID]int{"p1": 4, "ghost": 99})

	result := s.service.Recompute(players, rounds)

	s.Require().Len(result, 1)
	s.Equal(4, result[0].TotalScore)
	s.Equal([]int{4}, result[0].History)
}

func (s *ServiceSuite) TestRecomputeSkipsMissingEntries() {
	players := s.roster("p1", "p2")
	rounds := s.rounds(
		map[model.PlayerID]int{"p1": 1, "p2": 2},
		map[model.PlayerID]int{"p1": 3},
		map[model.PlayerID]int{"p1": 5, "p2": 7},
	)

	result := s.service.Recompute(players, rounds)

	s.Equal([]int{1, 3, 5}, result[0].History)
	// Shorter history: round 2 had no entry for p2
	s.Equal([]int{2, 7}, result[1].History)
	s.Equal(9, result[1].TotalScore)
}

func (s *ServiceSuite) TestRecomputeNegativeScores() {
	players := s.roster("p1")
	rounds := s.rounds(
		map[model.PlayerID]int{"p1": 10},
		map[model.PlayerID]int{"p1": -15},
	)

	result := s.service.Recompute(players, rounds)

	s.Equal(-5, result[0].TotalScore)
}

func (s *ServiceSuite) TestRecomputeIsIdempotent() {
	players := s.roster("p1", "p2", "p3")
	rounds := s.rounds(
		map[model.PlayerID]int{"p1": 5, "p2": 3, "p3": 0},
		map[model.PlayerID]int{"p1": 2, "p3": 8},
	)

	first := s.service.Recompute(players, rounds)
	second := s.service.Recompute(first, rounds)

	s.Equal(first, second)
}

func (s *ServiceSuite) TestRecomputeDoesNotMutateInputs() {
	players := s.roster("p1")
	rounds := s.rounds(map[model.PlayerID]int{"p1": 5})

	_ = s.service.Recompute(players, rounds)

	s.Equal(0, players[0].TotalScore)
	s.Empty(players[0].History)
}

func (s *ServiceSuite) TestRecomputeTotalMatchesHistory() {
	players := s.roster("p1", "p2", "p3")
	rounds := s.rounds(
		map[model.PlayerID]int{"p1": 5, "p2": 3, "p3": 1},
		map[model.PlayerID]int{"p1": -2, "p2": 10},
		map[model.PlayerID]int{"p2": 4, "p3": 6, "ghost": 1},
	)

	for _, p := range s.service.Recompute(players, rounds) {
		sum := 0
		for _, v := range p.History {
			sum += v
		}
		s.Equal(sum, p.TotalScore, "player %s", p.ID)
	}
}

// Renumber tests

func (s *ServiceSuite) TestRenumberIsContiguous() {
	rounds := s.rounds(
		map[model.PlayerID]int{"p1": 1},
		map[model.PlayerID]int{"p1": 2},
		map[model.PlayerID]int{"p1": 3},
	)
	rounds = append(rounds[:1], rounds[2:]...)

	result := s.service.Renumber(rounds)

	s.Require().Len(result, 2)
	s.Equal(1, result[0].Number)
	s.Equal(2, result[1].Number)
	s.Equal(model.RoundID("round-c"), result[1].ID)
}

func (s *ServiceSuite) TestRenumberCopiesScores() {
	rounds := s.rounds(map[model.PlayerID]int{"p1": 1})

	result := s.service.Renumber(rounds)
	result[0].Scores["p1"] = 100

	s.Equal(1, rounds[0].Scores["p1"])
}

// Report tests

func (s *ServiceSuite) TestReportComplete() {
	report := s.service.Report("r1", s.roster("p1", "p2"), map[model.PlayerID]int{"p1": 1, "p2": 2})

	s.True(report.Complete())
	s.Equal(model.RoundID("r1"), report.RoundID)
}

func (s *ServiceSuite) TestReportMissingAndUnknown() {
	report := s.service.Report("r1", s.roster("p1", "p2", "p3"), map[model.PlayerID]int{
		"p2": 1, "zed": 2, "abe": 3,
	})

	s.False(report.Complete())
	s.Equal([]model.PlayerID{"p1", "p3"}, report.Missing)
	s.Equal([]model.PlayerID{"abe", "zed"}, report.Unknown)
}

// Standings tests

func (s *ServiceSuite) TestStandingsLowestTotalLeads() {
	snapshot := &model.Snapshot{
		Status: model.GameStatusPlaying,
		Players: []model.Player{
			{ID: "p1", TotalScore: 20},
			{ID: "p2", TotalScore: 5},
			{ID: "p3", TotalScore: 12},
		},
		Rounds: s.rounds(map[model.PlayerID]int{"p1": 20, "p2": 5, "p3": 12}),
	}

	standings := s.service.Standings(snapshot)

	s.Require().Len(standings, 3)
	s.Equal(model.PlayerID("p2"), standings[0].Player.ID)
	s.Equal(1, standings[0].Rank)
	s.True(standings[0].IsLeader)
	s.Equal(model.PlayerID("p3"), standings[1].Player.ID)
	s.False(standings[1].IsLeader)
	s.Equal(model.PlayerID("p1"), standings[2].Player.ID)
	s.Equal(3, standings[2].Rank)
}

func (s *ServiceSuite) TestStandingsTiesKeepRosterOrder() {
	snapshot := &model.Snapshot{
		Players: []model.Player{
			{ID: "p1", TotalScore: 3},
			{ID: "p2", TotalScore: 3},
			{ID: "p3", TotalScore: 1},
		},
	}

	standings := s.service.Standings(snapshot)

	s.Equal(model.PlayerID("p3"), standings[0].Player.ID)
	s.Equal(model.PlayerID("p1"), standings[1].Player.ID)
	s.Equal(model.PlayerID("p2"), standings[2].Player.ID)
}

func (s *ServiceSuite) TestStandingsNoLeaderBeforeFirstRound() {
	snapshot := &model.Snapshot{
		Status:  model.GameStatusPlaying,
		Players: s.roster("p1", "p2"),
	}

	standings := s.service.Standings(snapshot)

	s.Require().Len(standings, 2)
	s.False(standings[0].IsLeader)
}
