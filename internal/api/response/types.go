package response

import (
	"github.com/mohamed566-11/sqrew/internal/model"
)

// Player represents a roster player in API responses
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TotalScore int    `json:"totalScore"`
	History    []int  `json:"history"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player) Player {
	history := make([]int, len(p.History))
	copy(history, p.History)
	return Player{
		ID:         string(p.ID),
		Name:       p.Name,
		TotalScore: p.TotalScore,
		History:    history,
	}
}

// Round represents a scored round. Timestamp is Unix milliseconds.
type Round struct {
	ID        string         `json:"id"`
	Number    int            `json:"number"`
	Scores    map[string]int `json:"scores"`
	Timestamp int64          `json:"timestamp"`
}

// RoundFromModel converts model.Round
func RoundFromModel(r model.Round) Round {
	scores := make(map[string]int, len(r.Scores))
	for pid, score := range r.Scores {
		scores[string(pid)] = score
	}
	return Round{
		ID:        string(r.ID),
		Number:    r.Number,
		Scores:    scores,
		Timestamp: r.Timestamp.UnixMilli(),
	}
}

// Snapshot represents the full game state
type Snapshot struct {
	Status  string   `json:"status"`
	Players []Player `json:"players"`
	Rounds  []Round  `json:"rounds"`
}

// SnapshotFromModel converts model.Snapshot
func SnapshotFromModel(s *model.Snapshot) Snapshot {
	players := make([]Player, len(s.Players))
	for i, p := range s.Players {
		players[i] = PlayerFromModel(p)
	}
	rounds := make([]Round, len(s.Rounds))
	for i, r := range s.Rounds {
		rounds[i] = RoundFromModel(r)
	}
	return Snapshot{
		Status:  string(s.Status),
		Players: players,
		Rounds:  rounds,
	}
}

// RoundReport lists the score entries that did not line up with the roster
type RoundReport struct {
	RoundID string   `json:"roundId"`
	Missing []string `json:"missing"`
	Unknown []string `json:"unknown"`
}

// RoundReportFromModel converts model.RoundReport
func RoundReportFromModel(r model.RoundReport) RoundReport {
	return RoundReport{
		RoundID: string(r.RoundID),
		Missing: playerIDs(r.Missing),
		Unknown: playerIDs(r.Unknown),
	}
}

func playerIDs(ids []model.PlayerID) []string {
	result := make([]string, len(ids))
	for i, id := range ids {
		result[i] = string(id)
	}
	return result
}

// SubmitRoundResponse is the response for POST /rounds
type SubmitRoundResponse struct {
	Snapshot Snapshot    `json:"snapshot"`
	Report   RoundReport `json:"report"`
}

// Standing is one row of the ranked scoreboard
type Standing struct {
	Rank     int    `json:"rank"`
	Player   Player `json:"player"`
	IsLeader bool   `json:"isLeader"`
}

// StandingsFromModel converts the ranked scoreboard
func StandingsFromModel(standings []model.Standing) []Standing {
	result := make([]Standing, len(standings))
	for i, s := range standings {
		result[i] = Standing{
			Rank:     s.Rank,
			Player:   PlayerFromModel(s.Player),
			IsLeader: s.IsLeader,
		}
	}
	return result
}

// StandingsResponse wraps the scoreboard with the game status
type StandingsResponse struct {
	Status    string     `json:"status"`
	Standings []Standing `json:"standings"`
}

// HealthResponse is the response for GET /health
type HealthResponse struct {
	Status string `json:"status"`
}
