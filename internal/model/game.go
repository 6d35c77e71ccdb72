package model

import (
	"slices"
	"time"
)

// GameStatus represents the current phase of a game
type GameStatus string

const (
	GameStatusSetup    GameStatus = "SETUP"    // Building the roster
	GameStatusPlaying  GameStatus = "PLAYING"  // Rounds are being scored
	GameStatusFinished GameStatus = "FINISHED" // Reserved, never entered
)

// Valid reports whether s is one of the declared statuses
func (s GameStatus) Valid() bool {
	switch s {
	case GameStatusSetup, GameStatusPlaying, GameStatusFinished:
		return true
	default:
		return false
	}
}

// RoundID uniquely identifies a round within a game
type RoundID string

// Round is one scoring event
type Round struct {
	ID        RoundID
	Number    int // 1-based chronological position among retained rounds
	Scores    map[PlayerID]int
	Timestamp time.Time
}

// Clone returns a deep copy of the round
func (r Round) Clone() Round {
	scores := make(map[PlayerID]int, len(r.Scores))
	for id, score := range r.Scores {
		scores[id] = score
	}
	r.Scores = scores
	return r
}

// Snapshot is the complete state of a game at one instant.
// Published snapshots are never mutated; actions build a new one.
type Snapshot struct {
	Status  GameStatus
	Players []Player // Insertion order
	Rounds  []Round  // Chronological order
}

// NewSnapshot returns the initial snapshot: SETUP with no players or rounds
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Status:  GameStatusSetup,
		Players: []Player{},
		Rounds:  []Round{},
	}
}

// Clone returns a deep copy of the snapshot
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return NewSnapshot()
	}
	players := make([]Player, len(s.Players))
	for i, p := range s.Players {
		players[i] = p.Clone()
	}
	rounds := make([]Round, len(s.Rounds))
	for i, r := range s.Rounds {
		rounds[i] = r.Clone()
	}
	return &Snapshot{
		Status:  s.Status,
		Players: players,
		Rounds:  rounds,
	}
}

// GetPlayer returns the player with the given ID, or nil if not found
func (s *Snapshot) GetPlayer(id PlayerID) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// PlayerIndex returns the roster position of the player, or -1
func (s *Snapshot) PlayerIndex(id PlayerID) int {
	return slices.IndexFunc(s.Players, func(p Player) bool { return p.ID == id })
}

// RoundIndex returns the position of the round, or -1
func (s *Snapshot) RoundIndex(id RoundID) int {
	return slices.IndexFunc(s.Rounds, func(r Round) bool { return r.ID == id })
}

// IsPlaying returns true if rounds can be submitted
func (s *Snapshot) IsPlaying() bool {
	return s.Status == GameStatusPlaying
}

// RoundReport describes how a submitted score map lined up with the roster.
// Neither list causes the round to be rejected.
type RoundReport struct {
	RoundID RoundID
	Missing []PlayerID // Roster players without an entry; their history skips this round
	Unknown []PlayerID // Entries for ids not in the roster; ignored by recomputation
}

// Complete returns true if every roster player was scored and nothing else was
func (r RoundReport) Complete() bool {
	return len(r.Missing) == 0 && len(r.Unknown) == 0
}

// Standing is one row of the ranked scoreboard
type Standing struct {
	Rank     int
	Player   Player
	IsLeader bool
}
