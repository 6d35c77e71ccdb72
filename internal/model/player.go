package model

// PlayerID uniquely identifies a player within a game
type PlayerID string

// Player is a roster entry with its derived score fields
type Player struct {
	ID         PlayerID
	Name       string
	TotalScore int   // Always the sum of History
	History    []int // One entry per round that scored this player, in round order
}

// Clone returns a deep copy of the player
func (p Player) Clone() Player {
	history := make([]int, len(p.History))
	copy(history, p.History)
	p.History = history
	return p
}

// Reset clears the derived score fields
func (p Player) Reset() Player {
	p.TotalScore = 0
	p.History = []int{}
	return p
}

// Policy limits for the roster. The engine does not enforce these;
// callers check them before adding players or starting a game.
const (
	MinPlayers = 2
	MaxPlayers = 12
)
