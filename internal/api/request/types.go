package request

// AddPlayerRequest is the request body for adding a player
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// RenamePlayerRequest is the request body for renaming a player
type RenamePlayerRequest struct {
	Name string `json:"name"`
}

// SubmitRoundRequest is the request body for submitting a round.
// Scores are keyed by player id.
type SubmitRoundRequest struct {
	Scores map[string]int `json:"scores"`
}

// ConfirmRequest is the request body for destructive game actions
type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}
