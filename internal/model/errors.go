package model

import "errors"

// Common errors used across the application
var (
	// Storage errors
	ErrSlotNotFound = errors.New("storage slot not found")

	// Roster errors, raised by the presentation layer only
	ErrPlayerNotFound      = errors.New("player not found")
	ErrRosterFull          = errors.New("roster is full")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrEmptyName           = errors.New("player name is empty")

	// Round errors, raised by the presentation layer only
	ErrRoundNotFound        = errors.New("round not found")
	ErrNoGameInProgress     = errors.New("no game in progress")
	ErrGameInProgress       = errors.New("game is in progress")
	ErrIncompleteScores     = errors.New("round is missing player scores")
	ErrUnknownPlayer        = errors.New("round scores reference an unknown player")
	ErrConfirmationRequired = errors.New("destructive action requires confirmation")
)
