package handler

import (
	"net/http"

	"github.com/mohamed566-11/sqrew/internal/api/request"
	"github.com/mohamed566-11/sqrew/internal/api/response"
	"github.com/mohamed566-11/sqrew/internal/api/sse"
	"github.com/mohamed566-11/sqrew/internal/model"
	"github.com/mohamed566-11/sqrew/internal/services/game"
)

// GameHandler handles game lifecycle endpoints
type GameHandler struct {
	gameController *game.Controller
	hub            *sse.Hub
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller, hub *sse.Hub) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		hub:            hub,
	}
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.OK(w, response.SnapshotFromModel(h.gameController.Snapshot()))
}

// Standings handles GET /api/v1/game/standings
func (h *GameHandler) Standings(w http.ResponseWriter, r *http.Request) {
	var status model.GameStatus
	var standings []model.Standing
	_ = h.gameController.Update(func(tx *game.Tx) error {
		status = tx.Snapshot().Status
		standings = tx.Standings()
		return nil
	})
	response.OK(w, response.StandingsResponse{
		Status:    string(status),
		Standings: response.StandingsFromModel(standings),
	})
}

// Start handles POST /api/v1/game/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	var snapshot *model.Snapshot
	err := h.gameController.Update(func(tx *game.Tx) error {
		current := tx.Snapshot()
		if current.Status != model.GameStatusSetup {
			return model.ErrGameInProgress
		}
		if len(current.Players) < model.MinPlayers {
			return model.ErrInsufficientPlayers
		}
		snapshot = tx.StartGame(r.Context())
		return nil
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.SnapshotFromModel(snapshot))
}

// ResetScores handles POST /api/v1/game/reset-scores
func (h *GameHandler) ResetScores(w http.ResponseWriter, r *http.Request) {
	if err := requireConfirmBody(w, r); err != nil {
		WriteError(w, err)
		return
	}
	var snapshot *model.Snapshot
	err := h.gameController.Update(func(tx *game.Tx) error {
		if !tx.Snapshot().IsPlaying() {
			return model.ErrNoGameInProgress
		}
		snapshot = tx.ResetScores(r.Context())
		return nil
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.SnapshotFromModel(snapshot))
}

// Reset handles POST /api/v1/game/reset
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := requireConfirmBody(w, r); err != nil {
		WriteError(w, err)
		return
	}

	snapshot := h.gameController.ResetGame(r.Context())
	response.OK(w, response.SnapshotFromModel(snapshot))
}

// ClearData handles DELETE /api/v1/data?confirm=true
func (h *GameHandler) ClearData(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		WriteError(w, model.ErrConfirmationRequired)
		return
	}

	snapshot := h.gameController.ClearAllData(r.Context())
	response.OK(w, response.SnapshotFromModel(snapshot))
}

// Events handles GET /api/v1/game/events
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	sse.ServeSSE(w, r, h.hub, func() ([]byte, error) {
		return sse.SnapshotMessage(h.gameController.Snapshot())
	})
}

func requireConfirmBody(w http.ResponseWriter, r *http.Request) error {
	var req request.ConfirmRequest
	if err := decodeBody(w, r, &req); err != nil {
		return err
	}
	if !req.Confirm {
		return model.ErrConfirmationRequired
	}
	return nil
}
