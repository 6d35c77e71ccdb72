package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mohamed566-11/sqrew/internal/api/request"
	"github.com/mohamed566-11/sqrew/internal/api/response"
	"github.com/mohamed566-11/sqrew/internal/model"
	"github.com/mohamed566-11/sqrew/internal/services/game"
)

// PlayerHandler handles roster endpoints
type PlayerHandler struct {
	gameController *game.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(gameController *game.Controller) *PlayerHandler {
	return &PlayerHandler{
		gameController: gameController,
	}
}

// Add handles POST /api/v1/players
func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := decodeBody(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		WriteError(w, model.ErrEmptyName)
		return
	}

	var snapshot *model.Snapshot
	err := h.gameController.Update(func(tx *game.Tx) error {
		current := tx.Snapshot()
		if current.Status != model.GameStatusSetup {
			return model.ErrGameInProgress
		}
		if len(current.Players) >= model.MaxPlayers {
			return model.ErrRosterFull
		}
		snapshot = tx.AddPlayer(r.Context(), name)
		return nil
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Created(w, response.SnapshotFromModel(snapshot))
}

// Rename handles PATCH /api/v1/players/{id}
func (h *PlayerHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.RenamePlayerRequest
	if err := decodeBody(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		WriteError(w, model.ErrEmptyName)
		return
	}
	var snapshot *model.Snapshot
	err := h.gameController.Update(func(tx *game.Tx) error {
		if tx.Snapshot().GetPlayer(id) == nil {
			return model.ErrPlayerNotFound
		}
		snapshot = tx.UpdatePlayerName(r.Context(), id, req.Name)
		return nil
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.SnapshotFromModel(snapshot))
}

// Remove handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])
	var snapshot *model.Snapshot
	err := h.gameController.Update(func(tx *game.Tx) error {
		if tx.Snapshot().GetPlayer(id) == nil {
			return model.ErrPlayerNotFound
		}
		snapshot = tx.RemovePlayer(r.Context(), id)
		return nil
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.SnapshotFromModel(snapshot))
}
