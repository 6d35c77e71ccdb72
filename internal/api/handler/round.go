package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mohamed566-11/sqrew/internal/api/request"
	"github.com/mohamed566-11/sqrew/internal/api/response"
	"github.com/mohamed566-11/sqrew/internal/model"
	"github.com/mohamed566-11/sqrew/internal/services/game"
	"github.com/mohamed566-11/sqrew/internal/services/scoring"
)

// RoundHandler handles round scoring endpoints
type RoundHandler struct {
	gameController *game.Controller
	scoring        *scoring.Service
}

// NewRoundHandler creates a new round handler
func NewRoundHandler(gameController *game.Controller, scoringService *scoring.Service) *RoundHandler {
	return &RoundHandler{
		gameController: gameController,
		scoring:        scoringService,
	}
}

// Submit handles POST /api/v1/rounds.
// Every roster player must be scored and no other ids may appear.
func (h *RoundHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitRoundRequest
	if err := decodeBody(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	scores := make(map[model.PlayerID]int, len(req.Scores))
	for id, score := range req.Scores {
		scores[model.PlayerID(id)] = score
	}

	var snapshot *model.Snapshot
	var report model.RoundReport
	err := h.gameController.Update(func(tx *game.Tx) error {
		current := tx.Snapshot()
		if !current.IsPlaying() {
			return model.ErrNoGameInProgress
		}
		check := h.scoring.Report("", current.Players, scores)
		if len(check.Missing) > 0 {
			return fmt.Errorf("%w: %s", model.ErrIncompleteScores, joinIDs(check.Missing))
		}
		if len(check.Unknown) > 0 {
			return fmt.Errorf("%w: %s", model.ErrUnknownPlayer, joinIDs(check.Unknown))
		}
		snapshot, report = tx.SubmitRound(r.Context(), scores)
		return nil
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Created(w, response.SubmitRoundResponse{
		Snapshot: response.SnapshotFromModel(snapshot),
		Report:   response.RoundReportFromModel(report),
	})
}

// Delete handles DELETE /api/v1/rounds/{id}
func (h *RoundHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.RoundID(mux.Vars(r)["id"])
	var snapshot *model.Snapshot
	err := h.gameController.Update(func(tx *game.Tx) error {
		if tx.Snapshot().RoundIndex(id) < 0 {
			return model.ErrRoundNotFound
		}
		snapshot = tx.DeleteRound(r.Context(), id)
		return nil
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.SnapshotFromModel(snapshot))
}

func joinIDs(ids []model.PlayerID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}
