package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mohamed566-11/sqrew/internal/api/apierr"
	"github.com/mohamed566-11/sqrew/internal/api/handler"
	"github.com/mohamed566-11/sqrew/internal/api/response"
	"github.com/mohamed566-11/sqrew/internal/api/sse"
	"github.com/mohamed566-11/sqrew/internal/middleware"
	"github.com/mohamed566-11/sqrew/internal/services/game"
	"github.com/mohamed566-11/sqrew/internal/services/scoring"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	ScoringService *scoring.Service
	Hub            *sse.Hub
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Hub)
	playerHandler := handler.NewPlayerHandler(cfg.GameController)
	roundHandler := handler.NewRoundHandler(cfg.GameController, cfg.ScoringService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID())
	api.Use(middleware.Recovery(cfg.Logger, jsonPanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	// Unmatched routes answer in the same error envelope as handlers
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewRouteNotFoundError())
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewMethodNotAllowedError())
	})

	// Game routes
	api.HandleFunc("/game", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/game/standings", gameHandler.Standings).Methods(http.MethodGet)
	api.HandleFunc("/game/events", gameHandler.Events).Methods(http.MethodGet)
	api.HandleFunc("/game/start", gameHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/game/reset-scores", gameHandler.ResetScores).Methods(http.MethodPost)
	api.HandleFunc("/game/reset", gameHandler.Reset).Methods(http.MethodPost)
	api.HandleFunc("/data", gameHandler.ClearData).Methods(http.MethodDelete)

	// Roster routes
	api.HandleFunc("/players", playerHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}", playerHandler.Rename).Methods(http.MethodPatch)
	api.HandleFunc("/players/{id}", playerHandler.Remove).Methods(http.MethodDelete)

	// Round routes
	api.HandleFunc("/rounds", roundHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/rounds/{id}", roundHandler.Delete).Methods(http.MethodDelete)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

// jsonPanicHandler renders a recovered panic as INTERNAL_ERROR
func jsonPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.OK(w, response.HealthResponse{Status: "ok"})
}
