package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mohamed566-11/sqrew/internal/api/sse"
	"github.com/mohamed566-11/sqrew/internal/config"
	"github.com/mohamed566-11/sqrew/internal/dependencies/clock"
	"github.com/mohamed566-11/sqrew/internal/dependencies/random"
	"github.com/mohamed566-11/sqrew/internal/services/game"
	"github.com/mohamed566-11/sqrew/internal/services/persistence"
	"github.com/mohamed566-11/sqrew/internal/services/scoring"
	"github.com/mohamed566-11/sqrew/internal/storage"
	filestorage "github.com/mohamed566-11/sqrew/internal/storage/file"
	"github.com/mohamed566-11/sqrew/internal/storage/memory"
	redisstorage "github.com/mohamed566-11/sqrew/internal/storage/redis"
	"github.com/mohamed566-11/sqrew/internal/storage/sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Slot storage.Slot

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	ScoringService *scoring.Service
	Persistence    *persistence.Adapter
	GameController *game.Controller
	Hub            *sse.Hub

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the slot backend: memory, file, redis or sqlite
	// If empty, defaults to memory
	StorageType string
	// FilePath is the directory for the file backend
	FilePath string
	// SQLitePath is the database file for the sqlite backend
	SQLitePath string
	// RedisConfig holds Redis connection settings (required if StorageType is redis)
	RedisConfig *redisstorage.Config
	// StateKey overrides the persisted slot key
	StateKey string
}

// ConfigFromEnv maps server configuration onto a factory Config
func ConfigFromEnv(cfg config.Config, logger *slog.Logger) Config {
	fc := Config{
		Logger:      logger,
		StorageType: cfg.Storage,
		FilePath:    cfg.FilePath,
		SQLitePath:  cfg.SQLitePath,
		StateKey:    cfg.StateKey,
	}
	if cfg.Storage == config.StorageRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// New creates a new application with all dependencies wired.
// The saved snapshot, if any, is loaded before New returns.
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()
	slot, closer, err := openSlot(ctx, cfg, clk)
	if err != nil {
		return nil, err
	}

	app := newWithDependencies(ctx, slot, clk, random.New(), cfg.StateKey, logger)
	if closer != nil {
		app.closers = append(app.closers, closer)
	}
	logger.Info("application ready", slog.String("storage", storageName(cfg.StorageType)))
	return app, nil
}

func storageName(storageType string) string {
	if storageType == "" {
		return config.StorageMemory
	}
	return storageType
}

// openSlot builds the configured slot backend and the closer that releases it
func openSlot(ctx context.Context, cfg Config, clk clock.Clock) (storage.Slot, io.Closer, error) {
	switch storageName(cfg.StorageType) {
	case config.StorageMemory:
		return memory.New(), nil, nil
	case config.StorageFile:
		slot, err := filestorage.New(cfg.FilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open file storage: %w", err)
		}
		return slot, nil, nil
	case config.StorageRedis:
		if cfg.RedisConfig == nil {
			return nil, nil, errors.New("RedisConfig required when StorageType is redis")
		}
		slot, err := redisstorage.New(ctx, *cfg.RedisConfig)
		if err != nil {
			return nil, nil, err
		}
		return slot, slot, nil
	case config.StorageSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "" {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
		slot, err := sqlite.Open(cfg.SQLitePath, clk)
		if err != nil {
			return nil, nil, err
		}
		return slot, slot, nil
	default:
		return nil, nil, fmt.Errorf("invalid StorageType %q: must be memory, file, redis or sqlite", cfg.StorageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(ctx context.Context, slot storage.Slot, clk clock.Clock, rnd random.Random, stateKey string, logger *slog.Logger) *App {
	scoringService := scoring.New()
	adapter := persistence.New(slot, stateKey, scoringService, logger)
	hub := sse.NewHub(logger)
	go hub.Run()

	initial := adapter.Load(ctx)
	gameController := game.NewController(initial, adapter, scoringService, clk, rnd, hub, logger)

	return &App{
		Slot:           slot,
		Clock:          clk,
		Random:         rnd,
		ScoringService: scoringService,
		Persistence:    adapter,
		GameController: gameController,
		Hub:            hub,
	}
}

// Close stops the event hub and releases storage connections
func (a *App) Close() error {
	a.Hub.Close()
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
