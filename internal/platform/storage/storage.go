package storage

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/platform/config"
	"github.com/SscSPs/bookkeeping_core/internal/repositories/database/pgsql"
	"github.com/SscSPs/bookkeeping_core/internal/repositories/memory"
	"github.com/SscSPs/bookkeeping_core/pkg/database"
)

// Storage is an opened storage backend.
type Storage struct {
	Repos *portsrepo.RepositoryProvider
	// Memory is set when the in-process driver is selected so callers can seed collaborator data.
	Memory *memory.Store
	close  func()
}

// Close releases the backend's resources.
func (s *Storage) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}

// Open selects the driver named in cfg. For postgres it runs pending migrations
// first when cfg.RunMigrations is set.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage; data is lost on exit")
		store := memory.NewStore()
		return &Storage{Repos: store.Provider(), Memory: store}, nil

	case config.StoragePostgres:
		if cfg.RunMigrations {
			if _, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
				return nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection pool established.")
		return &Storage{
			Repos: pgsql.NewRepositoryProvider(pool),
			close: func() { database.ClosePgxPool(pool) },
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
