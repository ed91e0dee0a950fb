package server

import (
	"fmt"

	"jobboard-portal/config"
	"jobboard-portal/internal/database"
	"jobboard-portal/internal/store"

	"go.uber.org/zap"
)

// LoadSnapshot builds the store the server will serve from the configured
// data source. For the database source the connection stays open in
// database.DB so readiness checks can ping it.
func LoadSnapshot(cfg *config.Config, logger *zap.Logger) (*store.Store, error) {
	switch cfg.Data.Source {
	case config.DataSourceMock:
		return store.Mock(), nil

	case config.DataSourceFile:
		snapshot, err := store.LoadFile(cfg.Data.File)
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded data file",
			zap.String("file", cfg.Data.File),
			zap.Int("companies", snapshot.CompanyCount()),
			zap.Int("jobs", snapshot.JobCount()),
		)
		return snapshot, nil

	case config.DataSourceDatabase:
		if err := database.Connect(cfg, logger); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if cfg.Dev.SeedData {
			if err := database.SeedDatabase(database.DB, store.Mock()); err != nil {
				return nil, fmt.Errorf("failed to seed database: %w", err)
			}
		}
		return database.LoadSnapshot(database.DB)

	default:
		return nil, fmt.Errorf("unsupported data source: %s", cfg.Data.Source)
	}
}
