package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"jobboard-portal/config"
	"jobboard-portal/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect establishes a database connection
func Connect(cfg *config.Config, zapLogger *zap.Logger) error {
	var err error
	var db *gorm.DB

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  getLogLevel(cfg.Log.Level),
			IgnoreRecordNotFoundError: true,
			Colorful:                  cfg.IsDevelopment(),
		},
	)

	gormConfig := &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	switch cfg.Database.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.GetDSN()), gormConfig)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		zapLogger.Info("Connected to PostgreSQL database")

	case "sqlite":
		if err := ensureDir(filepath.Dir(cfg.Database.SQLitePath)); err != nil {
			return fmt.Errorf("failed to create SQLite directory: %w", err)
		}

		db, err = gorm.Open(sqlite.Open(cfg.Database.SQLitePath), gormConfig)
		if err != nil {
			return fmt.Errorf("failed to connect to SQLite: %w", err)
		}
		zapLogger.Info("Connected to SQLite database", zap.String("path", cfg.Database.SQLitePath))

		if err := db.Exec("PRAGMA foreign_keys = ON;").Error; err != nil {
			zapLogger.Warn("Failed to enable SQLite foreign keys", zap.Error(err))
		}

	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	if cfg.Database.Driver == "postgres" {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get database instance: %w", err)
		}

		// The snapshot is read once at startup, a small pool is plenty
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	DB = db

	if cfg.Dev.AutoMigrate {
		if err := AutoMigrate(); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		zapLogger.Info("Database auto-migration completed")
	}

	return nil
}

// AutoMigrate creates or updates the companies and jobs tables
func AutoMigrate() error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	// companies first, jobs reference them
	tables := []interface{}{
		&models.Company{},
		&models.Job{},
	}

	for _, table := range tables {
		if err := DB.AutoMigrate(table); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", table, err)
		}
	}

	if err := createCustomIndexes(); err != nil {
		return fmt.Errorf("failed to create custom indexes: %w", err)
	}

	return nil
}

func createCustomIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_jobs_company_position ON jobs(company_id, position);",
		"CREATE INDEX IF NOT EXISTS idx_jobs_type_salary_min ON jobs(type, salary_min);",
	}

	for _, indexSQL := range indexes {
		if err := DB.Exec(indexSQL).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, error: %v", indexSQL, err)
		}
	}

	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// IsHealthy checks if the database connection is healthy
func IsHealthy() error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

// GetStats returns database connection statistics
func GetStats() map[string]interface{} {
	if DB == nil {
		return map[string]interface{}{
			"status": "not_initialized",
		}
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		}
	}

	stats := sqlDB.Stats()
	return map[string]interface{}{
		"status":           "connected",
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"max_open_conns":   stats.MaxOpenConnections,
	}
}

func ensureDir(dir string) error {
	if dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

// getLogLevel converts string log level to GORM log level
func getLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return logger.Info
	}
}
