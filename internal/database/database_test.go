package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"jobboard-portal/config"
	"jobboard-portal/internal/models"
	"jobboard-portal/internal/store"
)

func setupTestDB(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:     "sqlite",
			SQLitePath: filepath.Join(t.TempDir(), "nested", "test.db"),
		},
		Log:    config.LogConfig{Level: "silent"},
		Server: config.ServerConfig{Env: "test"},
		Dev:    config.DevConfig{AutoMigrate: true},
	}

	require.NoError(t, Connect(cfg, zap.NewNop()))
	require.NotNil(t, DB)

	t.Cleanup(func() {
		_ = Close()
		DB = nil
	})
	return cfg
}

func TestConnect_SQLite(t *testing.T) {
	setupTestDB(t)

	assert.NoError(t, IsHealthy())
	assert.True(t, DB.Migrator().HasTable(&models.Company{}))
	assert.True(t, DB.Migrator().HasTable(&models.Job{}))
	assert.Equal(t, "connected", GetStats()["status"])
}

func TestConnect_SQLiteForeignKeys(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:     "sqlite",
			SQLitePath: filepath.Join(t.TempDir(), "fk.db"),
		},
		Log:    config.LogConfig{Level: "silent"},
		Server: config.ServerConfig{Env: "test"},
	}
	require.NoError(t, Connect(cfg, zap.New(core)))
	t.Cleanup(func() {
		_ = Close()
		DB = nil
	})

	var enabled int
	require.NoError(t, DB.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
	assert.Zero(t, logs.Len(), "no warning expected when the pragma succeeds")
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "oracle"}}

	err := Connect(cfg, zap.NewNop())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestUninitialized(t *testing.T) {
	DB = nil

	assert.Error(t, IsHealthy())
	assert.Error(t, AutoMigrate())
	assert.NoError(t, Close())
	assert.Equal(t, "not_initialized", GetStats()["status"])
}

func TestSeedAndLoadSnapshot(t *testing.T) {
	setupTestDB(t)
	mock := store.Mock()

	require.NoError(t, SeedDatabase(DB, mock))

	var jobCount, companyCount int64
	DB.Model(&models.Job{}).Count(&jobCount)
	DB.Model(&models.Company{}).Count(&companyCount)
	assert.Equal(t, int64(5), jobCount)
	assert.Equal(t, int64(3), companyCount)

	loaded, err := LoadSnapshot(DB)
	require.NoError(t, err)

	assert.Equal(t, mock.Companies(), loaded.Companies())
	assert.Equal(t, mock.Jobs(), loaded.Jobs())

	job, ok := loaded.JobByID("3")
	require.True(t, ok)
	assert.Equal(t, "DataSolutions", job.Company.Name)
	assert.Equal(t, []string{"Python", "Machine Learning", "Data Science", "SQL"}, job.Tags)
	assert.Equal(t, "2024-02-12", job.ApplicationDeadline.String())
}

func TestSeedDatabase_Idempotent(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, SeedDatabase(DB, store.Mock()))
	require.NoError(t, SeedDatabase(DB, store.Mock()))

	var jobCount int64
	DB.Model(&models.Job{}).Count(&jobCount)
	assert.Equal(t, int64(5), jobCount)
}

func TestLoadSnapshot_Empty(t *testing.T) {
	setupTestDB(t)

	loaded, err := LoadSnapshot(DB)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.JobCount())
	assert.Equal(t, 0, loaded.CompanyCount())
}

func TestSeedDatabase_RollsBackOnFailure(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, DB.Migrator().DropTable(&models.Job{}))

	err := SeedDatabase(DB, store.Mock())
	assert.ErrorContains(t, err, "failed to seed jobs")

	var count int64
	require.NoError(t, DB.Model(&models.Company{}).Count(&count).Error)
	assert.Zero(t, count, "companies must not outlive a failed seed")
}
