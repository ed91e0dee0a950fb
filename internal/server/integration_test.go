package server

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"jobboard-portal/config"
	"jobboard-portal/internal/database"
	"jobboard-portal/internal/handlers"
	"jobboard-portal/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// browse walks the pages a visitor goes through: start with a search,
// narrow it with a popular tag, open the first result and then its company.
func browse(t *testing.T, client *testutil.TestHTTPClient) {
	t.Helper()

	w := client.GET("/api/v1/filters/defaults?search=engineer", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var defaults struct {
		Filters json.RawMessage `json:"filters"`
	}
	testutil.ParseJSONResponse(t, w, &defaults)

	w = client.POST("/api/v1/filters/tags", `{"filters":`+string(defaults.Filters)+`,"tag":"AWS"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var withTag handlers.FiltersResponse
	testutil.ParseJSONResponse(t, w, &withTag)
	require.Equal(t, []string{"AWS"}, withTag.Filters.Tags)
	require.Equal(t, 2, withTag.ActiveFilters)

	w = client.GET("/api/v1/jobs?search="+withTag.Filters.Search+"&tags="+withTag.Filters.Tags[0], nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list handlers.JobListResponse
	testutil.ParseJSONResponse(t, w, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "DevOps Engineer", list.Jobs[0].Title)

	w = client.GET("/api/v1/jobs/"+list.Jobs[0].ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var job struct {
		Company struct {
			ID string `json:"id"`
		} `json:"company"`
	}
	testutil.ParseJSONResponse(t, w, &job)

	w = client.GET("/api/v1/companies/"+job.Company.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var company handlers.CompanyResponse
	testutil.ParseJSONResponse(t, w, &company)
	assert.Equal(t, "DataSolutions", company.Company.Name)
	assert.Equal(t, 2, company.JobCount)

	w = client.POST("/api/v1/filters/clear", "", nil)
	testutil.AssertJSONResponse(t, w, http.StatusOK, map[string]interface{}{"active_filters": float64(0)})
}

func TestBrowsingFlow_Mock(t *testing.T) {
	_, client := createTestServer(t)
	browse(t, client)
}

func TestBrowsingFlow_Database(t *testing.T) {
	testutil.SetupGinTestMode()

	cfg := testutil.TestConfig()
	cfg.Data.Source = config.DataSourceDatabase
	cfg.Database = config.DatabaseConfig{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "flow.db")}
	cfg.Dev = config.DevConfig{AutoMigrate: true, SeedData: true}
	t.Cleanup(func() {
		_ = database.Close()
		database.DB = nil
	})

	snapshot, err := LoadSnapshot(cfg, zap.NewNop())
	require.NoError(t, err)

	client := testutil.NewTestHTTPClient(New(cfg, zap.NewNop(), snapshot).Router)

	w := client.GET("/ready", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ready struct {
		Checks struct {
			DataSource string                 `json:"data_source"`
			Jobs       int                    `json:"jobs"`
			Database   string                 `json:"database"`
			Pool       map[string]interface{} `json:"database_pool"`
		} `json:"checks"`
	}
	testutil.ParseJSONResponse(t, w, &ready)
	assert.Equal(t, "database", ready.Checks.DataSource)
	assert.Equal(t, 5, ready.Checks.Jobs)
	assert.Equal(t, "healthy", ready.Checks.Database)
	assert.Equal(t, "connected", ready.Checks.Pool["status"])

	browse(t, client)
}
