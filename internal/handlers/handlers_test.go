package handlers

import (
	"net/http"
	"testing"

	"jobboard-portal/internal/store"
	"jobboard-portal/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRouter() *testutil.TestHTTPClient {
	testutil.SetupGinTestMode()

	snapshot := store.Mock()
	logger := zap.NewNop()
	jobHandler := NewJobHandler(snapshot, logger)
	companyHandler := NewCompanyHandler(snapshot, logger)
	filterHandler := NewFilterHandler(logger)

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/jobs", jobHandler.ListJobs)
	v1.GET("/jobs/:id", jobHandler.GetJob)
	v1.GET("/job-types", jobHandler.ListJobTypes)
	v1.GET("/companies", companyHandler.ListCompanies)
	v1.GET("/companies/:id", companyHandler.GetCompany)
	v1.GET("/companies/:id/jobs", companyHandler.ListCompanyJobs)
	v1.GET("/industries", companyHandler.ListIndustries)
	v1.GET("/filters/defaults", filterHandler.Defaults)
	v1.POST("/filters/tags", filterHandler.AddTag)
	v1.DELETE("/filters/tags", filterHandler.RemoveTag)
	v1.POST("/filters/tags/toggle", filterHandler.ToggleTag)
	v1.POST("/filters/clear", filterHandler.Clear)
	v1.POST("/filters/count", filterHandler.Count)

	return testutil.NewTestHTTPClient(r)
}

func jobIDs(t *testing.T, resp JobListResponse) []string {
	t.Helper()
	ids := make([]string, 0, len(resp.Jobs))
	for _, j := range resp.Jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func TestListJobs(t *testing.T) {
	client := setupRouter()

	tests := []struct {
		name          string
		query         string
		expectedIDs   []string
		activeFilters int
	}{
		{"no filters", "", []string{"1", "2", "3", "4", "5"}, 0},
		{"single tag", "?tags=Python", []string{"2", "3"}, 1},
		{"tags are OR-ed", "?tags=AWS&tags=Figma", []string{"4", "5"}, 2},
		{"search and salary", "?search=python&salary_min=105000", []string{"3"}, 2},
		{"type", "?type=remote", []string{"4"}, 1},
		{"location", "?location=austin", []string{"3", "5"}, 1},
		{"nothing matches", "?search=cobol", []string{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := client.GET("/api/v1/jobs"+tt.query, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp JobListResponse
			testutil.ParseJSONResponse(t, w, &resp)

			assert.Equal(t, tt.expectedIDs, jobIDs(t, resp))
			assert.Equal(t, len(tt.expectedIDs), resp.Total)
			assert.Equal(t, tt.activeFilters, resp.ActiveFilters)
			assert.NotNil(t, resp.Filters.Tags)
		})
	}

	t.Run("jobs carry their company", func(t *testing.T) {
		w := client.GET("/api/v1/jobs?tags=Figma", nil)
		var resp JobListResponse
		testutil.ParseJSONResponse(t, w, &resp)
		require.Len(t, resp.Jobs, 1)
		assert.Equal(t, "TechCorp", resp.Jobs[0].Company.Name)
	})

	t.Run("empty result is an array", func(t *testing.T) {
		w := client.GET("/api/v1/jobs?search=cobol", nil)
		assert.Contains(t, w.Body.String(), `"jobs":[]`)
	})
}

func TestListJobs_InvalidFilters(t *testing.T) {
	client := setupRouter()

	for _, query := range []string{"?type=internship", "?salary_min=-1", "?salary_min=lots"} {
		t.Run(query, func(t *testing.T) {
			w := client.GET("/api/v1/jobs"+query, nil)
			testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid filter parameters")
		})
	}
}

func TestListJobs_QueryTags(t *testing.T) {
	client := setupRouter()

	tests := []struct {
		name          string
		query         string
		expectedTags  []string
		expectedIDs   []string
		activeFilters int
	}{
		{"repeated tag", "?tags=AWS&tags=AWS", []string{"AWS"}, []string{"5"}, 1},
		{"single empty tag", "?tags=", []string{}, []string{"1", "2", "3", "4", "5"}, 0},
		{"only empty tags", "?tags=&tags=", []string{}, []string{"1", "2", "3", "4", "5"}, 0},
		{"empty mixed in", "?tags=&tags=Figma&tags=&tags=Figma", []string{"Figma"}, []string{"4"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := client.GET("/api/v1/jobs"+tt.query, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var resp JobListResponse
			testutil.ParseJSONResponse(t, w, &resp)
			assert.Equal(t, tt.expectedTags, resp.Filters.Tags)
			assert.Equal(t, tt.expectedIDs, jobIDs(t, resp))
			assert.Equal(t, tt.activeFilters, resp.ActiveFilters)
		})
	}
}

func TestCountFilters_RepeatedTags(t *testing.T) {
	client := setupRouter()

	w := client.POST("/api/v1/filters/count", `{"filters":{"tags":["Go","Go",""]}}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp FiltersResponse
	testutil.ParseJSONResponse(t, w, &resp)
	assert.Equal(t, []string{"Go"}, resp.Filters.Tags)
	assert.Equal(t, 1, resp.ActiveFilters)
}

func TestGetJob(t *testing.T) {
	client := setupRouter()

	t.Run("found", func(t *testing.T) {
		w := client.GET("/api/v1/jobs/3", nil)
		testutil.AssertJSONResponse(t, w, http.StatusOK, map[string]interface{}{
			"id":          "3",
			"title":       "Data Scientist",
			"type":        "full-time",
			"posted_date": nil,
		})

		var resp map[string]interface{}
		testutil.ParseJSONResponse(t, w, &resp)
		company := resp["company"].(map[string]interface{})
		assert.Equal(t, "DataSolutions", company["name"])
		assert.NotContains(t, resp, "company_id")
	})

	t.Run("not found", func(t *testing.T) {
		w := client.GET("/api/v1/jobs/99", nil)
		testutil.AssertErrorResponse(t, w, http.StatusNotFound, "Job not found")
	})
}

func TestListJobTypes(t *testing.T) {
	client := setupRouter()

	w := client.GET("/api/v1/job-types", nil)
	var resp struct {
		JobTypes []struct {
			Value string `json:"value"`
			Label string `json:"label"`
		} `json:"job_types"`
	}
	testutil.ParseJSONResponse(t, w, &resp)

	require.Len(t, resp.JobTypes, 4)
	assert.Equal(t, "full-time", resp.JobTypes[0].Value)
	assert.Equal(t, "full time", resp.JobTypes[0].Label)
}

func TestListCompanies(t *testing.T) {
	client := setupRouter()

	t.Run("all", func(t *testing.T) {
		w := client.GET("/api/v1/companies", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp CompanyListResponse
		testutil.ParseJSONResponse(t, w, &resp)

		require.Equal(t, 3, resp.Total)
		assert.Equal(t, []string{"Technology", "E-commerce", "Data Analytics"}, resp.Industries)

		counts := map[string]int{}
		for _, c := range resp.Companies {
			counts[c.ID] = c.JobCount
		}
		assert.Equal(t, map[string]int{"1": 2, "2": 1, "3": 2}, counts)
	})

	t.Run("search", func(t *testing.T) {
		w := client.GET("/api/v1/companies?search=data", nil)
		var resp CompanyListResponse
		testutil.ParseJSONResponse(t, w, &resp)
		require.Len(t, resp.Companies, 1)
		assert.Equal(t, "DataSolutions", resp.Companies[0].Name)
		assert.Len(t, resp.Industries, 3, "industries always cover the whole directory")
	})

	t.Run("industry", func(t *testing.T) {
		w := client.GET("/api/v1/companies?industry=Technology", nil)
		var resp CompanyListResponse
		testutil.ParseJSONResponse(t, w, &resp)
		require.Len(t, resp.Companies, 1)
		assert.Equal(t, "1", resp.Companies[0].ID)
	})

	t.Run("flattened summary", func(t *testing.T) {
		w := client.GET("/api/v1/companies?industry=E-commerce", nil)
		assert.Contains(t, w.Body.String(), `"name":"StartupXYZ"`)
		assert.Contains(t, w.Body.String(), `"job_count":1`)
	})
}

func TestGetCompany(t *testing.T) {
	client := setupRouter()

	t.Run("found", func(t *testing.T) {
		w := client.GET("/api/v1/companies/3", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp CompanyResponse
		testutil.ParseJSONResponse(t, w, &resp)
		assert.Equal(t, "DataSolutions", resp.Company.Name)
		assert.Equal(t, 2, resp.JobCount)
		require.Len(t, resp.Jobs, 2)
		assert.Equal(t, "3", resp.Jobs[0].ID)
		assert.Equal(t, "5", resp.Jobs[1].ID)
	})

	t.Run("not found", func(t *testing.T) {
		w := client.GET("/api/v1/companies/42", nil)
		testutil.AssertErrorResponse(t, w, http.StatusNotFound, "Company not found")
	})
}

func TestListCompanyJobs(t *testing.T) {
	client := setupRouter()

	w := client.GET("/api/v1/companies/1/jobs", nil)
	testutil.AssertJSONResponse(t, w, http.StatusOK, map[string]interface{}{"total": float64(2)})

	w = client.GET("/api/v1/companies/42/jobs", nil)
	testutil.AssertErrorResponse(t, w, http.StatusNotFound, "Company not found")
}

func TestListIndustries(t *testing.T) {
	client := setupRouter()

	w := client.GET("/api/v1/industries", nil)
	testutil.AssertJSONResponse(t, w, http.StatusOK, map[string]interface{}{
		"industries": []interface{}{"Technology", "E-commerce", "Data Analytics"},
	})
}

func TestFilterDefaults(t *testing.T) {
	client := setupRouter()

	w := client.GET("/api/v1/filters/defaults?search=react", nil)
	testutil.AssertJSONResponse(t, w, http.StatusOK, map[string]interface{}{
		"active_filters": float64(1),
		"popular_tags":   nil,
		"job_types":      nil,
	})

	var resp struct {
		Filters struct {
			Search string   `json:"search"`
			Tags   []string `json:"tags"`
		} `json:"filters"`
	}
	testutil.ParseJSONResponse(t, w, &resp)
	assert.Equal(t, "react", resp.Filters.Search)
	assert.Empty(t, resp.Filters.Tags)
}

func TestFilterTags(t *testing.T) {
	client := setupRouter()

	t.Run("add", func(t *testing.T) {
		w := client.POST("/api/v1/filters/tags", `{"filters":{"search":"go","tags":["AWS"]},"tag":"Docker"}`, nil)
		var resp FiltersResponse
		testutil.ParseJSONResponse(t, w, &resp)
		assert.Equal(t, []string{"AWS", "Docker"}, resp.Filters.Tags)
		assert.Equal(t, "go", resp.Filters.Search)
		assert.Equal(t, 3, resp.ActiveFilters, "each tag counts on its own")
	})

	t.Run("add duplicate", func(t *testing.T) {
		w := client.POST("/api/v1/filters/tags", `{"filters":{"tags":["AWS"]},"tag":"AWS"}`, nil)
		var resp FiltersResponse
		testutil.ParseJSONResponse(t, w, &resp)
		assert.Equal(t, []string{"AWS"}, resp.Filters.Tags)
	})

	t.Run("remove", func(t *testing.T) {
		w := client.DELETE("/api/v1/filters/tags", `{"filters":{"tags":["AWS","SQL"]},"tag":"AWS"}`, nil)
		var resp FiltersResponse
		testutil.ParseJSONResponse(t, w, &resp)
		assert.Equal(t, []string{"SQL"}, resp.Filters.Tags)
		assert.Equal(t, 1, resp.ActiveFilters)
	})

	t.Run("remove last", func(t *testing.T) {
		w := client.DELETE("/api/v1/filters/tags", `{"filters":{"tags":["AWS"]},"tag":"AWS"}`, nil)
		assert.Contains(t, w.Body.String(), `"tags":[]`)
		assert.Contains(t, w.Body.String(), `"active_filters":0`)
	})

	t.Run("toggle", func(t *testing.T) {
		w := client.POST("/api/v1/filters/tags/toggle", `{"filters":{"tags":["AWS"]},"tag":"SQL"}`, nil)
		var resp FiltersResponse
		testutil.ParseJSONResponse(t, w, &resp)
		assert.Equal(t, []string{"AWS", "SQL"}, resp.Filters.Tags)

		w = client.POST("/api/v1/filters/tags/toggle", `{"filters":{"tags":["AWS","SQL"]},"tag":"AWS"}`, nil)
		testutil.ParseJSONResponse(t, w, &resp)
		assert.Equal(t, []string{"SQL"}, resp.Filters.Tags)
	})

	t.Run("missing tag", func(t *testing.T) {
		w := client.POST("/api/v1/filters/tags", `{"filters":{}}`, nil)
		testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request data")
	})

	t.Run("malformed body", func(t *testing.T) {
		w := client.POST("/api/v1/filters/tags", `{"filters":`, nil)
		testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request data")
	})

	t.Run("invalid filters", func(t *testing.T) {
		w := client.POST("/api/v1/filters/tags", `{"filters":{"type":"internship"},"tag":"AWS"}`, nil)
		testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request data")
	})
}

func TestFilterClearAndCount(t *testing.T) {
	client := setupRouter()

	w := client.POST("/api/v1/filters/clear", "", nil)
	var cleared FiltersResponse
	testutil.ParseJSONResponse(t, w, &cleared)
	assert.Equal(t, 0, cleared.ActiveFilters)
	assert.Empty(t, cleared.Filters.Search)
	assert.NotNil(t, cleared.Filters.Tags)

	w = client.POST("/api/v1/filters/count",
		`{"filters":{"search":"go","location":"Austin","type":"contract","salary_min":90000,"tags":["AWS","SQL"]}}`, nil)
	testutil.AssertJSONResponse(t, w, http.StatusOK, map[string]interface{}{"active_filters": float64(6)})

	w = client.POST("/api/v1/filters/count", `{"filters":{"salary_min":-5}}`, nil)
	testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "")
}
