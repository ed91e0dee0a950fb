package handlers

import (
	"net/http"

	"jobboard-portal/internal/jobs"
	"jobboard-portal/internal/models"
	"jobboard-portal/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type JobHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewJobHandler(s *store.Store, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		store:  s,
		logger: logger,
	}
}

// JobListResponse is the filtered job list together with the filter state
// that produced it
type JobListResponse struct {
	Jobs          []models.Job      `json:"jobs"`
	Total         int               `json:"total"`
	ActiveFilters int               `json:"active_filters"`
	Filters       models.JobFilters `json:"filters"`
}

// ListJobs handles listing jobs with filtering
// @Summary List jobs
// @Description Filter job postings. All filters are optional and combined with AND; multiple tags are combined with OR.
// @Tags jobs
// @Produce json
// @Param search query string false "Substring of title, company name, description or any tag"
// @Param location query string false "Substring of the job location"
// @Param type query string false "Job type" Enums(full-time, part-time, contract, remote)
// @Param salary_min query int false "Minimum of the salary band must be at least this value"
// @Param tags query []string false "Skills, any of which must occur in a job tag" collectionFormat(multi)
// @Success 200 {object} JobListResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var filters models.JobFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters", "details": err.Error()})
		return
	}
	filters = normalizeFilters(filters)

	result := jobs.FilterJobs(h.store.Jobs(), filters)

	h.logger.Debug("Jobs filtered",
		zap.Int("matched", len(result)),
		zap.Int("active_filters", jobs.ActiveFilterCount(filters)),
	)

	c.JSON(http.StatusOK, JobListResponse{
		Jobs:          result,
		Total:         len(result),
		ActiveFilters: jobs.ActiveFilterCount(filters),
		Filters:       filters,
	})
}

// GetJob handles getting a single job posting
// @Summary Get job
// @Description Get a job posting with its company
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.Job
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, ok := h.store.JobByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobTypes returns the selectable job types
// @Summary List job types
// @Tags jobs
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/job-types [get]
func (h *JobHandler) ListJobTypes(c *gin.Context) {
	types := make([]gin.H, 0, len(models.JobTypes))
	for _, t := range models.JobTypes {
		types = append(types, gin.H{"value": t, "label": t.Label()})
	}
	c.JSON(http.StatusOK, gin.H{"job_types": types})
}

// normalizeFilters rebuilds the tag list through AddTag, dropping empty and
// repeated tags. Tags always encode as [] instead of null.
func normalizeFilters(f models.JobFilters) models.JobFilters {
	tags := f.Tags
	f.Tags = []string{}
	for _, tag := range tags {
		f = jobs.AddTag(f, tag)
	}
	return f
}
