package handlers

import (
	"net/http"

	"jobboard-portal/internal/jobs"
	"jobboard-portal/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FilterHandler exposes the filter mutators to clients that keep their
// filter state themselves. Nothing is stored server side: every call takes
// the current filters and answers with the new ones.
type FilterHandler struct {
	logger *zap.Logger
}

func NewFilterHandler(logger *zap.Logger) *FilterHandler {
	return &FilterHandler{logger: logger}
}

// FiltersRequest carries the client's current filter state
type FiltersRequest struct {
	Filters models.JobFilters `json:"filters"`
}

// TagRequest represents a tag add, remove or toggle
type TagRequest struct {
	Filters models.JobFilters `json:"filters"`
	Tag     string            `json:"tag" binding:"required"`
}

// FiltersResponse is the resulting filter state
type FiltersResponse struct {
	Filters       models.JobFilters `json:"filters"`
	ActiveFilters int               `json:"active_filters"`
}

func respondFilters(c *gin.Context, f models.JobFilters) {
	f = normalizeFilters(f)
	c.JSON(http.StatusOK, FiltersResponse{
		Filters:       f,
		ActiveFilters: jobs.ActiveFilterCount(f),
	})
}

// Defaults returns the initial filter state, seeded from the search parameter
// @Summary Default filters
// @Tags filters
// @Produce json
// @Param search query string false "Initial search term"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/filters/defaults [get]
func (h *FilterHandler) Defaults(c *gin.Context) {
	f := jobs.DefaultFilters(c.Query("search"))
	c.JSON(http.StatusOK, gin.H{
		"filters":        f,
		"active_filters": jobs.ActiveFilterCount(f),
		"popular_tags":   jobs.PopularTags,
		"job_types":      models.JobTypes,
	})
}

// AddTag handles adding a skill tag
// @Summary Add tag
// @Description Appends the tag unless an identical one is already selected
// @Tags filters
// @Accept json
// @Produce json
// @Param request body TagRequest true "Current filters and tag"
// @Success 200 {object} FiltersResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/filters/tags [post]
func (h *FilterHandler) AddTag(c *gin.Context) {
	var req TagRequest
	if !h.bindTagRequest(c, &req) {
		return
	}
	respondFilters(c, jobs.AddTag(req.Filters, req.Tag))
}

// RemoveTag handles removing a skill tag
// @Summary Remove tag
// @Tags filters
// @Accept json
// @Produce json
// @Param request body TagRequest true "Current filters and tag"
// @Success 200 {object} FiltersResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/filters/tags [delete]
func (h *FilterHandler) RemoveTag(c *gin.Context) {
	var req TagRequest
	if !h.bindTagRequest(c, &req) {
		return
	}
	respondFilters(c, jobs.RemoveTag(req.Filters, req.Tag))
}

// ToggleTag handles clicking a popular tag
// @Summary Toggle tag
// @Tags filters
// @Accept json
// @Produce json
// @Param request body TagRequest true "Current filters and tag"
// @Success 200 {object} FiltersResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/filters/tags/toggle [post]
func (h *FilterHandler) ToggleTag(c *gin.Context) {
	var req TagRequest
	if !h.bindTagRequest(c, &req) {
		return
	}
	respondFilters(c, jobs.ToggleTag(req.Filters, req.Tag))
}

// Clear handles resetting every filter
// @Summary Clear filters
// @Tags filters
// @Produce json
// @Success 200 {object} FiltersResponse
// @Router /api/v1/filters/clear [post]
func (h *FilterHandler) Clear(c *gin.Context) {
	respondFilters(c, jobs.ClearFilters())
}

// Count handles counting the active filters
// @Summary Count active filters
// @Tags filters
// @Accept json
// @Produce json
// @Param request body FiltersRequest true "Current filters"
// @Success 200 {object} FiltersResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/filters/count [post]
func (h *FilterHandler) Count(c *gin.Context) {
	var req FiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	respondFilters(c, req.Filters)
}

func (h *FilterHandler) bindTagRequest(c *gin.Context, req *TagRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Debug("Invalid tag request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return false
	}
	return true
}
