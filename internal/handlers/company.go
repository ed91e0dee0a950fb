package handlers

import (
	"net/http"

	"jobboard-portal/internal/jobs"
	"jobboard-portal/internal/models"
	"jobboard-portal/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CompanyHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewCompanyHandler(s *store.Store, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		store:  s,
		logger: logger,
	}
}

// CompanySummary is a company card in the directory
type CompanySummary struct {
	models.Company
	JobCount int `json:"job_count"`
}

// CompanyListResponse represents the filtered company directory
type CompanyListResponse struct {
	Companies  []CompanySummary `json:"companies"`
	Total      int              `json:"total"`
	Industries []string         `json:"industries"`
}

// CompanyResponse represents a company with its open positions
type CompanyResponse struct {
	Company  models.Company `json:"company"`
	Jobs     []models.Job   `json:"jobs"`
	JobCount int            `json:"job_count"`
}

// ListCompanies handles listing companies
// @Summary List companies
// @Description Company directory with job counts
// @Tags companies
// @Produce json
// @Param search query string false "Substring of company name or description"
// @Param industry query string false "Exact industry"
// @Success 200 {object} CompanyListResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	var filters models.CompanyFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters", "details": err.Error()})
		return
	}

	all := h.store.Companies()
	allJobs := h.store.Jobs()
	counts := jobs.CompanyJobCounts(all, allJobs)

	matched := jobs.FilterCompanies(all, filters)
	summaries := make([]CompanySummary, 0, len(matched))
	for _, company := range matched {
		summaries = append(summaries, CompanySummary{
			Company:  company,
			JobCount: counts[company.ID],
		})
	}

	c.JSON(http.StatusOK, CompanyListResponse{
		Companies:  summaries,
		Total:      len(summaries),
		Industries: jobs.Industries(all),
	})
}

// GetCompany handles getting a company with its open positions
// @Summary Get company
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} CompanyResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, ok := h.store.CompanyByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	openings := jobs.JobsForCompany(h.store.Jobs(), company.ID)

	c.JSON(http.StatusOK, CompanyResponse{
		Company:  company,
		Jobs:     openings,
		JobCount: len(openings),
	})
}

// ListCompanyJobs handles listing the jobs of one company
// @Summary List company jobs
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/companies/{id}/jobs [get]
func (h *CompanyHandler) ListCompanyJobs(c *gin.Context) {
	companyID := c.Param("id")
	if _, ok := h.store.CompanyByID(companyID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	openings := jobs.JobsForCompany(h.store.Jobs(), companyID)
	c.JSON(http.StatusOK, gin.H{
		"jobs":  openings,
		"total": jobs.JobCountForCompany(h.store.Jobs(), companyID),
	})
}

// ListIndustries returns the distinct industries of all companies
// @Summary List industries
// @Tags companies
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/industries [get]
func (h *CompanyHandler) ListIndustries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"industries": jobs.Industries(h.store.Companies())})
}
