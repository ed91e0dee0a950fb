package server

import (
	"time"

	"jobboard-portal/config"
	"jobboard-portal/internal/database"
	"jobboard-portal/internal/handlers"
	"jobboard-portal/internal/middleware"
	"jobboard-portal/internal/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const version = "1.0.0"

// Server represents the HTTP server
type Server struct {
	Router   *gin.Engine
	config   *config.Config
	logger   *zap.Logger
	snapshot *store.Store

	// Handlers
	jobHandler     *handlers.JobHandler
	companyHandler *handlers.CompanyHandler
	filterHandler  *handlers.FilterHandler
}

// New creates a new server serving the given snapshot
func New(cfg *config.Config, logger *zap.Logger, snapshot *store.Store) *Server {
	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	server := &Server{
		Router:         router,
		config:         cfg,
		logger:         logger,
		snapshot:       snapshot,
		jobHandler:     handlers.NewJobHandler(snapshot, logger.Named("jobs")),
		companyHandler: handlers.NewCompanyHandler(snapshot, logger.Named("companies")),
		filterHandler:  handlers.NewFilterHandler(logger.Named("filters")),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	// Basic middleware
	s.Router.Use(middleware.RequestIDMiddleware())
	s.Router.Use(middleware.RecoveryMiddleware(s.logger))
	s.Router.Use(middleware.SecurityHeadersMiddleware())

	// CORS middleware
	s.Router.Use(middleware.CORSMiddleware(
		s.config.CORS.Origins,
		s.config.CORS.Credentials,
	))

	// Rate limiting middleware
	rateLimiter := middleware.NewRateLimit(
		s.config.RateLimit.Requests,
		time.Duration(s.config.RateLimit.Window)*time.Second,
	)
	s.Router.Use(middleware.RateLimitMiddleware(rateLimiter, s.logger))

	// Logging middleware
	if s.config.IsDevelopment() {
		s.Router.Use(middleware.DetailedLoggingMiddleware(s.logger, true, false))
	} else {
		s.Router.Use(middleware.LoggingMiddleware(s.logger))
	}
}

// setupRoutes configures API routes
func (s *Server) setupRoutes() {
	s.Router.GET("/health", s.healthCheck)
	s.Router.HEAD("/health", s.healthCheck)
	s.Router.GET("/ready", s.readinessCheck)
	s.Router.HEAD("/ready", s.readinessCheck)

	// Swagger documentation
	if s.config.IsDevelopment() {
		s.Router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := s.Router.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", s.jobHandler.ListJobs)
			jobs.GET("/:id", s.jobHandler.GetJob)
		}
		v1.GET("/job-types", s.jobHandler.ListJobTypes)

		companies := v1.Group("/companies")
		{
			companies.GET("", s.companyHandler.ListCompanies)
			companies.GET("/:id", s.companyHandler.GetCompany)
			companies.GET("/:id/jobs", s.companyHandler.ListCompanyJobs)
		}
		v1.GET("/industries", s.companyHandler.ListIndustries)

		filters := v1.Group("/filters")
		{
			filters.GET("/defaults", s.filterHandler.Defaults)
			filters.POST("/tags", s.filterHandler.AddTag)
			filters.DELETE("/tags", s.filterHandler.RemoveTag)
			filters.POST("/tags/toggle", s.filterHandler.ToggleTag)
			filters.POST("/clear", s.filterHandler.Clear)
			filters.POST("/count", s.filterHandler.Count)
		}
	}

	s.Router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Route not found"})
	})
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   version,
		"service":   "jobboard-api",
	})
}

// readinessCheck handles readiness check requests
// @Summary Readiness check
// @Description Check if the service is ready to serve requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /ready [get]
func (s *Server) readinessCheck(c *gin.Context) {
	checks := gin.H{
		"data_source": s.config.Data.Source,
		"jobs":        s.snapshot.JobCount(),
		"companies":   s.snapshot.CompanyCount(),
	}

	if s.config.Data.Source == config.DataSourceDatabase {
		if err := database.IsHealthy(); err != nil {
			s.logger.Error("Database health check failed", zap.Error(err))
			c.JSON(503, gin.H{
				"status":    "not ready",
				"timestamp": time.Now().UTC(),
				"error":     "Database connection failed",
			})
			return
		}
		checks["database"] = "healthy"
		checks["database_pool"] = database.GetStats()
	}

	c.JSON(200, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"version":   version,
		"service":   "jobboard-api",
		"checks":    checks,
	})
}
