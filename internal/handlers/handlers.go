package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-linkedin-jobs/internal/scraper"
)

// Extractor is what the HTTP layer needs from the extraction engine.
type Extractor interface {
	Search(ctx context.Context, req scraper.SearchRequest) (*scraper.SearchResult, error)
	GetDetails(ctx context.Context, jobURL string) (*scraper.DetailResult, error)
}

type JobsHandler struct {
	engine Extractor
}

func NewJobsHandler(engine Extractor) *JobsHandler {
	return &JobsHandler{engine: engine}
}

// Register wires the API routes onto the gin engine.
func Register(r *gin.Engine, engine Extractor) {
	h := NewJobsHandler(engine)
	api := r.Group("/api/v1")
	api.GET("/health", h.Health)
	api.POST("/jobs/linkedin/search", h.Search)
	api.POST("/jobs/linkedin/details", h.Details)
}

func (h *JobsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *JobsHandler) Search(c *gin.Context) {
	var req scraper.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	result, err := h.engine.Search(c.Request.Context(), req)
	if err != nil {
		var vErr *scraper.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": vErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

type detailsRequest struct {
	JobURL string `json:"job_url"`
}

func (h *JobsHandler) Details(c *gin.Context) {
	var req detailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	result, err := h.engine.GetDetails(c.Request.Context(), req.JobURL)
	if err != nil {
		var vErr *scraper.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": vErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
