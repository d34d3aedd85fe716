package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yt-digest/internal/api/errors"
	"yt-digest/internal/api/middleware"
	"yt-digest/internal/api/v1/services"
)

// JobHandler handles digest workflow status endpoints
type JobHandler struct {
	service services.JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(service services.JobService) *JobHandler {
	return &JobHandler{
		service: service,
	}
}

// Status handles GET /api/v1/jobs/:id
//
// @Summary Get digest job status
// @Description Reports the execution state of an async digest workflow
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} dto.JobStatusResponse "Job status"
// @Failure 404 {object} errors.APIError "Job not found"
// @Failure 503 {object} errors.APIError "Async digests not enabled"
// @Router /jobs/{id} [get]
func (h *JobHandler) Status(c *gin.Context) {
	jobID := c.Param("id")
	if jobID == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Job ID is required"))
		return
	}

	response, err := h.service.Status(c.Request.Context(), jobID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
