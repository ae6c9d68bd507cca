package handlers

import (
	"net/http"

	"internhub_backend/internal/dto"
	"internhub_backend/internal/middleware"
	"internhub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.POST("/apply", h.Apply)
	}
}

// Apply - POST /jobs/apply
// Бесплатная квота проверяется атомарно в хранилище.
func (h *JobHandler) Apply(c *gin.Context) {
	internID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.jobService.Apply(c.Request.Context(), internID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
