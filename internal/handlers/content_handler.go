package handlers

import (
	"net/http"

	"internhub_backend/internal/middleware"
	"internhub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ContentHandler отдает закрытый контент; доступ решает access gate
// по текущему плану аккаунта.
type ContentHandler struct {
	*BaseHandler
	contentService services.ContentService
}

func NewContentHandler(base *BaseHandler, contentService services.ContentService) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    base,
		contentService: contentService,
	}
}

func (h *ContentHandler) RegisterRoutes(r *gin.RouterGroup) {
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/classes", h.ListClasses)
		protected.GET("/videos", h.ListVideoLectures)
	}
}

func (h *ContentHandler) ListClasses(c *gin.Context) {
	internID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	classes, err := h.contentService.ListClasses(c.Request.Context(), internID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"classes": classes,
		"total":   len(classes),
	})
}

func (h *ContentHandler) ListVideoLectures(c *gin.Context) {
	internID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	videos, err := h.contentService.ListVideoLectures(c.Request.Context(), internID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"videos":  videos,
		"total":   len(videos),
	})
}
