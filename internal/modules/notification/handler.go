package notification

import (
	"errors"
	"net/http"
	"strconv"

	"kindkart/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/notifications")
	{
		g.GET("", h.GetNotifications)
		g.PUT("/:id/read", h.MarkRead)
	}
}

// GetNotifications returns the caller's notifications, newest first.
// The userId query parameter is required; limit is optional and clamped.
func (h *Handler) GetNotifications(c *gin.Context) {
	userID := c.Query("userId")

	limit := MaxListLimit
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}

	list, err := h.service.List(c.Request.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Message(c, http.StatusBadRequest, "userId required")
			return
		}
		response.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) MarkRead(c *gin.Context) {
	n, err := h.service.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Notification not found")
			return
		}
		response.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, n)
}
