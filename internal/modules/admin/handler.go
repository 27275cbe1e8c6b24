package admin

import (
	"net/http"

	"kindkart/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group already guarded by JWTAuth + AdminOnly.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/admin")
	{
		g.GET("/stats", h.GetStats)
		g.GET("/fraud", h.GetFraudReport)
	}
}

func (h *Handler) GetStats(c *gin.Context) {
	report, err := h.service.ImpactReport(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) GetFraudReport(c *gin.Context) {
	report, err := h.service.FraudReport(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
