package donation

import (
	"errors"
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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/donations")
	{
		g.POST("", h.CreateDonation)
		g.GET("", h.GetDonations)
		g.GET("/:id", h.GetDonation)
		g.PUT("/:id", h.UpdateDonation)
	}
}

func (h *Handler) CreateDonation(c *gin.Context) {
	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	d, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Message(c, http.StatusBadRequest, "Please provide all required fields")
			return
		}
		response.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Donation created successfully",
		"donation": d,
	})
}

func (h *Handler) GetDonations(c *gin.Context) {
	filter := ListFilter{
		DonorID: c.Query("donorId"),
		NgoID:   c.Query("ngoId"),
		Status:  c.Query("status"),
	}

	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetDonation(c *gin.Context) {
	d, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Donation not found")
			return
		}
		response.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *Handler) UpdateDonation(c *gin.Context) {
	var req UpdateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	d, err := h.service.Transition(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Message(c, http.StatusNotFound, "Donation not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Message(c, http.StatusBadRequest, "Invalid donation status")
		case errors.Is(err, ErrInvalidTransition):
			response.Message(c, http.StatusBadRequest, "Status can only move forward")
		case errors.Is(err, ErrNGORequired):
			response.Message(c, http.StatusBadRequest, "An NGO must be assigned for this status")
		case errors.Is(err, ErrValidation):
			response.Message(c, http.StatusBadRequest, "Invalid donation update")
		default:
			response.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Donation updated",
		"donation": d,
	})
}
