package auth

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
	g := rg.Group("/users")
	{
		g.POST("/signup", h.Signup)
		g.POST("/login", h.Login)
		g.GET("", h.GetUsers)
	}
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Message(c, http.StatusBadRequest, "Please provide all required fields")
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Message(c, http.StatusBadRequest, "Email already exists")
		default:
			response.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Signup successful",
		"user": UserPublic{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
		"token": token,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Message(c, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, ErrInvalidCredentials):
			response.Message(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			response.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": UserPublic{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
		"token": token,
	})
}

func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
