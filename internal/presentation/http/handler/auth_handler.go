package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/leaddesk/leaddesk-api/internal/application/service"
	"github.com/leaddesk/leaddesk-api/internal/presentation/http/dto/request"
	"github.com/leaddesk/leaddesk-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", output)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	// The bootstrap administrator has no user row; answer from the token.
	if IsAdmin(c) && *userID == uuid.Nil {
		response.OK(c, "Profile retrieved successfully", gin.H{
			"email": GetUserEmail(c),
			"role":  GetUserRole(c),
		})
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved successfully", user)
}
