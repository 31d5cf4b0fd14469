package handler

import (
	"errors"
	"net/http"

	"job-board-backend/internal/middleware"
	"job-board-backend/internal/service"
	"job-board-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Login handles POST /auth/token. Credentials arrive as a form body in the
// OAuth2 password-flow style.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	pair, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"token_type":    "bearer",
	})
}

// Logout handles POST /auth/logout. The presented token is revoked
// unconditionally, whatever its type or validity, so the response never
// reveals whether it was a real token.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := middleware.ExtractBearerToken(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	if err := h.authService.Logout(token); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	utils.MessageResponse(c, "Logged out successfully")
}

// Refresh handles POST /auth/refresh_token. The bearer must be a refresh
// token; the response carries a fresh access token alongside the same
// refresh token, which is not rotated.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, err := middleware.ExtractBearerToken(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	accessToken, err := h.authService.Refresh(token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRevokedToken),
			errors.Is(err, service.ErrInvalidToken),
			errors.Is(err, service.ErrInactiveUser):
			utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to refresh token")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  accessToken,
		"refresh_token": token,
	})
}
