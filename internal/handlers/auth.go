package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "taskmanager/internal/errors"
	"taskmanager/internal/services"
	"taskmanager/internal/session"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	sessions    *session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

// Login authenticates a user and issues the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Username and password required")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, "User not found")
		case errors.Is(err, services.ErrInvalidCredentials):
			apierrors.Unauthorized(c, "Invalid credentials")
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	if err := h.sessions.Create(c, user.ID, user.Username); err != nil {
		apierrors.InternalError(c, "Failed to create session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"userId":  user.ID,
	})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Destroy(c)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// GetSession reports the identity carried by the request's session cookie.
// An absent or invalid session is not an error: the response is {"user":null}.
func (h *AuthHandler) GetSession(c *gin.Context) {
	payload := h.sessions.Get(session.FromRequest(c.Request))
	if payload == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id": payload.UserID,
		},
	})
}
