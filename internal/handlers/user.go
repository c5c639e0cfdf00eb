package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/dto"
	apierrors "taskmanager/internal/errors"
	"taskmanager/internal/services"
	"taskmanager/internal/utils"
)

// UserHandler coordinates user management HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List returns users ordered by creation date descending.
func (h *UserHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userService.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": dto.ToUserDTOs(users),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// Create registers a new user.
func (h *UserHandler) Create(c *gin.Context) {
	type CreateUserRequest struct {
		Fullname        string  `json:"fullname" binding:"required"`
		Username        string  `json:"username" binding:"required"`
		Email           string  `json:"email" binding:"required,email"`
		Photo           *string `json:"photo"`
		Password        string  `json:"password" binding:"required"`
		ConfirmPassword string  `json:"confirmPassword" binding:"required,eqfield=Password"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := bindingFieldErrors(err); fields != nil {
			apierrors.ValidationFailed(c, fields)
			return
		}
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Create(services.CreateUserInput{
		Fullname: req.Fullname,
		Username: req.Username,
		Email:    req.Email,
		Photo:    req.Photo,
		Password: req.Password,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    dto.ToUserDTO(*user),
	})
}

// Update applies a partial update to a user identified by the id in the body.
func (h *UserHandler) Update(c *gin.Context) {
	type UpdateUserRequest struct {
		ID              string  `json:"id"`
		Fullname        *string `json:"fullname"`
		Username        *string `json:"username"`
		Email           *string `json:"email" binding:"omitempty,email"`
		Photo           *string `json:"photo"`
		Password        *string `json:"password"`
		ConfirmPassword *string `json:"confirmPassword"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := bindingFieldErrors(err); fields != nil {
			apierrors.ValidationFailed(c, fields)
			return
		}
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.ID == "" {
		apierrors.BadRequest(c, "User ID is required")
		return
	}

	if req.Password != nil && (req.ConfirmPassword == nil || *req.ConfirmPassword != *req.Password) {
		apierrors.ValidationFailed(c, map[string]string{
			"confirmPassword": "Passwords do not match",
		})
		return
	}

	if _, err := h.userService.Update(req.ID, services.UpdateUserInput{
		Fullname: req.Fullname,
		Username: req.Username,
		Email:    req.Email,
		Photo:    req.Photo,
		Password: req.Password,
	}); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
	})
}

// Delete removes a user identified by the id in the body.
func (h *UserHandler) Delete(c *gin.Context) {
	type DeleteUserRequest struct {
		ID string `json:"id"`
	}

	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		apierrors.BadRequest(c, "User ID is required")
		return
	}

	if err := h.userService.Delete(req.ID); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrWeakPassword):
		apierrors.ValidationFailed(c, map[string]string{
			"password": err.Error(),
		})
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
