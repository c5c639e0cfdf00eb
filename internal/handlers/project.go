package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/dto"
	apierrors "taskmanager/internal/errors"
	"taskmanager/internal/services"
	"taskmanager/internal/session"
	"taskmanager/internal/utils"
)

// ProjectHandler coordinates project HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
	sessions       *session.Manager
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService, sessions *session.Manager) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		sessions:       sessions,
	}
}

// List returns projects ordered by creation date descending.
func (h *ProjectHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	projects, total, err := h.projectService.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": dto.ToProjectDTOs(projects),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// Create creates a project owned by the session's user. The gate already
// guards this route; the handler re-reads the session through the ambient
// cookie store to stamp createdBy.
func (h *ProjectHandler) Create(c *gin.Context) {
	payload := h.sessions.Get(session.FromContext(c))
	if payload == nil {
		apierrors.Unauthorized(c, "Unauthorized")
		return
	}

	type CreateProjectRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description" binding:"required"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := bindingFieldErrors(err); fields != nil {
			apierrors.ValidationFailed(c, fields)
			return
		}
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Create(services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   payload.UserID,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": dto.ToProjectDTO(*project),
	})
}

// Update applies a partial update to a project identified by the id in the body.
func (h *ProjectHandler) Update(c *gin.Context) {
	type UpdateProjectRequest struct {
		ID          string  `json:"id"`
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.ID == "" {
		apierrors.BadRequest(c, "Project ID is required")
		return
	}

	if _, err := h.projectService.Update(req.ID, services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	}); err != nil {
		respondProjectError(c, err, "Failed to update project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
	})
}

// Delete removes the project named by the id query parameter.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		apierrors.BadRequest(c, "Project ID is required")
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		respondProjectError(c, err, "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
	})
}

func respondProjectError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, services.ErrProjectNotFound) {
		apierrors.NotFound(c, err.Error())
		return
	}
	apierrors.InternalError(c, fallback)
}
