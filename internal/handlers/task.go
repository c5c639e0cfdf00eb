package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/dto"
	apierrors "taskmanager/internal/errors"
	"taskmanager/internal/models"
	"taskmanager/internal/services"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// List returns the tasks of the project named by the projectId query parameter.
func (h *TaskHandler) List(c *gin.Context) {
	projectID := c.Query("projectId")
	if projectID == "" {
		apierrors.BadRequest(c, "Missing projectId")
		return
	}

	tasks, err := h.taskService.ListByProject(projectID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToTaskDTOs(tasks),
	})
}

// Create creates a new task.
func (h *TaskHandler) Create(c *gin.Context) {
	type CreateTaskRequest struct {
		Name        string            `json:"name" binding:"required"`
		Description string            `json:"description" binding:"required"`
		Status      models.TaskStatus `json:"status" binding:"required"`
		ProjectID   string            `json:"projectId" binding:"required,uuid"`
		DueAt       time.Time         `json:"dueAt" binding:"required"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := bindingFieldErrors(err); fields != nil {
			apierrors.ValidationFailed(c, fields)
			return
		}
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(services.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		ProjectID:   req.ProjectID,
		DueAt:       req.DueAt,
	})
	if err != nil {
		respondTaskError(c, err, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    dto.ToTaskDTO(*task),
	})
}

// Update applies a partial update to a task identified by the id in the body.
func (h *TaskHandler) Update(c *gin.Context) {
	type UpdateTaskRequest struct {
		ID          string             `json:"id"`
		Name        *string            `json:"name"`
		Description *string            `json:"description"`
		Status      *models.TaskStatus `json:"status"`
		DueAt       *time.Time         `json:"dueAt"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.ID == "" {
		apierrors.BadRequest(c, "Task ID is required")
		return
	}

	if _, err := h.taskService.Update(req.ID, services.UpdateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		DueAt:       req.DueAt,
	}); err != nil {
		respondTaskError(c, err, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
	})
}

// Delete removes a task identified by the id in the body.
func (h *TaskHandler) Delete(c *gin.Context) {
	type DeleteTaskRequest struct {
		ID string `json:"id"`
	}

	var req DeleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		apierrors.BadRequest(c, "Task ID is required")
		return
	}

	if err := h.taskService.Delete(req.ID); err != nil {
		respondTaskError(c, err, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

func respondTaskError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrInvalidTaskStatus):
		apierrors.ValidationFailed(c, map[string]string{
			"status": "Status must be one of At-Risk, In-progress, Done",
		})
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, fallback)
	}
}
