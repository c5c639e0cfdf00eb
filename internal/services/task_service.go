package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskmanager/internal/models"
	"taskmanager/internal/repository"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// TaskService handles task business logic.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Name        string
	Description string
	Status      models.TaskStatus
	ProjectID   string
	DueAt       time.Time
}

// UpdateTaskInput represents a partial task update.
type UpdateTaskInput struct {
	Name        *string
	Description *string
	Status      *models.TaskStatus
	DueAt       *time.Time
}

// ListByProject returns a project's tasks ordered by creation date descending.
func (s *TaskService) ListByProject(projectID string) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Create creates a new task within an existing project.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	if !input.Status.Valid() {
		return nil, ErrInvalidTaskStatus
	}

	if _, err := s.projectRepo.FindByID(input.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	task := &models.Task{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
		ProjectID:   input.ProjectID,
		DueAt:       input.DueAt,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Update applies a partial update to an existing task.
func (s *TaskService) Update(id string, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidTaskStatus
		}
		task.Status = *input.Status
	}
	if input.DueAt != nil {
		task.DueAt = *input.DueAt
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete removes a task.
func (s *TaskService) Delete(id string) error {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
