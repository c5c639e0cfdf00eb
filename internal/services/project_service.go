package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskmanager/internal/models"
	"taskmanager/internal/repository"
	"taskmanager/internal/utils"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProjectInput represents input for creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
	CreatedBy   string
}

// UpdateProjectInput represents a partial project update.
type UpdateProjectInput struct {
	Name        *string
	Description *string
}

// List returns projects ordered by creation date descending.
func (s *ProjectService) List(params utils.PaginationParams) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// Create creates a new project owned by the given user.
func (s *ProjectService) Create(input CreateProjectInput) (*models.Project, error) {
	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// Update applies a partial update to an existing project.
func (s *ProjectService) Update(id string, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// Delete removes a project and its tasks.
func (s *ProjectService) Delete(id string) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
