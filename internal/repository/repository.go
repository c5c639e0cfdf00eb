package repository

import (
	"taskmanager/internal/models"
	"taskmanager/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// List retrieves users ordered by creation date descending
	List(params utils.PaginationParams) ([]models.User, int64, error)

	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Update saves changes to an existing user
	Update(user *models.User) error

	// Delete removes a user; owned projects and their tasks cascade
	Delete(id string) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// List retrieves projects ordered by creation date descending
	List(params utils.PaginationParams) ([]models.Project, int64, error)

	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id string) (*models.Project, error)

	// Update saves changes to an existing project
	Update(project *models.Project) error

	// Delete removes a project; its tasks cascade
	Delete(id string) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// ListByProject retrieves a project's tasks ordered by creation date descending
	ListByProject(projectID string) ([]models.Task, error)

	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id string) (*models.Task, error)

	// Update saves changes to an existing task
	Update(task *models.Task) error

	// Delete removes a task
	Delete(id string) error
}
