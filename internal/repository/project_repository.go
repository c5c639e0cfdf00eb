package repository

import (
	"gorm.io/gorm"

	"taskmanager/internal/database"
	"taskmanager/internal/models"
	"taskmanager/internal/utils"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// List retrieves projects ordered by creation date descending
func (r *GormProjectRepository) List(params utils.PaginationParams) ([]models.Project, int64, error) {
	var total int64
	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	err := r.db.
		Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Update saves changes to an existing project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project. Its tasks are removed in the same transaction so
// the cascade holds even where the database lacks the FK constraint.
func (r *GormProjectRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}
