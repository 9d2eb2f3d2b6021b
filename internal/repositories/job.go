package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"jobcloud/backend/internal/models"
)

type JobRepository interface {
	Create(job *models.Job) error
	FindAll() ([]models.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

// Create implements JobRepository.
func (j *jobRepository) Create(job *models.Job) error {
	if err := j.db.Create(&job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// FindAll implements JobRepository. Listings are newest first; the result set
// is unbounded.
func (j *jobRepository) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	if err := j.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}
