package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"jobcloud/backend/internal/models"
)

type ApplicationRepository interface {
	Create(application *models.Application) error
}

type applicationRepository struct {
	db *gorm.DB
}

// Create implements ApplicationRepository.
func (a *applicationRepository) Create(application *models.Application) error {
	if err := a.db.Create(&application).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}
