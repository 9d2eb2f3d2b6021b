package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"jobcloud/backend/internal/models"
)

// profileColumns is the fixed projection returned to clients; the credential
// column is never selected.
var profileColumns = []string{
	"id", "fullname", "mobile", "dob", "gender", "address", "city", "state",
	"education", "experience", "skills", "email", "resume", "created_at",
}

type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindProfileByEmail(email string) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// Create implements UserRepository.
func (u *userRepository) Create(user *models.User) error {
	if err := u.db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// FindByEmail implements UserRepository. Email carries no unique constraint,
// so this silently returns the first matching row.
func (u *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := u.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// FindProfileByEmail implements UserRepository.
func (u *userRepository) FindProfileByEmail(email string) (*models.User, error) {
	var user models.User
	if err := u.db.Select(profileColumns).Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}
