package models

import (
	"time"

	"github.com/google/uuid"
)

// Application is a candidate submission against the board as a whole; it is
// not linked to a Job or User row.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Fullname    string    `gorm:"type:text" json:"fullname"`
	Email       string    `gorm:"type:text" json:"email"`
	Phone       string    `gorm:"type:text" json:"phone"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter"`

	// ResumePath is the relative path of the uploaded document, if any.
	ResumePath *string   `gorm:"type:text" json:"resume_path"`
	CreatedAt  time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (a *Application) TableName() string {
	return "applications"
}
