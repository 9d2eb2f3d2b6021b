package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Company     string    `gorm:"type:text;not null" json:"company"`
	Location    string    `gorm:"type:text" json:"location"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Salary      string    `gorm:"type:text" json:"salary"`
	Experience  string    `gorm:"type:text" json:"experience"`
	Skills      string    `gorm:"type:text" json:"skills"`

	// CreatedAt is the posting timestamp and the sole sort key for listings.
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}

type PostJobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	Experience  string `json:"experience"`
	Skills      string `json:"skills"`
}
