package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Fullname string    `gorm:"type:text;not null" json:"fullname"`
	Mobile   string    `gorm:"type:text" json:"mobile"`
	DOB      string    `gorm:"column:dob;type:text" json:"dob"`
	Gender   string    `gorm:"type:text" json:"gender"`
	Address  string    `gorm:"type:text" json:"address"`
	City     string    `gorm:"type:text" json:"city"`
	State    string    `gorm:"type:text" json:"state"`

	Education  string `gorm:"type:text" json:"education"`
	Experience string `gorm:"type:text" json:"experience"`
	Skills     string `gorm:"type:text" json:"skills"`

	// Email is the login key but carries no unique index: duplicate signups
	// create duplicate rows and lookups take the first match.
	Email string `gorm:"type:text;index" json:"email"`

	// Password holds the bcrypt hash and never serializes to clients.
	Password string `gorm:"type:text" json:"-"`

	// Resume is the generated filename of the uploaded document, if any.
	Resume    *string   `gorm:"type:text" json:"resume"`
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (u *User) TableName() string {
	return "users"
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}
