package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName    string    `gorm:"column:firstname;not null;size:55" json:"firstname"`
	LastName     string    `gorm:"column:lastname;not null;size:55" json:"lastname"`
	Email        string    `gorm:"unique;not null;size:255" json:"email"`
	Salt         string    `gorm:"not null;size:255" json:"-"`
	PasswordHash string    `gorm:"column:password;not null;size:255" json:"-"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	URLs         []URL     `gorm:"foreignKey:UserID" json:"urls,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
