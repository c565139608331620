package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type URL struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    *string `gorm:"type:uuid;index" json:"user_id,omitempty"` // Nullable for anonymous
	User      *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ShortCode string  `gorm:"column:code;unique;not null;size:155;index" json:"shortCode"`
	TargetURL string  `gorm:"column:target_url;not null;type:text" json:"targetURL"`
	// Set only for anonymous links, lets a client track its own free usage.
	DeviceID  *string    `gorm:"size:255" json:"device_id,omitempty"`
	CreatedAt time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName overrides the default pluralized name
func (URL) TableName() string {
	return "urls"
}

func (u *URL) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
