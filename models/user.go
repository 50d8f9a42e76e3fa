package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the persisted account record. Password holds a bcrypt hash and is
// never serialized; neither are the raw photo bytes.
type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Username string    `json:"username" gorm:"type:text;not null;uniqueIndex:idx_users_username"`
	Name     string    `json:"name" gorm:"type:text;not null"`
	Email    string    `json:"email" gorm:"type:text;not null;uniqueIndex:idx_users_email"`
	About    string    `json:"about,omitempty" gorm:"type:text"`

	Password string `json:"-" gorm:"type:text;not null"`

	// Profile photo; same storage scheme as Blog's featured image.
	PhotoData []byte `json:"-" gorm:"column:photo_data"`
	PhotoType string `json:"-" gorm:"column:photo_type;type:text"`
	PhotoKey  string `json:"-" gorm:"column:photo_key;type:text"`

	IsAdmin bool `json:"isAdmin" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
