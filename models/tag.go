package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag represents a free-form label referenced by blogs
type Tag struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Name string    `json:"name" gorm:"type:text;not null;uniqueIndex:idx_tags_name"`
	Slug string    `json:"slug" gorm:"type:text;not null;uniqueIndex:idx_tags_slug"`

	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
