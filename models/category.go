package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a content category referenced by blogs
type Category struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Name string    `json:"name" gorm:"type:text;not null;uniqueIndex:idx_categories_name"`
	Slug string    `json:"slug" gorm:"type:text;not null;uniqueIndex:idx_categories_slug"`

	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
