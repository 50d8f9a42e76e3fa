package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog represents a published post with its category, tag and author references
type Blog struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Title   string    `json:"title" gorm:"type:text;not null"`
	Slug    string    `json:"slug" gorm:"type:text;not null;uniqueIndex:idx_blogs_slug"`
	Body    string    `json:"body" gorm:"type:text;not null"`
	Excerpt string    `json:"excerpt,omitempty" gorm:"type:text"`

	// Featured image. Bytes live on the row unless a photo store offloaded
	// them, in which case PhotoKey points at the stored object.
	PhotoData []byte `json:"-" gorm:"column:photo_data"`
	PhotoType string `json:"-" gorm:"column:photo_type;type:text"`
	PhotoKey  string `json:"-" gorm:"column:photo_key;type:text"`

	AuthorID   uuid.UUID  `json:"postedBy" gorm:"type:uuid;not null;index:idx_blogs_author_id"`
	Author     User       `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Categories []Category `json:"categories,omitempty" gorm:"many2many:blog_categories;constraint:OnDelete:CASCADE"`
	Tags       []Tag      `json:"tags,omitempty" gorm:"many2many:blog_tags;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

// BeforeCreate assigns an ID so inserts work the same on every dialect
func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
