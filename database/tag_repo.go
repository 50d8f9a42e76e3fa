package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/blog-platform-backend/errs"
	"github.com/rpupo63/blog-platform-backend/models"
	"github.com/rpupo63/blog-platform-backend/slug"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// Create persists a new tag, rejecting names whose normalized slug already exists
func (r *TagRepo) Create(name string) (*models.Tag, error) {
	s := slug.Make(name)
	if s == "" {
		return nil, errs.NewValidationError("name", "tag name is required")
	}

	var count int64
	if err := r.db.Model(&models.Tag{}).Where("slug = ?", s).Count(&count).Error; err != nil {
		return nil, errs.NewDatabaseError("check", "tag", err)
	}
	if count > 0 {
		return nil, errs.NewConflictError("tag already exists")
	}

	tag := &models.Tag{Name: name, Slug: s}
	if err := r.db.Create(tag).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "tag", err)
	}
	return tag, nil
}

// FindAll returns all tags, newest first
func (r *TagRepo) FindAll() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Order("created_at DESC").Find(&tags).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "tags", err)
	}
	return tags, nil
}

// FindBySlug returns the tag with the given slug
func (r *TagRepo) FindBySlug(s string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, "slug = ?", s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("tag not found")
		}
		return nil, errs.NewDatabaseError("find", "tag", err)
	}
	return &tag, nil
}

// FindByID returns the tag with the given id
func (r *TagRepo) FindByID(id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("tag not found")
		}
		return nil, errs.NewDatabaseError("find", "tag", err)
	}
	return &tag, nil
}

// Update renames a tag, recomputing its slug from the new name
func (r *TagRepo) Update(id uuid.UUID, name string) (*models.Tag, error) {
	tag, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	s := slug.Make(name)
	if s == "" {
		return nil, errs.NewValidationError("name", "tag name is required")
	}

	if s != tag.Slug {
		var count int64
		if err := r.db.Model(&models.Tag{}).Where("slug = ? AND id <> ?", s, id).Count(&count).Error; err != nil {
			return nil, errs.NewDatabaseError("check", "tag", err)
		}
		if count > 0 {
			return nil, errs.NewConflictError("tag already exists")
		}
	}

	tag.Name = name
	tag.Slug = s
	if err := r.db.Save(tag).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "tag", err)
	}
	return tag, nil
}

// Delete removes a tag by id. A repeat delete reports not found.
func (r *TagRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Tag{}, "id = ?", id)
	if res.Error != nil {
		return errs.NewDatabaseError("delete", "tag", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFoundError("tag not found or already deleted")
	}
	return nil
}
