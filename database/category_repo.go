package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/blog-platform-backend/errs"
	"github.com/rpupo63/blog-platform-backend/models"
	"github.com/rpupo63/blog-platform-backend/slug"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// Create persists a new category. The slug is a pure function of the name, so
// the pre-check on the normalized slug rejects names that collapse to an
// existing identity ("Web Development" vs "web development"). The unique
// index on the slug column settles concurrent creates the same way.
func (r *CategoryRepo) Create(name string) (*models.Category, error) {
	s := slug.Make(name)
	if s == "" {
		return nil, errs.NewValidationError("name", "category name is required")
	}

	var count int64
	if err := r.db.Model(&models.Category{}).Where("slug = ?", s).Count(&count).Error; err != nil {
		return nil, errs.NewDatabaseError("check", "category", err)
	}
	if count > 0 {
		return nil, errs.NewConflictError("category already exists")
	}

	category := &models.Category{Name: name, Slug: s}
	if err := r.db.Create(category).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "category", err)
	}
	return category, nil
}

// FindAll returns all categories, newest first
func (r *CategoryRepo) FindAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("created_at DESC").Find(&categories).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "categories", err)
	}
	return categories, nil
}

// FindBySlug returns the category with the given slug
func (r *CategoryRepo) FindBySlug(s string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "slug = ?", s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("category not found")
		}
		return nil, errs.NewDatabaseError("find", "category", err)
	}
	return &category, nil
}

// FindByID returns the category with the given id
func (r *CategoryRepo) FindByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("category not found")
		}
		return nil, errs.NewDatabaseError("find", "category", err)
	}
	return &category, nil
}

// Update renames a category, recomputing its slug from the new name
func (r *CategoryRepo) Update(id uuid.UUID, name string) (*models.Category, error) {
	category, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	s := slug.Make(name)
	if s == "" {
		return nil, errs.NewValidationError("name", "category name is required")
	}

	if s != category.Slug {
		var count int64
		if err := r.db.Model(&models.Category{}).Where("slug = ? AND id <> ?", s, id).Count(&count).Error; err != nil {
			return nil, errs.NewDatabaseError("check", "category", err)
		}
		if count > 0 {
			return nil, errs.NewConflictError("category already exists")
		}
	}

	category.Name = name
	category.Slug = s
	if err := r.db.Save(category).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "category", err)
	}
	return category, nil
}

// Delete removes a category by id. A repeat delete reports not found.
func (r *CategoryRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return errs.NewDatabaseError("delete", "category", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFoundError("category not found or already deleted")
	}
	return nil
}
