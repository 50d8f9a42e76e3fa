package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/blog-platform-backend/errs"
	"github.com/rpupo63/blog-platform-backend/models"
	"github.com/rpupo63/blog-platform-backend/slug"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// withRefs expands the category, tag and author references on every read
func (r *BlogRepo) withRefs() *gorm.DB {
	return r.db.Preload("Categories").Preload("Tags").Preload("Author")
}

// Create persists a new blog. The slug is derived from the title; a title
// that normalizes to an existing slug is a conflict. Category and tag ids
// must reference existing rows.
func (r *BlogRepo) Create(blog *models.Blog, categoryIDs, tagIDs []uuid.UUID) (*models.Blog, error) {
	s := slug.Make(blog.Title)
	if s == "" {
		return nil, errs.NewValidationError("title", "blog title is required")
	}

	var count int64
	if err := r.db.Model(&models.Blog{}).Where("slug = ?", s).Count(&count).Error; err != nil {
		return nil, errs.NewDatabaseError("check", "blog", err)
	}
	if count > 0 {
		return nil, errs.NewConflictError("blog with this title already exists")
	}

	categories, err := r.categoriesByIDs(categoryIDs)
	if err != nil {
		return nil, err
	}
	tags, err := r.tagsByIDs(tagIDs)
	if err != nil {
		return nil, err
	}

	blog.Slug = s
	blog.Categories = categories
	blog.Tags = tags
	if err := r.db.Create(blog).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "blog", err)
	}

	return r.FindBySlug(blog.Slug)
}

// FindAll returns all blogs with expanded references, newest first
func (r *BlogRepo) FindAll() ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.withRefs().Order("created_at DESC").Find(&blogs).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "blogs", err)
	}
	return blogs, nil
}

// FindPage returns a window of blogs for the composite listing endpoint
func (r *BlogRepo) FindPage(skip, limit int) ([]models.Blog, error) {
	var blogs []models.Blog
	q := r.withRefs().Order("created_at DESC").Offset(skip)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&blogs).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "blogs", err)
	}
	return blogs, nil
}

// Count returns the total number of blogs
func (r *BlogRepo) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Blog{}).Count(&count).Error; err != nil {
		return 0, errs.NewDatabaseError("count", "blogs", err)
	}
	return count, nil
}

// FindBySlug returns the blog with the given slug, references expanded
func (r *BlogRepo) FindBySlug(s string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.withRefs().First(&blog, "slug = ?", s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("blog not found")
		}
		return nil, errs.NewDatabaseError("find", "blog", err)
	}
	return &blog, nil
}

// Update persists changed fields on an already-loaded blog, recomputing the
// slug from the title and replacing the reference sets.
func (r *BlogRepo) Update(blog *models.Blog, categoryIDs, tagIDs []uuid.UUID) (*models.Blog, error) {
	s := slug.Make(blog.Title)
	if s == "" {
		return nil, errs.NewValidationError("title", "blog title is required")
	}

	if s != blog.Slug {
		var count int64
		if err := r.db.Model(&models.Blog{}).Where("slug = ? AND id <> ?", s, blog.ID).Count(&count).Error; err != nil {
			return nil, errs.NewDatabaseError("check", "blog", err)
		}
		if count > 0 {
			return nil, errs.NewConflictError("blog with this title already exists")
		}
	}

	categories, err := r.categoriesByIDs(categoryIDs)
	if err != nil {
		return nil, err
	}
	tags, err := r.tagsByIDs(tagIDs)
	if err != nil {
		return nil, err
	}

	blog.Slug = s
	if err := r.db.Save(blog).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "blog", err)
	}
	if err := r.db.Model(blog).Association("Categories").Replace(categories); err != nil {
		return nil, errs.NewDatabaseError("update", "blog categories", err)
	}
	if err := r.db.Model(blog).Association("Tags").Replace(tags); err != nil {
		return nil, errs.NewDatabaseError("update", "blog tags", err)
	}

	return r.FindBySlug(blog.Slug)
}

// Save persists in-place changes that do not touch identity or references,
// such as the featured image columns.
func (r *BlogRepo) Save(blog *models.Blog) error {
	if err := r.db.Save(blog).Error; err != nil {
		return errs.NewDatabaseError("update", "blog", err)
	}
	return nil
}

// Delete removes a blog by slug. A repeat delete reports not found.
func (r *BlogRepo) Delete(s string) error {
	res := r.db.Delete(&models.Blog{}, "slug = ?", s)
	if res.Error != nil {
		return errs.NewDatabaseError("delete", "blog", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFoundError("blog not found or already deleted")
	}
	return nil
}

// FindByCategoryID returns every blog referencing the category, newest first
func (r *BlogRepo) FindByCategoryID(id uuid.UUID) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.withRefs().
		Joins("JOIN blog_categories ON blog_categories.blog_id = blogs.id").
		Where("blog_categories.category_id = ?", id).
		Order("blogs.created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blogs by category", err)
	}
	return blogs, nil
}

// FindByTagID returns every blog referencing the tag, newest first
func (r *BlogRepo) FindByTagID(id uuid.UUID) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.withRefs().
		Joins("JOIN blog_tags ON blog_tags.blog_id = blogs.id").
		Where("blog_tags.tag_id = ?", id).
		Order("blogs.created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blogs by tag", err)
	}
	return blogs, nil
}

// FindByAuthorID returns every blog posted by the user, newest first
func (r *BlogRepo) FindByAuthorID(id uuid.UUID) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.withRefs().
		Where("author_id = ?", id).
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blogs by author", err)
	}
	return blogs, nil
}

// categoriesByIDs resolves category ids, rejecting references to missing rows
func (r *BlogRepo) categoriesByIDs(ids []uuid.UUID) ([]models.Category, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []models.Category
	if err := r.db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "categories", err)
	}
	if len(categories) != len(ids) {
		return nil, errs.NewBadRequestError("one or more categories do not exist")
	}
	return categories, nil
}

// tagsByIDs resolves tag ids, rejecting references to missing rows
func (r *BlogRepo) tagsByIDs(ids []uuid.UUID) ([]models.Tag, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	if err := r.db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "tags", err)
	}
	if len(tags) != len(ids) {
		return nil, errs.NewBadRequestError("one or more tags do not exist")
	}
	return tags, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
