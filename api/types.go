package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/rpupo63/blog-platform-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler     authHandler
	blogHandler     blogHandler
	categoryHandler categoryHandler
	tagHandler      tagHandler
	userHandler     userHandler
}

// ErrorResponse is the canonical error envelope
type ErrorResponse struct {
	Error  string `json:"error" example:"category not found"`
	Status string `json:"status" example:"error"`
	Field  string `json:"field,omitempty" example:"name"`
}

// Request payloads

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// nameRequest covers category and tag create/update
type nameRequest struct {
	Name string `json:"name" validate:"required"`
}

type blogRequest struct {
	Title       string      `json:"title" validate:"required"`
	Body        string      `json:"body" validate:"required"`
	Excerpt     string      `json:"excerpt"`
	CategoryIDs []uuid.UUID `json:"categories"`
	TagIDs      []uuid.UUID `json:"tags"`
}

type pageRequest struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// Display projections. These are what relationship reads expand references
// into: identity fields only, never bodies or binary columns.

type entityRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type authorRef struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
}

type blogSummary struct {
	ID         uuid.UUID   `json:"id"`
	Title      string      `json:"title"`
	Slug       string      `json:"slug"`
	Excerpt    string      `json:"excerpt,omitempty"`
	Categories []entityRef `json:"categories"`
	Tags       []entityRef `json:"tags"`
	PostedBy   authorRef   `json:"postedBy"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// userProfile is the client-safe projection of a user record. The hashed
// password and photo bytes never leave the models' json:"-" fields, but the
// projection keeps the response shape explicit anyway.
type userProfile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	About     string    `json:"about,omitempty"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCategoryRefs(categories []models.Category) []entityRef {
	refs := make([]entityRef, 0, len(categories))
	for _, c := range categories {
		refs = append(refs, entityRef{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	return refs
}

func toTagRefs(tags []models.Tag) []entityRef {
	refs := make([]entityRef, 0, len(tags))
	for _, t := range tags {
		refs = append(refs, entityRef{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}
	return refs
}

func toBlogSummary(blog models.Blog) blogSummary {
	return blogSummary{
		ID:         blog.ID,
		Title:      blog.Title,
		Slug:       blog.Slug,
		Excerpt:    blog.Excerpt,
		Categories: toCategoryRefs(blog.Categories),
		Tags:       toTagRefs(blog.Tags),
		PostedBy: authorRef{
			ID:       blog.Author.ID,
			Name:     blog.Author.Name,
			Username: blog.Author.Username,
		},
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}

// toBlogSummaries always returns a non-nil slice so zero matches serialize
// as an empty list, not null
func toBlogSummaries(blogs []models.Blog) []blogSummary {
	summaries := make([]blogSummary, 0, len(blogs))
	for _, b := range blogs {
		summaries = append(summaries, toBlogSummary(b))
	}
	return summaries
}

func toUserProfile(user *models.User) userProfile {
	return userProfile{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Email:     user.Email,
		About:     user.About,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}
