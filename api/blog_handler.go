package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/blog-platform-backend/database"
	"github.com/rpupo63/blog-platform-backend/errs"
	"github.com/rpupo63/blog-platform-backend/models"
	"github.com/rpupo63/blog-platform-backend/services"
)

const maxPhotoSize = 10 << 20 // 10MB

type blogHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogRepo     *database.BlogRepo
	categoryRepo *database.CategoryRepo
	tagRepo      *database.TagRepo
	photos       services.PhotoStore
	validate     *validator.Validate
}

func newBlogHandler(blogRepo *database.BlogRepo, categoryRepo *database.CategoryRepo, tagRepo *database.TagRepo, photos services.PhotoStore) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogRepo:     blogRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		photos:       photos,
		validate:     validator.New(),
	}
}

// createBlog creates a new blog attributed to the authenticated principal.
// Category and tag references must point at existing rows.
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, ok := userIDFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req blogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		blog := &models.Blog{
			Title:    req.Title,
			Body:     req.Body,
			Excerpt:  req.Excerpt,
			AuthorID: authorID,
		}

		created, err := h.blogRepo.Create(blog, req.CategoryIDs, req.TagIDs)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// getAllBlogs lists every blog as a display projection, newest first
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, toBlogSummaries(blogs))
	}
}

// getAllBlogsCategoriesTags returns one composite payload of paged blogs
// plus every category and tag, for list pages that render all three. The
// three reads are independent, so they run concurrently.
func (h blogHandler) getAllBlogsCategoriesTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if req.Limit <= 0 {
			req.Limit = 10
		}
		if req.Skip < 0 {
			req.Skip = 0
		}

		var (
			blogs      []models.Blog
			categories []models.Category
			tags       []models.Tag
			size       int64
		)

		var g errgroup.Group
		g.Go(func() error {
			var err error
			if blogs, err = h.blogRepo.FindPage(req.Skip, req.Limit); err != nil {
				return err
			}
			size, err = h.blogRepo.Count()
			return err
		})
		g.Go(func() error {
			var err error
			categories, err = h.categoryRepo.FindAll()
			return err
		})
		g.Go(func() error {
			var err error
			tags, err = h.tagRepo.FindAll()
			return err
		})

		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"blogs":      toBlogSummaries(blogs),
			"categories": categories,
			"tags":       tags,
			"size":       size,
		})
	}
}

// getBlog returns the full blog, references expanded
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := chi.URLParam(r, "slug")
		if s == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		blog, err := h.blogRepo.FindBySlug(s)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

// updateBlog replaces a blog's content and reference sets; a title change
// recomputes the slug
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := chi.URLParam(r, "slug")
		if s == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		blog, err := h.blogRepo.FindBySlug(s)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req blogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		blog.Title = req.Title
		blog.Body = req.Body
		blog.Excerpt = req.Excerpt

		updated, err := h.blogRepo.Update(blog, req.CategoryIDs, req.TagIDs)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteBlog removes a blog by slug; a repeat delete reports not found
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := chi.URLParam(r, "slug")
		if s == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		if err := h.blogRepo.Delete(s); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog deleted successfully",
		})
	}
}

// uploadBlogPhoto attaches a featured image to a blog. The form is parsed
// per-request; the photo store decides whether bytes stay on the row.
func (h blogHandler) uploadBlogPhoto() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := chi.URLParam(r, "slug")
		if s == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		blog, err := h.blogRepo.FindBySlug(s)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		data, contentType, err := readPhotoUpload(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		key, err := h.photos.Save(r.Context(), "blogs/"+blog.ID.String(), contentType, data)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to store photo", err))
			return
		}

		if key != "" {
			blog.PhotoData = nil
			blog.PhotoKey = key
		} else {
			blog.PhotoData = data
			blog.PhotoKey = ""
		}
		blog.PhotoType = contentType

		if err := h.blogRepo.Save(blog); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "photo uploaded successfully",
		})
	}
}

// getBlogPhoto serves the featured image bytes with the stored content type
func (h blogHandler) getBlogPhoto() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := chi.URLParam(r, "slug")
		if s == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		blog, err := h.blogRepo.FindBySlug(s)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		data := blog.PhotoData
		if blog.PhotoKey != "" {
			if data, err = h.photos.Load(r.Context(), blog.PhotoKey); err != nil {
				h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to load photo", err))
				return
			}
		}
		if len(data) == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("photo not found"))
			return
		}

		h.responder.WriteBinary(w, blog.PhotoType, data)
	}
}

// readPhotoUpload parses the multipart "photo" field, enforcing the size cap
func readPhotoUpload(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		return nil, "", errs.NewBadRequestError("photo could not be uploaded")
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("photo")
	if err != nil {
		return nil, "", errs.NewValidationError("photo", "photo is required")
	}
	defer file.Close()

	if header.Size > maxPhotoSize {
		return nil, "", errs.NewValidationError("photo", "image should be less than 10MB")
	}

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoSize+1))
	if err != nil {
		return nil, "", errs.NewBadRequestError("photo could not be read")
	}
	if len(data) > maxPhotoSize {
		return nil, "", errs.NewValidationError("photo", "image should be less than 10MB")
	}

	return data, header.Header.Get("Content-Type"), nil
}
