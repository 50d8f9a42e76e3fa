package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/blog-platform-backend/database"
	"github.com/rpupo63/blog-platform-backend/errs"
)

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.CategoryRepo
	blogRepo     *database.BlogRepo
	validate     *validator.Validate
}

func newCategoryHandler(categoryRepo *database.CategoryRepo, blogRepo *database.BlogRepo) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
		blogRepo:     blogRepo,
		validate:     validator.New(),
	}
}

// createCategory creates a new category from a name
func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req nameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(req); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("name", "name is required"))
			return
		}

		category, err := h.categoryRepo.Create(req.Name)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, category)
	}
}

// getAllCategories lists every category, newest first
func (h categoryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, categories)
	}
}

// getCategory resolves a category and every blog referencing it into one
// composite payload
func (h categoryHandler) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := chi.URLParam(r, "slug")
		if s == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		category, err := h.categoryRepo.FindBySlug(s)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blogs, err := h.blogRepo.FindByCategoryID(category.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"category": category,
			"blogs":    toBlogSummaries(blogs),
		})
	}
}

// updateCategory renames a category; the slug is recomputed from the new name
func (h categoryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid category id"))
			return
		}

		var req nameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(req); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("name", "name is required"))
			return
		}

		category, err := h.categoryRepo.Update(id, req.Name)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// deleteCategory removes a category by id; a repeat delete reports not found
func (h categoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid category id"))
			return
		}

		if err := h.categoryRepo.Delete(id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "category deleted successfully",
		})
	}
}
