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

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tagRepo   *database.TagRepo
	blogRepo  *database.BlogRepo
	validate  *validator.Validate
}

func newTagHandler(tagRepo *database.TagRepo, blogRepo *database.BlogRepo) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tagRepo:   tagRepo,
		blogRepo:  blogRepo,
		validate:  validator.New(),
	}
}

// createTag creates a new tag from a name
func (h tagHandler) createTag() http.HandlerFunc {
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

		tag, err := h.tagRepo.Create(req.Name)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, tag)
	}
}

// getAllTags lists every tag, newest first
func (h tagHandler) getAllTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.tagRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, tags)
	}
}

// getTag resolves a tag and every blog referencing it into one composite
// payload
func (h tagHandler) getTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := chi.URLParam(r, "slug")
		if s == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		tag, err := h.tagRepo.FindBySlug(s)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blogs, err := h.blogRepo.FindByTagID(tag.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"tag":   tag,
			"blogs": toBlogSummaries(blogs),
		})
	}
}

// updateTag renames a tag; the slug is recomputed from the new name
func (h tagHandler) updateTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid tag id"))
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

		tag, err := h.tagRepo.Update(id, req.Name)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, tag)
	}
}

// deleteTag removes a tag by id; a repeat delete reports not found
func (h tagHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid tag id"))
			return
		}

		if err := h.tagRepo.Delete(id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "tag deleted successfully",
		})
	}
}
