package api

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/blog-platform-backend/auth"
	"github.com/rpupo63/blog-platform-backend/database"
	"github.com/rpupo63/blog-platform-backend/errs"
	"github.com/rpupo63/blog-platform-backend/services"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	blogRepo  *database.BlogRepo
	photos    services.PhotoStore
}

func newUserHandler(userRepo *database.UserRepo, blogRepo *database.BlogRepo, photos services.PhotoStore) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		blogRepo:  blogRepo,
		photos:    photos,
	}
}

// getOwnProfile returns the authenticated user's safe profile
func (h userHandler) getOwnProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, toUserProfile(user))
	}
}

// getPublicProfile returns a user's safe profile plus their authored blogs
// as display projections
func (h userHandler) getPublicProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		if username == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing username"))
			return
		}

		user, err := h.userRepo.FindByUsername(username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blogs, err := h.blogRepo.FindByAuthorID(user.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"user":  toUserProfile(user),
			"blogs": toBlogSummaries(blogs),
		})
	}
}

// updateProfile updates the authenticated user's record from a multipart
// form. Only the allow-listed fields (name, email, about, password, photo)
// are applied; anything else submitted is ignored.
func (h userHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("form could not be parsed"))
			return
		}
		defer r.MultipartForm.RemoveAll()

		if name := r.FormValue("name"); name != "" {
			user.Name = name
		}
		if email := r.FormValue("email"); email != "" {
			user.Email = email
		}
		if about := r.FormValue("about"); about != "" {
			user.About = about
		}
		if password := r.FormValue("password"); password != "" {
			if len(password) < 6 {
				h.responder.WriteError(w, errs.NewValidationError("password", "password should be at least 6 characters long"))
				return
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to hash password", err))
				return
			}
			user.Password = hash
		}

		if file, header, err := r.FormFile("photo"); err == nil {
			defer file.Close()

			if header.Size > maxPhotoSize {
				h.responder.WriteError(w, errs.NewValidationError("photo", "image should be less than 10MB"))
				return
			}

			data, err := io.ReadAll(file)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("photo could not be read"))
				return
			}

			contentType := header.Header.Get("Content-Type")
			key, err := h.photos.Save(r.Context(), "users/"+user.ID.String(), contentType, data)
			if err != nil {
				h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to store photo", err))
				return
			}

			if key != "" {
				user.PhotoData = nil
				user.PhotoKey = key
			} else {
				user.PhotoData = data
				user.PhotoKey = ""
			}
			user.PhotoType = contentType
		}

		updated, err := h.userRepo.Update(user)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, toUserProfile(updated))
	}
}

// getUserPhoto serves the profile photo bytes with the stored content type
func (h userHandler) getUserPhoto() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		if username == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing username"))
			return
		}

		user, err := h.userRepo.FindByUsername(username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		data := user.PhotoData
		if user.PhotoKey != "" {
			if data, err = h.photos.Load(r.Context(), user.PhotoKey); err != nil {
				h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to load photo", err))
				return
			}
		}
		if len(data) == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("photo not found"))
			return
		}

		h.responder.WriteBinary(w, user.PhotoType, data)
	}
}
