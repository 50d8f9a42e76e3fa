package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/blog-platform-backend/auth"
	"github.com/rpupo63/blog-platform-backend/database"
	"github.com/rpupo63/blog-platform-backend/errs"
	"github.com/rpupo63/blog-platform-backend/models"
	"github.com/rpupo63/blog-platform-backend/slug"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	jwt       *auth.JWT
	validate  *validator.Validate
}

func newAuthHandler(userRepo *database.UserRepo, j *auth.JWT) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		jwt:       j,
		validate:  validator.New(),
	}
}

// signup registers a new user. The username is derived from the email's
// local part; a taken email or username is a conflict.
func (h authHandler) signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		username := slug.Make(strings.SplitN(req.Email, "@", 2)[0])
		if username == "" {
			h.responder.WriteError(w, errs.NewValidationError("email", "email is invalid"))
			return
		}

		passwordHash, err := auth.HashPassword(req.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to hash password", err))
			return
		}

		user := &models.User{
			Username: username,
			Name:     req.Name,
			Email:    req.Email,
			Password: passwordHash,
		}

		created, err := h.userRepo.Create(user)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, toUserProfile(created))
	}
}

// signin authenticates by email and password and issues a bearer token
func (h authHandler) signin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signinRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		user, err := h.userRepo.FindByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if !auth.CheckPassword(user.Password, req.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("email and password do not match"))
			return
		}

		token, err := h.jwt.Sign(user.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to sign token", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"token": token,
			"user":  toUserProfile(user),
		})
	}
}

// signout is a stateless acknowledgment; the token simply expires
func (h authHandler) signout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "signout success",
		})
	}
}
