package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	router, _, _ := newTestEnv(t)

	rec := doJSON(t, router, http.MethodPost, "/signup", "", map[string]string{
		"name":     "Jane Doe",
		"email":    "jane.doe@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "jane.doe@example.com", body["email"])
	assert.Equal(t, "janedoe", body["username"])
	assert.Equal(t, false, body["isAdmin"])

	// The hash must never appear in any serialized form
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestSignupDuplicateEmail(t *testing.T) {
	router, _, _ := newTestEnv(t)

	payload := map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "password123",
	}

	rec := doJSON(t, router, http.MethodPost, "/signup", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/signup", "", payload)
	require.Equal(t, http.StatusConflict, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "email is already taken", body["error"])
}

func TestSignupRejectsShortPassword(t *testing.T) {
	router, _, _ := newTestEnv(t)

	rec := doJSON(t, router, http.MethodPost, "/signup", "", map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSigninIssuesUsableToken(t *testing.T) {
	router, _, _ := newTestEnv(t)

	rec := doJSON(t, router, http.MethodPost, "/signup", "", map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/signin", "", map[string]string{
		"email":    "jane@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	rec = doJSON(t, router, http.MethodGet, "/user/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	profile := decodeBody(t, rec)
	assert.Equal(t, "jane", profile["username"])
}

func TestSigninWrongPassword(t *testing.T) {
	router, db, j := newTestEnv(t)
	newSignedInUser(t, db, j, "jane", false)

	rec := doJSON(t, router, http.MethodPost, "/signin", "", map[string]string{
		"email":    "jane@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "email and password do not match", body["error"])
}

func TestSigninUnknownEmail(t *testing.T) {
	router, _, _ := newTestEnv(t)

	rec := doJSON(t, router, http.MethodPost, "/signin", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSignout(t *testing.T) {
	router, _, _ := newTestEnv(t)

	rec := doJSON(t, router, http.MethodGet, "/signout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
}
