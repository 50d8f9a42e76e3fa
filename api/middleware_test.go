package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutesRejectAnonymous(t *testing.T) {
	router, _, _ := newTestEnv(t)

	rec := doJSON(t, router, http.MethodPost, "/category", "", map[string]string{"name": "Go"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
}

func TestAdminRoutesRejectGarbageToken(t *testing.T) {
	router, _, _ := newTestEnv(t)

	rec := doJSON(t, router, http.MethodPost, "/category", "not-a-token", map[string]string{"name": "Go"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	router, db, j := newTestEnv(t)
	_, token := newSignedInUser(t, db, j, "reader", false)

	rec := doJSON(t, router, http.MethodPost, "/category", token, map[string]string{"name": "Go"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRoutesAllowAdmin(t *testing.T) {
	router, db, j := newTestEnv(t)
	_, token := newSignedInUser(t, db, j, "admin", true)

	rec := doJSON(t, router, http.MethodPost, "/category", token, map[string]string{"name": "Go"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSignedInRoutesRequireToken(t *testing.T) {
	router, db, j := newTestEnv(t)
	_, token := newSignedInUser(t, db, j, "reader", false)

	rec := doJSON(t, router, http.MethodGet, "/user/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/user/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
