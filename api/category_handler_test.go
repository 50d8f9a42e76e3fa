package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	router, db, j := newTestEnv(t)
	_, token := newSignedInUser(t, db, j, "admin", true)

	// Create
	rec := doJSON(t, router, http.MethodPost, "/category", token, map[string]string{"name": "Web Development"})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody(t, rec)
	assert.Equal(t, "Web Development", created["name"])
	assert.Equal(t, "web-development", created["slug"])
	id, ok := created["id"].(string)
	require.True(t, ok)

	// A name that normalizes to the same slug is a conflict
	rec = doJSON(t, router, http.MethodPost, "/category", token, map[string]string{"name": "web development"})
	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])

	// Listing is public
	rec = doJSON(t, router, http.MethodGet, "/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	// Rename recomputes the slug
	rec = doJSON(t, router, http.MethodPut, "/category/"+id, token, map[string]string{"name": "Backend"})
	require.Equal(t, http.StatusOK, rec.Code)
	renamed := decodeBody(t, rec)
	assert.Equal(t, "backend", renamed["slug"])

	// Delete, then a repeat delete reports not found
	rec = doJSON(t, router, http.MethodDelete, "/category/"+id, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/category/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryCreateMissingName(t *testing.T) {
	router, db, j := newTestEnv(t)
	_, token := newSignedInUser(t, db, j, "admin", true)

	rec := doJSON(t, router, http.MethodPost, "/category", token, map[string]string{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "name", body["field"])
}

func TestGetCategoryResolvesBlogs(t *testing.T) {
	router, db, j := newTestEnv(t)
	admin, token := newSignedInUser(t, db, j, "admin", true)

	category, err := db.CategoryRepo().Create("Resolved")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/blog", token, map[string]any{
		"title":      "Post In Category",
		"body":       "content",
		"categories": []string{category.ID.String()},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/category/resolved", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Contains(t, body, "category")
	require.Contains(t, body, "blogs")

	blogs, ok := body["blogs"].([]any)
	require.True(t, ok)
	require.Len(t, blogs, 1)

	blog := blogs[0].(map[string]any)
	assert.Equal(t, "post-in-category", blog["slug"])

	postedBy := blog["postedBy"].(map[string]any)
	assert.Equal(t, admin.Username, postedBy["username"])
}

func TestGetCategoryUnknownSlug(t *testing.T) {
	router, _, _ := newTestEnv(t)

	rec := doJSON(t, router, http.MethodGet, "/category/missing", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "category not found", body["error"])
	assert.Equal(t, "error", body["status"])
}
