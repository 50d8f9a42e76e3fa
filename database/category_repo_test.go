package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/blog-platform-backend/errs"
)

func TestCategoryCreate(t *testing.T) {
	db := newTestDB(t)
	repo := db.CategoryRepo()

	category, err := repo.Create("Web Development")
	require.NoError(t, err)
	assert.Equal(t, "Web Development", category.Name)
	assert.Equal(t, "web-development", category.Slug)
	assert.NotEqual(t, uuid.Nil, category.ID)
}

func TestCategoryCreateConflictOnNormalizedName(t *testing.T) {
	db := newTestDB(t)
	repo := db.CategoryRepo()

	_, err := repo.Create("Web Development")
	require.NoError(t, err)

	// Different casing collapses to the same slug
	_, err = repo.Create("web development")
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))

	_, err = repo.Create("  Web   Development  ")
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
}

func TestCategoryCreateEmptyName(t *testing.T) {
	db := newTestDB(t)

	_, err := db.CategoryRepo().Create("   ")
	require.Error(t, err)
	assert.True(t, errs.IsBadRequest(err))
}

func TestCategoryFindBySlug(t *testing.T) {
	db := newTestDB(t)
	repo := db.CategoryRepo()

	created, err := repo.Create("Node JS")
	require.NoError(t, err)

	found, err := repo.FindBySlug("node-js")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindBySlug("no-such-category")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestCategoryUpdateRecomputesSlug(t *testing.T) {
	db := newTestDB(t)
	repo := db.CategoryRepo()

	created, err := repo.Create("Node JS")
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, "Deno Runtime")
	require.NoError(t, err)
	assert.Equal(t, "Deno Runtime", updated.Name)
	assert.Equal(t, "deno-runtime", updated.Slug)

	// Old slug no longer resolves
	_, err = repo.FindBySlug("node-js")
	assert.True(t, errs.IsNotFound(err))
}

func TestCategoryUpdateConflict(t *testing.T) {
	db := newTestDB(t)
	repo := db.CategoryRepo()

	_, err := repo.Create("React")
	require.NoError(t, err)
	other, err := repo.Create("Vue")
	require.NoError(t, err)

	_, err = repo.Update(other.ID, "react")
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))

	// Renaming to its own name is not a conflict
	updated, err := repo.Update(other.ID, "Vue")
	require.NoError(t, err)
	assert.Equal(t, "vue", updated.Slug)
}

func TestCategoryDeleteTwice(t *testing.T) {
	db := newTestDB(t)
	repo := db.CategoryRepo()

	created, err := repo.Create("Ephemeral")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	err = repo.Delete(created.ID)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}
