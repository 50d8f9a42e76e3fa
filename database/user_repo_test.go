package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/blog-platform-backend/errs"
	"github.com/rpupo63/blog-platform-backend/models"
)

func TestUserCreateConflicts(t *testing.T) {
	db := newTestDB(t)
	repo := db.UserRepo()

	_, err := repo.Create(&models.User{
		Username: "jane",
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "hash",
	})
	require.NoError(t, err)

	// Same email, different username
	_, err = repo.Create(&models.User{
		Username: "jane2",
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "hash",
	})
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))

	// Same username, different email
	_, err = repo.Create(&models.User{
		Username: "jane",
		Name:     "Jane",
		Email:    "jane+alt@example.com",
		Password: "hash",
	})
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
}

func TestUserLookups(t *testing.T) {
	db := newTestDB(t)
	repo := db.UserRepo()

	created := newTestUser(t, db, "lookup")

	byID, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, byID.Username)

	byUsername, err := repo.FindByUsername("lookup")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)

	byEmail, err := repo.FindByEmail("lookup@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.FindByEmail("nobody@example.com")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestUserUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := db.UserRepo()

	user := newTestUser(t, db, "updatable")
	user.About = "writes about Go"

	updated, err := repo.Update(user)
	require.NoError(t, err)
	assert.Equal(t, "writes about Go", updated.About)

	reloaded, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "writes about Go", reloaded.About)
}
