package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/blog-platform-backend/models"
)

// newTestDB opens a fresh in-memory database with the full schema. The pool
// is pinned to one connection so every query sees the same memory database.
func newTestDB(t *testing.T) Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Blog{},
	))

	return New(db)
}

func newTestUser(t *testing.T, db Database, username string) *models.User {
	t.Helper()

	user, err := db.UserRepo().Create(&models.User{
		Username: username,
		Name:     "Test User",
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	})
	require.NoError(t, err)
	return user
}
