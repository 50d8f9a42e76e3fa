package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/blog-platform-backend/auth"
	"github.com/rpupo63/blog-platform-backend/database"
	"github.com/rpupo63/blog-platform-backend/models"
	"github.com/rpupo63/blog-platform-backend/services"
)

// newTestEnv stands up the full router against a fresh in-memory database
func newTestEnv(t *testing.T) (*chi.Mux, database.Database, *auth.JWT) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Blog{},
	))

	db := database.New(gdb)

	j, err := auth.NewJWT("test-secret", time.Hour)
	require.NoError(t, err)

	router := newRouter(db, j, services.RowPhotoStore{})
	return router, db, j
}

// newSignedInUser creates a user directly in the database and returns a
// bearer token for them
func newSignedInUser(t *testing.T, db database.Database, j *auth.JWT, username string, isAdmin bool) (*models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user, err := db.UserRepo().Create(&models.User{
		Username: username,
		Name:     "Test " + username,
		Email:    username + "@example.com",
		Password: hash,
		IsAdmin:  isAdmin,
	})
	require.NoError(t, err)

	token, err := j.Sign(user.ID)
	require.NoError(t, err)

	return user, token
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// newPhotoForm builds a multipart body with a single "photo" file field
func newPhotoForm(t *testing.T, fieldValues map[string]string, photo []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fieldValues {
		require.NoError(t, writer.WriteField(key, value))
	}

	if photo != nil {
		part, err := writer.CreateFormFile("photo", "photo.png")
		require.NoError(t, err)
		_, err = part.Write(photo)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}
