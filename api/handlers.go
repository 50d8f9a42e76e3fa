package api

import (
	"github.com/rpupo63/blog-platform-backend/auth"
	"github.com/rpupo63/blog-platform-backend/database"
	"github.com/rpupo63/blog-platform-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, j *auth.JWT, photos services.PhotoStore) *routeHandlers {
	return &routeHandlers{
		authHandler:     newAuthHandler(db.UserRepo(), j),
		blogHandler:     newBlogHandler(db.BlogRepo(), db.CategoryRepo(), db.TagRepo(), photos),
		categoryHandler: newCategoryHandler(db.CategoryRepo(), db.BlogRepo()),
		tagHandler:      newTagHandler(db.TagRepo(), db.BlogRepo()),
		userHandler:     newUserHandler(db.UserRepo(), db.BlogRepo(), photos),
	}
}
