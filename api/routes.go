package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires public, signed-in and admin route groups
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Post("/signup", handlers.authHandler.signup())
		r.Post("/signin", handlers.authHandler.signin())
		r.Get("/signout", handlers.authHandler.signout())

		r.Get("/blogs", handlers.blogHandler.getAllBlogs())
		r.Post("/blogs-categories-tags", handlers.blogHandler.getAllBlogsCategoriesTags())
		r.Get("/blog/photo/{slug}", handlers.blogHandler.getBlogPhoto())
		r.Get("/blog/{slug}", handlers.blogHandler.getBlog())

		r.Get("/categories", handlers.categoryHandler.getAllCategories())
		r.Get("/category/{slug}", handlers.categoryHandler.getCategory())

		r.Get("/tags", handlers.tagHandler.getAllTags())
		r.Get("/tag/{slug}", handlers.tagHandler.getTag())

		r.Get("/profile/{username}", handlers.userHandler.getPublicProfile())
		r.Get("/user/photo/{username}", handlers.userHandler.getUserPhoto())
	})

	// Signed-in routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.requireSignin)

		r.Get("/user/profile", handlers.userHandler.getOwnProfile())
		r.Put("/user/update", handlers.userHandler.updateProfile())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.requireSignin)
		r.Use(authMiddleware.requireAdmin)

		r.Post("/blog", handlers.blogHandler.createBlog())
		r.Put("/blog/photo/{slug}", handlers.blogHandler.uploadBlogPhoto())
		r.Put("/blog/{slug}", handlers.blogHandler.updateBlog())
		r.Delete("/blog/{slug}", handlers.blogHandler.deleteBlog())

		r.Post("/category", handlers.categoryHandler.createCategory())
		r.Put("/category/{id}", handlers.categoryHandler.updateCategory())
		r.Delete("/category/{id}", handlers.categoryHandler.deleteCategory())

		r.Post("/tag", handlers.tagHandler.createTag())
		r.Put("/tag/{id}", handlers.tagHandler.updateTag())
		r.Delete("/tag/{id}", handlers.tagHandler.deleteTag())
	})
}
