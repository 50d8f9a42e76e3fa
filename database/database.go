package database

import (
	"gorm.io/gorm"
)

type Database struct {
	blogRepo     *BlogRepo
	categoryRepo *CategoryRepo
	tagRepo      *TagRepo
	userRepo     *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		blogRepo:     NewBlogRepo(db),
		categoryRepo: NewCategoryRepo(db),
		tagRepo:      NewTagRepo(db),
		userRepo:     NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}
