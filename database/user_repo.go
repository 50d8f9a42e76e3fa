package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/blog-platform-backend/errs"
	"github.com/rpupo63/blog-platform-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// Create persists a new user, rejecting taken emails and usernames
func (r *UserRepo) Create(user *models.User) (*models.User, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return nil, errs.NewDatabaseError("check", "user", err)
	}
	if count > 0 {
		return nil, errs.NewConflictError("email is already taken")
	}

	if err := r.db.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return nil, errs.NewDatabaseError("check", "user", err)
	}
	if count > 0 {
		return nil, errs.NewConflictError("username is already taken")
	}

	if err := r.db.Create(user).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "user", err)
	}
	return user, nil
}

// FindByID returns the user with the given id
func (r *UserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("user not found")
		}
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	return &user, nil
}

// FindByUsername returns the user with the given username
func (r *UserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("user not found")
		}
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	return &user, nil
}

// FindByEmail returns the user with the given email
func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("user with that email does not exist")
		}
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	return &user, nil
}

// Update persists an already-loaded, mutated user record
func (r *UserRepo) Update(user *models.User) (*models.User, error) {
	if err := r.db.Save(user).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "user", err)
	}
	return user, nil
}
