package repositories

import (
	"errors"

	"lexal/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for staff account operations
type UserRepository interface {
	// Create creates a new staff user
	Create(user *models.User) error

	// GetByID retrieves a user by ID
	GetByID(id uint) (*models.User, error)

	// GetByEmail retrieves a user by email address
	GetByEmail(email string) (*models.User, error)

	// IncrementTokenVersion invalidates all outstanding tokens for the user
	IncrementTokenVersion(userID uint) error

	// UpdatePassword updates the user's password hash
	UpdatePassword(userID uint, hashedPassword string) error
}
