package repositories

import (
	"errors"

	"lexal/internal/models"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmailTaken       = errors.New("email already taken")
)

// CustomerRepository defines the interface for customer-related database operations
type CustomerRepository interface {
	// Create creates a new customer
	Create(customer *models.Customer) error

	// GetByID retrieves a customer by ID
	GetByID(id uint) (*models.Customer, error)

	// Update persists changes to an existing customer
	Update(customer *models.Customer) error

	// List retrieves customers with pagination
	List(offset, limit int) ([]*models.Customer, int64, error)
}
