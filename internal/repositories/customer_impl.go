package repositories

import (
	"context"
	"errors"
	"log"

	"lexal/internal/models"
	"lexal/internal/repositories/cache"

	"gorm.io/gorm"
)

type customerRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewCustomerRepository creates a customer repository backed by PostgreSQL
// with a read-through Redis cache.
func NewCustomerRepository(db *gorm.DB, cacheService *cache.CacheService) CustomerRepository {
	return &customerRepository{db: db, cache: cacheService}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return translateCustomerError(err)
	}
	return nil
}

// translateCustomerError maps driver errors to repository sentinels. The
// connection is opened with TranslateError, so a unique violation on the email
// index arrives as gorm.ErrDuplicatedKey regardless of the underlying driver.
func translateCustomerError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return err
}

func (r *customerRepository) GetByID(id uint) (*models.Customer, error) {
	if r.cache != nil {
		if customer, err := r.cache.GetCustomer(context.Background(), id); err == nil && customer != nil {
			return customer, nil
		}
	}

	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.CacheCustomer(context.Background(), &customer); err != nil {
			log.Printf("failed to cache customer %d: %v", id, err)
		}
	}
	return &customer, nil
}

func (r *customerRepository) Update(customer *models.Customer) error {
	if err := r.db.Save(customer).Error; err != nil {
		return err
	}
	if r.cache != nil {
		if err := r.cache.InvalidateCustomer(context.Background(), customer.ID); err != nil {
			log.Printf("failed to invalidate customer %d cache: %v", customer.ID, err)
		}
	}
	return nil
}

func (r *customerRepository) List(offset, limit int) ([]*models.Customer, int64, error) {
	var customers []*models.Customer
	var total int64

	if err := r.db.Model(&models.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Order("id").Offset(offset).Limit(limit).Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}
