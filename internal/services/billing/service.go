// Package billing creates payment artifacts for proposal fees. It sits behind
// an interface so the proposal flow works with billing disabled.
package billing

import (
	"context"

	"lexal/internal/models"
)

type Service interface {
	// CreateInitialFeePayment creates a payment request for the proposal's
	// initial fee and returns a provider reference. Implementations must be
	// safe to skip: callers treat errors as non-fatal.
	CreateInitialFeePayment(ctx context.Context, customer *models.Customer, amountALL int64) (string, error)
}

type noopService struct{}

// NewNoopService returns a billing service that does nothing. Used when no
// payment provider is configured.
func NewNoopService() Service {
	return noopService{}
}

func (noopService) CreateInitialFeePayment(ctx context.Context, customer *models.Customer, amountALL int64) (string, error) {
	return "", nil
}
