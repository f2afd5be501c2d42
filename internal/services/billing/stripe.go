package billing

import (
	"context"
	"strconv"

	"lexal/internal/models"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"
)

type stripeService struct{}

// NewStripeService returns a billing service backed by Stripe; falls back to
// the noop service when the secret key is empty.
func NewStripeService(secretKey string) Service {
	if secretKey == "" {
		return NewNoopService()
	}
	stripe.Key = secretKey
	return stripeService{}
}

func (stripeService) CreateInitialFeePayment(ctx context.Context, customer *models.Customer, amountALL int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		// Stripe amounts are in the currency's minor unit; lek figures are
		// whole units, so scale by 100.
		Amount:       stripe.Int64(amountALL * 100),
		Currency:     stripe.String("all"),
		ReceiptEmail: stripe.String(customer.Email),
		Description:  stripe.String("Initial fee - legal services proposal"),
	}
	params.Context = ctx
	params.AddMetadata("customer_id", strconv.FormatUint(uint64(customer.ID), 10))
	if customer.ProposalSnapshot != nil {
		params.AddMetadata("proposal_id", customer.ProposalSnapshot.ID)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ID, nil
}
