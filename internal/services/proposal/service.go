// Package proposal orchestrates the fee and document engine around the
// customer store: it seeds fee defaults, renders proposal documents and
// freezes the snapshot when a proposal is sent.
package proposal

import (
	"context"
	"log"
	"time"

	domainerrors "lexal/internal/errors"
	"lexal/internal/models"
	"lexal/internal/repositories"
	"lexal/internal/services/billing"
	"lexal/internal/services/content"
	"lexal/internal/services/document"
	"lexal/internal/services/fees"
	"lexal/internal/services/template"

	"github.com/google/uuid"
)

// Validity window set on a proposal when it is sent.
const proposalValidity = 14 * 24 * time.Hour

// Rendered bundles everything a render produces for one proposal.
type Rendered struct {
	Template template.ID        `json:"template"`
	Document *document.Document `json:"document"`
	Fees     template.FeeTable  `json:"fees"`
	// FromSnapshot is true when the render was sourced from the frozen
	// snapshot of a sent proposal rather than the live record.
	FromSnapshot bool `json:"from_snapshot"`
}

type Service interface {
	// SuggestFees returns the catalog-seeded fee defaults for a service set.
	SuggestFees(selected []models.ServiceCategory) fees.Breakdown

	// Render produces the proposal document for a customer. Sent proposals
	// render from their snapshot; drafts render from the live record.
	Render(customer *models.Customer) Rendered

	// Snapshot returns the frozen copy taken at send time, or
	// ErrProposalNotSent for a draft.
	Snapshot(customer *models.Customer) (*models.ProposalSnapshot, error)

	// Send freezes the current record into a snapshot, stamps the sent and
	// expiry times and persists the customer.
	Send(ctx context.Context, customerID uint, sentAt time.Time) (*models.Customer, error)
}

type service struct {
	repo    repositories.CustomerRepository
	billing billing.Service
}

// NewService creates a proposal service.
func NewService(repo repositories.CustomerRepository, billingSvc billing.Service) Service {
	if repo == nil {
		panic("customer repository is required")
	}
	if billingSvc == nil {
		billingSvc = billing.NewNoopService()
	}
	return &service{
		repo:    repo,
		billing: billingSvc,
	}
}

func (s *service) SuggestFees(selected []models.ServiceCategory) fees.Breakdown {
	logUnknown(selected)
	return fees.CalculatePresets(selected)
}

func (s *service) Render(customer *models.Customer) Rendered {
	services := customer.SelectedServices()
	fields := customer.Fields
	fromSnapshot := false

	// A sent proposal must always render from its frozen copy so that later
	// edits cannot change a document the client already received.
	if customer.ProposalSent() {
		services = customer.ProposalSnapshot.Services
		fields = customer.ProposalSnapshot.Fields
		fromSnapshot = true
	}

	id, doc, fee := renderFrom(services, fields)
	return Rendered{
		Template:     id,
		Document:     doc,
		Fees:         fee,
		FromSnapshot: fromSnapshot,
	}
}

func (s *service) Snapshot(customer *models.Customer) (*models.ProposalSnapshot, error) {
	if !customer.ProposalSent() {
		return nil, domainerrors.ErrProposalNotSent
	}
	return customer.ProposalSnapshot, nil
}

func (s *service) Send(ctx context.Context, customerID uint, sentAt time.Time) (*models.Customer, error) {
	customer, err := s.repo.GetByID(customerID)
	if err != nil {
		if err == repositories.ErrCustomerNotFound {
			return nil, domainerrors.ErrCustomerNotFound
		}
		return nil, err
	}

	if customer.ProposalSent() {
		return nil, domainerrors.ErrProposalAlreadySent
	}

	selected := customer.SelectedServices()
	logUnknown(selected)
	if len(models.NormalizeCategories(selected)) == 0 {
		return nil, domainerrors.ErrNoServicesSelected
	}

	_, _, fee := renderFrom(selected, customer.Fields)

	sentAt = sentAt.UTC()
	expiresAt := sentAt.Add(proposalValidity)
	customer.ProposalSentAt = &sentAt
	customer.ProposalExpiresAt = &expiresAt
	customer.ProposalSnapshot = &models.ProposalSnapshot{
		ID:       uuid.New().String(),
		TakenAt:  sentAt,
		Services: models.NormalizeCategories(selected),
		Fields:   customer.Fields.Clone(),
		TotalALL: fee.TotalALL,
	}

	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}

	// Billing is best effort: a failed payment link never blocks the send.
	if ref, err := s.billing.CreateInitialFeePayment(ctx, customer, fee.TotalALL); err != nil {
		log.Printf("initial fee payment for customer %d not created: %v", customerID, err)
	} else if ref != "" {
		log.Printf("initial fee payment %s created for customer %d", ref, customerID)
	}

	return customer, nil
}

// renderFrom is the pure pipeline shared by draft and snapshot renders.
func renderFrom(services []models.ServiceCategory, fields models.FieldRecord) (template.ID, *document.Document, template.FeeTable) {
	selected := models.NormalizeCategories(services)
	id := template.Select(selected)

	var merged content.Merged
	var fee template.FeeTable
	if id == template.Generic {
		merged = content.Compose(selected, fields)
		fee = template.GenericFees(fields)
	} else {
		merged, fee = template.Build(id, fields)
	}

	return id, document.Render(merged, fee, fields), fee
}

// logUnknown reports service categories outside the closed set. They are
// skipped everywhere downstream; the log line makes the no-op visible.
func logUnknown(selected []models.ServiceCategory) {
	for _, c := range models.UnknownCategories(selected) {
		log.Printf("ignoring unknown service category %q", c)
	}
}
