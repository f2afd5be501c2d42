package handlers

import (
	"time"

	domainerrors "lexal/internal/errors"
	"lexal/internal/models"
	"lexal/internal/repositories"
	"lexal/internal/services/proposal"
	"lexal/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ProposalHandler struct {
	proposalService proposal.Service
	repo            repositories.CustomerRepository
}

func NewProposalHandler(proposalSvc proposal.Service, repo repositories.CustomerRepository) *ProposalHandler {
	return &ProposalHandler{
		proposalService: proposalSvc,
		repo:            repo,
	}
}

// GetSuggestedFees returns the catalog-seeded fee defaults for the customer's
// current service bundle. The caller copies these into the editable fee fields.
func (h *ProposalHandler) GetSuggestedFees(c *fiber.Ctx) error {
	customer, err := h.customerFromParam(c)
	if err != nil {
		return err
	}

	breakdown := h.proposalService.SuggestFees(customer.SelectedServices())
	return response.Success(c, "Suggested fees", breakdown)
}

// GetProposal renders the proposal document. Sent proposals render from their
// frozen snapshot.
func (h *ProposalHandler) GetProposal(c *fiber.Ctx) error {
	customer, err := h.customerFromParam(c)
	if err != nil {
		return err
	}

	rendered := h.proposalService.Render(customer)
	return response.Success(c, "Proposal", rendered)
}

// GetSnapshot returns the frozen field record and totals of a sent proposal.
func (h *ProposalHandler) GetSnapshot(c *fiber.Ctx) error {
	customer, err := h.customerFromParam(c)
	if err != nil {
		return err
	}

	snapshot, err := h.proposalService.Snapshot(customer)
	if err != nil {
		if err == domainerrors.ErrProposalNotSent {
			return response.NotFound(c, err.Error())
		}
		return response.ServerError(c, "failed to load snapshot")
	}
	return response.Success(c, "Proposal snapshot", snapshot)
}

// SendProposal freezes the proposal and stamps the sent and expiry times.
func (h *ProposalHandler) SendProposal(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid customer id")
	}

	customer, err := h.proposalService.Send(c.Context(), uint(id), time.Now())
	if err != nil {
		switch err {
		case domainerrors.ErrCustomerNotFound:
			return response.NotFound(c, err.Error())
		case domainerrors.ErrProposalAlreadySent, domainerrors.ErrNoServicesSelected:
			return response.BadRequest(c, err.Error())
		default:
			return response.ServerError(c, "failed to send proposal")
		}
	}

	return response.Success(c, "Proposal sent", fiber.Map{
		"customer":    customer,
		"sent_at":     customer.ProposalSentAt,
		"expires_at":  customer.ProposalExpiresAt,
		"proposal_id": customer.ProposalSnapshot.ID,
	})
}

func (h *ProposalHandler) customerFromParam(c *fiber.Ctx) (*models.Customer, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, response.BadRequest(c, "Invalid customer id")
	}

	customer, err := h.repo.GetByID(uint(id))
	if err != nil {
		if err == repositories.ErrCustomerNotFound {
			return nil, response.NotFound(c, "Customer not found")
		}
		return nil, response.ServerError(c, "failed to load customer")
	}
	return customer, nil
}
