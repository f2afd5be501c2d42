package handlers

import (
	"lexal/internal/models"
	"lexal/internal/repositories"
	"lexal/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

type CustomerHandler struct {
	repo repositories.CustomerRepository
}

func NewCustomerHandler(repo repositories.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{
		repo: repo,
	}
}

// CreateCustomer registers a new client with an optional initial service
// bundle and intake fields.
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var input struct {
		Name     string             `json:"name"`
		Email    string             `json:"email"`
		Phone    string             `json:"phone"`
		Services []string           `json:"services"`
		Fields   models.FieldRecord `json:"fields"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.Name == "" || input.Email == "" {
		return response.ValidationError(c, "Name and email are required")
	}

	customer := &models.Customer{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Services: pq.StringArray(input.Services),
		Fields:   input.Fields.Clone(),
	}

	if err := h.repo.Create(customer); err != nil {
		if err == repositories.ErrEmailTaken {
			return response.Conflict(c, "A customer with this email already exists")
		}
		return response.ServerError(c, "failed to create customer")
	}

	return response.Success(c, "Customer created", customer)
}

// GetCustomer returns one customer by ID.
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	customer, err := h.customerFromParam(c)
	if err != nil {
		return err
	}
	return response.Success(c, "Customer", customer)
}

// ListCustomers returns a paginated customer list.
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	customers, total, err := h.repo.List(offset, limit)
	if err != nil {
		return response.ServerError(c, "failed to list customers")
	}

	return response.Success(c, "Customers", fiber.Map{
		"customers": customers,
		"total":     total,
		"offset":    offset,
		"limit":     limit,
	})
}

// UpdateFields merges the submitted intake answers and fee line items into the
// customer's field record. Blank values clear the field.
func (h *CustomerHandler) UpdateFields(c *fiber.Ctx) error {
	customer, err := h.customerFromParam(c)
	if err != nil {
		return err
	}

	var input struct {
		Fields models.FieldRecord `json:"fields"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if customer.Fields == nil {
		customer.Fields = models.FieldRecord{}
	}
	for key, value := range input.Fields {
		if value == "" {
			delete(customer.Fields, key)
			continue
		}
		customer.Fields[key] = value
	}

	if err := h.repo.Update(customer); err != nil {
		return response.ServerError(c, "failed to update customer")
	}
	return response.Success(c, "Fields updated", customer)
}

// UpdateServices replaces the customer's selected service bundle.
func (h *CustomerHandler) UpdateServices(c *fiber.Ctx) error {
	customer, err := h.customerFromParam(c)
	if err != nil {
		return err
	}

	var input struct {
		Services []string `json:"services"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	customer.Services = pq.StringArray(input.Services)
	if err := h.repo.Update(customer); err != nil {
		return response.ServerError(c, "failed to update customer")
	}
	return response.Success(c, "Services updated", customer)
}

func (h *CustomerHandler) customerFromParam(c *fiber.Ctx) (*models.Customer, error) {
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
