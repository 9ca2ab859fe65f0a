package command

import (
	"fmt"

	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/pkg/auth"
)

// CreateCustomerCommand represents the command to register a new customer.
// It is the only mutation that requires no bearer token.
type CreateCustomerCommand struct {
	Name     string
	Email    string
	Password string
	Address  string
}

// CreateCustomerHandler handles customer creation
type CreateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewCreateCustomerHandler creates a new create customer handler
func NewCreateCustomerHandler(repo domain.CustomerRepository) *CreateCustomerHandler {
	return &CreateCustomerHandler{repo: repo}
}

// Handle executes the create customer command
func (h *CreateCustomerHandler) Handle(cmd CreateCustomerCommand) (*domain.Customer, error) {
	if cmd.Name == "" {
		return nil, domain.BadRequest("name is required")
	}
	if cmd.Email == "" {
		return nil, domain.BadRequest("email is required")
	}
	if !domain.ValidEmail(cmd.Email) {
		return nil, domain.BadRequest("invalid email address")
	}
	if cmd.Password == "" {
		return nil, domain.BadRequest("password is required")
	}
	if cmd.Address == "" {
		return nil, domain.BadRequest("address is required")
	}

	digest, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	customer := &domain.Customer{
		Name:     cmd.Name,
		Email:    cmd.Email,
		Password: digest,
		Address:  cmd.Address,
	}

	if err := h.repo.Create(customer); err != nil {
		return nil, err
	}
	return h.repo.FindByID(customer.ID)
}
