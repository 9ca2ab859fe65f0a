package command

import (
	"fmt"

	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
	"github.com/fixhub/repairshop/pkg/auth"
)

// UpdateCustomerCommand updates a customer account. Replace selects full
// PUT semantics: every mutable field must be supplied. Otherwise only the
// supplied fields are merged.
type UpdateCustomerCommand struct {
	ID      uint
	ActorID uint
	Replace bool
	Fields  domain.CustomerUpdate
}

// UpdateCustomerHandler handles customer updates
type UpdateCustomerHandler struct {
	repo     domain.CustomerRepository
	resolver *resolver.Resolver
}

// NewUpdateCustomerHandler creates a new update customer handler
func NewUpdateCustomerHandler(repo domain.CustomerRepository, res *resolver.Resolver) *UpdateCustomerHandler {
	return &UpdateCustomerHandler{repo: repo, resolver: res}
}

// Handle executes the update customer command
func (h *UpdateCustomerHandler) Handle(cmd UpdateCustomerCommand) (*domain.Customer, error) {
	customer, err := h.resolver.Customer(cmd.ID)
	if err != nil {
		return nil, err
	}
	if err := domain.EnsureOwnedBy(customer.ID, cmd.ActorID); err != nil {
		return nil, err
	}

	if cmd.Replace {
		switch {
		case cmd.Fields.Name == nil:
			return nil, domain.BadRequest("name is required")
		case cmd.Fields.Email == nil:
			return nil, domain.BadRequest("email is required")
		case cmd.Fields.Password == nil:
			return nil, domain.BadRequest("password is required")
		case cmd.Fields.Address == nil:
			return nil, domain.BadRequest("address is required")
		}
	}
	if cmd.Fields.Email != nil && !domain.ValidEmail(*cmd.Fields.Email) {
		return nil, domain.BadRequest("invalid email address")
	}
	if cmd.Fields.Password != nil {
		digest, err := auth.HashPassword(*cmd.Fields.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		cmd.Fields.Password = &digest
	}

	if n := cmd.Fields.Apply(customer); !cmd.Replace && n == 0 {
		return nil, domain.BadRequest("no valid fields provided for update")
	}

	if err := h.repo.Update(customer); err != nil {
		return nil, err
	}
	return h.repo.FindByID(cmd.ID)
}
