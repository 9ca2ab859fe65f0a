package command

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// DeleteCustomerCommand removes a customer and, through the store's
// cascading constraints, every service request, repair and item request it
// owns.
type DeleteCustomerCommand struct {
	ID      uint
	ActorID uint
}

// DeleteCustomerHandler handles customer deletion
type DeleteCustomerHandler struct {
	repo     domain.CustomerRepository
	resolver *resolver.Resolver
}

// NewDeleteCustomerHandler creates a new delete customer handler
func NewDeleteCustomerHandler(repo domain.CustomerRepository, res *resolver.Resolver) *DeleteCustomerHandler {
	return &DeleteCustomerHandler{repo: repo, resolver: res}
}

// Handle executes the delete customer command
func (h *DeleteCustomerHandler) Handle(cmd DeleteCustomerCommand) error {
	customer, err := h.resolver.Customer(cmd.ID)
	if err != nil {
		return err
	}
	if err := domain.EnsureOwnedBy(customer.ID, cmd.ActorID); err != nil {
		return err
	}
	return h.repo.Delete(cmd.ID)
}
