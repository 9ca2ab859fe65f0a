package command

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// CreateServiceCommand opens a new service request under a customer. The
// owner comes from the URL path, never from the body.
type CreateServiceCommand struct {
	CustomerID uint
	ActorID    uint
	Type       domain.ServiceType
	TotalCost  float64
}

// CreateServiceHandler handles service request creation
type CreateServiceHandler struct {
	repo     domain.ServiceRepository
	resolver *resolver.Resolver
}

// NewCreateServiceHandler creates a new create service handler
func NewCreateServiceHandler(repo domain.ServiceRepository, res *resolver.Resolver) *CreateServiceHandler {
	return &CreateServiceHandler{repo: repo, resolver: res}
}

// Handle executes the create service command
func (h *CreateServiceHandler) Handle(cmd CreateServiceCommand) (*domain.ServiceRequest, error) {
	customer, err := h.resolver.Customer(cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if err := domain.EnsureOwnedBy(customer.ID, cmd.ActorID); err != nil {
		return nil, err
	}

	if !cmd.Type.Valid() {
		return nil, domain.BadRequest("invalid service type")
	}
	if cmd.TotalCost < 0 {
		return nil, domain.BadRequest("total cost cannot be negative")
	}

	service := &domain.ServiceRequest{
		CustomerID: cmd.CustomerID,
		Type:       cmd.Type,
		TotalCost:  cmd.TotalCost,
	}

	if err := h.repo.Create(service); err != nil {
		return nil, err
	}
	return h.repo.FindByIDAndCustomer(service.ID, cmd.CustomerID)
}
