package command

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// UpdateServiceCommand updates a service request. The type field is
// protected: it may be echoed back unchanged but never altered. On a full
// replace an omitted total_cost takes its declared default of 0.
type UpdateServiceCommand struct {
	CustomerID uint
	ServiceID  uint
	ActorID    uint
	Replace    bool
	Fields     domain.ServiceUpdate
}

// UpdateServiceHandler handles service request updates
type UpdateServiceHandler struct {
	repo     domain.ServiceRepository
	resolver *resolver.Resolver
}

// NewUpdateServiceHandler creates a new update service handler
func NewUpdateServiceHandler(repo domain.ServiceRepository, res *resolver.Resolver) *UpdateServiceHandler {
	return &UpdateServiceHandler{repo: repo, resolver: res}
}

// Handle executes the update service command
func (h *UpdateServiceHandler) Handle(cmd UpdateServiceCommand) (*domain.ServiceRequest, error) {
	service, err := h.resolver.Service(cmd.CustomerID, cmd.ServiceID)
	if err != nil {
		return nil, err
	}
	if err := domain.EnsureOwnedBy(service.CustomerID, cmd.ActorID); err != nil {
		return nil, err
	}

	if cmd.Replace {
		if cmd.Fields.Type == nil {
			return nil, domain.BadRequest("type is required")
		}
		if cmd.Fields.TotalCost == nil {
			zero := 0.0
			cmd.Fields.TotalCost = &zero
		}
	}
	if cmd.Fields.Type != nil && !cmd.Fields.Type.Valid() {
		return nil, domain.BadRequest("invalid service type")
	}
	if cmd.Fields.TotalCost != nil && *cmd.Fields.TotalCost < 0 {
		return nil, domain.BadRequest("total cost cannot be negative")
	}

	n, err := cmd.Fields.Apply(service)
	if err != nil {
		return nil, err
	}
	if !cmd.Replace && n == 0 {
		return nil, domain.BadRequest("no valid fields provided for update")
	}

	if err := h.repo.Update(service); err != nil {
		return nil, err
	}
	return h.repo.FindByIDAndCustomer(cmd.ServiceID, cmd.CustomerID)
}
