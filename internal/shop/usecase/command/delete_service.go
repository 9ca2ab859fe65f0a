package command

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// DeleteServiceCommand removes a service request and, through the store's
// cascading constraints, its repairs and item requests.
type DeleteServiceCommand struct {
	CustomerID uint
	ServiceID  uint
	ActorID    uint
}

// DeleteServiceHandler handles service request deletion
type DeleteServiceHandler struct {
	repo     domain.ServiceRepository
	resolver *resolver.Resolver
}

// NewDeleteServiceHandler creates a new delete service handler
func NewDeleteServiceHandler(repo domain.ServiceRepository, res *resolver.Resolver) *DeleteServiceHandler {
	return &DeleteServiceHandler{repo: repo, resolver: res}
}

// Handle executes the delete service command
func (h *DeleteServiceHandler) Handle(cmd DeleteServiceCommand) error {
	service, err := h.resolver.Service(cmd.CustomerID, cmd.ServiceID)
	if err != nil {
		return err
	}
	if err := domain.EnsureOwnedBy(service.CustomerID, cmd.ActorID); err != nil {
		return err
	}
	return h.repo.Delete(cmd.ServiceID)
}
