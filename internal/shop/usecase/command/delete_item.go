package command

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// DeleteItemCommand removes a line item from a sale-type service request.
type DeleteItemCommand struct {
	CustomerID uint
	ServiceID  uint
	ItemID     uint
	ActorID    uint
}

// DeleteItemHandler handles item request deletion
type DeleteItemHandler struct {
	repo     domain.ItemRequestRepository
	resolver *resolver.Resolver
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.ItemRequestRepository, res *resolver.Resolver) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo, resolver: res}
}

// Handle executes the delete item command
func (h *DeleteItemHandler) Handle(cmd DeleteItemCommand) error {
	service, item, err := h.resolver.Item(cmd.CustomerID, cmd.ServiceID, cmd.ItemID)
	if err != nil {
		return err
	}
	if err := domain.EnsureOwnedBy(service.CustomerID, cmd.ActorID); err != nil {
		return err
	}
	return h.repo.Delete(item.ID)
}
