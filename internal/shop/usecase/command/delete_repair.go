package command

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// DeleteRepairCommand removes a repair ticket
type DeleteRepairCommand struct {
	CustomerID uint
	ServiceID  uint
	RepairID   uint
	ActorID    uint
}

// DeleteRepairHandler handles repair deletion
type DeleteRepairHandler struct {
	repo     domain.RepairRepository
	resolver *resolver.Resolver
}

// NewDeleteRepairHandler creates a new delete repair handler
func NewDeleteRepairHandler(repo domain.RepairRepository, res *resolver.Resolver) *DeleteRepairHandler {
	return &DeleteRepairHandler{repo: repo, resolver: res}
}

// Handle executes the delete repair command
func (h *DeleteRepairHandler) Handle(cmd DeleteRepairCommand) error {
	service, _, err := h.resolver.Repair(cmd.CustomerID, cmd.ServiceID, cmd.RepairID)
	if err != nil {
		return err
	}
	if err := domain.EnsureOwnedBy(service.CustomerID, cmd.ActorID); err != nil {
		return err
	}
	return h.repo.Delete(cmd.RepairID)
}
