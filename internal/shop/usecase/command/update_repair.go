package command

import (
	"time"

	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// UpdateRepairCommand updates a repair ticket. A status present in the
// payload runs the transition rules against the stored status and stamps or
// clears the derived start and finish timestamps; an absent status leaves
// them untouched.
type UpdateRepairCommand struct {
	CustomerID uint
	ServiceID  uint
	RepairID   uint
	ActorID    uint
	Replace    bool
	Fields     domain.RepairUpdate
}

// UpdateRepairHandler handles repair updates
type UpdateRepairHandler struct {
	repo     domain.RepairRepository
	resolver *resolver.Resolver
}

// NewUpdateRepairHandler creates a new update repair handler
func NewUpdateRepairHandler(repo domain.RepairRepository, res *resolver.Resolver) *UpdateRepairHandler {
	return &UpdateRepairHandler{repo: repo, resolver: res}
}

// Handle executes the update repair command and returns the refreshed
// ticket together with the status it held before the update.
func (h *UpdateRepairHandler) Handle(cmd UpdateRepairCommand) (*domain.Repair, domain.RepairStatus, error) {
	service, repair, err := h.resolver.Repair(cmd.CustomerID, cmd.ServiceID, cmd.RepairID)
	if err != nil {
		return nil, "", err
	}
	if err := domain.EnsureOwnedBy(service.CustomerID, cmd.ActorID); err != nil {
		return nil, "", err
	}

	if cmd.Replace {
		if cmd.Fields.Description == nil {
			return nil, "", domain.BadRequest("description is required")
		}
		if cmd.Fields.Status == nil {
			return nil, "", domain.BadRequest("status is required")
		}
	}
	if cmd.Fields.Status != nil && !cmd.Fields.Status.Valid() {
		return nil, "", domain.BadRequest("invalid repair status")
	}

	previous := repair.Status
	if n := cmd.Fields.Apply(repair, time.Now().UTC()); !cmd.Replace && n == 0 {
		return nil, "", domain.BadRequest("no valid fields provided for update")
	}

	if err := h.repo.Update(repair); err != nil {
		return nil, "", err
	}
	updated, err := h.repo.FindByIDAndRequest(cmd.RepairID, cmd.ServiceID)
	if err != nil {
		return nil, "", err
	}
	return updated, previous, nil
}
