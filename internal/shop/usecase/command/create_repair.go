package command

import (
	"time"

	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// CreateRepairCommand opens a repair ticket under a repair-type service
// request. An omitted status defaults to pending; creating a ticket
// directly as completed stamps its finish timestamp.
type CreateRepairCommand struct {
	CustomerID uint
	ServiceID  uint
	ActorID    uint

	Description string
	Status      domain.RepairStatus
}

// CreateRepairHandler handles repair creation
type CreateRepairHandler struct {
	repo     domain.RepairRepository
	resolver *resolver.Resolver
}

// NewCreateRepairHandler creates a new create repair handler
func NewCreateRepairHandler(repo domain.RepairRepository, res *resolver.Resolver) *CreateRepairHandler {
	return &CreateRepairHandler{repo: repo, resolver: res}
}

// Handle executes the create repair command
func (h *CreateRepairHandler) Handle(cmd CreateRepairCommand) (*domain.Repair, error) {
	service, err := h.resolver.TypedService(cmd.CustomerID, cmd.ServiceID, domain.ServiceTypeRepair)
	if err != nil {
		return nil, err
	}
	if err := domain.EnsureOwnedBy(service.CustomerID, cmd.ActorID); err != nil {
		return nil, err
	}

	if cmd.Description == "" {
		return nil, domain.BadRequest("description is required")
	}
	status := cmd.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, domain.BadRequest("invalid repair status")
	}

	repair := &domain.Repair{
		RequestID:   cmd.ServiceID,
		Description: cmd.Description,
		Status:      status,
	}
	if status == domain.StatusCompleted {
		now := time.Now().UTC()
		repair.FinishedDate = &now
	}

	if err := h.repo.Create(repair); err != nil {
		return nil, err
	}
	return h.repo.FindByIDAndRequest(repair.ID, cmd.ServiceID)
}
