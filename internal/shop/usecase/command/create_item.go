package command

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// CreateItemCommand adds a sale line item under a sale-type service
// request. The store's unique (request, variant) constraint rejects a
// variant requested twice under the same service.
type CreateItemCommand struct {
	CustomerID uint
	ServiceID  uint
	ActorID    uint

	ProductVariantID uint
	Quantity         int
	UnitPrice        float64
}

// CreateItemHandler handles item request creation
type CreateItemHandler struct {
	repo     domain.ItemRequestRepository
	resolver *resolver.Resolver
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.ItemRequestRepository, res *resolver.Resolver) *CreateItemHandler {
	return &CreateItemHandler{repo: repo, resolver: res}
}

// Handle executes the create item command
func (h *CreateItemHandler) Handle(cmd CreateItemCommand) (*domain.ItemRequest, error) {
	service, err := h.resolver.TypedService(cmd.CustomerID, cmd.ServiceID, domain.ServiceTypeSale)
	if err != nil {
		return nil, err
	}
	if err := domain.EnsureOwnedBy(service.CustomerID, cmd.ActorID); err != nil {
		return nil, err
	}

	if cmd.ProductVariantID == 0 {
		return nil, domain.BadRequest("product_variant_id is required")
	}
	if cmd.Quantity <= 0 {
		return nil, domain.BadRequest("quantity must be positive")
	}
	if cmd.UnitPrice < 0 {
		return nil, domain.BadRequest("unit price cannot be negative")
	}

	item := &domain.ItemRequest{
		RequestID:        cmd.ServiceID,
		ProductVariantID: cmd.ProductVariantID,
		Quantity:         cmd.Quantity,
		UnitPrice:        cmd.UnitPrice,
	}

	if err := h.repo.Create(item); err != nil {
		return nil, err
	}
	return h.repo.FindByIDAndRequest(item.ID, cmd.ServiceID)
}
