package command

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// UpdateItemCommand updates a line item under a sale-type service
// request. Replace selects full-replacement semantics; otherwise only
// present fields are merged. The product variant is fixed at creation.
type UpdateItemCommand struct {
	CustomerID uint
	ServiceID  uint
	ItemID     uint
	ActorID    uint
	Replace    bool
	Fields     domain.ItemUpdate
}

// UpdateItemHandler handles item request updates
type UpdateItemHandler struct {
	repo     domain.ItemRequestRepository
	resolver *resolver.Resolver
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.ItemRequestRepository, res *resolver.Resolver) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo, resolver: res}
}

// Handle executes the update item command
func (h *UpdateItemHandler) Handle(cmd UpdateItemCommand) (*domain.ItemRequest, error) {
	service, item, err := h.resolver.Item(cmd.CustomerID, cmd.ServiceID, cmd.ItemID)
	if err != nil {
		return nil, err
	}
	if err := domain.EnsureOwnedBy(service.CustomerID, cmd.ActorID); err != nil {
		return nil, err
	}

	if cmd.Replace {
		switch {
		case cmd.Fields.ProductVariantID == nil:
			return nil, domain.BadRequest("product_variant_id is required")
		case cmd.Fields.Quantity == nil:
			return nil, domain.BadRequest("quantity is required")
		case cmd.Fields.UnitPrice == nil:
			return nil, domain.BadRequest("unit_price is required")
		}
	}
	if cmd.Fields.Quantity != nil && *cmd.Fields.Quantity <= 0 {
		return nil, domain.BadRequest("quantity must be positive")
	}
	if cmd.Fields.UnitPrice != nil && *cmd.Fields.UnitPrice < 0 {
		return nil, domain.BadRequest("unit price cannot be negative")
	}

	count, err := cmd.Fields.Apply(item)
	if err != nil {
		return nil, err
	}
	if !cmd.Replace && count == 0 {
		return nil, domain.BadRequest("no valid fields provided for update")
	}

	if err := h.repo.Update(item); err != nil {
		return nil, err
	}
	return h.repo.FindByIDAndRequest(item.ID, cmd.ServiceID)
}
