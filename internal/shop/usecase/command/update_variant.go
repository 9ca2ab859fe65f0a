package command

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// UpdateVariantCommand updates a product variant. Replace selects
// full-replacement semantics; otherwise only present fields are merged.
type UpdateVariantCommand struct {
	ProductID uint
	VariantID uint
	Replace   bool
	Fields    domain.VariantUpdate
}

// UpdateVariantHandler handles product variant updates
type UpdateVariantHandler struct {
	repo     domain.VariantRepository
	resolver *resolver.Resolver
}

// NewUpdateVariantHandler creates a new update variant handler
func NewUpdateVariantHandler(repo domain.VariantRepository, res *resolver.Resolver) *UpdateVariantHandler {
	return &UpdateVariantHandler{repo: repo, resolver: res}
}

// Handle executes the update variant command
func (h *UpdateVariantHandler) Handle(cmd UpdateVariantCommand) (*domain.ProductVariant, error) {
	variant, err := h.resolver.Variant(cmd.ProductID, cmd.VariantID)
	if err != nil {
		return nil, err
	}

	if cmd.Replace {
		switch {
		case cmd.Fields.Size == nil:
			return nil, domain.BadRequest("size is required")
		case cmd.Fields.Color == nil:
			return nil, domain.BadRequest("color is required")
		}
		if cmd.Fields.StockQuantity == nil {
			zero := 0
			cmd.Fields.StockQuantity = &zero
		}
	}
	if cmd.Fields.Size != nil && *cmd.Fields.Size == "" {
		return nil, domain.BadRequest("size is required")
	}
	if cmd.Fields.Color != nil && *cmd.Fields.Color == "" {
		return nil, domain.BadRequest("color is required")
	}
	if cmd.Fields.StockQuantity != nil && *cmd.Fields.StockQuantity < 0 {
		return nil, domain.BadRequest("stock quantity cannot be negative")
	}

	count := cmd.Fields.Apply(variant)
	if !cmd.Replace && count == 0 {
		return nil, domain.BadRequest("no valid fields provided for update")
	}

	if err := h.repo.Update(variant); err != nil {
		return nil, err
	}
	return h.repo.FindByIDAndProduct(variant.ID, cmd.ProductID)
}
