package command

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// DeleteVariantCommand removes a variant from a product.
type DeleteVariantCommand struct {
	ProductID uint
	VariantID uint
}

// DeleteVariantHandler handles product variant deletion
type DeleteVariantHandler struct {
	repo     domain.VariantRepository
	resolver *resolver.Resolver
}

// NewDeleteVariantHandler creates a new delete variant handler
func NewDeleteVariantHandler(repo domain.VariantRepository, res *resolver.Resolver) *DeleteVariantHandler {
	return &DeleteVariantHandler{repo: repo, resolver: res}
}

// Handle executes the delete variant command
func (h *DeleteVariantHandler) Handle(cmd DeleteVariantCommand) error {
	variant, err := h.resolver.Variant(cmd.ProductID, cmd.VariantID)
	if err != nil {
		return err
	}
	return h.repo.Delete(variant.ID)
}
