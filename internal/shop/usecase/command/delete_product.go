package command

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// DeleteProductCommand removes a product and, by cascade, its variants.
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler handles product deletion
type DeleteProductHandler struct {
	repo     domain.ProductRepository
	resolver *resolver.Resolver
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository, res *resolver.Resolver) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo, resolver: res}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(cmd DeleteProductCommand) error {
	product, err := h.resolver.Product(cmd.ID)
	if err != nil {
		return err
	}
	return h.repo.Delete(product.ID)
}
