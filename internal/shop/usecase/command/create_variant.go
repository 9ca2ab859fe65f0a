package command

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// CreateVariantCommand adds a size/color variant under a product.
type CreateVariantCommand struct {
	ProductID     uint
	Size          string
	Color         string
	StockQuantity int
}

// CreateVariantHandler handles product variant creation
type CreateVariantHandler struct {
	repo     domain.VariantRepository
	resolver *resolver.Resolver
}

// NewCreateVariantHandler creates a new create variant handler
func NewCreateVariantHandler(repo domain.VariantRepository, res *resolver.Resolver) *CreateVariantHandler {
	return &CreateVariantHandler{repo: repo, resolver: res}
}

// Handle executes the create variant command
func (h *CreateVariantHandler) Handle(cmd CreateVariantCommand) (*domain.ProductVariant, error) {
	product, err := h.resolver.Product(cmd.ProductID)
	if err != nil {
		return nil, err
	}

	if cmd.Size == "" {
		return nil, domain.BadRequest("size is required")
	}
	if cmd.Color == "" {
		return nil, domain.BadRequest("color is required")
	}
	if cmd.StockQuantity < 0 {
		return nil, domain.BadRequest("stock quantity cannot be negative")
	}

	variant := &domain.ProductVariant{
		ProductID:     product.ID,
		Size:          cmd.Size,
		Color:         cmd.Color,
		StockQuantity: cmd.StockQuantity,
	}

	if err := h.repo.Create(variant); err != nil {
		return nil, err
	}
	return h.repo.FindByIDAndProduct(variant.ID, product.ID)
}
