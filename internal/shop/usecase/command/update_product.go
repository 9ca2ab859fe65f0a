package command

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// UpdateProductCommand updates a catalog product. Replace selects
// full-replacement semantics; otherwise only present fields are merged. On
// a full replace an omitted stock_quantity takes its declared default of 0;
// every other field must be supplied.
type UpdateProductCommand struct {
	ID      uint
	Replace bool
	Fields  domain.ProductUpdate
}

// UpdateProductHandler handles product updates
type UpdateProductHandler struct {
	repo     domain.ProductRepository
	resolver *resolver.Resolver
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository, res *resolver.Resolver) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo, resolver: res}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	product, err := h.resolver.Product(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Replace {
		switch {
		case cmd.Fields.Name == nil:
			return nil, domain.BadRequest("name is required")
		case cmd.Fields.Price == nil:
			return nil, domain.BadRequest("price is required")
		case cmd.Fields.Description == nil:
			return nil, domain.BadRequest("description is required")
		}
		if cmd.Fields.StockQuantity == nil {
			zero := 0
			cmd.Fields.StockQuantity = &zero
		}
	}
	if cmd.Fields.Name != nil && *cmd.Fields.Name == "" {
		return nil, domain.BadRequest("name is required")
	}
	if cmd.Fields.Price != nil && *cmd.Fields.Price < 0 {
		return nil, domain.BadRequest("price cannot be negative")
	}
	if cmd.Fields.StockQuantity != nil && *cmd.Fields.StockQuantity < 0 {
		return nil, domain.BadRequest("stock quantity cannot be negative")
	}

	count := cmd.Fields.Apply(product)
	if !cmd.Replace && count == 0 {
		return nil, domain.BadRequest("no valid fields provided for update")
	}

	if err := h.repo.Update(product); err != nil {
		return nil, err
	}
	return h.repo.FindByID(product.ID)
}
