package command

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
)

// CreateProductCommand contains the data for creating a catalog product.
type CreateProductCommand struct {
	Name          string
	Description   string
	Price         float64
	StockQuantity int
}

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, domain.BadRequest("name is required")
	}
	if cmd.Price < 0 {
		return nil, domain.BadRequest("price cannot be negative")
	}
	if cmd.StockQuantity < 0 {
		return nil, domain.BadRequest("stock quantity cannot be negative")
	}

	product := &domain.Product{
		Name:          cmd.Name,
		Description:   cmd.Description,
		Price:         cmd.Price,
		StockQuantity: cmd.StockQuantity,
	}

	if err := h.repo.Create(product); err != nil {
		return nil, err
	}
	return h.repo.FindByID(product.ID)
}
