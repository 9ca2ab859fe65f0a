package query

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// GetProductQuery represents the query to get a product by ID
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	resolver *resolver.Resolver
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(res *resolver.Resolver) *GetProductHandler {
	return &GetProductHandler{resolver: res}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(query GetProductQuery) (*domain.Product, error) {
	return h.resolver.Product(query.ID)
}
