package query

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// GetVariantQuery represents the query to get a variant under a product
type GetVariantQuery struct {
	ProductID uint
	VariantID uint
}

// GetVariantHandler handles get variant query
type GetVariantHandler struct {
	resolver *resolver.Resolver
}

// NewGetVariantHandler creates a new get variant handler
func NewGetVariantHandler(res *resolver.Resolver) *GetVariantHandler {
	return &GetVariantHandler{resolver: res}
}

// Handle executes the get variant query
func (h *GetVariantHandler) Handle(query GetVariantQuery) (*domain.ProductVariant, error) {
	return h.resolver.Variant(query.ProductID, query.VariantID)
}
