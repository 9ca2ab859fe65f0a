package query

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// ListVariantsQuery represents the query to list the variants of a product
type ListVariantsQuery struct {
	ProductID uint
}

// ListVariantsHandler handles list variants query
type ListVariantsHandler struct {
	repo     domain.VariantRepository
	resolver *resolver.Resolver
}

// NewListVariantsHandler creates a new list variants handler
func NewListVariantsHandler(repo domain.VariantRepository, res *resolver.Resolver) *ListVariantsHandler {
	return &ListVariantsHandler{repo: repo, resolver: res}
}

// Handle executes the list variants query
func (h *ListVariantsHandler) Handle(query ListVariantsQuery) ([]domain.ProductVariant, error) {
	if _, err := h.resolver.Product(query.ProductID); err != nil {
		return nil, err
	}
	return h.repo.FindByProduct(query.ProductID)
}
