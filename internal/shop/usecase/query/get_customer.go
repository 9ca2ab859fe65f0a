package query

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// GetCustomerQuery represents the query to get a customer by ID
type GetCustomerQuery struct {
	ID uint
}

// GetCustomerHandler handles get customer query
type GetCustomerHandler struct {
	resolver *resolver.Resolver
}

// NewGetCustomerHandler creates a new get customer handler
func NewGetCustomerHandler(res *resolver.Resolver) *GetCustomerHandler {
	return &GetCustomerHandler{resolver: res}
}

// Handle executes the get customer query
func (h *GetCustomerHandler) Handle(query GetCustomerQuery) (*domain.Customer, error) {
	return h.resolver.Customer(query.ID)
}
