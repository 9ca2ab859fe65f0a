package query

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// ListServicesQuery represents the query to list a customer's service requests
type ListServicesQuery struct {
	CustomerID uint
}

// ListServicesHandler handles list services query
type ListServicesHandler struct {
	repo     domain.ServiceRepository
	resolver *resolver.Resolver
}

// NewListServicesHandler creates a new list services handler
func NewListServicesHandler(repo domain.ServiceRepository, res *resolver.Resolver) *ListServicesHandler {
	return &ListServicesHandler{repo: repo, resolver: res}
}

// Handle executes the list services query
func (h *ListServicesHandler) Handle(query ListServicesQuery) ([]domain.ServiceRequest, error) {
	if _, err := h.resolver.Customer(query.CustomerID); err != nil {
		return nil, err
	}
	return h.repo.FindByCustomer(query.CustomerID)
}
