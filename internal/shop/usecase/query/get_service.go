package query

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// GetServiceQuery represents the query to get a service request under a customer
type GetServiceQuery struct {
	CustomerID uint
	ServiceID  uint
}

// GetServiceHandler handles get service query
type GetServiceHandler struct {
	resolver *resolver.Resolver
}

// NewGetServiceHandler creates a new get service handler
func NewGetServiceHandler(res *resolver.Resolver) *GetServiceHandler {
	return &GetServiceHandler{resolver: res}
}

// Handle executes the get service query
func (h *GetServiceHandler) Handle(query GetServiceQuery) (*domain.ServiceRequest, error) {
	return h.resolver.Service(query.CustomerID, query.ServiceID)
}
