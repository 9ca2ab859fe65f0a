package query

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// GetRepairQuery represents the query to get a repair ticket through its
// ownership chain
type GetRepairQuery struct {
	CustomerID uint
	ServiceID  uint
	RepairID   uint
}

// GetRepairHandler handles get repair query
type GetRepairHandler struct {
	resolver *resolver.Resolver
}

// NewGetRepairHandler creates a new get repair handler
func NewGetRepairHandler(res *resolver.Resolver) *GetRepairHandler {
	return &GetRepairHandler{resolver: res}
}

// Handle executes the get repair query
func (h *GetRepairHandler) Handle(query GetRepairQuery) (*domain.Repair, error) {
	_, repair, err := h.resolver.Repair(query.CustomerID, query.ServiceID, query.RepairID)
	if err != nil {
		return nil, err
	}
	return repair, nil
}
