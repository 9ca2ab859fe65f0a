package query

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// GetItemQuery represents the query to get a line item through its
// ownership chain
type GetItemQuery struct {
	CustomerID uint
	ServiceID  uint
	ItemID     uint
}

// GetItemHandler handles get item query
type GetItemHandler struct {
	resolver *resolver.Resolver
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(res *resolver.Resolver) *GetItemHandler {
	return &GetItemHandler{resolver: res}
}

// Handle executes the get item query
func (h *GetItemHandler) Handle(query GetItemQuery) (*domain.ItemRequest, error) {
	_, item, err := h.resolver.Item(query.CustomerID, query.ServiceID, query.ItemID)
	if err != nil {
		return nil, err
	}
	return item, nil
}
