package query

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// ListItemsQuery represents the query to list the line items of a sale-type
// service request
type ListItemsQuery struct {
	CustomerID uint
	ServiceID  uint
}

// ListItemsHandler handles list items query
type ListItemsHandler struct {
	repo     domain.ItemRequestRepository
	resolver *resolver.Resolver
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.ItemRequestRepository, res *resolver.Resolver) *ListItemsHandler {
	return &ListItemsHandler{repo: repo, resolver: res}
}

// Handle executes the list items query
func (h *ListItemsHandler) Handle(query ListItemsQuery) ([]domain.ItemRequest, error) {
	if _, err := h.resolver.TypedService(query.CustomerID, query.ServiceID, domain.ServiceTypeSale); err != nil {
		return nil, err
	}
	return h.repo.FindByRequest(query.ServiceID)
}
