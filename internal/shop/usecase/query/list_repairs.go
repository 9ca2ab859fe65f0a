package query

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// ListRepairsQuery represents the query to list the repair tickets of a
// repair-type service request
type ListRepairsQuery struct {
	CustomerID uint
	ServiceID  uint
}

// ListRepairsHandler handles list repairs query
type ListRepairsHandler struct {
	repo     domain.RepairRepository
	resolver *resolver.Resolver
}

// NewListRepairsHandler creates a new list repairs handler
func NewListRepairsHandler(repo domain.RepairRepository, res *resolver.Resolver) *ListRepairsHandler {
	return &ListRepairsHandler{repo: repo, resolver: res}
}

// Handle executes the list repairs query
func (h *ListRepairsHandler) Handle(query ListRepairsQuery) ([]domain.Repair, error) {
	if _, err := h.resolver.TypedService(query.CustomerID, query.ServiceID, domain.ServiceTypeRepair); err != nil {
		return nil, err
	}
	return h.repo.FindByRequest(query.ServiceID)
}
