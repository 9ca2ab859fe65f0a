package query

import (
	"github.com/fixhub/repairshop/internal/shop/domain"
)

// ListCustomersQuery represents the query to list all customers
type ListCustomersQuery struct{}

// ListCustomersHandler handles list customers query
type ListCustomersHandler struct {
	repo domain.CustomerRepository
}

// NewListCustomersHandler creates a new list customers handler
func NewListCustomersHandler(repo domain.CustomerRepository) *ListCustomersHandler {
	return &ListCustomersHandler{repo: repo}
}

// Handle executes the list customers query
func (h *ListCustomersHandler) Handle(query ListCustomersQuery) ([]domain.Customer, error) {
	return h.repo.FindAll()
}
