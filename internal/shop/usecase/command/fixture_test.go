package command_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/repository"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// env wires every handler dependency over a fresh in-memory store.
type env struct {
	store    *repository.Memory
	resolver *resolver.Resolver
}

func newEnv() *env {
	store := repository.NewMemory()
	return &env{
		store: store,
		resolver: resolver.New(
			store.Customers(), store.Services(), store.Repairs(),
			store.Items(), store.Products(), store.Variants(),
		),
	}
}

func (e *env) customer(t *testing.T, email string) *domain.Customer {
	t.Helper()
	c := &domain.Customer{Name: "Ada", Email: email, Password: "digest", Address: "1 Main St"}
	require.NoError(t, e.store.Customers().Create(c))
	return c
}

func (e *env) service(t *testing.T, customerID uint, kind domain.ServiceType) *domain.ServiceRequest {
	t.Helper()
	s := &domain.ServiceRequest{CustomerID: customerID, Type: kind}
	require.NoError(t, e.store.Services().Create(s))
	return s
}

func (e *env) repair(t *testing.T, requestID uint, status domain.RepairStatus) *domain.Repair {
	t.Helper()
	r := &domain.Repair{RequestID: requestID, Description: "broken hinge", Status: status}
	require.NoError(t, e.store.Repairs().Create(r))
	return r
}

func (e *env) variant(t *testing.T, stock int) *domain.ProductVariant {
	t.Helper()
	p := &domain.Product{Name: "Phone", Price: 300}
	require.NoError(t, e.store.Products().Create(p))
	v := &domain.ProductVariant{ProductID: p.ID, Size: "M", Color: "black", StockQuantity: stock}
	require.NoError(t, e.store.Variants().Create(v))
	return v
}

func (e *env) item(t *testing.T, requestID, variantID uint) *domain.ItemRequest {
	t.Helper()
	it := &domain.ItemRequest{RequestID: requestID, ProductVariantID: variantID, Quantity: 1, UnitPrice: 300}
	require.NoError(t, e.store.Items().Create(it))
	return it
}

func requireBadRequest(t *testing.T, err error, reason string) {
	t.Helper()
	var badReq *domain.BadRequestError
	require.ErrorAs(t, err, &badReq)
	require.Equal(t, reason, badReq.Reason)
}

func requireNotFound(t *testing.T, err error, resource string) {
	t.Helper()
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, resource, notFound.Resource)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func uintPtr(u uint) *uint { return &u }

func typePtr(v domain.ServiceType) *domain.ServiceType { return &v }

func statusPtr(v domain.RepairStatus) *domain.RepairStatus { return &v }
