package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/repository"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

type fixture struct {
	resolver *resolver.Resolver

	customer *domain.Customer
	other    *domain.Customer
	sale     *domain.ServiceRequest
	repairSR *domain.ServiceRequest
	repair   *domain.Repair
	item     *domain.ItemRequest
	product  *domain.Product
	variant  *domain.ProductVariant
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := repository.NewMemory()
	f := &fixture{
		resolver: resolver.New(
			store.Customers(), store.Services(), store.Repairs(),
			store.Items(), store.Products(), store.Variants(),
		),
		customer: &domain.Customer{Name: "Ada", Email: "ada@example.com", Password: "hash", Address: "1 Main St"},
		other:    &domain.Customer{Name: "Bob", Email: "bob@example.com", Password: "hash", Address: "2 Side St"},
		product:  &domain.Product{Name: "Phone", Price: 300},
	}
	require.NoError(t, store.Customers().Create(f.customer))
	require.NoError(t, store.Customers().Create(f.other))

	f.sale = &domain.ServiceRequest{CustomerID: f.customer.ID, Type: domain.ServiceTypeSale}
	f.repairSR = &domain.ServiceRequest{CustomerID: f.customer.ID, Type: domain.ServiceTypeRepair}
	require.NoError(t, store.Services().Create(f.sale))
	require.NoError(t, store.Services().Create(f.repairSR))

	f.repair = &domain.Repair{RequestID: f.repairSR.ID, Description: "broken hinge", Status: domain.StatusPending}
	require.NoError(t, store.Repairs().Create(f.repair))

	require.NoError(t, store.Products().Create(f.product))
	f.variant = &domain.ProductVariant{ProductID: f.product.ID, Size: "M", Color: "black", StockQuantity: 10}
	require.NoError(t, store.Variants().Create(f.variant))

	f.item = &domain.ItemRequest{RequestID: f.sale.ID, ProductVariantID: f.variant.ID, Quantity: 1, UnitPrice: 300}
	require.NoError(t, store.Items().Create(f.item))
	return f
}

func assertNotFound(t *testing.T, err error, resource string) {
	t.Helper()
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, resource, notFound.Resource)
}

func TestResolveCustomer(t *testing.T) {
	f := newFixture(t)

	c, err := f.resolver.Customer(f.customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", c.Email)

	_, err = f.resolver.Customer(9999)
	assertNotFound(t, err, "customer")
}

func TestResolveService(t *testing.T) {
	f := newFixture(t)

	s, err := f.resolver.Service(f.customer.ID, f.sale.ID)
	require.NoError(t, err)
	assert.Equal(t, f.sale.ID, s.ID)

	t.Run("missing customer fails before the service lookup", func(t *testing.T) {
		_, err := f.resolver.Service(9999, f.sale.ID)
		assertNotFound(t, err, "customer")
	})

	t.Run("service under another customer reads as not found", func(t *testing.T) {
		_, err := f.resolver.Service(f.other.ID, f.sale.ID)
		assertNotFound(t, err, "service request")
	})
}

func TestResolveTypedService(t *testing.T) {
	f := newFixture(t)

	s, err := f.resolver.TypedService(f.customer.ID, f.repairSR.ID, domain.ServiceTypeRepair)
	require.NoError(t, err)
	assert.Equal(t, domain.ServiceTypeRepair, s.Type)

	t.Run("wrong type reads as not found", func(t *testing.T) {
		_, err := f.resolver.TypedService(f.customer.ID, f.sale.ID, domain.ServiceTypeRepair)
		assertNotFound(t, err, "service request")
	})
}

func TestResolveRepair(t *testing.T) {
	f := newFixture(t)

	service, repair, err := f.resolver.Repair(f.customer.ID, f.repairSR.ID, f.repair.ID)
	require.NoError(t, err)
	assert.Equal(t, f.repairSR.ID, service.ID)
	assert.Equal(t, "broken hinge", repair.Description)

	t.Run("repair addressed through a sale request reads as not found", func(t *testing.T) {
		_, _, err := f.resolver.Repair(f.customer.ID, f.sale.ID, f.repair.ID)
		assertNotFound(t, err, "service request")
	})

	t.Run("unknown repair id", func(t *testing.T) {
		_, _, err := f.resolver.Repair(f.customer.ID, f.repairSR.ID, 9999)
		assertNotFound(t, err, "repair")
	})
}

func TestResolveItem(t *testing.T) {
	f := newFixture(t)

	service, item, err := f.resolver.Item(f.customer.ID, f.sale.ID, f.item.ID)
	require.NoError(t, err)
	assert.Equal(t, f.sale.ID, service.ID)
	assert.Equal(t, f.variant.ID, item.ProductVariantID)

	t.Run("item addressed through a repair request reads as not found", func(t *testing.T) {
		_, _, err := f.resolver.Item(f.customer.ID, f.repairSR.ID, f.item.ID)
		assertNotFound(t, err, "service request")
	})
}

func TestResolveVariant(t *testing.T) {
	f := newFixture(t)

	v, err := f.resolver.Variant(f.product.ID, f.variant.ID)
	require.NoError(t, err)
	assert.Equal(t, "black", v.Color)

	t.Run("missing product fails before the variant lookup", func(t *testing.T) {
		_, err := f.resolver.Variant(9999, f.variant.ID)
		assertNotFound(t, err, "product")
	})

	t.Run("variant under another product reads as not found", func(t *testing.T) {
		other := &domain.Product{Name: "Tablet", Price: 500}
		// A second product with no variants of its own.
		store := repository.NewMemory()
		res := resolver.New(store.Customers(), store.Services(), store.Repairs(), store.Items(), store.Products(), store.Variants())
		require.NoError(t, store.Products().Create(other))
		_, err := res.Variant(other.ID, 9999)
		assertNotFound(t, err, "product variant")
	})
}
