package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixhub/repairshop/internal/shop/domain"
)

func seedVariant(t *testing.T, m *Memory, stock int) *domain.ProductVariant {
	t.Helper()
	p := &domain.Product{Name: "Phone", Price: 300}
	require.NoError(t, m.Products().Create(p))
	v := &domain.ProductVariant{ProductID: p.ID, Size: "M", Color: "black", StockQuantity: stock}
	require.NoError(t, m.Variants().Create(v))
	return v
}

func TestDecrementStock(t *testing.T) {
	m := NewMemory()
	v := seedVariant(t, m, 5)

	require.NoError(t, m.Variants().DecrementStock(v.ID, 2))
	got, err := m.Variants().FindByIDAndProduct(v.ID, v.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.StockQuantity)

	t.Run("clamps at zero", func(t *testing.T) {
		require.NoError(t, m.Variants().DecrementStock(v.ID, 100))
		got, err := m.Variants().FindByIDAndProduct(v.ID, v.ProductID)
		require.NoError(t, err)
		assert.Zero(t, got.StockQuantity)
	})

	t.Run("unknown variant", func(t *testing.T) {
		err := m.Variants().DecrementStock(9999, 1)
		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

func TestDeleteVariantCascadesToItems(t *testing.T) {
	m := NewMemory()
	v := seedVariant(t, m, 5)

	c := &domain.Customer{Name: "Ada", Email: "ada@example.com", Password: "digest", Address: "1 Main St"}
	require.NoError(t, m.Customers().Create(c))
	s := &domain.ServiceRequest{CustomerID: c.ID, Type: domain.ServiceTypeSale}
	require.NoError(t, m.Services().Create(s))
	it := &domain.ItemRequest{RequestID: s.ID, ProductVariantID: v.ID, Quantity: 1, UnitPrice: 300}
	require.NoError(t, m.Items().Create(it))

	require.NoError(t, m.Variants().Delete(v.ID))
	_, err := m.Items().FindByIDAndRequest(it.ID, s.ID)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestItemCreateRequiresExistingVariant(t *testing.T) {
	m := NewMemory()
	c := &domain.Customer{Name: "Ada", Email: "ada@example.com", Password: "digest", Address: "1 Main St"}
	require.NoError(t, m.Customers().Create(c))
	s := &domain.ServiceRequest{CustomerID: c.ID, Type: domain.ServiceTypeSale}
	require.NoError(t, m.Services().Create(s))

	err := m.Items().Create(&domain.ItemRequest{RequestID: s.ID, ProductVariantID: 9999, Quantity: 1})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
}
