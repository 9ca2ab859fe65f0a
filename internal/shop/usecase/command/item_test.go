package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/usecase/command"
)

func TestCreateItem(t *testing.T) {
	e := newEnv()
	h := command.NewCreateItemHandler(e.store.Items(), e.resolver)
	c := e.customer(t, "ada@example.com")
	sale := e.service(t, c.ID, domain.ServiceTypeSale)
	repairSR := e.service(t, c.ID, domain.ServiceTypeRepair)
	v := e.variant(t, 10)

	t.Run("adds a line item under the sale", func(t *testing.T) {
		item, err := h.Handle(command.CreateItemCommand{
			CustomerID: c.ID, ServiceID: sale.ID, ActorID: c.ID,
			ProductVariantID: v.ID, Quantity: 2, UnitPrice: 299.99,
		})
		require.NoError(t, err)
		assert.NotZero(t, item.ID)
		assert.Equal(t, sale.ID, item.RequestID)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("the same variant twice under one sale conflicts", func(t *testing.T) {
		_, err := h.Handle(command.CreateItemCommand{
			CustomerID: c.ID, ServiceID: sale.ID, ActorID: c.ID,
			ProductVariantID: v.ID, Quantity: 1, UnitPrice: 299.99,
		})
		var conflict *domain.ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("a repair request cannot own items", func(t *testing.T) {
		_, err := h.Handle(command.CreateItemCommand{
			CustomerID: c.ID, ServiceID: repairSR.ID, ActorID: c.ID,
			ProductVariantID: v.ID, Quantity: 1, UnitPrice: 1,
		})
		requireNotFound(t, err, "service request")
	})

	t.Run("field validation", func(t *testing.T) {
		tests := []struct {
			cmd    command.CreateItemCommand
			reason string
		}{
			{command.CreateItemCommand{CustomerID: c.ID, ServiceID: sale.ID, ActorID: c.ID, Quantity: 1}, "product_variant_id is required"},
			{command.CreateItemCommand{CustomerID: c.ID, ServiceID: sale.ID, ActorID: c.ID, ProductVariantID: v.ID}, "quantity must be positive"},
			{command.CreateItemCommand{CustomerID: c.ID, ServiceID: sale.ID, ActorID: c.ID, ProductVariantID: v.ID, Quantity: 1, UnitPrice: -1}, "unit price cannot be negative"},
		}
		for _, tt := range tests {
			_, err := h.Handle(tt.cmd)
			requireBadRequest(t, err, tt.reason)
		}
	})

	t.Run("another actor is forbidden", func(t *testing.T) {
		_, err := h.Handle(command.CreateItemCommand{
			CustomerID: c.ID, ServiceID: sale.ID, ActorID: c.ID + 1,
			ProductVariantID: v.ID, Quantity: 1, UnitPrice: 1,
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestUpdateItem(t *testing.T) {
	e := newEnv()
	h := command.NewUpdateItemHandler(e.store.Items(), e.resolver)
	c := e.customer(t, "ada@example.com")
	sale := e.service(t, c.ID, domain.ServiceTypeSale)
	v := e.variant(t, 10)
	item := e.item(t, sale.ID, v.ID)

	t.Run("patch merges quantity", func(t *testing.T) {
		updated, err := h.Handle(command.UpdateItemCommand{
			CustomerID: c.ID, ServiceID: sale.ID, ItemID: item.ID, ActorID: c.ID,
			Fields: domain.ItemUpdate{Quantity: intPtr(5)},
		})
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Quantity)
		assert.Equal(t, v.ID, updated.ProductVariantID)
	})

	t.Run("changing the variant is rejected", func(t *testing.T) {
		_, err := h.Handle(command.UpdateItemCommand{
			CustomerID: c.ID, ServiceID: sale.ID, ItemID: item.ID, ActorID: c.ID,
			Fields: domain.ItemUpdate{ProductVariantID: uintPtr(v.ID + 1), Quantity: intPtr(1)},
		})
		requireBadRequest(t, err, "product variant cannot be changed after creation")
	})

	t.Run("echoing the stored variant alone is an empty patch", func(t *testing.T) {
		_, err := h.Handle(command.UpdateItemCommand{
			CustomerID: c.ID, ServiceID: sale.ID, ItemID: item.ID, ActorID: c.ID,
			Fields: domain.ItemUpdate{ProductVariantID: uintPtr(v.ID)},
		})
		requireBadRequest(t, err, "no valid fields provided for update")
	})

	t.Run("replace requires each field by name", func(t *testing.T) {
		tests := []struct {
			fields domain.ItemUpdate
			reason string
		}{
			{domain.ItemUpdate{Quantity: intPtr(1), UnitPrice: floatPtr(1)}, "product_variant_id is required"},
			{domain.ItemUpdate{ProductVariantID: uintPtr(v.ID), UnitPrice: floatPtr(1)}, "quantity is required"},
			{domain.ItemUpdate{ProductVariantID: uintPtr(v.ID), Quantity: intPtr(1)}, "unit_price is required"},
		}
		for _, tt := range tests {
			_, err := h.Handle(command.UpdateItemCommand{
				CustomerID: c.ID, ServiceID: sale.ID, ItemID: item.ID, ActorID: c.ID, Replace: true,
				Fields: tt.fields,
			})
			requireBadRequest(t, err, tt.reason)
		}
	})

	t.Run("replace with the echoed variant succeeds", func(t *testing.T) {
		updated, err := h.Handle(command.UpdateItemCommand{
			CustomerID: c.ID, ServiceID: sale.ID, ItemID: item.ID, ActorID: c.ID, Replace: true,
			Fields: domain.ItemUpdate{ProductVariantID: uintPtr(v.ID), Quantity: intPtr(3), UnitPrice: floatPtr(250)},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, updated.Quantity)
		assert.Equal(t, 250.0, updated.UnitPrice)
	})

	t.Run("quantity must stay positive", func(t *testing.T) {
		_, err := h.Handle(command.UpdateItemCommand{
			CustomerID: c.ID, ServiceID: sale.ID, ItemID: item.ID, ActorID: c.ID,
			Fields: domain.ItemUpdate{Quantity: intPtr(0)},
		})
		requireBadRequest(t, err, "quantity must be positive")
	})
}

func TestDeleteItem(t *testing.T) {
	e := newEnv()
	h := command.NewDeleteItemHandler(e.store.Items(), e.resolver)
	c := e.customer(t, "ada@example.com")
	sale := e.service(t, c.ID, domain.ServiceTypeSale)
	v := e.variant(t, 10)
	item := e.item(t, sale.ID, v.ID)

	t.Run("another actor is forbidden", func(t *testing.T) {
		err := h.Handle(command.DeleteItemCommand{
			CustomerID: c.ID, ServiceID: sale.ID, ItemID: item.ID, ActorID: c.ID + 1,
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("removes the line item", func(t *testing.T) {
		require.NoError(t, h.Handle(command.DeleteItemCommand{
			CustomerID: c.ID, ServiceID: sale.ID, ItemID: item.ID, ActorID: c.ID,
		}))
		_, err := e.store.Items().FindByIDAndRequest(item.ID, sale.ID)
		requireNotFound(t, err, "item request")
	})
}
