package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/usecase/command"
)

func TestCreateService(t *testing.T) {
	e := newEnv()
	h := command.NewCreateServiceHandler(e.store.Services(), e.resolver)
	c := e.customer(t, "ada@example.com")

	t.Run("opens a request under the customer", func(t *testing.T) {
		service, err := h.Handle(command.CreateServiceCommand{
			CustomerID: c.ID, ActorID: c.ID, Type: domain.ServiceTypeRepair, TotalCost: 49.90,
		})
		require.NoError(t, err)
		assert.NotZero(t, service.ID)
		assert.Equal(t, c.ID, service.CustomerID)
		assert.Equal(t, domain.ServiceTypeRepair, service.Type)
		assert.Equal(t, 49.90, service.TotalCost)
		assert.False(t, service.Date.IsZero())
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		_, err := h.Handle(command.CreateServiceCommand{
			CustomerID: c.ID, ActorID: c.ID, Type: "rental",
		})
		requireBadRequest(t, err, "invalid service type")
	})

	t.Run("rejects a negative total cost", func(t *testing.T) {
		_, err := h.Handle(command.CreateServiceCommand{
			CustomerID: c.ID, ActorID: c.ID, Type: domain.ServiceTypeSale, TotalCost: -1,
		})
		requireBadRequest(t, err, "total cost cannot be negative")
	})

	t.Run("another actor is forbidden", func(t *testing.T) {
		_, err := h.Handle(command.CreateServiceCommand{
			CustomerID: c.ID, ActorID: c.ID + 1, Type: domain.ServiceTypeSale,
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown customer", func(t *testing.T) {
		_, err := h.Handle(command.CreateServiceCommand{
			CustomerID: 9999, ActorID: 9999, Type: domain.ServiceTypeSale,
		})
		requireNotFound(t, err, "customer")
	})
}

func TestUpdateService(t *testing.T) {
	e := newEnv()
	h := command.NewUpdateServiceHandler(e.store.Services(), e.resolver)
	c := e.customer(t, "ada@example.com")
	s := e.service(t, c.ID, domain.ServiceTypeSale)

	t.Run("patch merges total cost", func(t *testing.T) {
		updated, err := h.Handle(command.UpdateServiceCommand{
			CustomerID: c.ID, ServiceID: s.ID, ActorID: c.ID,
			Fields: domain.ServiceUpdate{TotalCost: floatPtr(120)},
		})
		require.NoError(t, err)
		assert.Equal(t, 120.0, updated.TotalCost)
	})

	t.Run("echoing the stored type alone is an empty patch", func(t *testing.T) {
		_, err := h.Handle(command.UpdateServiceCommand{
			CustomerID: c.ID, ServiceID: s.ID, ActorID: c.ID,
			Fields: domain.ServiceUpdate{Type: typePtr(domain.ServiceTypeSale)},
		})
		requireBadRequest(t, err, "no valid fields provided for update")
	})

	t.Run("changing the type is rejected", func(t *testing.T) {
		_, err := h.Handle(command.UpdateServiceCommand{
			CustomerID: c.ID, ServiceID: s.ID, ActorID: c.ID,
			Fields: domain.ServiceUpdate{Type: typePtr(domain.ServiceTypeRepair)},
		})
		requireBadRequest(t, err, "service type cannot be changed after creation")
	})

	t.Run("replace requires the type and defaults total cost to zero", func(t *testing.T) {
		_, err := h.Handle(command.UpdateServiceCommand{
			CustomerID: c.ID, ServiceID: s.ID, ActorID: c.ID, Replace: true,
			Fields: domain.ServiceUpdate{TotalCost: floatPtr(50)},
		})
		requireBadRequest(t, err, "type is required")

		updated, err := h.Handle(command.UpdateServiceCommand{
			CustomerID: c.ID, ServiceID: s.ID, ActorID: c.ID, Replace: true,
			Fields: domain.ServiceUpdate{Type: typePtr(domain.ServiceTypeSale)},
		})
		require.NoError(t, err)
		assert.Zero(t, updated.TotalCost)
	})

	t.Run("service under another customer reads as not found", func(t *testing.T) {
		other := e.customer(t, "bob@example.com")
		_, err := h.Handle(command.UpdateServiceCommand{
			CustomerID: other.ID, ServiceID: s.ID, ActorID: other.ID,
			Fields: domain.ServiceUpdate{TotalCost: floatPtr(1)},
		})
		requireNotFound(t, err, "service request")
	})
}

func TestDeleteService(t *testing.T) {
	e := newEnv()
	h := command.NewDeleteServiceHandler(e.store.Services(), e.resolver)
	c := e.customer(t, "ada@example.com")
	s := e.service(t, c.ID, domain.ServiceTypeRepair)
	r := e.repair(t, s.ID, domain.StatusPending)

	t.Run("another actor is forbidden", func(t *testing.T) {
		err := h.Handle(command.DeleteServiceCommand{CustomerID: c.ID, ServiceID: s.ID, ActorID: c.ID + 1})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("delete cascades to repairs", func(t *testing.T) {
		require.NoError(t, h.Handle(command.DeleteServiceCommand{CustomerID: c.ID, ServiceID: s.ID, ActorID: c.ID}))

		_, err := e.store.Services().FindByIDAndCustomer(s.ID, c.ID)
		requireNotFound(t, err, "service request")
		_, err = e.store.Repairs().FindByIDAndRequest(r.ID, s.ID)
		requireNotFound(t, err, "repair")
	})
}
