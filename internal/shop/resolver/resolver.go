// Package resolver walks the ownership chains of nested resources. Every
// lookup runs strictly top-down (customer, then service request, then the
// child resource) and stops at the first broken link, so a resource reached
// through the wrong parent is indistinguishable from one that does not
// exist.
package resolver

import "github.com/fixhub/repairshop/internal/shop/domain"

// Resolver resolves composite-key lookups across the entity hierarchy.
type Resolver struct {
	customers domain.CustomerRepository
	services  domain.ServiceRepository
	repairs   domain.RepairRepository
	items     domain.ItemRequestRepository
	products  domain.ProductRepository
	variants  domain.VariantRepository
}

// New creates a resolver over the given repositories.
func New(
	customers domain.CustomerRepository,
	services domain.ServiceRepository,
	repairs domain.RepairRepository,
	items domain.ItemRequestRepository,
	products domain.ProductRepository,
	variants domain.VariantRepository,
) *Resolver {
	return &Resolver{
		customers: customers,
		services:  services,
		repairs:   repairs,
		items:     items,
		products:  products,
		variants:  variants,
	}
}

// Customer resolves a customer by id.
func (r *Resolver) Customer(id uint) (*domain.Customer, error) {
	return r.customers.FindByID(id)
}

// Service resolves a service request under a customer. The customer must
// exist and the service must belong to it; a service id owned by somebody
// else reads as not found.
func (r *Resolver) Service(customerID, serviceID uint) (*domain.ServiceRequest, error) {
	if _, err := r.customers.FindByID(customerID); err != nil {
		return nil, err
	}
	return r.services.FindByIDAndCustomer(serviceID, customerID)
}

// TypedService resolves a service request and checks it carries the type
// required by the sub-collection being addressed.
func (r *Resolver) TypedService(customerID, serviceID uint, want domain.ServiceType) (*domain.ServiceRequest, error) {
	service, err := r.Service(customerID, serviceID)
	if err != nil {
		return nil, err
	}
	if err := domain.EnsureServiceType(service, want); err != nil {
		return nil, err
	}
	return service, nil
}

// Repair resolves a repair ticket through its full chain: the customer, the
// repair-type service request owning it, then the repair itself.
func (r *Resolver) Repair(customerID, serviceID, repairID uint) (*domain.ServiceRequest, *domain.Repair, error) {
	service, err := r.TypedService(customerID, serviceID, domain.ServiceTypeRepair)
	if err != nil {
		return nil, nil, err
	}
	repair, err := r.repairs.FindByIDAndRequest(repairID, serviceID)
	if err != nil {
		return nil, nil, err
	}
	return service, repair, nil
}

// Item resolves an item request through its full chain: the customer, the
// sale-type service request owning it, then the item itself.
func (r *Resolver) Item(customerID, serviceID, itemID uint) (*domain.ServiceRequest, *domain.ItemRequest, error) {
	service, err := r.TypedService(customerID, serviceID, domain.ServiceTypeSale)
	if err != nil {
		return nil, nil, err
	}
	item, err := r.items.FindByIDAndRequest(itemID, serviceID)
	if err != nil {
		return nil, nil, err
	}
	return service, item, nil
}

// Product resolves a product by id.
func (r *Resolver) Product(id uint) (*domain.Product, error) {
	return r.products.FindByID(id)
}

// Variant resolves a product variant under a product.
func (r *Resolver) Variant(productID, variantID uint) (*domain.ProductVariant, error) {
	if _, err := r.products.FindByID(productID); err != nil {
		return nil, err
	}
	return r.variants.FindByIDAndProduct(variantID, productID)
}
