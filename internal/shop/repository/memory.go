package repository

import (
	"slices"
	"sync"
	"time"

	"github.com/fixhub/repairshop/internal/shop/domain"
)

// Memory is an in-memory store implementing every repository contract. It
// mirrors the store-level guarantees the SQL schema provides: unique
// customer emails, a unique (request, variant) pair per item request, and
// cascading deletes child to parent. It backs the test suites; nothing in
// the serving path uses it.
type Memory struct {
	mu     sync.Mutex
	nextID uint

	customers map[uint]domain.Customer
	services  map[uint]domain.ServiceRequest
	repairs   map[uint]domain.Repair
	items     map[uint]domain.ItemRequest
	products  map[uint]domain.Product
	variants  map[uint]domain.ProductVariant
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		customers: make(map[uint]domain.Customer),
		services:  make(map[uint]domain.ServiceRequest),
		repairs:   make(map[uint]domain.Repair),
		items:     make(map[uint]domain.ItemRequest),
		products:  make(map[uint]domain.Product),
		variants:  make(map[uint]domain.ProductVariant),
	}
}

func (m *Memory) id() uint {
	m.nextID++
	return m.nextID
}

// Customers returns the customer repository view of the store.
func (m *Memory) Customers() domain.CustomerRepository { return &memCustomers{m} }

// Services returns the service request repository view of the store.
func (m *Memory) Services() domain.ServiceRepository { return &memServices{m} }

// Repairs returns the repair repository view of the store.
func (m *Memory) Repairs() domain.RepairRepository { return &memRepairs{m} }

// Items returns the item request repository view of the store.
func (m *Memory) Items() domain.ItemRequestRepository { return &memItems{m} }

// Products returns the product repository view of the store.
func (m *Memory) Products() domain.ProductRepository { return &memProducts{m} }

// Variants returns the product variant repository view of the store.
func (m *Memory) Variants() domain.VariantRepository { return &memVariants{m} }

func (m *Memory) deleteServiceLocked(id uint) {
	for rid, r := range m.repairs {
		if r.RequestID == id {
			delete(m.repairs, rid)
		}
	}
	for iid, it := range m.items {
		if it.RequestID == id {
			delete(m.items, iid)
		}
	}
	delete(m.services, id)
}

func (m *Memory) deleteVariantLocked(id uint) {
	for iid, it := range m.items {
		if it.ProductVariantID == id {
			delete(m.items, iid)
		}
	}
	delete(m.variants, id)
}

// --- customers ---

type memCustomers struct{ m *Memory }

func (r *memCustomers) Create(customer *domain.Customer) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, c := range r.m.customers {
		if c.Email == customer.Email {
			return &domain.ConflictError{Constraint: "customers_email_key"}
		}
	}
	customer.ID = r.m.id()
	customer.CreatedAt = time.Now().UTC()
	r.m.customers[customer.ID] = *customer
	return nil
}

func (r *memCustomers) FindByID(id uint) (*domain.Customer, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c, ok := r.m.customers[id]
	if !ok {
		return nil, domain.NotFound("customer", id)
	}
	c.Services = nil
	for _, s := range r.m.services {
		if s.CustomerID == id {
			r.m.stripService(&s)
			c.Services = append(c.Services, s)
		}
	}
	return &c, nil
}

func (r *memCustomers) FindByEmail(email string) (*domain.Customer, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, c := range r.m.customers {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, domain.NotFound("customer", 0)
}

func (r *memCustomers) FindAll() ([]domain.Customer, error) {
	r.m.mu.Lock()
	ids := make([]uint, 0, len(r.m.customers))
	for id := range r.m.customers {
		ids = append(ids, id)
	}
	r.m.mu.Unlock()

	sortIDs(ids)
	customers := make([]domain.Customer, 0, len(ids))
	for _, id := range ids {
		c, err := r.FindByID(id)
		if err != nil {
			continue
		}
		customers = append(customers, *c)
	}
	return customers, nil
}

func (r *memCustomers) Update(customer *domain.Customer) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.customers[customer.ID]; !ok {
		return domain.NotFound("customer", customer.ID)
	}
	for _, c := range r.m.customers {
		if c.Email == customer.Email && c.ID != customer.ID {
			return &domain.ConflictError{Constraint: "customers_email_key"}
		}
	}
	stored := *customer
	stored.Services = nil
	r.m.customers[customer.ID] = stored
	return nil
}

func (r *memCustomers) Delete(id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.customers[id]; !ok {
		return domain.NotFound("customer", id)
	}
	for sid, s := range r.m.services {
		if s.CustomerID == id {
			r.m.deleteServiceLocked(sid)
		}
	}
	delete(r.m.customers, id)
	return nil
}

// --- service requests ---

type memServices struct{ m *Memory }

// stripService fills one preload level without recursing.
func (m *Memory) stripService(s *domain.ServiceRequest) {
	s.Customer = nil
	s.Repairs = nil
	s.Items = nil
}

func (r *memServices) Create(service *domain.ServiceRequest) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	service.ID = r.m.id()
	service.Date = time.Now().UTC()
	stored := *service
	r.m.stripService(&stored)
	r.m.services[service.ID] = stored
	return nil
}

func (r *memServices) FindByIDAndCustomer(id, customerID uint) (*domain.ServiceRequest, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.services[id]
	if !ok || s.CustomerID != customerID {
		return nil, domain.NotFound("service request", id)
	}
	if c, ok := r.m.customers[s.CustomerID]; ok {
		s.Customer = &c
	}
	for _, rep := range r.m.repairs {
		if rep.RequestID == id {
			rep.Service = nil
			s.Repairs = append(s.Repairs, rep)
		}
	}
	for _, it := range r.m.items {
		if it.RequestID == id {
			it.Service = nil
			s.Items = append(s.Items, it)
		}
	}
	return &s, nil
}

func (r *memServices) FindByCustomer(customerID uint) ([]domain.ServiceRequest, error) {
	r.m.mu.Lock()
	ids := make([]uint, 0)
	for id, s := range r.m.services {
		if s.CustomerID == customerID {
			ids = append(ids, id)
		}
	}
	r.m.mu.Unlock()

	sortIDs(ids)
	services := make([]domain.ServiceRequest, 0, len(ids))
	for _, id := range ids {
		s, err := r.FindByIDAndCustomer(id, customerID)
		if err != nil {
			continue
		}
		services = append(services, *s)
	}
	return services, nil
}

func (r *memServices) Update(service *domain.ServiceRequest) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.services[service.ID]; !ok {
		return domain.NotFound("service request", service.ID)
	}
	stored := *service
	r.m.stripService(&stored)
	r.m.services[service.ID] = stored
	return nil
}

func (r *memServices) Delete(id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.services[id]; !ok {
		return domain.NotFound("service request", id)
	}
	r.m.deleteServiceLocked(id)
	return nil
}

// --- repairs ---

type memRepairs struct{ m *Memory }

func (r *memRepairs) Create(repair *domain.Repair) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	repair.ID = r.m.id()
	repair.CreatedAt = time.Now().UTC()
	if repair.Status == "" {
		repair.Status = domain.StatusPending
	}
	stored := *repair
	stored.Service = nil
	r.m.repairs[repair.ID] = stored
	return nil
}

func (r *memRepairs) FindByIDAndRequest(id, requestID uint) (*domain.Repair, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	rep, ok := r.m.repairs[id]
	if !ok || rep.RequestID != requestID {
		return nil, domain.NotFound("repair", id)
	}
	if s, ok := r.m.services[rep.RequestID]; ok {
		r.m.stripService(&s)
		rep.Service = &s
	}
	return &rep, nil
}

func (r *memRepairs) FindByRequest(requestID uint) ([]domain.Repair, error) {
	r.m.mu.Lock()
	ids := make([]uint, 0)
	for id, rep := range r.m.repairs {
		if rep.RequestID == requestID {
			ids = append(ids, id)
		}
	}
	r.m.mu.Unlock()

	sortIDs(ids)
	repairs := make([]domain.Repair, 0, len(ids))
	for _, id := range ids {
		rep, err := r.FindByIDAndRequest(id, requestID)
		if err != nil {
			continue
		}
		repairs = append(repairs, *rep)
	}
	return repairs, nil
}

func (r *memRepairs) Update(repair *domain.Repair) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.repairs[repair.ID]; !ok {
		return domain.NotFound("repair", repair.ID)
	}
	stored := *repair
	stored.Service = nil
	r.m.repairs[repair.ID] = stored
	return nil
}

func (r *memRepairs) Delete(id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.repairs[id]; !ok {
		return domain.NotFound("repair", id)
	}
	delete(r.m.repairs, id)
	return nil
}

// --- item requests ---

type memItems struct{ m *Memory }

func (r *memItems) Create(item *domain.ItemRequest) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.variants[item.ProductVariantID]; !ok {
		return &domain.ConflictError{Constraint: "fk_item_requests_variant"}
	}
	for _, it := range r.m.items {
		if it.RequestID == item.RequestID && it.ProductVariantID == item.ProductVariantID {
			return &domain.ConflictError{Constraint: "uniq_request_variant"}
		}
	}
	item.ID = r.m.id()
	item.CreatedAt = time.Now().UTC()
	stored := *item
	stored.Service = nil
	stored.Variant = nil
	r.m.items[item.ID] = stored
	return nil
}

func (r *memItems) FindByIDAndRequest(id, requestID uint) (*domain.ItemRequest, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	it, ok := r.m.items[id]
	if !ok || it.RequestID != requestID {
		return nil, domain.NotFound("item request", id)
	}
	if s, ok := r.m.services[it.RequestID]; ok {
		r.m.stripService(&s)
		it.Service = &s
	}
	return &it, nil
}

func (r *memItems) FindByRequest(requestID uint) ([]domain.ItemRequest, error) {
	r.m.mu.Lock()
	ids := make([]uint, 0)
	for id, it := range r.m.items {
		if it.RequestID == requestID {
			ids = append(ids, id)
		}
	}
	r.m.mu.Unlock()

	sortIDs(ids)
	items := make([]domain.ItemRequest, 0, len(ids))
	for _, id := range ids {
		it, err := r.FindByIDAndRequest(id, requestID)
		if err != nil {
			continue
		}
		items = append(items, *it)
	}
	return items, nil
}

func (r *memItems) Update(item *domain.ItemRequest) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.items[item.ID]; !ok {
		return domain.NotFound("item request", item.ID)
	}
	stored := *item
	stored.Service = nil
	stored.Variant = nil
	r.m.items[item.ID] = stored
	return nil
}

func (r *memItems) Delete(id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.items[id]; !ok {
		return domain.NotFound("item request", id)
	}
	delete(r.m.items, id)
	return nil
}

// --- products ---

type memProducts struct{ m *Memory }

func (r *memProducts) Create(product *domain.Product) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	product.ID = r.m.id()
	product.CreatedAt = time.Now().UTC()
	stored := *product
	stored.Variants = nil
	r.m.products[product.ID] = stored
	return nil
}

func (r *memProducts) FindByID(id uint) (*domain.Product, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.products[id]
	if !ok {
		return nil, domain.NotFound("product", id)
	}
	p.Variants = nil
	for _, v := range r.m.variants {
		if v.ProductID == id {
			v.Product = nil
			p.Variants = append(p.Variants, v)
		}
	}
	return &p, nil
}

func (r *memProducts) FindAll() ([]domain.Product, error) {
	r.m.mu.Lock()
	ids := make([]uint, 0, len(r.m.products))
	for id := range r.m.products {
		ids = append(ids, id)
	}
	r.m.mu.Unlock()

	sortIDs(ids)
	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		p, err := r.FindByID(id)
		if err != nil {
			continue
		}
		products = append(products, *p)
	}
	return products, nil
}

func (r *memProducts) Update(product *domain.Product) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.products[product.ID]; !ok {
		return domain.NotFound("product", product.ID)
	}
	stored := *product
	stored.Variants = nil
	r.m.products[product.ID] = stored
	return nil
}

func (r *memProducts) Delete(id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.products[id]; !ok {
		return domain.NotFound("product", id)
	}
	for vid, v := range r.m.variants {
		if v.ProductID == id {
			r.m.deleteVariantLocked(vid)
		}
	}
	delete(r.m.products, id)
	return nil
}

// --- product variants ---

type memVariants struct{ m *Memory }

func (r *memVariants) Create(variant *domain.ProductVariant) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	variant.ID = r.m.id()
	stored := *variant
	stored.Product = nil
	r.m.variants[variant.ID] = stored
	return nil
}

func (r *memVariants) FindByIDAndProduct(id, productID uint) (*domain.ProductVariant, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	v, ok := r.m.variants[id]
	if !ok || v.ProductID != productID {
		return nil, domain.NotFound("product variant", id)
	}
	if p, ok := r.m.products[v.ProductID]; ok {
		p.Variants = nil
		v.Product = &p
	}
	return &v, nil
}

func (r *memVariants) FindByProduct(productID uint) ([]domain.ProductVariant, error) {
	r.m.mu.Lock()
	ids := make([]uint, 0)
	for id, v := range r.m.variants {
		if v.ProductID == productID {
			ids = append(ids, id)
		}
	}
	r.m.mu.Unlock()

	sortIDs(ids)
	variants := make([]domain.ProductVariant, 0, len(ids))
	for _, id := range ids {
		v, err := r.FindByIDAndProduct(id, productID)
		if err != nil {
			continue
		}
		variants = append(variants, *v)
	}
	return variants, nil
}

func (r *memVariants) Update(variant *domain.ProductVariant) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.variants[variant.ID]; !ok {
		return domain.NotFound("product variant", variant.ID)
	}
	stored := *variant
	stored.Product = nil
	r.m.variants[variant.ID] = stored
	return nil
}

func (r *memVariants) DecrementStock(id uint, quantity int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	v, ok := r.m.variants[id]
	if !ok {
		return domain.NotFound("product variant", id)
	}
	v.StockQuantity -= quantity
	if v.StockQuantity < 0 {
		v.StockQuantity = 0
	}
	r.m.variants[id] = v
	return nil
}

func (r *memVariants) Delete(id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.variants[id]; !ok {
		return domain.NotFound("product variant", id)
	}
	r.m.deleteVariantLocked(id)
	return nil
}

func sortIDs(ids []uint) {
	slices.Sort(ids)
}
