package repository

import (
	"gorm.io/gorm"

	"github.com/fixhub/repairshop/internal/shop/domain"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Create inserts a new customer
func (r *GormCustomerRepository) Create(customer *domain.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return writeError(err, "create customer")
	}
	return nil
}

// FindByID retrieves a customer with its service requests
func (r *GormCustomerRepository) FindByID(id uint) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.Preload("Services").First(&customer, id).Error; err != nil {
		return nil, notFound(err, "customer", id)
	}
	return &customer, nil
}

// FindByEmail retrieves a customer by its unique email
func (r *GormCustomerRepository) FindByEmail(email string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, notFound(err, "customer", 0)
	}
	return &customer, nil
}

// FindAll retrieves all customers with their service requests
func (r *GormCustomerRepository) FindAll() ([]domain.Customer, error) {
	var customers []domain.Customer
	if err := r.db.Preload("Services").Order("id").Find(&customers).Error; err != nil {
		return nil, writeError(err, "list customers")
	}
	return customers, nil
}

// Update writes back a loaded customer
func (r *GormCustomerRepository) Update(customer *domain.Customer) error {
	if err := r.db.Omit("Services").Save(customer).Error; err != nil {
		return writeError(err, "update customer")
	}
	return nil
}

// Delete removes a customer; the store cascades to its service requests,
// repairs and item requests.
func (r *GormCustomerRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Customer{}, id)
	if result.Error != nil {
		return writeError(result.Error, "delete customer")
	}
	if result.RowsAffected == 0 {
		return domain.NotFound("customer", id)
	}
	return nil
}
