package repository

import (
	"gorm.io/gorm"

	"github.com/fixhub/repairshop/internal/shop/domain"
)

// GormServiceRepository implements ServiceRepository using GORM
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GORM service request repository
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// Create inserts a new service request
func (r *GormServiceRepository) Create(service *domain.ServiceRequest) error {
	if err := r.db.Omit("Customer", "Repairs", "Items").Create(service).Error; err != nil {
		return writeError(err, "create service request")
	}
	return nil
}

// FindByIDAndCustomer retrieves a service request by id scoped to its owning
// customer. Both must match; anything else reads as the request not
// existing.
func (r *GormServiceRepository) FindByIDAndCustomer(id, customerID uint) (*domain.ServiceRequest, error) {
	var service domain.ServiceRequest
	err := r.db.
		Preload("Customer").
		Preload("Repairs").
		Preload("Items").
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&service).Error
	if err != nil {
		return nil, notFound(err, "service request", id)
	}
	return &service, nil
}

// FindByCustomer retrieves all service requests owned by a customer
func (r *GormServiceRepository) FindByCustomer(customerID uint) ([]domain.ServiceRequest, error) {
	var services []domain.ServiceRequest
	err := r.db.
		Preload("Customer").
		Preload("Repairs").
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("id").
		Find(&services).Error
	if err != nil {
		return nil, writeError(err, "list service requests")
	}
	return services, nil
}

// Update writes back a loaded service request
func (r *GormServiceRepository) Update(service *domain.ServiceRequest) error {
	if err := r.db.Omit("Customer", "Repairs", "Items").Save(service).Error; err != nil {
		return writeError(err, "update service request")
	}
	return nil
}

// Delete removes a service request; the store cascades to its repairs and
// item requests.
func (r *GormServiceRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.ServiceRequest{}, id)
	if result.Error != nil {
		return writeError(result.Error, "delete service request")
	}
	if result.RowsAffected == 0 {
		return domain.NotFound("service request", id)
	}
	return nil
}
