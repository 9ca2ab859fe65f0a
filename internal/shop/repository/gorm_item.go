package repository

import (
	"gorm.io/gorm"

	"github.com/fixhub/repairshop/internal/shop/domain"
)

// GormItemRepository implements ItemRequestRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item request repository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Create inserts a new item request. A duplicate (request, variant) pair or
// an unknown variant surfaces as a conflict from the store constraints.
func (r *GormItemRepository) Create(item *domain.ItemRequest) error {
	if err := r.db.Omit("Service", "Variant").Create(item).Error; err != nil {
		return writeError(err, "create item request")
	}
	return nil
}

// FindByIDAndRequest retrieves an item request by id scoped to its owning
// service request.
func (r *GormItemRepository) FindByIDAndRequest(id, requestID uint) (*domain.ItemRequest, error) {
	var item domain.ItemRequest
	err := r.db.
		Preload("Service").
		Where("id = ? AND request_id = ?", id, requestID).
		First(&item).Error
	if err != nil {
		return nil, notFound(err, "item request", id)
	}
	return &item, nil
}

// FindByRequest retrieves all item requests under a service request
func (r *GormItemRepository) FindByRequest(requestID uint) ([]domain.ItemRequest, error) {
	var items []domain.ItemRequest
	err := r.db.
		Preload("Service").
		Where("request_id = ?", requestID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, writeError(err, "list item requests")
	}
	return items, nil
}

// Update writes back a loaded item request
func (r *GormItemRepository) Update(item *domain.ItemRequest) error {
	if err := r.db.Omit("Service", "Variant").Save(item).Error; err != nil {
		return writeError(err, "update item request")
	}
	return nil
}

// Delete removes an item request
func (r *GormItemRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.ItemRequest{}, id)
	if result.Error != nil {
		return writeError(result.Error, "delete item request")
	}
	if result.RowsAffected == 0 {
		return domain.NotFound("item request", id)
	}
	return nil
}
