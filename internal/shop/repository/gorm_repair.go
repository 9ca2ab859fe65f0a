package repository

import (
	"gorm.io/gorm"

	"github.com/fixhub/repairshop/internal/shop/domain"
)

// GormRepairRepository implements RepairRepository using GORM
type GormRepairRepository struct {
	db *gorm.DB
}

// NewGormRepairRepository creates a new GORM repair repository
func NewGormRepairRepository(db *gorm.DB) *GormRepairRepository {
	return &GormRepairRepository{db: db}
}

// Create inserts a new repair ticket
func (r *GormRepairRepository) Create(repair *domain.Repair) error {
	if err := r.db.Omit("Service").Create(repair).Error; err != nil {
		return writeError(err, "create repair")
	}
	return nil
}

// FindByIDAndRequest retrieves a repair by id scoped to its owning service
// request.
func (r *GormRepairRepository) FindByIDAndRequest(id, requestID uint) (*domain.Repair, error) {
	var repair domain.Repair
	err := r.db.
		Preload("Service").
		Where("id = ? AND request_id = ?", id, requestID).
		First(&repair).Error
	if err != nil {
		return nil, notFound(err, "repair", id)
	}
	return &repair, nil
}

// FindByRequest retrieves all repairs under a service request
func (r *GormRepairRepository) FindByRequest(requestID uint) ([]domain.Repair, error) {
	var repairs []domain.Repair
	err := r.db.
		Preload("Service").
		Where("request_id = ?", requestID).
		Order("id").
		Find(&repairs).Error
	if err != nil {
		return nil, writeError(err, "list repairs")
	}
	return repairs, nil
}

// Update writes back a loaded repair, including cleared timestamps
func (r *GormRepairRepository) Update(repair *domain.Repair) error {
	// The date columns are selected explicitly so a cleared start or
	// finish timestamp is written back as NULL.
	err := r.db.Model(repair).
		Select("Description", "Status", "StartDate", "FinishedDate").
		Updates(repair).Error
	if err != nil {
		return writeError(err, "update repair")
	}
	return nil
}

// Delete removes a repair ticket
func (r *GormRepairRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Repair{}, id)
	if result.Error != nil {
		return writeError(result.Error, "delete repair")
	}
	if result.RowsAffected == 0 {
		return domain.NotFound("repair", id)
	}
	return nil
}
