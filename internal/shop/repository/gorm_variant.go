package repository

import (
	"gorm.io/gorm"

	"github.com/fixhub/repairshop/internal/shop/domain"
)

// GormVariantRepository implements VariantRepository using GORM
type GormVariantRepository struct {
	db *gorm.DB
}

// NewGormVariantRepository creates a new GORM product variant repository
func NewGormVariantRepository(db *gorm.DB) *GormVariantRepository {
	return &GormVariantRepository{db: db}
}

// Create inserts a new product variant
func (r *GormVariantRepository) Create(variant *domain.ProductVariant) error {
	if err := r.db.Omit("Product").Create(variant).Error; err != nil {
		return writeError(err, "create product variant")
	}
	return nil
}

// FindByIDAndProduct retrieves a variant by id scoped to its owning product
func (r *GormVariantRepository) FindByIDAndProduct(id, productID uint) (*domain.ProductVariant, error) {
	var variant domain.ProductVariant
	err := r.db.
		Preload("Product").
		Where("id = ? AND product_id = ?", id, productID).
		First(&variant).Error
	if err != nil {
		return nil, notFound(err, "product variant", id)
	}
	return &variant, nil
}

// FindByProduct retrieves all variants under a product
func (r *GormVariantRepository) FindByProduct(productID uint) ([]domain.ProductVariant, error) {
	var variants []domain.ProductVariant
	err := r.db.
		Preload("Product").
		Where("product_id = ?", productID).
		Order("id").
		Find(&variants).Error
	if err != nil {
		return nil, writeError(err, "list product variants")
	}
	return variants, nil
}

// Update writes back a loaded product variant
func (r *GormVariantRepository) Update(variant *domain.ProductVariant) error {
	if err := r.db.Omit("Product").Save(variant).Error; err != nil {
		return writeError(err, "update product variant")
	}
	return nil
}

// DecrementStock atomically reduces a variant's stock, clamping at zero to
// satisfy the store's non-negative check.
func (r *GormVariantRepository) DecrementStock(id uint, quantity int) error {
	result := r.db.Model(&domain.ProductVariant{}).
		Where("id = ?", id).
		UpdateColumn("stock_quantity", gorm.Expr("GREATEST(stock_quantity - ?, 0)", quantity))
	if result.Error != nil {
		return writeError(result.Error, "decrement variant stock")
	}
	if result.RowsAffected == 0 {
		return domain.NotFound("product variant", id)
	}
	return nil
}

// Delete removes a product variant; the store cascades to item requests
// referencing it.
func (r *GormVariantRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.ProductVariant{}, id)
	if result.Error != nil {
		return writeError(result.Error, "delete product variant")
	}
	if result.RowsAffected == 0 {
		return domain.NotFound("product variant", id)
	}
	return nil
}
