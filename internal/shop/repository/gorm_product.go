package repository

import (
	"gorm.io/gorm"

	"github.com/fixhub/repairshop/internal/shop/domain"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create inserts a new product
func (r *GormProductRepository) Create(product *domain.Product) error {
	if err := r.db.Omit("Variants").Create(product).Error; err != nil {
		return writeError(err, "create product")
	}
	return nil
}

// FindByID retrieves a product with its variants
func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.Preload("Variants").First(&product, id).Error; err != nil {
		return nil, notFound(err, "product", id)
	}
	return &product, nil
}

// FindAll retrieves all products with their variants
func (r *GormProductRepository) FindAll() ([]domain.Product, error) {
	var products []domain.Product
	if err := r.db.Preload("Variants").Order("id").Find(&products).Error; err != nil {
		return nil, writeError(err, "list products")
	}
	return products, nil
}

// Update writes back a loaded product
func (r *GormProductRepository) Update(product *domain.Product) error {
	if err := r.db.Omit("Variants").Save(product).Error; err != nil {
		return writeError(err, "update product")
	}
	return nil
}

// Delete removes a product; the store cascades to its variants and their
// item requests.
func (r *GormProductRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Product{}, id)
	if result.Error != nil {
		return writeError(result.Error, "delete product")
	}
	if result.RowsAffected == 0 {
		return domain.NotFound("product", id)
	}
	return nil
}
