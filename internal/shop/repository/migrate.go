package repository

import (
	"gorm.io/gorm"

	"github.com/fixhub/repairshop/internal/shop/domain"
)

// AutoMigrate runs database migrations for all shop entities. Parents are
// listed before children so the cascading foreign keys can be created.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Customer{},
		&domain.ServiceRequest{},
		&domain.Product{},
		&domain.ProductVariant{},
		&domain.Repair{},
		&domain.ItemRequest{},
	)
}
