package domain

import "time"

// Product represents a catalog product
type Product struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	Name          string           `json:"name" gorm:"not null"`
	Description   string           `json:"description" gorm:"not null"`
	Price         float64          `json:"price" gorm:"not null;check:price >= 0"`
	StockQuantity int              `json:"stock_quantity" gorm:"not null;default:0;check:stock_quantity >= 0"`
	CreatedAt     time.Time        `json:"created_at"`
	Variants      []ProductVariant `json:"variants" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindAll() ([]Product, error)
	Update(product *Product) error
	Delete(id uint) error
}
