package domain

// ProductVariant is a size/color SKU under a product with its own stock count
type ProductVariant struct {
	ID            uint     `json:"id" gorm:"primaryKey"`
	ProductID     uint     `json:"product_id" gorm:"not null;index"`
	Size          string   `json:"size" gorm:"not null"`
	Color         string   `json:"color" gorm:"not null"`
	StockQuantity int      `json:"stock_quantity" gorm:"not null;default:0;check:stock_quantity >= 0"`
	Product       *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// TableName specifies the table name
func (ProductVariant) TableName() string {
	return "product_variants"
}

// VariantRepository defines the contract for product variant data access.
// Lookups are scoped to the owning product.
type VariantRepository interface {
	Create(variant *ProductVariant) error
	FindByIDAndProduct(id, productID uint) (*ProductVariant, error)
	FindByProduct(productID uint) ([]ProductVariant, error)
	Update(variant *ProductVariant) error
	DecrementStock(id uint, quantity int) error
	Delete(id uint) error
}
