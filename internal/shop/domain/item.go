package domain

import "time"

// ItemRequest is a sale line item under a sale-type service request. A given
// product variant appears at most once per service request.
type ItemRequest struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	RequestID        uint            `json:"request_id" gorm:"not null;uniqueIndex:uniq_request_variant"`
	ProductVariantID uint            `json:"product_variant_id" gorm:"not null;uniqueIndex:uniq_request_variant"`
	Quantity         int             `json:"quantity" gorm:"not null;check:quantity > 0"`
	UnitPrice        float64         `json:"unit_price" gorm:"not null;check:unit_price >= 0"`
	CreatedAt        time.Time       `json:"created_at"`
	Service          *ServiceRequest `json:"service,omitempty" gorm:"foreignKey:RequestID"`
	Variant          *ProductVariant `json:"-" gorm:"foreignKey:ProductVariantID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (ItemRequest) TableName() string {
	return "item_requests"
}

// ItemRequestRepository defines the contract for item request data access.
// Lookups are scoped to the owning service request.
type ItemRequestRepository interface {
	Create(item *ItemRequest) error
	FindByIDAndRequest(id, requestID uint) (*ItemRequest, error)
	FindByRequest(requestID uint) ([]ItemRequest, error)
	Update(item *ItemRequest) error
	Delete(id uint) error
}
