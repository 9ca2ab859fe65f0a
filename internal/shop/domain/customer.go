package domain

import "time"

// Customer represents a shop customer account
type Customer struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	Name      string           `json:"name" gorm:"not null"`
	Email     string           `json:"email" gorm:"uniqueIndex;not null"`
	Password  string           `json:"-" gorm:"not null"` // bcrypt digest, never serialized
	Address   string           `json:"address" gorm:"not null"`
	CreatedAt time.Time        `json:"created_at"`
	Services  []ServiceRequest `json:"services" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

// CustomerRepository defines the contract for customer data access
type CustomerRepository interface {
	Create(customer *Customer) error
	FindByID(id uint) (*Customer, error)
	FindByEmail(email string) (*Customer, error)
	FindAll() ([]Customer, error)
	Update(customer *Customer) error
	Delete(id uint) error
}
