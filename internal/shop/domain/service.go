package domain

import "time"

// ServiceType distinguishes the two kinds of service requests. The wire and
// store representation is the canonical lowercase form.
type ServiceType string

const (
	ServiceTypeSale   ServiceType = "sale"
	ServiceTypeRepair ServiceType = "repair"
)

// Valid reports whether the type is one of the known kinds.
func (t ServiceType) Valid() bool {
	return t == ServiceTypeSale || t == ServiceTypeRepair
}

// ServiceRequest is a customer-initiated transaction. A repair-type request
// owns repair tickets, a sale-type request owns item line entries.
type ServiceRequest struct {
	ID         uint          `json:"id" gorm:"primaryKey"`
	CustomerID uint          `json:"customer_id" gorm:"not null;index"`
	Type       ServiceType   `json:"type" gorm:"type:varchar(16);not null"`
	TotalCost  float64       `json:"total_cost" gorm:"not null;default:0"`
	Date       time.Time     `json:"date" gorm:"autoCreateTime"`
	Customer   *Customer     `json:"user,omitempty" gorm:"foreignKey:CustomerID"`
	Repairs    []Repair      `json:"repairs,omitempty" gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
	Items      []ItemRequest `json:"items,omitempty" gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (ServiceRequest) TableName() string {
	return "service_requests"
}

// ServiceRepository defines the contract for service request data access.
// Lookups are scoped to the owning customer so that a service id can never
// be reached through another customer's URL space.
type ServiceRepository interface {
	Create(service *ServiceRequest) error
	FindByIDAndCustomer(id, customerID uint) (*ServiceRequest, error)
	FindByCustomer(customerID uint) ([]ServiceRequest, error)
	Update(service *ServiceRequest) error
	Delete(id uint) error
}
