package domain

import "time"

// RepairStatus is the lifecycle state of a repair ticket. The wire and store
// representation is the canonical lowercase form.
type RepairStatus string

const (
	StatusPending    RepairStatus = "pending"
	StatusInProgress RepairStatus = "in_progress"
	StatusCompleted  RepairStatus = "completed"
)

// Valid reports whether the status is one of the known states.
func (s RepairStatus) Valid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

// Repair is a repair ticket under a repair-type service request
type Repair struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	RequestID    uint            `json:"request_id" gorm:"not null;index"`
	Description  string          `json:"description" gorm:"not null"`
	Status       RepairStatus    `json:"status" gorm:"type:varchar(16);not null;default:'pending'"`
	CreatedAt    time.Time       `json:"created_at"`
	StartDate    *time.Time      `json:"start_date"`
	FinishedDate *time.Time      `json:"finished_date"`
	Service      *ServiceRequest `json:"service,omitempty" gorm:"foreignKey:RequestID"`
}

// TableName specifies the table name
func (Repair) TableName() string {
	return "repairs"
}

// ApplyStatus records a status transition and its derived timestamp effects.
// target is the status supplied by the current update; the receiver still
// holds the stored status when called. Transitions are unrestricted: any
// state may move directly to any other.
//
// Moving to in_progress stamps start_date, moving to completed stamps
// finished_date. Leaving completed invalidates finished_date, and returning
// to pending invalidates start_date. The rules compose, so completed ->
// pending clears both timestamps.
func (r *Repair) ApplyStatus(target RepairStatus, now time.Time) {
	stored := r.Status
	switch {
	case target == StatusInProgress:
		r.StartDate = &now
		if stored == StatusCompleted {
			r.FinishedDate = nil
		}
	case target == StatusCompleted:
		r.FinishedDate = &now
	case stored == StatusCompleted:
		r.FinishedDate = nil
	}
	if target == StatusPending && stored != StatusPending {
		r.StartDate = nil
	}
	r.Status = target
}

// RepairRepository defines the contract for repair data access. Lookups are
// scoped to the owning service request.
type RepairRepository interface {
	Create(repair *Repair) error
	FindByIDAndRequest(id, requestID uint) (*Repair, error)
	FindByRequest(requestID uint) ([]Repair, error)
	Update(repair *Repair) error
	Delete(id uint) error
}
