package kafka

import "time"

// RepairStatusChangedEvent is emitted when a repair ticket transitions
// between statuses.
type RepairStatusChangedEvent struct {
	EventID        string     `json:"event_id"`
	EventType      string     `json:"event_type"`
	RepairID       uint       `json:"repair_id"`
	RequestID      uint       `json:"request_id"`
	CustomerID     uint       `json:"customer_id"`
	PreviousStatus string     `json:"previous_status"`
	NewStatus      string     `json:"new_status"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	FinishedDate   *time.Time `json:"finished_date,omitempty"`
	Timestamp      time.Time  `json:"timestamp"`
}

// ItemRequestedEvent is emitted when a line item is added to a sale request.
type ItemRequestedEvent struct {
	EventID          string    `json:"event_id"`
	EventType        string    `json:"event_type"`
	ItemID           uint      `json:"item_id"`
	RequestID        uint      `json:"request_id"`
	CustomerID       uint      `json:"customer_id"`
	ProductVariantID uint      `json:"product_variant_id"`
	Quantity         int       `json:"quantity"`
	UnitPrice        float64   `json:"unit_price"`
	Timestamp        time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeRepairStatusChanged = "repair.status.changed"
	EventTypeItemRequested       = "item.requested"
)

// Kafka topics
const (
	TopicRepairStatusChanged = "repair-status-changed"
	TopicItemRequested       = "item-requested"
)
