package models

import "time"

// OrderStatus is one stage in the fixed order lifecycle
type OrderStatus string

const (
	StatusPickUp         OrderStatus = "pick-up"
	StatusOnTheWayToShop OrderStatus = "on-the-way-to-laundry"
	StatusLaundrying     OrderStatus = "laundrying"
	StatusDrying         OrderStatus = "drying"
	StatusOnTheWayToUser OrderStatus = "on-the-way-to-user"
	StatusCompleted      OrderStatus = "completed"
)

// StatusSequence is the fixed lifecycle order, terminal state last
var StatusSequence = []OrderStatus{
	StatusPickUp,
	StatusOnTheWayToShop,
	StatusLaundrying,
	StatusDrying,
	StatusOnTheWayToUser,
	StatusCompleted,
}

// IsValid reports whether the status is one of the six lifecycle values
func (s OrderStatus) IsValid() bool {
	return s.Index() >= 0
}

// Index returns the position of the status in the lifecycle sequence,
// or -1 for an unknown value
func (s OrderStatus) Index() int {
	for i, st := range StatusSequence {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the successor status and true, or the same status and
// false when s is terminal or unknown
func (s OrderStatus) Next() (OrderStatus, bool) {
	i := s.Index()
	if i < 0 || i >= len(StatusSequence)-1 {
		return s, false
	}
	return StatusSequence[i+1], true
}

// IsTerminal reports whether the status is the final lifecycle stage
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted
}

// Order is the single current laundry order. Items are a snapshot of the
// cart at checkout time; later cart edits do not touch them.
type Order struct {
	ID                string      `json:"id"`
	Status            OrderStatus `json:"status"`
	Items             []CartItem  `json:"items"`
	Total             float64     `json:"total"`
	EstimatedDelivery time.Time   `json:"estimated_delivery"`
	CreatedAt         time.Time   `json:"created_at"`
}
