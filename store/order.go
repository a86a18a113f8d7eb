package store

import (
	"sync"

	"github.com/boska/laundry-dash-api/models"
)

// OrderStore holds the single current order, if any. A cancel function
// for the status simulator is kept alongside it so that replacing or
// clearing the order also stops the timer chain that was updating it.
type OrderStore struct {
	mu      sync.Mutex
	current *models.Order
	cancel  func()
}

// NewOrderStore creates an empty order store
func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Create replaces the current order. Any simulator attached to the
// previous order is cancelled first so stale timers cannot touch the
// new order.
func (o *OrderStore) Create(order models.Order) {
	o.mu.Lock()
	cancel := o.cancel
	o.cancel = nil
	o.current = &order
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// AttachSimulator stores the cancel handle for the timer chain driving
// the current order. A handle already present is cancelled before it is
// replaced: two checkouts racing through Create and AttachSimulator
// must not leave both chains running.
func (o *OrderStore) AttachSimulator(cancel func()) {
	o.mu.Lock()
	prev := o.cancel
	o.cancel = cancel
	o.mu.Unlock()

	if prev != nil {
		prev()
	}
}

// AdvanceStatus sets the current order's status. Any of the six
// lifecycle values is accepted, including backward jumps; the status
// screen lets the user tap any step. Returns false when there is no
// current order or the value is unknown.
func (o *OrderStore) AdvanceStatus(status models.OrderStatus) bool {
	if !status.IsValid() {
		return false
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current == nil {
		return false
	}
	o.current.Status = status
	return true
}

// Status returns the current order's status, or false when no order
// exists
func (o *OrderStore) Status() (models.OrderStatus, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current == nil {
		return "", false
	}
	return o.current.Status, true
}

// Current returns a copy of the current order, or false when none exists
func (o *OrderStore) Current() (models.Order, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current == nil {
		return models.Order{}, false
	}
	order := *o.current
	order.Items = make([]models.CartItem, len(o.current.Items))
	copy(order.Items, o.current.Items)
	return order, true
}

// Clear drops the current order and cancels its simulator
func (o *OrderStore) Clear() {
	o.mu.Lock()
	cancel := o.cancel
	o.cancel = nil
	o.current = nil
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
