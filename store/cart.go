package store

import (
	"sync"

	"github.com/boska/laundry-dash-api/models"
)

// CartStore holds the laundry cart lines and their running total. All
// mutations recompute the total, so it is always Σ(price × quantity).
type CartStore struct {
	mu    sync.Mutex
	items []models.CartItem
	total float64
}

// NewCartStore creates a cart seeded with the two demo lines
func NewCartStore() *CartStore {
	c := &CartStore{items: models.DefaultCartItems()}
	c.total = recomputeTotal(c.items)
	return c
}

// AddItem merges the item into an existing (id, service type) line by
// summing quantities, or appends a new line
func (c *CartStore) AddItem(item models.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID && c.items[i].ServiceType == item.ServiceType {
			c.items[i].Quantity += item.Quantity
			c.total = recomputeTotal(c.items)
			return
		}
	}
	c.items = append(c.items, item)
	c.total = recomputeTotal(c.items)
}

// RemoveItem deletes the line matching (id, service type). Absent lines
// are ignored.
func (c *CartStore) RemoveItem(id string, serviceType models.ServiceType) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, it := range c.items {
		if !(it.ID == id && it.ServiceType == serviceType) {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.total = recomputeTotal(c.items)
}

// SetQuantity overwrites the quantity of the matching line. A no-op when
// no line matches.
func (c *CartStore) SetQuantity(id string, serviceType models.ServiceType, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id && c.items[i].ServiceType == serviceType {
			c.items[i].Quantity = quantity
			c.total = recomputeTotal(c.items)
			return
		}
	}
}

// Clear empties the cart
func (c *CartStore) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.total = 0
}

// Items returns a copy of the cart lines
func (c *CartStore) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total returns the current cart total
func (c *CartStore) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func recomputeTotal(items []models.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}
