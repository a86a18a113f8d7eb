package models

// ServiceType is the pricing/speed tier attached to a cart line item
type ServiceType string

const (
	ServiceBasic   ServiceType = "basic"
	ServicePremium ServiceType = "premium"
	ServiceExpress ServiceType = "express"
)

// IsValid reports whether the service type is one of the known tiers
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceBasic, ServicePremium, ServiceExpress:
		return true
	}
	return false
}

// CartItem represents one line in the laundry cart.
// A line is identified by the (ID, ServiceType) pair: the same item
// ordered under two different tiers is two separate lines.
type CartItem struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Price       float64     `json:"price"`
	Quantity    int         `json:"quantity"`
	ServiceType ServiceType `json:"service_type"`
	Type        string      `json:"type"` // category tag used by the client to pick an icon
}

// DefaultCartItems returns the two demo lines every fresh cart starts with
func DefaultCartItems() []CartItem {
	return []CartItem{
		{ID: "1", Name: "Instant", Price: 300, Quantity: 1, ServiceType: ServiceBasic, Type: "pants"},
		{ID: "2", Name: "Pet Wash", Price: 200, Quantity: 0, ServiceType: ServicePremium, Type: "animal"},
	}
}
