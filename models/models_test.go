package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusSequenceOrder(t *testing.T) {
	expected := []OrderStatus{
		"pick-up",
		"on-the-way-to-laundry",
		"laundrying",
		"drying",
		"on-the-way-to-user",
		"completed",
	}
	assert.Equal(t, expected, StatusSequence)
}

func TestOrderStatusIndex(t *testing.T) {
	for i, status := range StatusSequence {
		assert.Equal(t, i, status.Index())
		assert.True(t, status.IsValid())
	}

	assert.Equal(t, -1, OrderStatus("folded").Index())
	assert.False(t, OrderStatus("folded").IsValid())
}

func TestOrderStatusNext(t *testing.T) {
	tests := []struct {
		name     string
		status   OrderStatus
		next     OrderStatus
		hasNext  bool
	}{
		{"First step", StatusPickUp, StatusOnTheWayToShop, true},
		{"Middle step", StatusDrying, StatusOnTheWayToUser, true},
		{"Terminal has no successor", StatusCompleted, StatusCompleted, false},
		{"Unknown has no successor", OrderStatus("folded"), OrderStatus("folded"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.status.Next()
			assert.Equal(t, tt.hasNext, ok)
			assert.Equal(t, tt.next, next)
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	for _, status := range StatusSequence[:len(StatusSequence)-1] {
		assert.False(t, status.IsTerminal())
	}
}

func TestServiceTypeValues(t *testing.T) {
	tests := []struct {
		name  string
		tier  ServiceType
		valid bool
	}{
		{"basic", ServiceBasic, true},
		{"premium", ServicePremium, true},
		{"express", ServiceExpress, true},
		{"unknown", ServiceType("deluxe"), false},
		{"empty", ServiceType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.tier.IsValid())
		})
	}
}

func TestThemeModeValues(t *testing.T) {
	assert.True(t, ThemeSystem.IsValid())
	assert.True(t, ThemeLight.IsValid())
	assert.True(t, ThemeDark.IsValid())
	assert.False(t, ThemeMode("sepia").IsValid())
}

func TestDefaultCartItems(t *testing.T) {
	items := DefaultCartItems()

	assert.Len(t, items, 2)
	assert.Equal(t, CartItem{ID: "1", Name: "Instant", Price: 300, Quantity: 1, ServiceType: ServiceBasic, Type: "pants"}, items[0])
	assert.Equal(t, CartItem{ID: "2", Name: "Pet Wash", Price: 200, Quantity: 0, ServiceType: ServicePremium, Type: "animal"}, items[1])

	// Fresh copy each call; callers may mutate theirs
	items[0].Quantity = 99
	assert.Equal(t, 1, DefaultCartItems()[0].Quantity)
}

func TestUserTableName(t *testing.T) {
	assert.Equal(t, "users", User{}.TableName())
}

func TestPreferenceTableName(t *testing.T) {
	assert.Equal(t, "preferences", Preference{}.TableName())
}
