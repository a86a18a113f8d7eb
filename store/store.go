package store

import "gorm.io/gorm"

// Store is the application state container. Screens and handlers mutate
// state only through its sub-stores, so tests can build isolated instances
// instead of sharing package-level globals.
//
// Cart, order and chat state are session state and live in memory, like
// they do on the client. Preferences are the device-local key-value
// entries and go through the database.
type Store struct {
	Cart        *CartStore
	Order       *OrderStore
	Chat        *ChatStore
	Preferences *PreferenceStore
}

// New creates a store seeded with the default cart and the chatroom
// intro message
func New(db *gorm.DB) *Store {
	return &Store{
		Cart:        NewCartStore(),
		Order:       NewOrderStore(),
		Chat:        NewChatStore(),
		Preferences: NewPreferenceStore(db),
	}
}
