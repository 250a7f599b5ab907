package model

import "time"

// Beverage is a menu item offered by an establishment. Orders reference a
// beverage and inherit its establishment, so this struct is the link between
// the client-facing menu and the partner-facing order feed.
type Beverage struct {
	ID              uint64    // beverages.id
	EstablishmentID uint64    // beverages.establishment_id
	Name            string    // beverages.name
	PriceCents      uint32    // beverages.price_cents
	CreatedAt       time.Time // beverages.created_at
	UpdatedAt       time.Time // beverages.updated_at
}
