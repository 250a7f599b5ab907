package model

import "time"

// Order statuses. An order starts as pending and moves through the kitchen
// states until it is completed or cancelled by the partner.
const (
	StatusPending       = "pending"
	StatusInPreparation = "in_preparation"
	StatusCompleted     = "completed"
	StatusCancelled     = "cancelled"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInPreparation, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order represents a row in the `orders` table. Each order is placed by a
// client for one beverage and is scoped to the beverage's establishment.
// Status changes arrive over the partner's realtime connection and must
// stay within that establishment scope.
//
// Fields:
//  ID              – primary key identifier.
//  EstablishmentID – establishment the order belongs to.
//  BeverageID      – ordered beverage.
//  ClientID        – users.id of the ordering client.
//  Status          – one of the Status* constants.
//  OrderDate       – timestamp when the order was placed.
type Order struct {
	ID              uint64    // orders.id
	EstablishmentID uint64    // orders.establishment_id
	BeverageID      uint64    // orders.beverage_id
	ClientID        uint64    // orders.client_id
	Status          string    // orders.status
	OrderDate       time.Time // orders.order_date
}
