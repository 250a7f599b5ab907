// Package queue defines message payloads exchanged over the message broker.
package queue

// OrderPlacedEvent is published when a client order is durably written. It
// carries enough information for downstream consumers to log or trigger
// analytics without querying the primary database. It is independent of the
// realtime order feed: the feed pushes to connected partners, this event
// feeds the durable audit trail.
type OrderPlacedEvent struct {
	OrderID           uint64 `json:"order_id"`
	EstablishmentID   uint64 `json:"establishment_id"`
	EstablishmentName string `json:"establishment_name"`
	BeverageID        uint64 `json:"beverage_id"`
	BeverageName      string `json:"beverage_name"`
	ClientID          uint64 `json:"client_id"`
	Status            string `json:"status"`
	PriceCents        uint32 `json:"price_cents"`
	PlacedAt          string `json:"placed_at"`
}
