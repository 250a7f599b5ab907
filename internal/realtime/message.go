// Package realtime implements the live order-status feed: a broadcast bus
// keyed by establishment, the per-connection session that feeds it, and the
// producer hook called from the order-placement path.
package realtime

import (
	"encoding/json"
	"fmt"
)

// Group returns the broadcast group key for an establishment.
func Group(establishmentID uint64) string {
	return fmt.Sprintf("establishment:%d", establishmentID)
}

// Message type discriminators. Every outbound frame carries one so clients
// can tell an order update apart from a new-order event or a diagnostic.
const (
	TypeOrderUpdate  = "order_update"
	TypeOrderCreated = "order_created"
	TypeError        = "error"
)

// StatusUpdate is the inbound frame a partner sends to change an order's
// status.
type StatusUpdate struct {
	OrderID uint64 `json:"order_id"`
	Status  string `json:"status"`
}

// Message is the outbound frame broadcast to a group. OrderID,
// EstablishmentID and Status are always set; Details only accompanies
// order_created events.
type Message struct {
	Type            string `json:"type"`
	OrderID         uint64 `json:"order_id"`
	EstablishmentID uint64 `json:"establishment_id"`
	Status          string `json:"status"`
	Details         string `json:"details,omitempty"`
}

// Encode marshals the message for the wire. Marshalling a Message cannot
// fail, so Encode keeps call sites free of dead error branches.
func (m Message) Encode() []byte {
	b, _ := json.Marshal(m)
	return b
}

// ErrorFrame builds a sender-only diagnostic frame. It is never broadcast.
func ErrorFrame(reason string) []byte {
	b, _ := json.Marshal(map[string]string{"type": TypeError, "error": reason})
	return b
}
