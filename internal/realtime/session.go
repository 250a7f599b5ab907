package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/happyhours/backend/internal/model"
	"github.com/happyhours/backend/internal/repository"
)

// OrderStore is the slice of order storage a session mutates. Implementations
// must apply the update atomically and return repository.ErrOrderNotFound
// when the order does not exist or belongs to a different establishment.
// Satisfied by repository.OrderRepo.
type OrderStore interface {
	UpdateStatus(ctx context.Context, orderID, establishmentID uint64, status string) error
}

// Session is one admitted partner connection to an establishment's order
// feed. The caller has already authenticated and authorized the connection;
// the session only wires the transport into the bus and processes inbound
// status updates one at a time, in arrival order.
//
// Lifecycle: Join once after admission, HandleInbound per frame, Leave on
// every disconnect path.
type Session struct {
	bus    Bus
	orders OrderStore
	estID  uint64
	group  string
	member Member
}

// NewSession wires a delivery member (the socket) to the establishment's
// group.
func NewSession(bus Bus, orders OrderStore, establishmentID uint64, member Member) *Session {
	return &Session{
		bus:    bus,
		orders: orders,
		estID:  establishmentID,
		group:  Group(establishmentID),
		member: member,
	}
}

// Join adds the session to its broadcast group. A failure means the
// connection cannot be kept informed and must be refused by the caller.
func (s *Session) Join(ctx context.Context) error {
	return s.bus.Join(ctx, s.group, s.member)
}

// Leave removes the session from its group. It runs unconditionally on
// disconnect, including when the inbound loop never completed, so no
// membership outlives the connection.
func (s *Session) Leave(ctx context.Context) {
	if err := s.bus.Leave(ctx, s.group, s.member); err != nil {
		log.Printf("realtime: leave %s: %v", s.group, err)
	}
}

// HandleInbound processes one frame from the partner. Valid updates are
// persisted and then republished to the whole group, sender included.
// Everything else answers the sender alone: malformed frames, unknown or
// cross-establishment order ids and storage failures each produce a
// diagnostic frame and never a broadcast. The connection stays open in all
// of these cases.
func (s *Session) HandleInbound(ctx context.Context, raw []byte) {
	var upd StatusUpdate
	if err := json.Unmarshal(raw, &upd); err != nil || upd.OrderID == 0 {
		s.replyError(ctx, "malformed message")
		return
	}
	if !model.ValidStatus(upd.Status) {
		s.replyError(ctx, "invalid status")
		return
	}

	if err := s.orders.UpdateStatus(ctx, upd.OrderID, s.estID, upd.Status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			// Unknown id, or an order scoped to another establishment.
			s.replyError(ctx, "unknown order")
			return
		}
		log.Printf("realtime: update order %d: %v", upd.OrderID, err)
		s.replyError(ctx, "status update failed")
		return
	}

	msg := Message{
		Type:            TypeOrderUpdate,
		OrderID:         upd.OrderID,
		EstablishmentID: s.estID,
		Status:          upd.Status,
	}
	if err := s.bus.Publish(ctx, s.group, msg.Encode()); err != nil {
		log.Printf("realtime: publish to %s: %v", s.group, err)
		s.replyError(ctx, "notification failed")
	}
}

// replyError delivers a diagnostic to the sender only.
func (s *Session) replyError(ctx context.Context, reason string) {
	if err := s.member.Deliver(ctx, ErrorFrame(reason)); err != nil {
		log.Printf("realtime: error reply on %s: %v", s.group, err)
	}
}
