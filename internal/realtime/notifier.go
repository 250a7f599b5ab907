package realtime

import (
	"context"
	"fmt"

	"github.com/happyhours/backend/internal/model"
)

// NotifyNewOrder pushes an order_created event to the order's establishment
// group. It is called from the order-placement request path after the
// durable write; delivery is best-effort, so callers log the returned error
// and keep the HTTP response a success either way.
func NotifyNewOrder(ctx context.Context, bus Bus, order *model.Order, beverageName string) error {
	msg := Message{
		Type:            TypeOrderCreated,
		OrderID:         order.ID,
		EstablishmentID: order.EstablishmentID,
		Status:          order.Status,
		Details:         fmt.Sprintf("New order %d for %s", order.ID, beverageName),
	}
	return bus.Publish(ctx, Group(order.EstablishmentID), msg.Encode())
}
