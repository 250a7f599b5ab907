package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/happyhours/backend/internal/model"
	"github.com/happyhours/backend/internal/queue"
	"github.com/happyhours/backend/internal/realtime"
	"github.com/happyhours/backend/internal/repository"
	queuepublisher "github.com/happyhours/backend/internal/service"
)

// OrderHandler serves order placement and history. Placement is the
// producer side of the realtime feed: after the durable write it pushes an
// order_created event onto the broadcast bus and an audit event onto the
// message queue, both best-effort.
type OrderHandler struct {
	Orders         *repository.OrderRepo
	Beverages      *repository.BeverageRepo
	Establishments *repository.EstablishmentRepo
	Bus            realtime.Bus
}

func NewOrderHandler(o *repository.OrderRepo, b *repository.BeverageRepo, e *repository.EstablishmentRepo, bus realtime.Bus) *OrderHandler {
	if o == nil || b == nil || e == nil || bus == nil {
		panic("nil dependency passed to NewOrderHandler")
	}
	return &OrderHandler{Orders: o, Beverages: b, Establishments: e, Bus: bus}
}

type orderResp struct {
	ID              uint64    `json:"id"`
	EstablishmentID uint64    `json:"establishment_id"`
	BeverageID      uint64    `json:"beverage_id"`
	Status          string    `json:"status"`
	OrderDate       time.Time `json:"order_date"`
}

func toOrderResp(o *model.Order) orderResp {
	return orderResp{
		ID:              o.ID,
		EstablishmentID: o.EstablishmentID,
		BeverageID:      o.BeverageID,
		Status:          o.Status,
		OrderDate:       o.OrderDate,
	}
}

// PlaceOrder handles POST /v1/orders. The client names a beverage; the
// establishment is derived from it. The response reflects only the durable
// write: notification failures are logged, never returned.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	clientID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	var body struct {
		BeverageID uint64 `json:"beverage_id"`
	}
	if err := c.Bind(&body); err != nil || body.BeverageID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "beverage_id is required"})
	}

	ctx := c.Request().Context()
	bev, err := h.Beverages.GetByID(ctx, body.BeverageID)
	if err != nil {
		if errors.Is(err, repository.ErrBeverageNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "beverage not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}

	order := &model.Order{
		EstablishmentID: bev.EstablishmentID,
		BeverageID:      bev.ID,
		ClientID:        clientID,
		Status:          model.StatusPending,
	}
	if err := h.Orders.Create(ctx, order); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not place order"})
	}

	// The order is durable from here on; everything below is best-effort.
	if err := realtime.NotifyNewOrder(ctx, h.Bus, order, bev.Name); err != nil {
		log.Printf("order: realtime notify for order %d: %v", order.ID, err)
	}
	h.publishAudit(c, order, bev)

	return c.JSON(http.StatusCreated, toOrderResp(order))
}

// publishAudit emits the order.placed queue event. Failures are already
// logged by the publisher.
func (h *OrderHandler) publishAudit(c echo.Context, order *model.Order, bev *model.Beverage) {
	ev := queue.OrderPlacedEvent{
		OrderID:         order.ID,
		EstablishmentID: order.EstablishmentID,
		BeverageID:      bev.ID,
		BeverageName:    bev.Name,
		ClientID:        order.ClientID,
		Status:          order.Status,
		PriceCents:      bev.PriceCents,
		PlacedAt:        order.OrderDate.UTC().Format(time.RFC3339),
	}
	if est, err := h.Establishments.GetByID(c.Request().Context(), order.EstablishmentID); err == nil {
		ev.EstablishmentName = est.Name
	}
	_ = queuepublisher.PublishOrderPlaced(c.Request().Context(), ev)
}

// MyOrders handles GET /v1/orders: the authenticated client's history.
func (h *OrderHandler) MyOrders(c echo.Context) error {
	clientID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	list, err := h.Orders.ListByClient(c.Request().Context(), clientID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	out := make([]orderResp, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResp(o))
	}
	return c.JSON(http.StatusOK, out)
}

// PartnerOrders handles GET /v1/partner/orders: all orders across the
// partner's establishments.
func (h *OrderHandler) PartnerOrders(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	list, err := h.Orders.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	out := make([]orderResp, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResp(o))
	}
	return c.JSON(http.StatusOK, out)
}
