package handler

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"

	"github.com/happyhours/backend/internal/auth"
	"github.com/happyhours/backend/internal/realtime"
	"github.com/happyhours/backend/internal/repository"
)

// RealtimeHandler upgrades partner connections into the live order feed of
// one establishment. Admission is decided once, before the protocol
// upgrade: a refused connection gets a bare HTTP status and never touches
// the bus.
type RealtimeHandler struct {
	Gate           *auth.Gate
	Establishments *repository.EstablishmentRepo
	Orders         *repository.OrderRepo
	Bus            realtime.Bus
	Now            func() time.Time // injectable clock for the window check
}

func NewRealtimeHandler(g *auth.Gate, e *repository.EstablishmentRepo, o *repository.OrderRepo, bus realtime.Bus) *RealtimeHandler {
	if g == nil || e == nil || o == nil || bus == nil {
		panic("nil dependency passed to NewRealtimeHandler")
	}
	return &RealtimeHandler{Gate: g, Establishments: e, Orders: o, Bus: bus, Now: time.Now}
}

// OrderFeed handles GET /v1/realtime/orders/:establishment_id. The bearer
// token comes from the Authorization header; query-string tokens are not
// accepted because they leak into access logs.
func (h *RealtimeHandler) OrderFeed(c echo.Context) error {
	estID, err := pathID(c, "establishment_id")
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	ctx := c.Request().Context()
	principal := h.Gate.Resolve(ctx, c.Request().Header.Get("Authorization"))
	if principal.IsAnonymous() {
		return c.NoContent(http.StatusUnauthorized)
	}

	est, err := h.Establishments.GetByID(ctx, estID)
	if err != nil {
		// A missing establishment and someone else's establishment refuse
		// identically; the client learns nothing about what exists.
		return c.NoContent(http.StatusForbidden)
	}
	if !auth.CanAdmit(principal, est, h.Now()) {
		return c.NoContent(http.StatusForbidden)
	}

	opts := &websocket.AcceptOptions{}
	if origins := wsOriginPatterns(os.Getenv("WS_ALLOWED_ORIGINS")); len(origins) > 0 {
		opts.OriginPatterns = origins
	}
	conn, err := websocket.Accept(c.Response(), c.Request(), opts)
	if err != nil {
		return nil
	}

	sess := realtime.NewSession(h.Bus, h.Orders, estID, &wsMember{conn: conn})
	if err := sess.Join(ctx); err != nil {
		// Without the bus the connection cannot be kept informed.
		_ = conn.Close(websocket.StatusInternalError, "notification bus unavailable")
		return nil
	}
	// Leave must run on every exit path, with a fresh context because the
	// request context is already done when the client vanishes.
	defer func() {
		lctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		sess.Leave(lctx)
	}()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "closed")
			return nil
		}
		sess.HandleInbound(ctx, data)
	}
}

// wsMember adapts a live WebSocket connection to the bus Member interface.
type wsMember struct {
	conn *websocket.Conn
}

func (m *wsMember) Deliver(ctx context.Context, payload []byte) error {
	return m.conn.Write(ctx, websocket.MessageText, payload)
}

// wsOriginPatterns parses the comma-separated WS_ALLOWED_ORIGINS value.
func wsOriginPatterns(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
