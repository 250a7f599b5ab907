package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/happyhours/backend/internal/model"
	"github.com/happyhours/backend/internal/repository"
)

// PartnerHandler bundles repositories for partner-facing establishment and
// menu management.
type PartnerHandler struct {
	Establishments *repository.EstablishmentRepo
	Beverages      *repository.BeverageRepo
	Orders         *repository.OrderRepo
}

func NewPartnerHandler(e *repository.EstablishmentRepo, b *repository.BeverageRepo, o *repository.OrderRepo) *PartnerHandler {
	if e == nil || b == nil || o == nil {
		panic("nil repository passed to NewPartnerHandler")
	}
	return &PartnerHandler{Establishments: e, Beverages: b, Orders: o}
}

// establishmentResp is the partner-facing JSON shape. Window bounds render
// as "HH:MM:SS" strings or null.
type establishmentResp struct {
	ID              uint64  `json:"id"`
	Name            string  `json:"name"`
	Address         string  `json:"address,omitempty"`
	PhoneNumber     string  `json:"phone_number,omitempty"`
	HappyhoursStart *string `json:"happyhours_start"`
	HappyhoursEnd   *string `json:"happyhours_end"`
}

func toEstablishmentResp(e *model.Establishment) establishmentResp {
	r := establishmentResp{
		ID:          e.ID,
		Name:        e.Name,
		Address:     e.Address,
		PhoneNumber: e.PhoneNumber,
	}
	if e.HappyhoursStart != nil {
		s := e.HappyhoursStart.String()
		r.HappyhoursStart = &s
	}
	if e.HappyhoursEnd != nil {
		s := e.HappyhoursEnd.String()
		r.HappyhoursEnd = &s
	}
	return r
}

// parseWindowBound converts an optional "HH:MM[:SS]" string into a bound.
func parseWindowBound(s *string) (*model.TimeOfDay, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := model.ParseTimeOfDay(strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateEstablishment handles POST /v1/partner/establishments.
func (h *PartnerHandler) CreateEstablishment(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	var body struct {
		Name            string  `json:"name"`
		Address         string  `json:"address"`
		PhoneNumber     string  `json:"phone_number"`
		HappyhoursStart *string `json:"happyhours_start"`
		HappyhoursEnd   *string `json:"happyhours_end"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	start, err := parseWindowBound(body.HappyhoursStart)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid happyhours_start"})
	}
	end, err := parseWindowBound(body.HappyhoursEnd)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid happyhours_end"})
	}
	if (start == nil) != (end == nil) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "set both happy-hour bounds or neither"})
	}
	if start != nil && *end < *start {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "happy-hour window end precedes start"})
	}

	est := &model.Establishment{
		OwnerID:         ownerID,
		Name:            name,
		Address:         strings.TrimSpace(body.Address),
		PhoneNumber:     strings.TrimSpace(body.PhoneNumber),
		HappyhoursStart: start,
		HappyhoursEnd:   end,
	}
	if err := h.Establishments.Create(c.Request().Context(), est); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create establishment"})
	}
	return c.JSON(http.StatusCreated, toEstablishmentResp(est))
}

// ListMyEstablishments handles GET /v1/partner/establishments.
func (h *PartnerHandler) ListMyEstablishments(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	list, err := h.Establishments.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	out := make([]establishmentResp, 0, len(list))
	for _, e := range list {
		out = append(out, toEstablishmentResp(e))
	}
	return c.JSON(http.StatusOK, out)
}

// GetEstablishment handles GET /v1/establishments/:id. Public, so clients
// can see a venue and its happy-hour window before ordering.
func (h *PartnerHandler) GetEstablishment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	est, err := h.Establishments.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEstablishmentNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "establishment not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	return c.JSON(http.StatusOK, toEstablishmentResp(est))
}

// UpdateHappyHours handles PUT /v1/partner/establishments/:id/happyhours.
// Omitting both bounds clears the window, which closes the realtime feed.
func (h *PartnerHandler) UpdateHappyHours(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body struct {
		HappyhoursStart *string `json:"happyhours_start"`
		HappyhoursEnd   *string `json:"happyhours_end"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	start, err := parseWindowBound(body.HappyhoursStart)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid happyhours_start"})
	}
	end, err := parseWindowBound(body.HappyhoursEnd)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid happyhours_end"})
	}
	if (start == nil) != (end == nil) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "set both happy-hour bounds or neither"})
	}
	if start != nil && *end < *start {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "happy-hour window end precedes start"})
	}

	if err := h.Establishments.UpdateHappyHours(c.Request().Context(), id, ownerID, start, end); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "establishment not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"})
	}
	updated, err := h.Establishments.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	return c.JSON(http.StatusOK, toEstablishmentResp(updated))
}
