package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/happyhours/backend/internal/model"
	"github.com/happyhours/backend/internal/repository"
)

type beverageResp struct {
	ID              uint64 `json:"id"`
	EstablishmentID uint64 `json:"establishment_id"`
	Name            string `json:"name"`
	PriceCents      uint32 `json:"price_cents"`
}

// CreateBeverage handles POST /v1/partner/establishments/:id/beverages.
func (h *PartnerHandler) CreateBeverage(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	estID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body struct {
		Name       string `json:"name"`
		PriceCents uint32 `json:"price_cents"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}

	bev := &model.Beverage{EstablishmentID: estID, Name: name, PriceCents: body.PriceCents}
	if err := h.Beverages.Create(c.Request().Context(), ownerID, bev); err != nil {
		switch {
		case errors.Is(err, repository.ErrEstablishmentNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "establishment not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create beverage"})
	}
	return c.JSON(http.StatusCreated, beverageResp{
		ID: bev.ID, EstablishmentID: bev.EstablishmentID, Name: bev.Name, PriceCents: bev.PriceCents,
	})
}

// ListBeverages handles GET /v1/establishments/:id/beverages. The menu is
// public so clients can browse before ordering.
func (h *PartnerHandler) ListBeverages(c echo.Context) error {
	estID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	list, err := h.Beverages.ListByEstablishment(c.Request().Context(), estID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	out := make([]beverageResp, 0, len(list))
	for _, b := range list {
		out = append(out, beverageResp{
			ID: b.ID, EstablishmentID: b.EstablishmentID, Name: b.Name, PriceCents: b.PriceCents,
		})
	}
	return c.JSON(http.StatusOK, out)
}
