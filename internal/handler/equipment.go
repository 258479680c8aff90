package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/equiphub/booking-service/internal/model"
	"github.com/equiphub/booking-service/pkg/auth"
)

const maxAuditLimit = 200

func (h *Handler) ListEquipments(c echo.Context) error {
	items, err := h.bookingSvc.ListEquipments(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateEquipment(c echo.Context) error {
	ctx := c.Request().Context()
	actor, err := auth.GetIdentity(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CreateEquipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	eq, err := h.bookingSvc.CreateEquipment(ctx, actor, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, eq)
}

func (h *Handler) UpdateEquipment(c echo.Context) error {
	ctx := c.Request().Context()
	actor, err := auth.GetIdentity(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	equipmentUid := c.Param("equipmentUid")
	if equipmentUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "equipmentUid is empty")
	}
	var req model.UpdateEquipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	eq, err := h.bookingSvc.UpdateEquipment(ctx, actor, equipmentUid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, eq)
}

func (h *Handler) DeleteEquipment(c echo.Context) error {
	ctx := c.Request().Context()
	actor, err := auth.GetIdentity(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	equipmentUid := c.Param("equipmentUid")
	if equipmentUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "equipmentUid is empty")
	}
	if err := h.bookingSvc.DeleteEquipment(ctx, actor, equipmentUid); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListAuditLogs(c echo.Context) error {
	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	logs, err := h.bookingSvc.ListAuditLogs(c.Request().Context(), limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, logs)
}
