package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/equiphub/booking-service/internal/errs"
	"github.com/equiphub/booking-service/internal/model"
	"github.com/equiphub/booking-service/pkg/auth"
	md "github.com/equiphub/booking-service/pkg/middleware"
	"github.com/equiphub/booking-service/pkg/validate"
)

type Handler struct {
	bookingSvc BookingService
	log        *zap.Logger
}

func New(bookingSvc BookingService, log *zap.Logger) *Handler {
	return &Handler{
		bookingSvc: bookingSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter(authCfg auth.Config) *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/equipments", h.ListEquipments)

	api = api.Group("", md.JwtAuthentication(authCfg))

	api.GET("/reservations", h.GetReservations)
	api.GET("/reservations/calendar", h.ListCalendar)
	api.GET("/reservations/admin", h.ListAdmin, md.RequireModerator())
	api.POST("/reservations", h.CreateReservation)
	api.PATCH("/reservations/:reservationUid/approve", h.ApproveReservation, md.RequireModerator())
	api.PATCH("/reservations/:reservationUid/reject", h.RejectReservation, md.RequireModerator())
	api.PATCH("/reservations/:reservationUid/cancel", h.CancelReservation)
	api.PUT("/reservations/:reservationUid", h.UpdateReservation, md.RequireModerator())

	api.GET("/equipments/:equipmentUid/reservations", h.ListOverlapping)
	api.POST("/equipments", h.CreateEquipment, md.RequireAdmin())
	api.PUT("/equipments/:equipmentUid", h.UpdateEquipment, md.RequireAdmin())
	api.DELETE("/equipments/:equipmentUid", h.DeleteEquipment, md.RequireAdmin())

	api.GET("/audit", h.ListAuditLogs, md.RequireAdmin())

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the domain error taxonomy onto status codes. Capacity
// failures are conflicts: the window is taken, not malformed.
func httpError(err error) *echo.HTTPError {
	var capErr *errs.CapacityError
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrInvalidInterval):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrStatusConflict), errors.Is(err, errs.ErrEquipmentBusy):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.As(err, &capErr):
		return echo.NewHTTPError(http.StatusConflict, capErr.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) CreateReservation(c echo.Context) error {
	ctx := c.Request().Context()
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	actor, err := auth.GetIdentity(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	req.Username = actor.Name

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.bookingSvc.CreateReservation(ctx, actor, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetReservations(c echo.Context) error {
	ctx := c.Request().Context()
	actor, err := auth.GetIdentity(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	rsv, err := h.bookingSvc.GetReservations(ctx, actor.Name)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) ListCalendar(c echo.Context) error {
	rsv, err := h.bookingSvc.ListCalendar(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) ListAdmin(c echo.Context) error {
	filter := model.AdminListFilter{
		Status:       model.Status(c.QueryParam("status")),
		Username:     c.QueryParam("username"),
		EquipmentUid: c.QueryParam("equipmentUid"),
	}
	if date := c.QueryParam("date"); date != "" {
		d, err := time.Parse(time.DateOnly, date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		filter.Date = &d
	}
	rsv, err := h.bookingSvc.ListAdmin(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) ListOverlapping(c echo.Context) error {
	equipmentUid := c.Param("equipmentUid")
	start, err := time.Parse(time.RFC3339, c.QueryParam("start"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "start must be RFC3339")
	}
	end, err := time.Parse(time.RFC3339, c.QueryParam("end"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "end must be RFC3339")
	}
	var statuses []model.Status
	if raw := c.QueryParam("statuses"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			statuses = append(statuses, model.Status(s))
		}
	}
	rsv, err := h.bookingSvc.ListOverlapping(c.Request().Context(), equipmentUid, start, end, statuses)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) ApproveReservation(c echo.Context) error {
	return h.transition(c, h.bookingSvc.ApproveReservation)
}

func (h *Handler) RejectReservation(c echo.Context) error {
	return h.transition(c, h.bookingSvc.RejectReservation)
}

func (h *Handler) CancelReservation(c echo.Context) error {
	return h.transition(c, h.bookingSvc.CancelReservation)
}

func (h *Handler) transition(c echo.Context, op func(ctx context.Context, actor auth.Identity, reservationUid string) (model.ReservationView, error)) error {
	ctx := c.Request().Context()
	actor, err := auth.GetIdentity(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	reservationUid := c.Param("reservationUid")
	if reservationUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	resp, err := op(ctx, actor, reservationUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateReservation(c echo.Context) error {
	ctx := c.Request().Context()
	actor, err := auth.GetIdentity(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	reservationUid := c.Param("reservationUid")
	if reservationUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	var req model.UpdateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.bookingSvc.UpdateReservation(ctx, actor, reservationUid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}
