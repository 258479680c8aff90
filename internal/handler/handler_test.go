package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/equiphub/booking-service/internal/errs"
	"github.com/equiphub/booking-service/internal/handler"
	service_mocks "github.com/equiphub/booking-service/internal/handler/mocks"
	"github.com/equiphub/booking-service/internal/model"
	"github.com/equiphub/booking-service/pkg/auth"
	"github.com/equiphub/booking-service/pkg/logger"
	"github.com/equiphub/booking-service/pkg/validate"
)

func withIdentity(id auth.Identity) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(auth.SetIdentity(req.Context(), id)))
			return next(c)
		}
	}
}

var (
	alice = auth.Identity{Name: "alice", Role: auth.RoleUser}
	sam   = auth.Identity{Name: "sam", Role: auth.RoleSupervisor}
)

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func testView(uid string) model.ReservationView {
	return model.ReservationView{
		Reservation: model.Reservation{
			ReservationUid: uid,
			Username:       "alice",
			StartDate:      time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC),
			Status:         model.StatusPending,
		},
		EquipmentUid:  "83575e12-7ce0-48ee-9931-51919ff3c9ee",
		EquipmentName: "Projector",
	}
}

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(s *service_mocks.MockBookingService)

	view := testView("7e9d7342-51ac-4ed1-a20b-78ae6283ac85")
	okReq := model.CreateReservationRequest{
		EquipmentUid: view.EquipmentUid,
		Start:        view.StartDate,
		End:          view.EndDate,
		Reason:       "standup demo",
		Username:     "alice",
	}

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"equipmentUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","start":"2024-03-01T09:00:00Z","end":"2024-03-01T11:00:00Z","reason":"standup demo"}`,
			mockBehavior: func(s *service_mocks.MockBookingService) {
				s.EXPECT().
					CreateReservation(gomock.Any(), alice, okReq).
					Return(view, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
			},
		},
		{
			name: "err. capacity exceeded",
			body: `{"equipmentUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","start":"2024-03-01T09:00:00Z","end":"2024-03-01T11:00:00Z","reason":"standup demo"}`,
			mockBehavior: func(s *service_mocks.MockBookingService) {
				s.EXPECT().
					CreateReservation(gomock.Any(), alice, okReq).
					Return(model.ReservationView{}, &errs.CapacityError{Limit: 2, Current: 2})
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"capacity limit 2 reached for this time window"}`,
			},
			wantErr: true,
		},
		{
			name: "err. inverted interval",
			body: `{"equipmentUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","start":"2024-03-01T11:00:00Z","end":"2024-03-01T09:00:00Z"}`,
			mockBehavior: func(s *service_mocks.MockBookingService) {
				s.EXPECT().
					CreateReservation(gomock.Any(), alice, gomock.Any()).
					Return(model.ReservationView{}, errs.ErrInvalidInterval)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"start must be before end"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. equipmentUid required",
			body:         `{"start":"2024-03-01T09:00:00Z","end":"2024-03-01T11:00:00Z"}`,
			mockBehavior: func(s *service_mocks.MockBookingService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
		{
			name: "err. equipment not found",
			body: `{"equipmentUid":"missing","start":"2024-03-01T09:00:00Z","end":"2024-03-01T11:00:00Z"}`,
			mockBehavior: func(s *service_mocks.MockBookingService) {
				s.EXPECT().
					CreateReservation(gomock.Any(), alice, gomock.Any()).
					Return(model.ReservationView{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookingService(c)
			h := handler.New(svc, logger.NewTestLogger("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/reservations", h.CreateReservation, withIdentity(alice))

			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
			if !tt.wantErr {
				require.Equal(t, mustJSON(t, view), strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_CancelReservation(t *testing.T) {
	t.Parallel()
	view := testView("7e9d7342-51ac-4ed1-a20b-78ae6283ac85")
	cancelled := view
	cancelled.Status = model.StatusCancelled

	var tests = []struct {
		name         string
		actor        auth.Identity
		mockBehavior func(s *service_mocks.MockBookingService, actor auth.Identity)
		expectedCode int
	}{
		{
			name:  "owner cancels",
			actor: alice,
			mockBehavior: func(s *service_mocks.MockBookingService, actor auth.Identity) {
				s.EXPECT().
					CancelReservation(gomock.Any(), actor, view.ReservationUid).
					Return(cancelled, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "stranger forbidden",
			actor: auth.Identity{Name: "mallory", Role: auth.RoleUser},
			mockBehavior: func(s *service_mocks.MockBookingService, actor auth.Identity) {
				s.EXPECT().
					CancelReservation(gomock.Any(), actor, view.ReservationUid).
					Return(model.ReservationView{}, errs.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:  "missing reservation",
			actor: alice,
			mockBehavior: func(s *service_mocks.MockBookingService, actor auth.Identity) {
				s.EXPECT().
					CancelReservation(gomock.Any(), actor, view.ReservationUid).
					Return(model.ReservationView{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookingService(c)
			h := handler.New(svc, logger.NewTestLogger("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.PATCH("/api/v1/reservations/:reservationUid/cancel", h.CancelReservation, withIdentity(tt.actor))

			tt.mockBehavior(svc, tt.actor)

			r := httptest.NewRequest(http.MethodPatch,
				fmt.Sprintf("/api/v1/reservations/%s/cancel", view.ReservationUid), http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestHandler_ApproveReservation(t *testing.T) {
	t.Parallel()
	view := testView("7e9d7342-51ac-4ed1-a20b-78ae6283ac85")
	approved := view
	approved.Status = model.StatusApproved

	var tests = []struct {
		name         string
		mockBehavior func(s *service_mocks.MockBookingService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			mockBehavior: func(s *service_mocks.MockBookingService) {
				s.EXPECT().
					ApproveReservation(gomock.Any(), sam, view.ReservationUid).
					Return(approved, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "capacity conflict",
			mockBehavior: func(s *service_mocks.MockBookingService) {
				s.EXPECT().
					ApproveReservation(gomock.Any(), sam, view.ReservationUid).
					Return(model.ReservationView{}, &errs.CapacityError{Limit: 1, Current: 1})
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"capacity limit 1 reached for this time window"}`,
		},
		{
			name: "terminal conflict",
			mockBehavior: func(s *service_mocks.MockBookingService) {
				s.EXPECT().
					ApproveReservation(gomock.Any(), sam, view.ReservationUid).
					Return(model.ReservationView{}, errs.ErrStatusConflict)
			},
			expectedCode: http.StatusConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookingService(c)
			h := handler.New(svc, logger.NewTestLogger("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.PATCH("/api/v1/reservations/:reservationUid/approve", h.ApproveReservation, withIdentity(sam))

			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPatch,
				fmt.Sprintf("/api/v1/reservations/%s/approve", view.ReservationUid), http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ListOverlapping(t *testing.T) {
	t.Parallel()
	view := testView("7e9d7342-51ac-4ed1-a20b-78ae6283ac85")
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC)

	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockBookingService(c)
	svc.EXPECT().
		ListOverlapping(gomock.Any(), view.EquipmentUid, start, end, []model.Status{model.StatusApproved}).
		Return([]model.ReservationView{view}, nil)

	h := handler.New(svc, logger.NewTestLogger("test"))
	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/api/v1/equipments/:equipmentUid/reservations", h.ListOverlapping, withIdentity(alice))

	url := fmt.Sprintf("/api/v1/equipments/%s/reservations?start=%s&end=%s&statuses=approved",
		view.EquipmentUid, "2024-03-01T09:00:00Z", "2024-03-01T17:00:00Z")
	r := httptest.NewRequest(http.MethodGet, url, http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, mustJSON(t, []model.ReservationView{view}), strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ListAuditLogs_LimitCap(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockBookingService(c)
	svc.EXPECT().
		ListAuditLogs(gomock.Any(), 200).
		Return([]model.AuditLog{}, nil)

	h := handler.New(svc, logger.NewTestLogger("test"))
	e := echo.New()
	e.GET("/api/v1/audit", h.ListAuditLogs, withIdentity(auth.Identity{Name: "root", Role: auth.RoleAdmin}))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/audit?limit=5000", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_NoIdentity(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockBookingService(c)
	h := handler.New(svc, logger.NewTestLogger("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/api/v1/reservations", h.GetReservations)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
