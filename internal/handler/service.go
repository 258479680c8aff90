package handler

import (
	"context"
	"time"

	"github.com/equiphub/booking-service/internal/model"
	"github.com/equiphub/booking-service/internal/service"
	"github.com/equiphub/booking-service/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

type BookingService interface {
	CreateReservation(ctx context.Context, actor auth.Identity, req model.CreateReservationRequest) (model.ReservationView, error)
	ApproveReservation(ctx context.Context, actor auth.Identity, reservationUid string) (model.ReservationView, error)
	RejectReservation(ctx context.Context, actor auth.Identity, reservationUid string) (model.ReservationView, error)
	CancelReservation(ctx context.Context, actor auth.Identity, reservationUid string) (model.ReservationView, error)
	UpdateReservation(ctx context.Context, actor auth.Identity, reservationUid string, req model.UpdateReservationRequest) (model.ReservationView, error)
	GetReservations(ctx context.Context, username string) ([]model.ReservationView, error)
	ListAdmin(ctx context.Context, filter model.AdminListFilter) ([]model.ReservationView, error)
	ListCalendar(ctx context.Context) ([]model.ReservationView, error)
	ListOverlapping(ctx context.Context, equipmentUid string, start, end time.Time, statuses []model.Status) ([]model.ReservationView, error)

	ListEquipments(ctx context.Context) ([]model.Equipment, error)
	CreateEquipment(ctx context.Context, actor auth.Identity, req model.CreateEquipmentRequest) (model.Equipment, error)
	UpdateEquipment(ctx context.Context, actor auth.Identity, equipmentUid string, req model.UpdateEquipmentRequest) (model.Equipment, error)
	DeleteEquipment(ctx context.Context, actor auth.Identity, equipmentUid string) error

	ListAuditLogs(ctx context.Context, limit int) ([]model.AuditLog, error)
}

var _ BookingService = (*service.Service)(nil)
