package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/equiphub/booking-service/internal/errs"
	"github.com/equiphub/booking-service/internal/model"
	"github.com/equiphub/booking-service/internal/repository"
	"github.com/equiphub/booking-service/pkg/auth"
)

// Auditor records an event best-effort after a successful mutation. Its
// failure must never roll the mutation back, hence no error return.
type Auditor interface {
	Record(ctx context.Context, event model.AuditEvent)
}

type Service struct {
	log   *zap.Logger
	repo  repository.Repository
	audit Auditor
}

func NewService(repo repository.Repository, auditor Auditor, log *zap.Logger) *Service {
	return &Service{
		log:   log,
		repo:  repo,
		audit: auditor,
	}
}

// admissionLimit is the capacity floor policy: equipment configured with a
// non-positive capacity still offers a single unit.
func admissionLimit(capacity int) int {
	if capacity < 1 {
		return 1
	}
	return capacity
}

func (s *Service) CreateReservation(ctx context.Context, actor auth.Identity, req model.CreateReservationRequest) (model.ReservationView, error) {
	if !req.End.After(req.Start) {
		return model.ReservationView{}, errs.ErrInvalidInterval
	}
	req.Username = actor.Name

	eq, err := s.repo.GetEquipment(ctx, req.EquipmentUid)
	if err != nil {
		return model.ReservationView{}, err
	}
	check := model.AdmissionCheck{
		EquipmentID: eq.ID,
		Start:       req.Start,
		End:         req.End,
		Blocking:    model.BlockingOnCreate,
		Limit:       admissionLimit(eq.Capacity),
	}
	view, err := s.repo.CreateReservation(ctx, req, check)
	if err != nil {
		return model.ReservationView{}, err
	}
	s.record(ctx, actor, view.ReservationUid, model.ActionReservationCreate, nil, view)
	return view, nil
}

// ApproveReservation re-validates capacity against approved reservations
// only, excluding the reservation itself. Approving an already-approved
// reservation is a no-op; approving a rejected or cancelled one is a
// conflict, approval must not resurrect a dead reservation. The write is
// conditional on the status read here, so a cancel landing in between
// surfaces as ErrStatusConflict instead of being overwritten.
func (s *Service) ApproveReservation(ctx context.Context, actor auth.Identity, reservationUid string) (model.ReservationView, error) {
	cur, err := s.repo.GetReservation(ctx, reservationUid)
	if err != nil {
		return model.ReservationView{}, err
	}
	if cur.Status == model.StatusApproved {
		return cur, nil
	}
	if cur.Status.Terminal() {
		return model.ReservationView{}, errs.ErrStatusConflict
	}

	eq, err := s.repo.GetEquipment(ctx, cur.EquipmentUid)
	if err != nil {
		return model.ReservationView{}, err
	}
	check := model.AdmissionCheck{
		EquipmentID: eq.ID,
		Start:       cur.StartDate,
		End:         cur.EndDate,
		Blocking:    model.BlockingOnApprove,
		ExcludeUid:  reservationUid,
		Limit:       admissionLimit(eq.Capacity),
	}
	status := model.StatusApproved
	from := cur.Status
	view, err := s.repo.UpdateReservation(ctx, reservationUid, model.ReservationPatch{Status: &status, FromStatus: &from}, &check)
	if err != nil {
		return model.ReservationView{}, err
	}
	s.record(ctx, actor, reservationUid, model.ActionReservationApprove, cur, view)
	return view, nil
}

// RejectReservation needs no admission check: rejection only frees capacity.
func (s *Service) RejectReservation(ctx context.Context, actor auth.Identity, reservationUid string) (model.ReservationView, error) {
	cur, err := s.repo.GetReservation(ctx, reservationUid)
	if err != nil {
		return model.ReservationView{}, err
	}
	if cur.Status.Terminal() {
		return cur, nil
	}
	status := model.StatusRejected
	from := cur.Status
	view, err := s.repo.UpdateReservation(ctx, reservationUid, model.ReservationPatch{Status: &status, FromStatus: &from}, nil)
	if err != nil {
		return model.ReservationView{}, err
	}
	s.record(ctx, actor, reservationUid, model.ActionReservationReject, cur, view)
	return view, nil
}

func (s *Service) CancelReservation(ctx context.Context, actor auth.Identity, reservationUid string) (model.ReservationView, error) {
	cur, err := s.repo.GetReservation(ctx, reservationUid)
	if err != nil {
		return model.ReservationView{}, err
	}
	if cur.Username != actor.Name && !actor.IsAdmin() {
		return model.ReservationView{}, errs.ErrForbidden
	}
	if cur.Status.Terminal() {
		return cur, nil
	}
	status := model.StatusCancelled
	from := cur.Status
	view, err := s.repo.UpdateReservation(ctx, reservationUid, model.ReservationPatch{Status: &status, FromStatus: &from}, nil)
	if err != nil {
		return model.ReservationView{}, err
	}
	s.record(ctx, actor, reservationUid, model.ActionReservationCancel, cur, view)
	return view, nil
}

// UpdateReservation is the administrative edit path. An edit that moves the
// window or puts the reservation into a blocking status must re-pass
// admission; editing the reason alone does not.
func (s *Service) UpdateReservation(ctx context.Context, actor auth.Identity, reservationUid string, req model.UpdateReservationRequest) (model.ReservationView, error) {
	cur, err := s.repo.GetReservation(ctx, reservationUid)
	if err != nil {
		return model.ReservationView{}, err
	}
	if req.Start == nil && req.End == nil && req.Status == nil && req.Reason == nil {
		return cur, nil
	}

	start, end := cur.StartDate, cur.EndDate
	if req.Start != nil {
		start = *req.Start
	}
	if req.End != nil {
		end = *req.End
	}
	windowChanged := req.Start != nil || req.End != nil
	if windowChanged && !end.After(start) {
		return model.ReservationView{}, errs.ErrInvalidInterval
	}
	status := cur.Status
	if req.Status != nil {
		status = *req.Status
	}

	var check *model.AdmissionCheck
	occupying := status == model.StatusPending || status == model.StatusApproved
	if occupying && (windowChanged || status != cur.Status) {
		eq, err := s.repo.GetEquipment(ctx, cur.EquipmentUid)
		if err != nil {
			return model.ReservationView{}, err
		}
		blocking := model.BlockingOnCreate
		if status == model.StatusApproved {
			blocking = model.BlockingOnApprove
		}
		check = &model.AdmissionCheck{
			EquipmentID: eq.ID,
			Start:       start,
			End:         end,
			Blocking:    blocking,
			ExcludeUid:  reservationUid,
			Limit:       admissionLimit(eq.Capacity),
		}
	}

	from := cur.Status
	patch := model.ReservationPatch{Start: req.Start, End: req.End, Status: req.Status, Reason: req.Reason, FromStatus: &from}
	view, err := s.repo.UpdateReservation(ctx, reservationUid, patch, check)
	if err != nil {
		return model.ReservationView{}, err
	}
	s.record(ctx, actor, reservationUid, model.ActionReservationUpdate, cur, view)
	return view, nil
}

func (s *Service) GetReservations(ctx context.Context, username string) ([]model.ReservationView, error) {
	return s.repo.ListReservations(ctx, username)
}

func (s *Service) ListAdmin(ctx context.Context, filter model.AdminListFilter) ([]model.ReservationView, error) {
	return s.repo.ListAdmin(ctx, filter)
}

func (s *Service) ListCalendar(ctx context.Context) ([]model.ReservationView, error) {
	return s.repo.ListCalendar(ctx)
}

func (s *Service) ListOverlapping(ctx context.Context, equipmentUid string, start, end time.Time, statuses []model.Status) ([]model.ReservationView, error) {
	if !end.After(start) {
		return nil, errs.ErrInvalidInterval
	}
	eq, err := s.repo.GetEquipment(ctx, equipmentUid)
	if err != nil {
		return nil, err
	}
	if len(statuses) == 0 {
		statuses = model.BlockingOnCreate
	}
	return s.repo.ListOverlapping(ctx, eq.ID, start, end, statuses)
}

func (s *Service) record(ctx context.Context, actor auth.Identity, target string, action model.AuditAction, before, after any) {
	s.audit.Record(ctx, model.AuditEvent{
		Actor:     actor.Name,
		Target:    target,
		Action:    action,
		Before:    before,
		After:     after,
		CreatedAt: time.Now().UTC(),
	})
}
