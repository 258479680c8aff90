package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/equiphub/booking-service/internal/errs"
	"github.com/equiphub/booking-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go -package=mocks

type Repository interface {
	ListEquipments(ctx context.Context) ([]model.Equipment, error)
	GetEquipment(ctx context.Context, equipmentUid string) (model.Equipment, error)
	CreateEquipment(ctx context.Context, req model.CreateEquipmentRequest) (model.Equipment, error)
	UpdateEquipment(ctx context.Context, equipmentUid string, req model.UpdateEquipmentRequest) (model.Equipment, error)
	DeleteEquipment(ctx context.Context, equipmentUid string) error

	GetReservation(ctx context.Context, reservationUid string) (model.ReservationView, error)
	ListReservations(ctx context.Context, username string) ([]model.ReservationView, error)
	ListAdmin(ctx context.Context, filter model.AdminListFilter) ([]model.ReservationView, error)
	ListCalendar(ctx context.Context) ([]model.ReservationView, error)
	ListOverlapping(ctx context.Context, equipmentID int, start, end time.Time, statuses []model.Status) ([]model.ReservationView, error)
	CreateReservation(ctx context.Context, req model.CreateReservationRequest, check model.AdmissionCheck) (model.ReservationView, error)
	UpdateReservation(ctx context.Context, reservationUid string, patch model.ReservationPatch, check *model.AdmissionCheck) (model.ReservationView, error)

	CreateAuditLog(ctx context.Context, event model.AuditEvent) error
	ListAuditLogs(ctx context.Context, limit int) ([]model.AuditLog, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	equipmentTableName   = `equipment`
	reservationTableName = `reservation`
	auditTableName       = `audit_log`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var viewColumns = []string{
	"r.id", "r.reservation_uid", "r.equipment_id", "r.username",
	"r.start_date", "r.end_date", "r.reason", "r.status", "r.created_at",
	"e.equipment_uid", "e.name as equipment_name",
}

// overlapClause encodes the sole temporal predicate: two half-open intervals
// [s1,e1) and [s2,e2) overlap iff s1 < e2 and s2 < e1. Strict on both ends,
// so a reservation ending at t and one starting at t do not collide.
func overlapClause(start, end time.Time) sq.Sqlizer {
	return sq.And{
		sq.Lt{"start_date": end},
		sq.Gt{"end_date": start},
	}
}

// withEquipmentLock serializes fn against every other admission attempt for
// the same equipment via a transaction-scoped advisory lock. Distinct
// equipment ids do not contend. This closes the check-then-act race between
// the overlap count and the write that follows it.
func (r *repository) withEquipmentLock(ctx context.Context, equipmentID int, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `select pg_advisory_xact_lock($1)`, int64(equipmentID)); err != nil {
		return errors.Wrap(err, "advisory lock")
	}
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func countOverlappingQuery(check model.AdmissionCheck) sq.SelectBuilder {
	q := qb.Select("count(*)").
		From(reservationTableName).
		Where(sq.Eq{"equipment_id": check.EquipmentID}).
		Where(sq.Eq{"status": check.Blocking}).
		Where(overlapClause(check.Start, check.End))
	if check.ExcludeUid != "" {
		q = q.Where(sq.NotEq{"reservation_uid": check.ExcludeUid})
	}
	return q
}

func (r *repository) countOverlapping(ctx context.Context, ext sqlx.ExtContext, check model.AdmissionCheck) (int, error) {
	query, args, err := countOverlappingQuery(check).ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := sqlx.GetContext(ctx, ext, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

// admit compares occupancy against the capacity limit.
func admit(occupied, limit int) error {
	if occupied >= limit {
		return &errs.CapacityError{Limit: limit, Current: occupied}
	}
	return nil
}

func (r *repository) CreateReservation(ctx context.Context, req model.CreateReservationRequest, check model.AdmissionCheck) (model.ReservationView, error) {
	var view model.ReservationView
	err := r.withEquipmentLock(ctx, check.EquipmentID, func(tx *sqlx.Tx) error {
		occupied, err := r.countOverlapping(ctx, tx, check)
		if err != nil {
			return err
		}
		if err := admit(occupied, check.Limit); err != nil {
			return err
		}

		query, args, err := qb.Insert(reservationTableName).
			Columns("reservation_uid", "equipment_id", "username", "start_date", "end_date", "reason", "status").
			Values(uuid.New(), check.EquipmentID, req.Username, req.Start, req.End, req.Reason, model.StatusPending).
			Suffix("returning reservation_uid").
			ToSql()
		if err != nil {
			return err
		}
		var reservationUid string
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&reservationUid); err != nil {
			r.log.Error("CreateReservation", zap.String("q", query), zap.Any("args", args))
			return mapPgError(err)
		}
		view, err = r.getView(ctx, tx, reservationUid)
		return err
	})
	if err != nil {
		return model.ReservationView{}, err
	}
	return view, nil
}

func (r *repository) UpdateReservation(ctx context.Context, reservationUid string, patch model.ReservationPatch, check *model.AdmissionCheck) (model.ReservationView, error) {
	if check == nil {
		if err := r.updateReservation(ctx, r.db, reservationUid, patch); err != nil {
			return model.ReservationView{}, err
		}
		return r.getView(ctx, r.db, reservationUid)
	}

	var view model.ReservationView
	err := r.withEquipmentLock(ctx, check.EquipmentID, func(tx *sqlx.Tx) error {
		occupied, err := r.countOverlapping(ctx, tx, *check)
		if err != nil {
			return err
		}
		if err := admit(occupied, check.Limit); err != nil {
			return err
		}
		if err := r.updateReservation(ctx, tx, reservationUid, patch); err != nil {
			return err
		}
		view, err = r.getView(ctx, tx, reservationUid)
		return err
	})
	if err != nil {
		return model.ReservationView{}, err
	}
	return view, nil
}

func updateReservationQuery(reservationUid string, patch model.ReservationPatch) sq.UpdateBuilder {
	q := qb.Update(reservationTableName)
	if patch.Start != nil {
		q = q.Set("start_date", *patch.Start)
	}
	if patch.End != nil {
		q = q.Set("end_date", *patch.End)
	}
	if patch.Status != nil {
		q = q.Set("status", *patch.Status)
	}
	if patch.Reason != nil {
		q = q.Set("reason", *patch.Reason)
	}
	q = q.Where(sq.Eq{"reservation_uid": reservationUid})
	if patch.FromStatus != nil {
		q = q.Where(sq.Eq{"status": *patch.FromStatus})
	}
	return q
}

func (r *repository) updateReservation(ctx context.Context, ext sqlx.ExtContext, reservationUid string, patch model.ReservationPatch) error {
	query, args, err := updateReservationQuery(reservationUid, patch).ToSql()
	if err != nil {
		return err
	}
	res, err := ext.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("updateReservation", zap.String("q", query), zap.Any("args", args))
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// A guarded update that touched nothing means the status moved
		// underneath us, not that the row is gone.
		if patch.FromStatus != nil {
			return errs.ErrStatusConflict
		}
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) getView(ctx context.Context, ext sqlx.ExtContext, reservationUid string) (model.ReservationView, error) {
	query, args, err := qb.Select(viewColumns...).
		From(reservationTableName + " r").
		Join(fmt.Sprintf("%s e on e.id = r.equipment_id", equipmentTableName)).
		Where(sq.Eq{"reservation_uid": reservationUid}).
		ToSql()
	if err != nil {
		return model.ReservationView{}, err
	}
	var view model.ReservationView
	if err := sqlx.GetContext(ctx, ext, &view, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReservationView{}, errs.ErrNotFound
		}
		return model.ReservationView{}, err
	}
	return view, nil
}

func (r *repository) GetReservation(ctx context.Context, reservationUid string) (model.ReservationView, error) {
	return r.getView(ctx, r.db, reservationUid)
}

func (r *repository) ListReservations(ctx context.Context, username string) ([]model.ReservationView, error) {
	q := qb.Select(viewColumns...).
		From(reservationTableName + " r").
		Join(fmt.Sprintf("%s e on e.id = r.equipment_id", equipmentTableName)).
		Where(sq.Eq{"username": username}).
		OrderBy("start_date desc")
	return r.selectViews(ctx, q)
}

func (r *repository) ListAdmin(ctx context.Context, filter model.AdminListFilter) ([]model.ReservationView, error) {
	q := qb.Select(viewColumns...).
		From(reservationTableName + " r").
		Join(fmt.Sprintf("%s e on e.id = r.equipment_id", equipmentTableName)).
		OrderBy("start_date desc")

	if filter.Status != "" {
		q = q.Where(sq.Eq{"r.status": filter.Status})
	}
	if filter.Username != "" {
		q = q.Where(sq.Eq{"r.username": filter.Username})
	}
	if filter.EquipmentUid != "" {
		q = q.Where(sq.Eq{"e.equipment_uid": filter.EquipmentUid})
	}
	if filter.Date != nil {
		day := filter.Date.Truncate(24 * time.Hour)
		q = q.Where(sq.GtOrEq{"r.start_date": day}).
			Where(sq.Lt{"r.start_date": day.Add(24 * time.Hour)})
	}
	return r.selectViews(ctx, q)
}

func (r *repository) ListCalendar(ctx context.Context) ([]model.ReservationView, error) {
	q := qb.Select(viewColumns...).
		From(reservationTableName + " r").
		Join(fmt.Sprintf("%s e on e.id = r.equipment_id", equipmentTableName)).
		OrderBy("start_date asc")
	return r.selectViews(ctx, q)
}

func (r *repository) ListOverlapping(ctx context.Context, equipmentID int, start, end time.Time, statuses []model.Status) ([]model.ReservationView, error) {
	q := qb.Select(viewColumns...).
		From(reservationTableName + " r").
		Join(fmt.Sprintf("%s e on e.id = r.equipment_id", equipmentTableName)).
		Where(sq.Eq{"equipment_id": equipmentID}).
		Where(sq.Eq{"r.status": statuses}).
		Where(overlapClause(start, end)).
		OrderBy("start_date asc")
	return r.selectViews(ctx, q)
}

func (r *repository) selectViews(ctx context.Context, q sq.SelectBuilder) ([]model.ReservationView, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.ReservationView, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		r.log.Error("selectViews", zap.String("q", query), zap.Any("args", args))
		return nil, err
	}
	return items, nil
}

// mapPgError converts driver error classes into domain errors: an insert that
// trips the equipment foreign key means the equipment vanished mid-flight.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return errs.ErrNotFound
		case pgerrcode.CheckViolation:
			return errs.ErrInvalidInterval
		}
	}
	return err
}
