package repository

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/equiphub/booking-service/internal/errs"
	"github.com/equiphub/booking-service/internal/model"
)

var equipmentColumns = []string{
	"id", "equipment_uid", "name", "description", "status", "location", "capacity", "created_at",
}

func (r *repository) ListEquipments(ctx context.Context) ([]model.Equipment, error) {
	query, args, err := qb.Select(equipmentColumns...).
		From(equipmentTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Equipment, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetEquipment(ctx context.Context, equipmentUid string) (model.Equipment, error) {
	query, args, err := qb.Select(equipmentColumns...).
		From(equipmentTableName).
		Where(sq.Eq{"equipment_uid": equipmentUid}).
		ToSql()
	if err != nil {
		return model.Equipment{}, err
	}
	var eq model.Equipment
	if err := r.db.GetContext(ctx, &eq, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Equipment{}, errs.ErrNotFound
		}
		return model.Equipment{}, err
	}
	return eq, nil
}

func (r *repository) CreateEquipment(ctx context.Context, req model.CreateEquipmentRequest) (model.Equipment, error) {
	query, args, err := qb.Insert(equipmentTableName).
		Columns("equipment_uid", "name", "description", "status", "location", "capacity").
		Values(uuid.New(), req.Name, req.Description, req.Status, req.Location, req.Capacity).
		Suffix("returning " + equipmentColumnList()).
		ToSql()
	if err != nil {
		return model.Equipment{}, err
	}
	var eq model.Equipment
	if err := r.db.GetContext(ctx, &eq, query, args...); err != nil {
		r.log.Error("CreateEquipment", zap.String("q", query), zap.Any("args", args))
		return model.Equipment{}, mapPgError(err)
	}
	return eq, nil
}

func (r *repository) UpdateEquipment(ctx context.Context, equipmentUid string, req model.UpdateEquipmentRequest) (model.Equipment, error) {
	q := qb.Update(equipmentTableName)
	if req.Name != nil {
		q = q.Set("name", *req.Name)
	}
	if req.Description != nil {
		q = q.Set("description", *req.Description)
	}
	if req.Status != nil {
		q = q.Set("status", *req.Status)
	}
	if req.Location != nil {
		q = q.Set("location", *req.Location)
	}
	if req.Capacity != nil {
		q = q.Set("capacity", *req.Capacity)
	}
	query, args, err := q.Where(sq.Eq{"equipment_uid": equipmentUid}).
		Suffix("returning " + equipmentColumnList()).
		ToSql()
	if err != nil {
		return model.Equipment{}, err
	}
	var eq model.Equipment
	if err := r.db.GetContext(ctx, &eq, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Equipment{}, errs.ErrNotFound
		}
		return model.Equipment{}, mapPgError(err)
	}
	return eq, nil
}

// DeleteEquipment refuses to delete equipment that still has reservations in
// a blocking state. The check and the delete share the equipment lock so a
// concurrent admission cannot slip a reservation in between.
func (r *repository) DeleteEquipment(ctx context.Context, equipmentUid string) error {
	eq, err := r.GetEquipment(ctx, equipmentUid)
	if err != nil {
		return err
	}
	return r.withEquipmentLock(ctx, eq.ID, func(tx *sqlx.Tx) error {
		query, args, err := qb.Select("count(*)").
			From(reservationTableName).
			Where(sq.Eq{"equipment_id": eq.ID}).
			Where(sq.Eq{"status": model.BlockingOnCreate}).
			ToSql()
		if err != nil {
			return err
		}
		var active int
		if err := sqlx.GetContext(ctx, tx, &active, query, args...); err != nil {
			return err
		}
		if active > 0 {
			return errs.ErrEquipmentBusy
		}
		query, args, err = qb.Delete(equipmentTableName).
			Where(sq.Eq{"id": eq.ID}).
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, query, args...)
		return err
	})
}

func equipmentColumnList() string {
	return strings.Join(equipmentColumns, ", ")
}
