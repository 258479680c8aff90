package repository

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/equiphub/booking-service/internal/model"
)

// CreateAuditLog appends one event. The audit table is append-only; nothing
// in the service updates or deletes rows.
func (r *repository) CreateAuditLog(ctx context.Context, event model.AuditEvent) error {
	before, err := json.Marshal(event.Before)
	if err != nil {
		return err
	}
	after, err := json.Marshal(event.After)
	if err != nil {
		return err
	}
	query, args, err := qb.Insert(auditTableName).
		Columns("actor", "target", "action", "before", "after", "created_at").
		Values(event.Actor, event.Target, event.Action, before, after, event.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("CreateAuditLog", zap.String("q", query), zap.Any("args", args))
		return err
	}
	return nil
}

func (r *repository) ListAuditLogs(ctx context.Context, limit int) ([]model.AuditLog, error) {
	query, args, err := qb.Select("id", "actor", "target", "action", "before", "after", "created_at").
		From(auditTableName).
		OrderBy("created_at desc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.AuditLog, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
