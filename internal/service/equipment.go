package service

import (
	"context"

	"github.com/equiphub/booking-service/internal/model"
	"github.com/equiphub/booking-service/pkg/auth"
)

func (s *Service) ListEquipments(ctx context.Context) ([]model.Equipment, error) {
	return s.repo.ListEquipments(ctx)
}

func (s *Service) CreateEquipment(ctx context.Context, actor auth.Identity, req model.CreateEquipmentRequest) (model.Equipment, error) {
	eq, err := s.repo.CreateEquipment(ctx, req)
	if err != nil {
		return model.Equipment{}, err
	}
	s.record(ctx, actor, eq.EquipmentUid, model.ActionEquipmentCreate, nil, eq)
	return eq, nil
}

func (s *Service) UpdateEquipment(ctx context.Context, actor auth.Identity, equipmentUid string, req model.UpdateEquipmentRequest) (model.Equipment, error) {
	before, err := s.repo.GetEquipment(ctx, equipmentUid)
	if err != nil {
		return model.Equipment{}, err
	}
	if req.Name == nil && req.Description == nil && req.Status == nil && req.Location == nil && req.Capacity == nil {
		return before, nil
	}
	eq, err := s.repo.UpdateEquipment(ctx, equipmentUid, req)
	if err != nil {
		return model.Equipment{}, err
	}
	s.record(ctx, actor, equipmentUid, model.ActionEquipmentUpdate, before, eq)
	return eq, nil
}

func (s *Service) DeleteEquipment(ctx context.Context, actor auth.Identity, equipmentUid string) error {
	before, err := s.repo.GetEquipment(ctx, equipmentUid)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteEquipment(ctx, equipmentUid); err != nil {
		return err
	}
	s.record(ctx, actor, equipmentUid, model.ActionEquipmentDelete, before, nil)
	return nil
}

func (s *Service) ListAuditLogs(ctx context.Context, limit int) ([]model.AuditLog, error) {
	return s.repo.ListAuditLogs(ctx, limit)
}
