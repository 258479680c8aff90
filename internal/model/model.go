package model

import (
	"encoding/json"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no transition out of the status is legal.
// Re-cancelling or re-rejecting a terminal reservation is an idempotent no-op.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

// BlockingOnCreate are the statuses that occupy a unit when a new reservation
// is admitted. At approval time only already-approved reservations block.
var (
	BlockingOnCreate  = []Status{StatusPending, StatusApproved}
	BlockingOnApprove = []Status{StatusApproved}
)

type Equipment struct {
	ID           int       `json:"-" db:"id"`
	EquipmentUid string    `json:"equipmentUid" db:"equipment_uid"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	Status       string    `json:"status" db:"status"`
	Location     string    `json:"location" db:"location"`
	Capacity     int       `json:"capacity" db:"capacity"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Reservation struct {
	ID             int       `json:"-" db:"id"`
	ReservationUid string    `json:"reservationUid" db:"reservation_uid"`
	EquipmentID    int       `json:"-" db:"equipment_id"`
	Username       string    `json:"username" db:"username"`
	StartDate      time.Time `json:"start" db:"start_date"`
	EndDate        time.Time `json:"end" db:"end_date"`
	Reason         string    `json:"reason" db:"reason"`
	Status         Status    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// ReservationView is the reservation joined with its equipment identity, the
// shape every mutating operation returns for display.
type ReservationView struct {
	Reservation   `json:",inline"`
	EquipmentUid  string `json:"equipmentUid" db:"equipment_uid"`
	EquipmentName string `json:"equipmentName" db:"equipment_name"`
}

type CreateEquipmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
}

type UpdateEquipmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Location    *string `json:"location"`
	Capacity    *int    `json:"capacity" validate:"omitempty,min=1"`
}

type CreateReservationRequest struct {
	EquipmentUid string    `json:"equipmentUid" validate:"required"`
	Start        time.Time `json:"start" validate:"required"`
	End          time.Time `json:"end" validate:"required"`
	Reason       string    `json:"reason"`
	Username     string    `json:"-" validate:"required"`
}

// UpdateReservationRequest is the administrative edit path. Nil fields are
// left untouched.
type UpdateReservationRequest struct {
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
	Status *Status    `json:"status" validate:"omitempty,oneof=pending approved rejected cancelled"`
	Reason *string    `json:"reason"`
}

// ReservationPatch is the repository-level partial update. When FromStatus is
// set the update only applies while the row still holds that status, so a
// transition raced by another writer fails instead of overwriting it.
type ReservationPatch struct {
	Start      *time.Time
	End        *time.Time
	Status     *Status
	Reason     *string
	FromStatus *Status
}

// AdmissionCheck describes the capacity gate a write must pass: inside a
// per-equipment lock, the count of reservations in Blocking overlapping
// [Start, End) (minus ExcludeUid) must stay below Limit.
type AdmissionCheck struct {
	EquipmentID int
	Start       time.Time
	End         time.Time
	Blocking    []Status
	ExcludeUid  string
	Limit       int
}

type AdminListFilter struct {
	Status       Status
	Username     string
	EquipmentUid string
	Date         *time.Time
}

type AuditAction string

const (
	ActionReservationCreate  AuditAction = "RESERVATION_CREATE"
	ActionReservationApprove AuditAction = "RESERVATION_APPROVE"
	ActionReservationReject  AuditAction = "RESERVATION_REJECT"
	ActionReservationCancel  AuditAction = "RESERVATION_CANCEL"
	ActionReservationUpdate  AuditAction = "RESERVATION_UPDATE"
	ActionEquipmentCreate    AuditAction = "EQUIPMENT_CREATE"
	ActionEquipmentUpdate    AuditAction = "EQUIPMENT_UPDATE"
	ActionEquipmentDelete    AuditAction = "EQUIPMENT_DELETE"
)

// AuditEvent is the fire-and-forget record emitted after every successful
// mutation. Before/After are snapshots of the mutated entity.
type AuditEvent struct {
	Actor     string      `json:"actor"`
	Target    string      `json:"target"`
	Action    AuditAction `json:"action"`
	Before    any         `json:"before,omitempty"`
	After     any         `json:"after,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

type AuditLog struct {
	ID        int             `json:"-" db:"id"`
	Actor     string          `json:"actor" db:"actor"`
	Target    string          `json:"target" db:"target"`
	Action    AuditAction     `json:"action" db:"action"`
	Before    json.RawMessage `json:"before" db:"before"`
	After     json.RawMessage `json:"after" db:"after"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}
