package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrEquipmentBusy   = errors.New("equipment has active reservations")
	ErrStatusConflict  = errors.New("reservation status does not allow this transition")
	ErrInvalidInterval = errors.New("start must be before end")
)

// CapacityError is returned when admitting a reservation would push the
// overlap count over the equipment capacity. Limit is surfaced for
// user-facing messaging.
type CapacityError struct {
	Limit   int
	Current int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity limit %d reached for this time window", e.Limit)
}

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
