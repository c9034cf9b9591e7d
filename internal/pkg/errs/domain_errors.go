package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers. The four
// kinds a caller must be able to tell apart are NotFound, Validation,
// Conflict and IllegalTransition.
var (
	// Equipment errors
	ErrEquipmentNotFound = errors.New("equipment not found")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("reservation conflict")
	ErrIllegalTransition   = errors.New("illegal status transition")

	// Maintenance errors
	ErrMaintenanceNotFound = errors.New("maintenance record not found")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
