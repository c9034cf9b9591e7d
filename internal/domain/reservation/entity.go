package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow     = errors.New("invalid reservation window")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrIllegalTransition = errors.New("illegal status transition")
)

type Reservation struct {
	id          uuid.UUID
	equipmentID uuid.UUID
	userID      uuid.UUID
	userName    string
	window      Window
	status      Status
	purpose     Purpose
	notes       Note
	createdAt   time.Time
	updatedAt   time.Time
}

// NewReservation creates a pending request. Approval, rejection and
// completion go through TransitionTo.
func NewReservation(
	equipmentID, userID uuid.UUID,
	userName string,
	window Window,
	purpose Purpose,
	now time.Time,
) *Reservation {
	return &Reservation{
		id:          uuid.New(),
		equipmentID: equipmentID,
		userID:      userID,
		userName:    userName,
		window:      window,
		status:      StatusPending,
		purpose:     purpose,
		createdAt:   now,
		updatedAt:   now,
	}
}

func Reconstruct(
	id, equipmentID, userID uuid.UUID,
	userName string,
	window Window,
	status Status,
	purpose Purpose,
	notes Note,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		equipmentID: equipmentID,
		userID:      userID,
		userName:    userName,
		window:      window,
		status:      status,
		purpose:     purpose,
		notes:       notes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// TransitionTo applies a state-machine edge. The receiver is unchanged when
// the edge is not permitted, including self-loops.
func (r *Reservation) TransitionTo(next Status, notes Note, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}

	r.status = next
	if !notes.IsEmpty() {
		r.notes = notes
	}
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

func (r *Reservation) Clone() *Reservation {
	clone := *r
	return &clone
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) EquipmentID() uuid.UUID { return r.equipmentID }
func (r *Reservation) UserID() uuid.UUID      { return r.userID }
func (r *Reservation) UserName() string       { return r.userName }
func (r *Reservation) Window() Window         { return r.window }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) Purpose() Purpose       { return r.purpose }
func (r *Reservation) Notes() Note            { return r.notes }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }
