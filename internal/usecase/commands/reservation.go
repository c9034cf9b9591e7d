package commands

import (
	"context"
	"errors"
	"time"

	"gearbook/internal/domain/equipment"
	"gearbook/internal/domain/reservation"
	"gearbook/internal/domain/scheduling"
	"gearbook/internal/infra"
	"gearbook/internal/pkg/clock"
	"gearbook/internal/pkg/errs"
	"gearbook/internal/pkg/patch"
	"gearbook/internal/usecase/queries"
	"gearbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	EquipmentID uuid.UUID
	UserID      uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	Purpose     string
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput) (*queries.ReservationView, error)
	Transition(ctx context.Context, id uuid.UUID, next reservation.Status, notes *string) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	reservations ReservationWriteStore
	equipment    EquipmentWriteStore
	users        UserWriteStore
	policy       *scheduling.Policy
	locks        *shared.EquipmentLock
	clock        clock.Clock
}

func NewReservationCommands(
	reservations ReservationWriteStore,
	equipmentStore EquipmentWriteStore,
	users UserWriteStore,
	policy *scheduling.Policy,
	locks *shared.EquipmentLock,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservations: reservations,
		equipment:    equipmentStore,
		users:        users,
		policy:       policy,
		locks:        locks,
		clock:        clk,
	}
}

// Create runs the full validate-then-commit sequence for a new request:
// window and purpose validation, requester and equipment lookup, overlap
// check against every active reservation on the equipment, then an append
// with status pending. Nothing is mutated on any failure path.
func (c *reservationCommandsImpl) Create(_ context.Context, in CreateReservationInput) (*queries.ReservationView, error) {
	window, err := reservation.NewWindow(in.StartTime, in.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	purpose, err := reservation.NewPurpose(in.Purpose)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	requester, err := c.users.FindByID(in.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	release := c.locks.Acquire(in.EquipmentID)
	defer release()

	equip, err := c.equipment.FindByID(in.EquipmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEquipmentNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	active := c.reservations.ActiveByEquipment(in.EquipmentID)
	if policyErr := c.policy.CheckCreate(equip, window, active); policyErr != nil {
		return nil, errs.Mark(policyErr, errs.ErrReservationConflict)
	}

	record := reservation.NewReservation(in.EquipmentID, in.UserID, requester.Name(), window, purpose, c.clock.Now())
	if appendErr := c.reservations.Append(record); appendErr != nil {
		return nil, errs.Mark(appendErr, errs.ErrStoreOperationFailed)
	}

	// A pending request does not occupy the equipment; registry status is
	// untouched until approval.
	return queries.NewReservationView(record, equip.Name()), nil
}

// Transition applies a state-machine edge and synchronizes the equipment's
// derived status with the ledger.
func (c *reservationCommandsImpl) Transition(
	_ context.Context,
	id uuid.UUID,
	next reservation.Status,
	notes *string,
) (*queries.ReservationView, error) {
	if !next.IsValid() {
		return nil, errs.Mark(reservation.ErrInvalidStatus, errs.ErrDomainValidation)
	}

	// First read resolves the equipment id to lock on; the record is
	// re-read under the lock before mutation.
	peek, err := c.findReservation(id)
	if err != nil {
		return nil, err
	}

	release := c.locks.Acquire(peek.EquipmentID())
	defer release()

	record, err := c.findReservation(id)
	if err != nil {
		return nil, err
	}
	previous := record.Status()

	note := reservation.NewNote(patch.Coalesce(notes, ""))
	if transErr := record.TransitionTo(next, note, c.clock.Now()); transErr != nil {
		if errors.Is(transErr, reservation.ErrIllegalTransition) {
			return nil, errs.Mark(transErr, errs.ErrIllegalTransition)
		}
		return nil, errs.Mark(transErr, errs.ErrDomainValidation)
	}

	if updateErr := c.reservations.Update(record); updateErr != nil {
		return nil, errs.Mark(updateErr, errs.ErrStoreOperationFailed)
	}

	equip, err := c.syncEquipmentStatus(record, previous)
	if err != nil {
		return nil, err
	}

	return queries.NewReservationView(record, equip.Name()), nil
}

func (c *reservationCommandsImpl) findReservation(id uuid.UUID) (*reservation.Reservation, error) {
	record, err := c.reservations.FindByID(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return record, nil
}

// syncEquipmentStatus reconciles the registry after a committed transition.
// The ledger was already updated, so the approved set it reads reflects the
// post-transition state.
func (c *reservationCommandsImpl) syncEquipmentStatus(
	record *reservation.Reservation,
	previous reservation.Status,
) (*equipment.Equipment, error) {
	equip, err := c.equipment.FindByID(record.EquipmentID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	var (
		target  equipment.Status
		changed bool
	)
	switch record.Status() {
	case reservation.StatusApproved:
		target, changed = c.policy.StatusOnApproval(equip.Status(), record.Window())
	case reservation.StatusCompleted:
		target, changed = c.policy.RecomputeStatus(equip.Status(), c.reservations.ApprovedByEquipment(equip.ID()))
	case reservation.StatusRejected:
		remaining := c.reservations.ApprovedByEquipment(equip.ID())
		target, changed = c.policy.StatusOnRejection(equip.Status(), previous == reservation.StatusApproved, remaining)
	}

	if changed {
		if err := c.equipment.SetStatus(equip.ID(), target, c.clock.Now()); err != nil {
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
	}
	return equip, nil
}
