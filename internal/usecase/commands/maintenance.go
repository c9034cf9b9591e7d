package commands

import (
	"context"
	"errors"
	"time"

	"gearbook/internal/domain/equipment"
	"gearbook/internal/domain/maintenance"
	"gearbook/internal/domain/scheduling"
	"gearbook/internal/infra"
	"gearbook/internal/pkg/clock"
	"gearbook/internal/pkg/errs"
	"gearbook/internal/pkg/patch"
	"gearbook/internal/usecase/queries"
	"gearbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleMaintenanceInput struct {
	EquipmentID  uuid.UUID
	TechnicianID uuid.UUID
	ScheduledAt  time.Time
	Type         maintenance.Type
	Description  string
}

type MaintenanceCommands interface {
	Schedule(ctx context.Context, in ScheduleMaintenanceInput) (*queries.MaintenanceView, error)
	Transition(ctx context.Context, id uuid.UUID, next maintenance.Status, notes *string) (*queries.MaintenanceView, error)
}

type maintenanceCommandsImpl struct {
	records   MaintenanceWriteStore
	equipment EquipmentWriteStore
	// approved reservations drive the policy checks around entering and
	// leaving maintenance
	reservations ReservationWriteStore
	users        UserWriteStore
	policy       *scheduling.Policy
	locks        *shared.EquipmentLock
	clock        clock.Clock
}

func NewMaintenanceCommands(
	records MaintenanceWriteStore,
	equipmentStore EquipmentWriteStore,
	reservations ReservationWriteStore,
	users UserWriteStore,
	policy *scheduling.Policy,
	locks *shared.EquipmentLock,
	clk clock.Clock,
) MaintenanceCommands {
	return &maintenanceCommandsImpl{
		records:      records,
		equipment:    equipmentStore,
		reservations: reservations,
		users:        users,
		policy:       policy,
		locks:        locks,
		clock:        clk,
	}
}

func (c *maintenanceCommandsImpl) Schedule(_ context.Context, in ScheduleMaintenanceInput) (*queries.MaintenanceView, error) {
	equip, err := c.equipment.FindByID(in.EquipmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEquipmentNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	technician, err := c.users.FindByID(in.TechnicianID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	record, err := maintenance.NewRecord(
		in.EquipmentID, in.TechnicianID, technician.Name(),
		in.ScheduledAt, in.Type, in.Description, c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if addErr := c.records.Add(record); addErr != nil {
		return nil, errs.Mark(addErr, errs.ErrStoreOperationFailed)
	}
	return queries.NewMaintenanceView(record, equip.Name()), nil
}

// Transition moves a maintenance record along scheduled → in-progress →
// completed. Starting work parks the equipment in maintenance (blocked by
// any approved reservation occupying it right now); completing work stamps
// the last-maintenance date and hands the status back to the reservation
// rules.
func (c *maintenanceCommandsImpl) Transition(
	_ context.Context,
	id uuid.UUID,
	next maintenance.Status,
	notes *string,
) (*queries.MaintenanceView, error) {
	if !next.IsValid() {
		return nil, errs.Mark(maintenance.ErrInvalidStatus, errs.ErrDomainValidation)
	}

	peek, err := c.findRecord(id)
	if err != nil {
		return nil, err
	}

	release := c.locks.Acquire(peek.EquipmentID())
	defer release()

	record, err := c.findRecord(id)
	if err != nil {
		return nil, err
	}

	equip, err := c.equipment.FindByID(record.EquipmentID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	if next == maintenance.StatusInProgress {
		approved := c.reservations.ApprovedByEquipment(record.EquipmentID())
		if policyErr := c.policy.CheckMaintenanceStart(equip, approved); policyErr != nil {
			return nil, errs.Mark(policyErr, errs.ErrReservationConflict)
		}
	}

	now := c.clock.Now()
	if transErr := record.TransitionTo(next, patch.Coalesce(notes, ""), now); transErr != nil {
		if errors.Is(transErr, maintenance.ErrIllegalTransition) {
			return nil, errs.Mark(transErr, errs.ErrIllegalTransition)
		}
		return nil, errs.Mark(transErr, errs.ErrDomainValidation)
	}

	if updateErr := c.records.Update(record); updateErr != nil {
		return nil, errs.Mark(updateErr, errs.ErrStoreOperationFailed)
	}

	switch next {
	case maintenance.StatusInProgress:
		if err := c.equipment.SetStatus(equip.ID(), equipment.StatusMaintenance, now); err != nil {
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
	case maintenance.StatusCompleted:
		if err := c.equipment.RecordMaintenance(equip.ID(), now, now); err != nil {
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		approved := c.reservations.ApprovedByEquipment(record.EquipmentID())
		target := c.policy.StatusOnMaintenanceComplete(approved)
		if err := c.equipment.SetStatus(equip.ID(), target, now); err != nil {
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
	}

	return queries.NewMaintenanceView(record, equip.Name()), nil
}

func (c *maintenanceCommandsImpl) findRecord(id uuid.UUID) (*maintenance.Record, error) {
	record, err := c.records.FindByID(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrMaintenanceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return record, nil
}
