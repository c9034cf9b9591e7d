package commands

import (
	"context"

	"gearbook/internal/domain/equipment"
	"gearbook/internal/domain/scheduling"
	"gearbook/internal/infra"
	"gearbook/internal/pkg/clock"
	"gearbook/internal/pkg/errs"
	"gearbook/internal/usecase/queries"
	"gearbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type EquipmentCommands interface {
	// OverrideStatus is the administrative escape hatch. It still runs
	// through the scheduling policy: availability cannot be forced while an
	// approved reservation occupies the equipment, and maintenance is owned
	// by the maintenance workflow.
	OverrideStatus(ctx context.Context, id uuid.UUID, target equipment.Status) (*queries.EquipmentView, error)
}

type equipmentCommandsImpl struct {
	equipment    EquipmentWriteStore
	reservations ReservationWriteStore
	policy       *scheduling.Policy
	locks        *shared.EquipmentLock
	clock        clock.Clock
}

func NewEquipmentCommands(
	equipmentStore EquipmentWriteStore,
	reservations ReservationWriteStore,
	policy *scheduling.Policy,
	locks *shared.EquipmentLock,
	clk clock.Clock,
) EquipmentCommands {
	return &equipmentCommandsImpl{
		equipment:    equipmentStore,
		reservations: reservations,
		policy:       policy,
		locks:        locks,
		clock:        clk,
	}
}

func (c *equipmentCommandsImpl) OverrideStatus(_ context.Context, id uuid.UUID, target equipment.Status) (*queries.EquipmentView, error) {
	if !target.IsValid() {
		return nil, errs.Mark(equipment.ErrInvalidStatus, errs.ErrDomainValidation)
	}

	release := c.locks.Acquire(id)
	defer release()

	equip, err := c.equipment.FindByID(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEquipmentNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	approved := c.reservations.ApprovedByEquipment(id)
	if policyErr := c.policy.CheckOverride(equip, target, approved); policyErr != nil {
		return nil, errs.Mark(policyErr, errs.ErrReservationConflict)
	}

	if err := c.equipment.SetStatus(id, target, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	updated, err := c.equipment.FindByID(id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return queries.NewEquipmentView(updated), nil
}
