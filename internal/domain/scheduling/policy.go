// Package scheduling holds the rule set that keeps the reservation ledger
// conflict-free and the equipment registry's derived status consistent with
// it. The ledger without this policy is just a list.
package scheduling

import (
	"errors"
	"fmt"

	"gearbook/internal/domain/equipment"
	"gearbook/internal/domain/reservation"
	"gearbook/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrEquipmentUnderMaintenance = errors.New("equipment is under maintenance")
	ErrMaintenanceManagedStatus  = errors.New("maintenance status is managed by the maintenance workflow")
)

// ConflictError reports the active reservations whose windows block a
// requested operation on an equipment record.
type ConflictError struct {
	EquipmentID    uuid.UUID
	ConflictingIDs []uuid.UUID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("equipment %s has %d conflicting reservation(s)", e.EquipmentID, len(e.ConflictingIDs))
}

type Policy struct {
	clock clock.Clock
}

func NewPolicy(c clock.Clock) *Policy {
	return &Policy{clock: c}
}

// CheckCreate validates a new reservation request against the registry
// status and every active reservation on the same equipment. Windows are
// half-open, so a window starting exactly where another ends is allowed.
func (p *Policy) CheckCreate(equip *equipment.Equipment, window reservation.Window, active []*reservation.Reservation) error {
	if equip.Status() == equipment.StatusMaintenance {
		return ErrEquipmentUnderMaintenance
	}

	var conflicts []uuid.UUID
	for _, r := range active {
		if !r.IsActive() {
			continue
		}
		if r.Window().Overlaps(window) {
			conflicts = append(conflicts, r.ID())
		}
	}
	if len(conflicts) > 0 {
		return &ConflictError{EquipmentID: equip.ID(), ConflictingIDs: conflicts}
	}
	return nil
}

// StatusOnApproval decides the registry status after pending→approved.
// A future-dated approval leaves the equipment untouched.
func (p *Policy) StatusOnApproval(current equipment.Status, window reservation.Window) (equipment.Status, bool) {
	if current == equipment.StatusMaintenance {
		return current, false
	}
	if window.Contains(p.clock.Now()) && current != equipment.StatusReserved {
		return equipment.StatusReserved, true
	}
	return current, false
}

// RecomputeStatus derives the registry status from the approved
// reservations that remain after a completion or rejection: reserved while
// any approved window contains the current instant, available otherwise.
// Maintenance is never overwritten here.
func (p *Policy) RecomputeStatus(current equipment.Status, approved []*reservation.Reservation) (equipment.Status, bool) {
	if current == equipment.StatusMaintenance {
		return current, false
	}

	now := p.clock.Now()
	for _, r := range approved {
		if r.Status() == reservation.StatusApproved && r.Window().Contains(now) {
			return equipment.StatusReserved, current != equipment.StatusReserved
		}
	}
	return equipment.StatusAvailable, current != equipment.StatusAvailable
}

// StatusOnRejection recomputes the registry status only when the rejected
// reservation may have driven the equipment to reserved. Rejecting a
// pending request never changes equipment status. The rejected window is
// deliberately not checked against the current instant: an elapsed window
// can leave the status stale-reserved, and rejection is the moment to
// correct it.
func (p *Policy) StatusOnRejection(
	current equipment.Status,
	wasApproved bool,
	remaining []*reservation.Reservation,
) (equipment.Status, bool) {
	if !wasApproved || current != equipment.StatusReserved {
		return current, false
	}
	return p.RecomputeStatus(current, remaining)
}

// StatusOnMaintenanceComplete derives the status the equipment returns to
// when it leaves maintenance: reserved if an approved reservation's window
// contains the current instant, available otherwise.
func (p *Policy) StatusOnMaintenanceComplete(approved []*reservation.Reservation) equipment.Status {
	if len(p.currentlyOccupying(approved)) > 0 {
		return equipment.StatusReserved
	}
	return equipment.StatusAvailable
}

// CheckOverride guards the administrative status override. The override may
// not fake availability while an approved reservation's window contains the
// current instant, and maintenance can only be entered or left through the
// maintenance workflow.
func (p *Policy) CheckOverride(equip *equipment.Equipment, target equipment.Status, approved []*reservation.Reservation) error {
	if target == equipment.StatusMaintenance || equip.Status() == equipment.StatusMaintenance {
		return ErrMaintenanceManagedStatus
	}

	if target == equipment.StatusAvailable || target == equipment.StatusInUse {
		if conflicts := p.currentlyOccupying(approved); len(conflicts) > 0 {
			return &ConflictError{EquipmentID: equip.ID(), ConflictingIDs: conflicts}
		}
	}
	return nil
}

// CheckMaintenanceStart fails when an approved reservation currently
// occupies the equipment.
func (p *Policy) CheckMaintenanceStart(equip *equipment.Equipment, approved []*reservation.Reservation) error {
	if conflicts := p.currentlyOccupying(approved); len(conflicts) > 0 {
		return &ConflictError{EquipmentID: equip.ID(), ConflictingIDs: conflicts}
	}
	return nil
}

func (p *Policy) currentlyOccupying(approved []*reservation.Reservation) []uuid.UUID {
	now := p.clock.Now()
	var ids []uuid.UUID
	for _, r := range approved {
		if r.Status() == reservation.StatusApproved && r.Window().Contains(now) {
			ids = append(ids, r.ID())
		}
	}
	return ids
}
