package commands

import (
	"time"

	"gearbook/internal/domain/equipment"
	"gearbook/internal/domain/maintenance"
	"gearbook/internal/domain/reservation"
	"gearbook/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side store ports. Implemented by the memstore package; kept as
// interfaces so command tests can substitute failing stores.

type EquipmentWriteStore interface {
	FindByID(id uuid.UUID) (*equipment.Equipment, error)
	SetStatus(id uuid.UUID, next equipment.Status, now time.Time) error
	RecordMaintenance(id uuid.UUID, completedAt, now time.Time) error
}

type ReservationWriteStore interface {
	Append(r *reservation.Reservation) error
	FindByID(id uuid.UUID) (*reservation.Reservation, error)
	ActiveByEquipment(equipmentID uuid.UUID) []*reservation.Reservation
	ApprovedByEquipment(equipmentID uuid.UUID) []*reservation.Reservation
	Update(r *reservation.Reservation) error
}

type MaintenanceWriteStore interface {
	Add(r *maintenance.Record) error
	FindByID(id uuid.UUID) (*maintenance.Record, error)
	Update(r *maintenance.Record) error
}

type UserWriteStore interface {
	FindByID(id uuid.UUID) (*user.User, error)
	Update(u *user.User) error
}
