package maintenance

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDescriptionRequired = errors.New("maintenance description is required")
	ErrInvalidType         = errors.New("invalid maintenance type")
	ErrInvalidStatus       = errors.New("invalid maintenance status")
	ErrIllegalTransition   = errors.New("illegal maintenance status transition")
)

type Record struct {
	id             uuid.UUID
	equipmentID    uuid.UUID
	technicianID   uuid.UUID
	technicianName string
	scheduledAt    time.Time
	kind           Type
	status         Status
	description    string
	notes          string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRecord(
	equipmentID, technicianID uuid.UUID,
	technicianName string,
	scheduledAt time.Time,
	kind Type,
	description string,
	now time.Time,
) (*Record, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidType
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}

	return &Record{
		id:             uuid.New(),
		equipmentID:    equipmentID,
		technicianID:   technicianID,
		technicianName: technicianName,
		scheduledAt:    scheduledAt,
		kind:           kind,
		status:         StatusScheduled,
		description:    description,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructRecord(
	id, equipmentID, technicianID uuid.UUID,
	technicianName string,
	scheduledAt time.Time,
	kind Type,
	status Status,
	description, notes string,
	createdAt, updatedAt time.Time,
) *Record {
	return &Record{
		id:             id,
		equipmentID:    equipmentID,
		technicianID:   technicianID,
		technicianName: technicianName,
		scheduledAt:    scheduledAt,
		kind:           kind,
		status:         status,
		description:    description,
		notes:          notes,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (r *Record) TransitionTo(next Status, notes string, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}

	r.status = next
	if trimmed := strings.TrimSpace(notes); trimmed != "" {
		r.notes = trimmed
	}
	r.updatedAt = now
	return nil
}

func (r *Record) Clone() *Record {
	clone := *r
	return &clone
}

func (r *Record) ID() uuid.UUID           { return r.id }
func (r *Record) EquipmentID() uuid.UUID  { return r.equipmentID }
func (r *Record) TechnicianID() uuid.UUID { return r.technicianID }
func (r *Record) TechnicianName() string  { return r.technicianName }
func (r *Record) ScheduledAt() time.Time  { return r.scheduledAt }
func (r *Record) Kind() Type              { return r.kind }
func (r *Record) Status() Status          { return r.status }
func (r *Record) Description() string     { return r.description }
func (r *Record) Notes() string           { return r.notes }
func (r *Record) CreatedAt() time.Time    { return r.createdAt }
func (r *Record) UpdatedAt() time.Time    { return r.updatedAt }
