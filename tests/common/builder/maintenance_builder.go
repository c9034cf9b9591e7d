//go:build unit

package builder

import (
	"time"

	dommaintenance "gearbook/internal/domain/maintenance"
	reqdto "gearbook/internal/handler/dto/request"
	"gearbook/internal/usecase/commands"
	"gearbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type MaintenanceBuilder struct {
	ID             uuid.UUID
	EquipmentID    uuid.UUID
	EquipmentName  string
	TechnicianID   uuid.UUID
	TechnicianName string
	ScheduledAt    time.Time
	Type           dommaintenance.Type
	Status         dommaintenance.Status
	Description    string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewMaintenanceBuilder() *MaintenanceBuilder {
	now := time.Now()
	return &MaintenanceBuilder{
		ID:             uuid.New(),
		EquipmentID:    uuid.New(),
		EquipmentName:  "Confocal Microscope",
		TechnicianID:   uuid.New(),
		TechnicianName: "Jordan Lee",
		ScheduledAt:    now.Add(48 * time.Hour),
		Type:           dommaintenance.TypePreventive,
		Status:         dommaintenance.StatusScheduled,
		Description:    "Annual laser alignment and calibration",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *MaintenanceBuilder) BuildDomain() (*dommaintenance.Record, error) {
	return dommaintenance.NewRecord(
		b.EquipmentID, b.TechnicianID, b.TechnicianName,
		b.ScheduledAt, b.Type, b.Description, b.CreatedAt,
	)
}

func (b *MaintenanceBuilder) BuildReconstructed() *dommaintenance.Record {
	return dommaintenance.ReconstructRecord(
		b.ID, b.EquipmentID, b.TechnicianID, b.TechnicianName,
		b.ScheduledAt, b.Type, b.Status, b.Description, b.Notes,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *MaintenanceBuilder) BuildScheduleInput() commands.ScheduleMaintenanceInput {
	return commands.ScheduleMaintenanceInput{
		EquipmentID:  b.EquipmentID,
		TechnicianID: b.TechnicianID,
		ScheduledAt:  b.ScheduledAt,
		Type:         b.Type,
		Description:  b.Description,
	}
}

func (b *MaintenanceBuilder) BuildScheduleRequestDTO() reqdto.ScheduleMaintenanceRequest {
	return reqdto.ScheduleMaintenanceRequest{
		EquipmentID:  b.EquipmentID,
		TechnicianID: b.TechnicianID,
		ScheduledAt:  b.ScheduledAt,
		Type:         string(b.Type),
		Description:  b.Description,
	}
}

func (b *MaintenanceBuilder) BuildView() *queries.MaintenanceView {
	view := &queries.MaintenanceView{
		ID:             b.ID,
		EquipmentID:    b.EquipmentID,
		EquipmentName:  b.EquipmentName,
		TechnicianID:   b.TechnicianID,
		TechnicianName: b.TechnicianName,
		ScheduledAt:    b.ScheduledAt,
		Type:           string(b.Type),
		Status:         b.Status.String(),
		Description:    b.Description,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
	if b.Notes != "" {
		notes := b.Notes
		view.Notes = &notes
	}
	return view
}

// Fluent builder methods
func (b *MaintenanceBuilder) WithID(id uuid.UUID) *MaintenanceBuilder {
	b.ID = id
	return b
}

func (b *MaintenanceBuilder) WithEquipmentID(id uuid.UUID) *MaintenanceBuilder {
	b.EquipmentID = id
	return b
}

func (b *MaintenanceBuilder) WithTechnicianID(id uuid.UUID) *MaintenanceBuilder {
	b.TechnicianID = id
	return b
}

func (b *MaintenanceBuilder) WithType(kind dommaintenance.Type) *MaintenanceBuilder {
	b.Type = kind
	return b
}

func (b *MaintenanceBuilder) WithDescription(description string) *MaintenanceBuilder {
	b.Description = description
	return b
}

func (b *MaintenanceBuilder) AsInProgress() *MaintenanceBuilder {
	b.Status = dommaintenance.StatusInProgress
	return b
}

func (b *MaintenanceBuilder) AsCompleted() *MaintenanceBuilder {
	b.Status = dommaintenance.StatusCompleted
	return b
}
