package request

import (
	"time"

	"gearbook/internal/domain/maintenance"
	"gearbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type ScheduleMaintenanceRequest struct {
	EquipmentID  uuid.UUID `json:"equipment_id" binding:"required"`
	TechnicianID uuid.UUID `json:"technician_id" binding:"required"`
	ScheduledAt  time.Time `json:"scheduled_at" binding:"required"`
	Type         string    `json:"type" binding:"required"`
	Description  string    `json:"description" binding:"required"`
}

func (r ScheduleMaintenanceRequest) ToInput() commands.ScheduleMaintenanceInput {
	return commands.ScheduleMaintenanceInput{
		EquipmentID:  r.EquipmentID,
		TechnicianID: r.TechnicianID,
		ScheduledAt:  r.ScheduledAt,
		Type:         maintenance.Type(r.Type),
		Description:  r.Description,
	}
}

type TransitionMaintenanceRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes,omitempty"`
}

func (r TransitionMaintenanceRequest) TargetStatus() maintenance.Status {
	return maintenance.Status(r.Status)
}
