package response

import (
	"time"

	"gearbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type MaintenanceResponse struct {
	ID             uuid.UUID `json:"id"`
	EquipmentID    uuid.UUID `json:"equipmentId"`
	EquipmentName  string    `json:"equipmentName"`
	TechnicianID   uuid.UUID `json:"technicianId"`
	TechnicianName string    `json:"technicianName"`
	ScheduledAt    time.Time `json:"scheduledAt"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	Description    string    `json:"description"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromMaintenanceView(v *queries.MaintenanceView) *MaintenanceResponse {
	return &MaintenanceResponse{
		ID:             v.ID,
		EquipmentID:    v.EquipmentID,
		EquipmentName:  v.EquipmentName,
		TechnicianID:   v.TechnicianID,
		TechnicianName: v.TechnicianName,
		ScheduledAt:    v.ScheduledAt,
		Type:           v.Type,
		Status:         v.Status,
		Description:    v.Description,
		Notes:          v.Notes,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromMaintenanceViews(views []*queries.MaintenanceView) []*MaintenanceResponse {
	out := make([]*MaintenanceResponse, len(views))
	for i, v := range views {
		out[i] = FromMaintenanceView(v)
	}
	return out
}
