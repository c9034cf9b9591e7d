package request

import (
	"gearbook/internal/domain/equipment"
)

type OverrideEquipmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r OverrideEquipmentStatusRequest) TargetStatus() equipment.Status {
	return equipment.Status(r.Status)
}
