package request

import (
	"time"

	"gearbook/internal/domain/reservation"
	"gearbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	EquipmentID uuid.UUID `json:"equipment_id" binding:"required"`
	UserID      uuid.UUID `json:"user_id" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Purpose     string    `json:"purpose" binding:"required"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		EquipmentID: r.EquipmentID,
		UserID:      r.UserID,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Purpose:     r.Purpose,
	}
}

type TransitionReservationRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes,omitempty"`
}

func (r TransitionReservationRequest) TargetStatus() reservation.Status {
	return reservation.Status(r.Status)
}
