package response

import (
	"time"

	"gearbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	EquipmentID   uuid.UUID `json:"equipmentId"`
	EquipmentName string    `json:"equipmentName"`
	UserID        uuid.UUID `json:"userId"`
	UserName      string    `json:"userName"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`
	Purpose       string    `json:"purpose"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            v.ID,
		EquipmentID:   v.EquipmentID,
		EquipmentName: v.EquipmentName,
		UserID:        v.UserID,
		UserName:      v.UserName,
		StartTime:     v.StartTime,
		EndTime:       v.EndTime,
		Status:        v.Status,
		Purpose:       v.Purpose,
		Notes:         v.Notes,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}
