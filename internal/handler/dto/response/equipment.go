package response

import (
	"time"

	"gearbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type EquipmentResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Model           string     `json:"model"`
	SerialNumber    string     `json:"serialNumber"`
	Location        string     `json:"location"`
	Department      string     `json:"department"`
	Description     string     `json:"description"`
	Tags            []string   `json:"tags"`
	ImageURL        string     `json:"imageUrl"`
	Status          string     `json:"status"`
	PurchaseDate    time.Time  `json:"purchaseDate"`
	LastMaintenance *time.Time `json:"lastMaintenance,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func FromEquipmentView(v *queries.EquipmentView) *EquipmentResponse {
	return &EquipmentResponse{
		ID:              v.ID,
		Name:            v.Name,
		Category:        v.Category,
		Model:           v.Model,
		SerialNumber:    v.SerialNumber,
		Location:        v.Location,
		Department:      v.Department,
		Description:     v.Description,
		Tags:            v.Tags,
		ImageURL:        v.ImageURL,
		Status:          v.Status,
		PurchaseDate:    v.PurchaseDate,
		LastMaintenance: v.LastMaintenance,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromEquipmentViews(views []*queries.EquipmentView) []*EquipmentResponse {
	out := make([]*EquipmentResponse, len(views))
	for i, v := range views {
		out[i] = FromEquipmentView(v)
	}
	return out
}
