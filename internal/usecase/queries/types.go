package queries

import (
	"time"

	"gearbook/internal/domain/equipment"
	"gearbook/internal/domain/maintenance"
	"gearbook/internal/domain/reservation"
	"gearbook/internal/domain/user"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type EquipmentView struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Model           string     `json:"model"`
	SerialNumber    string     `json:"serial_number"`
	Location        string     `json:"location"`
	Department      string     `json:"department"`
	Description     string     `json:"description"`
	Tags            []string   `json:"tags"`
	ImageURL        string     `json:"image_url"`
	Status          string     `json:"status"`
	PurchaseDate    time.Time  `json:"purchase_date"`
	LastMaintenance *time.Time `json:"last_maintenance,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	EquipmentID   uuid.UUID `json:"equipment_id"`
	EquipmentName string    `json:"equipment_name"`
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	Purpose       string    `json:"purpose"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type MaintenanceView struct {
	ID             uuid.UUID `json:"id"`
	EquipmentID    uuid.UUID `json:"equipment_id"`
	EquipmentName  string    `json:"equipment_name"`
	TechnicianID   uuid.UUID `json:"technician_id"`
	TechnicianName string    `json:"technician_name"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	Description    string    `json:"description"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type UserView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewEquipmentView(e *equipment.Equipment) *EquipmentView {
	return &EquipmentView{
		ID:              e.ID(),
		Name:            e.Name(),
		Category:        e.Category(),
		Model:           e.Model(),
		SerialNumber:    e.SerialNumber(),
		Location:        e.Location(),
		Department:      e.Department(),
		Description:     e.Description(),
		Tags:            e.Tags(),
		ImageURL:        e.ImageURL(),
		Status:          e.Status().String(),
		PurchaseDate:    e.PurchaseDate(),
		LastMaintenance: e.LastMaintenance(),
		CreatedAt:       e.CreatedAt(),
		UpdatedAt:       e.UpdatedAt(),
	}
}

func NewReservationView(r *reservation.Reservation, equipmentName string) *ReservationView {
	view := &ReservationView{
		ID:            r.ID(),
		EquipmentID:   r.EquipmentID(),
		EquipmentName: equipmentName,
		UserID:        r.UserID(),
		UserName:      r.UserName(),
		StartTime:     r.Window().Start(),
		EndTime:       r.Window().End(),
		Status:        r.Status().String(),
		Purpose:       r.Purpose().String(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
	if !r.Notes().IsEmpty() {
		notes := r.Notes().String()
		view.Notes = &notes
	}
	return view
}

func NewMaintenanceView(r *maintenance.Record, equipmentName string) *MaintenanceView {
	view := &MaintenanceView{
		ID:             r.ID(),
		EquipmentID:    r.EquipmentID(),
		EquipmentName:  equipmentName,
		TechnicianID:   r.TechnicianID(),
		TechnicianName: r.TechnicianName(),
		ScheduledAt:    r.ScheduledAt(),
		Type:           string(r.Kind()),
		Status:         r.Status().String(),
		Description:    r.Description(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
	if r.Notes() != "" {
		notes := r.Notes()
		view.Notes = &notes
	}
	return view
}

func NewUserView(u *user.User) *UserView {
	return &UserView{
		ID:         u.ID(),
		Name:       u.Name(),
		Email:      u.Email().Value(),
		Role:       u.Role().String(),
		Department: u.Department(),
		AvatarURL:  u.AvatarURL(),
		CreatedAt:  u.CreatedAt(),
		UpdatedAt:  u.UpdatedAt(),
	}
}
