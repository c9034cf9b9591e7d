//go:build unit

package builder

import (
	"time"

	domreservation "gearbook/internal/domain/reservation"
	reqdto "gearbook/internal/handler/dto/request"
	"gearbook/internal/usecase/commands"
	"gearbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	EquipmentID   uuid.UUID
	EquipmentName string
	UserID        uuid.UUID
	UserName      string
	StartTime     time.Time
	EndTime       time.Time
	Status        domreservation.Status
	Purpose       string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		ID:            uuid.New(),
		EquipmentID:   uuid.New(),
		EquipmentName: "Confocal Microscope",
		UserID:        uuid.New(),
		UserName:      "Dana Smith",
		StartTime:     now.Add(24 * time.Hour),
		EndTime:       now.Add(26 * time.Hour),
		Status:        domreservation.StatusPending,
		Purpose:       "Cell imaging session",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	window, err := domreservation.NewWindow(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	purpose, err := domreservation.NewPurpose(b.Purpose)
	if err != nil {
		return nil, err
	}
	return domreservation.NewReservation(b.EquipmentID, b.UserID, b.UserName, window, purpose, b.CreatedAt), nil
}

// BuildReconstructed sets up a reservation already in the builder's status,
// bypassing the pending default.
func (b *ReservationBuilder) BuildReconstructed() *domreservation.Reservation {
	window, _ := domreservation.NewWindow(b.StartTime, b.EndTime)
	purpose, _ := domreservation.NewPurpose(b.Purpose)
	return domreservation.Reconstruct(
		b.ID, b.EquipmentID, b.UserID, b.UserName,
		window, b.Status, purpose, domreservation.NewNote(b.Notes),
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *ReservationBuilder) BuildCreateInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		EquipmentID: b.EquipmentID,
		UserID:      b.UserID,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Purpose:     b.Purpose,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		EquipmentID: b.EquipmentID,
		UserID:      b.UserID,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Purpose:     b.Purpose,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	view := &queries.ReservationView{
		ID:            b.ID,
		EquipmentID:   b.EquipmentID,
		EquipmentName: b.EquipmentName,
		UserID:        b.UserID,
		UserName:      b.UserName,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        b.Status.String(),
		Purpose:       b.Purpose,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.Notes != "" {
		notes := b.Notes
		view.Notes = &notes
	}
	return view
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithEquipmentID(id uuid.UUID) *ReservationBuilder {
	b.EquipmentID = id
	return b
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithWindow(start, end time.Time) *ReservationBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *ReservationBuilder) WithStatus(status domreservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithPurpose(purpose string) *ReservationBuilder {
	b.Purpose = purpose
	return b
}

func (b *ReservationBuilder) AsApproved() *ReservationBuilder {
	b.Status = domreservation.StatusApproved
	return b
}

func (b *ReservationBuilder) AsCompleted() *ReservationBuilder {
	b.Status = domreservation.StatusCompleted
	return b
}

func (b *ReservationBuilder) AsRejected() *ReservationBuilder {
	b.Status = domreservation.StatusRejected
	return b
}
