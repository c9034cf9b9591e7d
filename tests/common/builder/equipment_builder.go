//go:build unit

package builder

import (
	"time"

	domequipment "gearbook/internal/domain/equipment"
	"gearbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type EquipmentBuilder struct {
	ID           uuid.UUID
	Name         string
	Category     string
	Model        string
	SerialNumber string
	Location     string
	Department   string
	Description  string
	Tags         []string
	ImageURL     string
	Status       domequipment.Status
	PurchaseDate time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewEquipmentBuilder() *EquipmentBuilder {
	now := time.Now()
	return &EquipmentBuilder{
		ID:           uuid.New(),
		Name:         "Confocal Microscope",
		Category:     "laboratory",
		Model:        "LSM-900",
		SerialNumber: "ZEI-2023-0042",
		Location:     "Building B, Room 214",
		Department:   "Biology",
		Description:  "Laser scanning confocal microscope",
		Tags:         []string{"microscopy", "imaging"},
		ImageURL:     "https://example.com/equipment/lsm-900.jpg",
		Status:       domequipment.StatusAvailable,
		PurchaseDate: now.AddDate(-1, 0, 0),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *EquipmentBuilder) BuildDomain() (*domequipment.Equipment, error) {
	return domequipment.NewEquipment(
		b.Name, b.Category, b.Model, b.SerialNumber, b.Location, b.Department, b.Description,
		b.Tags, b.ImageURL, b.PurchaseDate, b.CreatedAt,
	)
}

// BuildReconstructed bypasses creation-time defaults so tests can set up
// equipment already in a given status.
func (b *EquipmentBuilder) BuildReconstructed() *domequipment.Equipment {
	return domequipment.ReconstructEquipment(
		b.ID,
		b.Name, b.Category, b.Model, b.SerialNumber, b.Location, b.Department, b.Description,
		b.Tags, b.ImageURL, b.Status, b.PurchaseDate, nil, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *EquipmentBuilder) BuildView() *queries.EquipmentView {
	return &queries.EquipmentView{
		ID:           b.ID,
		Name:         b.Name,
		Category:     b.Category,
		Model:        b.Model,
		SerialNumber: b.SerialNumber,
		Location:     b.Location,
		Department:   b.Department,
		Description:  b.Description,
		Tags:         b.Tags,
		ImageURL:     b.ImageURL,
		Status:       b.Status.String(),
		PurchaseDate: b.PurchaseDate,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *EquipmentBuilder) WithID(id uuid.UUID) *EquipmentBuilder {
	b.ID = id
	return b
}

func (b *EquipmentBuilder) WithName(name string) *EquipmentBuilder {
	b.Name = name
	return b
}

func (b *EquipmentBuilder) WithCategory(category string) *EquipmentBuilder {
	b.Category = category
	return b
}

func (b *EquipmentBuilder) WithSerialNumber(serial string) *EquipmentBuilder {
	b.SerialNumber = serial
	return b
}

func (b *EquipmentBuilder) WithModel(model string) *EquipmentBuilder {
	b.Model = model
	return b
}

func (b *EquipmentBuilder) WithDescription(description string) *EquipmentBuilder {
	b.Description = description
	return b
}

func (b *EquipmentBuilder) WithTags(tags ...string) *EquipmentBuilder {
	b.Tags = tags
	return b
}

func (b *EquipmentBuilder) WithStatus(status domequipment.Status) *EquipmentBuilder {
	b.Status = status
	return b
}

func (b *EquipmentBuilder) AsUnderMaintenance() *EquipmentBuilder {
	b.Status = domequipment.StatusMaintenance
	return b
}

func (b *EquipmentBuilder) AsReserved() *EquipmentBuilder {
	b.Status = domequipment.StatusReserved
	return b
}
