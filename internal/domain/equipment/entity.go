package equipment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired   = errors.New("equipment name is required")
	ErrSerialRequired = errors.New("serial number is required")
	ErrInvalidStatus  = errors.New("invalid equipment status")
)

// Equipment inventory record. Status is a derived field: it is only mutated
// through ChangeStatus, driven by the scheduling policy or the maintenance
// workflow, never set free-form.
type Equipment struct {
	id              uuid.UUID
	name            string
	category        string
	model           string
	serialNumber    string
	location        string
	department      string
	description     string
	tags            []string
	imageURL        string
	status          Status
	purchaseDate    time.Time
	lastMaintenance *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewEquipment(
	name, category, model, serialNumber, location, department, description string,
	tags []string,
	imageURL string,
	purchaseDate time.Time,
	now time.Time,
) (*Equipment, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(serialNumber) == "" {
		return nil, ErrSerialRequired
	}

	return &Equipment{
		id:           uuid.New(),
		name:         name,
		category:     category,
		model:        model,
		serialNumber: serialNumber,
		location:     location,
		department:   department,
		description:  description,
		tags:         append([]string(nil), tags...),
		imageURL:     imageURL,
		status:       StatusAvailable,
		purchaseDate: purchaseDate,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructEquipment(
	id uuid.UUID,
	name, category, model, serialNumber, location, department, description string,
	tags []string,
	imageURL string,
	status Status,
	purchaseDate time.Time,
	lastMaintenance *time.Time,
	createdAt, updatedAt time.Time,
) *Equipment {
	return &Equipment{
		id:              id,
		name:            name,
		category:        category,
		model:           model,
		serialNumber:    serialNumber,
		location:        location,
		department:      department,
		description:     description,
		tags:            append([]string(nil), tags...),
		imageURL:        imageURL,
		status:          status,
		purchaseDate:    purchaseDate,
		lastMaintenance: lastMaintenance,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (e *Equipment) ChangeStatus(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	e.status = next
	e.updatedAt = now
	return nil
}

// RecordMaintenance stamps the last-maintenance date when a maintenance
// record completes.
func (e *Equipment) RecordMaintenance(completedAt, now time.Time) {
	t := completedAt
	e.lastMaintenance = &t
	e.updatedAt = now
}

// Matches reports whether the record matches a catalog search query.
// Matching is a case-insensitive substring check over name, model, serial
// number, description and tags.
func (e *Equipment) Matches(query string) bool {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return true
	}

	for _, field := range []string{e.name, e.model, e.serialNumber, e.description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	for _, tag := range e.tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func (e *Equipment) Clone() *Equipment {
	clone := *e
	clone.tags = append([]string(nil), e.tags...)
	if e.lastMaintenance != nil {
		t := *e.lastMaintenance
		clone.lastMaintenance = &t
	}
	return &clone
}

func (e *Equipment) ID() uuid.UUID               { return e.id }
func (e *Equipment) Name() string                { return e.name }
func (e *Equipment) Category() string            { return e.category }
func (e *Equipment) Model() string               { return e.model }
func (e *Equipment) SerialNumber() string        { return e.serialNumber }
func (e *Equipment) Location() string            { return e.location }
func (e *Equipment) Department() string          { return e.department }
func (e *Equipment) Description() string         { return e.description }
func (e *Equipment) Tags() []string              { return append([]string(nil), e.tags...) }
func (e *Equipment) ImageURL() string            { return e.imageURL }
func (e *Equipment) Status() Status              { return e.status }
func (e *Equipment) PurchaseDate() time.Time     { return e.purchaseDate }
func (e *Equipment) LastMaintenance() *time.Time { return e.lastMaintenance }
func (e *Equipment) CreatedAt() time.Time        { return e.createdAt }
func (e *Equipment) UpdatedAt() time.Time        { return e.updatedAt }
