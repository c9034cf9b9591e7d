package queries

import (
	"context"

	"gearbook/internal/domain/maintenance"
	"gearbook/internal/infra"
	"gearbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type MaintenanceQueries interface {
	List(ctx context.Context) ([]*MaintenanceView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*MaintenanceView, error)
	ListByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]*MaintenanceView, error)
	FilterByStatus(ctx context.Context, status maintenance.Status) ([]*MaintenanceView, error)
}

type MaintenanceReadStore interface {
	List() []*maintenance.Record
	FindByID(id uuid.UUID) (*maintenance.Record, error)
	FindByEquipment(equipmentID uuid.UUID) []*maintenance.Record
	FilterByStatus(status maintenance.Status) []*maintenance.Record
}

type maintenanceQueriesImpl struct {
	store     MaintenanceReadStore
	equipment EquipmentReadStore
}

func NewMaintenanceQueries(store MaintenanceReadStore, equipment EquipmentReadStore) MaintenanceQueries {
	return &maintenanceQueriesImpl{store: store, equipment: equipment}
}

func (q *maintenanceQueriesImpl) List(_ context.Context) ([]*MaintenanceView, error) {
	return q.toViews(q.store.List()), nil
}

func (q *maintenanceQueriesImpl) GetByID(_ context.Context, id uuid.UUID) (*MaintenanceView, error) {
	r, err := q.store.FindByID(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrMaintenanceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return NewMaintenanceView(r, q.equipmentName(r.EquipmentID())), nil
}

func (q *maintenanceQueriesImpl) ListByEquipment(_ context.Context, equipmentID uuid.UUID) ([]*MaintenanceView, error) {
	return q.toViews(q.store.FindByEquipment(equipmentID)), nil
}

func (q *maintenanceQueriesImpl) FilterByStatus(_ context.Context, status maintenance.Status) ([]*MaintenanceView, error) {
	if !status.IsValid() {
		return nil, errs.Mark(maintenance.ErrInvalidStatus, errs.ErrDomainValidation)
	}
	return q.toViews(q.store.FilterByStatus(status)), nil
}

func (q *maintenanceQueriesImpl) toViews(items []*maintenance.Record) []*MaintenanceView {
	views := make([]*MaintenanceView, len(items))
	for i, r := range items {
		views[i] = NewMaintenanceView(r, q.equipmentName(r.EquipmentID()))
	}
	return views
}

func (q *maintenanceQueriesImpl) equipmentName(id uuid.UUID) string {
	e, err := q.equipment.FindByID(id)
	if err != nil {
		return ""
	}
	return e.Name()
}
