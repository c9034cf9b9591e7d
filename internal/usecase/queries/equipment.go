package queries

import (
	"context"

	"gearbook/internal/domain/equipment"
	"gearbook/internal/infra"
	"gearbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type EquipmentQueries interface {
	List(ctx context.Context) ([]*EquipmentView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EquipmentView, error)
	Search(ctx context.Context, query string) ([]*EquipmentView, error)
	FilterByStatus(ctx context.Context, status equipment.Status) ([]*EquipmentView, error)
	FilterByCategory(ctx context.Context, category string) ([]*EquipmentView, error)
}

type EquipmentReadStore interface {
	List() []*equipment.Equipment
	FindByID(id uuid.UUID) (*equipment.Equipment, error)
	Search(query string) []*equipment.Equipment
	FilterByStatus(status equipment.Status) []*equipment.Equipment
	FilterByCategory(category string) []*equipment.Equipment
}

type equipmentQueriesImpl struct {
	store EquipmentReadStore
}

func NewEquipmentQueries(store EquipmentReadStore) EquipmentQueries {
	return &equipmentQueriesImpl{store: store}
}

func (q *equipmentQueriesImpl) List(_ context.Context) ([]*EquipmentView, error) {
	return toEquipmentViews(q.store.List()), nil
}

func (q *equipmentQueriesImpl) GetByID(_ context.Context, id uuid.UUID) (*EquipmentView, error) {
	e, err := q.store.FindByID(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEquipmentNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return NewEquipmentView(e), nil
}

func (q *equipmentQueriesImpl) Search(_ context.Context, query string) ([]*EquipmentView, error) {
	return toEquipmentViews(q.store.Search(query)), nil
}

func (q *equipmentQueriesImpl) FilterByStatus(_ context.Context, status equipment.Status) ([]*EquipmentView, error) {
	if !status.IsValid() {
		return nil, errs.Mark(equipment.ErrInvalidStatus, errs.ErrDomainValidation)
	}
	return toEquipmentViews(q.store.FilterByStatus(status)), nil
}

func (q *equipmentQueriesImpl) FilterByCategory(_ context.Context, category string) ([]*EquipmentView, error) {
	return toEquipmentViews(q.store.FilterByCategory(category)), nil
}

func toEquipmentViews(items []*equipment.Equipment) []*EquipmentView {
	views := make([]*EquipmentView, len(items))
	for i, e := range items {
		views[i] = NewEquipmentView(e)
	}
	return views
}
