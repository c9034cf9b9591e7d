package queries

import (
	"context"

	"gearbook/internal/domain/reservation"
	"gearbook/internal/infra"
	"gearbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	List(ctx context.Context) ([]*ReservationView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	ListByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	List() []*reservation.Reservation
	FindByID(id uuid.UUID) (*reservation.Reservation, error)
	FindByUser(userID uuid.UUID) []*reservation.Reservation
	FindByEquipment(equipmentID uuid.UUID) []*reservation.Reservation
}

type reservationQueriesImpl struct {
	store     ReservationReadStore
	equipment EquipmentReadStore
}

func NewReservationQueries(store ReservationReadStore, equipment EquipmentReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store, equipment: equipment}
}

func (q *reservationQueriesImpl) List(_ context.Context) ([]*ReservationView, error) {
	return q.toViews(q.store.List()), nil
}

func (q *reservationQueriesImpl) GetByID(_ context.Context, id uuid.UUID) (*ReservationView, error) {
	r, err := q.store.FindByID(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return NewReservationView(r, q.equipmentName(r.EquipmentID())), nil
}

func (q *reservationQueriesImpl) ListByUser(_ context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.toViews(q.store.FindByUser(userID)), nil
}

func (q *reservationQueriesImpl) ListByEquipment(_ context.Context, equipmentID uuid.UUID) ([]*ReservationView, error) {
	return q.toViews(q.store.FindByEquipment(equipmentID)), nil
}

func (q *reservationQueriesImpl) toViews(items []*reservation.Reservation) []*ReservationView {
	views := make([]*ReservationView, len(items))
	for i, r := range items {
		views[i] = NewReservationView(r, q.equipmentName(r.EquipmentID()))
	}
	return views
}

// equipmentName tolerates a missing record: the ledger is independently
// queryable and a view with a blank name beats a failed read.
func (q *reservationQueriesImpl) equipmentName(id uuid.UUID) string {
	e, err := q.equipment.FindByID(id)
	if err != nil {
		return ""
	}
	return e.Name()
}
