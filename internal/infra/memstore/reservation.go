package memstore

import (
	"sync"

	"gearbook/internal/domain/reservation"
	"gearbook/internal/infra"

	"github.com/google/uuid"
)

// ReservationStore is the reservation ledger. Records are append-only plus
// whole-record status updates; nothing is ever deleted.
type ReservationStore struct {
	mu    sync.RWMutex
	items []*reservation.Reservation
	index map[uuid.UUID]int
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{
		index: make(map[uuid.UUID]int),
	}
}

func (s *ReservationStore) Append(r *reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[r.ID()]; ok {
		return infra.WrapRepoErr("reservation already recorded", nil, infra.KindDuplicateKey)
	}
	s.index[r.ID()] = len(s.items)
	s.items = append(s.items, r.Clone())
	return nil
}

func (s *ReservationStore) List() []*reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*reservation.Reservation, len(s.items))
	for i, r := range s.items {
		out[i] = r.Clone()
	}
	return out
}

func (s *ReservationStore) FindByID(id uuid.UUID) (*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return s.items[i].Clone(), nil
}

func (s *ReservationStore) FindByUser(userID uuid.UUID) []*reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*reservation.Reservation
	for _, r := range s.items {
		if r.UserID() == userID {
			out = append(out, r.Clone())
		}
	}
	return out
}

func (s *ReservationStore) FindByEquipment(equipmentID uuid.UUID) []*reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*reservation.Reservation
	for _, r := range s.items {
		if r.EquipmentID() == equipmentID {
			out = append(out, r.Clone())
		}
	}
	return out
}

// ActiveByEquipment returns the pending and approved reservations that
// participate in overlap checks for one equipment record.
func (s *ReservationStore) ActiveByEquipment(equipmentID uuid.UUID) []*reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*reservation.Reservation
	for _, r := range s.items {
		if r.EquipmentID() == equipmentID && r.IsActive() {
			out = append(out, r.Clone())
		}
	}
	return out
}

// ApprovedByEquipment returns the approved reservations used to derive
// equipment status.
func (s *ReservationStore) ApprovedByEquipment(equipmentID uuid.UUID) []*reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*reservation.Reservation
	for _, r := range s.items {
		if r.EquipmentID() == equipmentID && r.Status() == reservation.StatusApproved {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Update commits a status transition applied to a copy of the record.
func (s *ReservationStore) Update(r *reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[r.ID()]
	if !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	s.items[i] = r.Clone()
	return nil
}
