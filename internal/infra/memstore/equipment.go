// Package memstore provides the in-memory stores backing the registry and
// ledger. Records keep their insertion order, reads hand out defensive
// copies of the last committed state, and every mutation is committed as a
// whole-record swap so callers never observe a half-applied change.
package memstore

import (
	"sync"
	"time"

	"gearbook/internal/domain/equipment"
	"gearbook/internal/infra"

	"github.com/google/uuid"
)

// EquipmentStore is the equipment registry. Status mutations go through
// SetStatus and RecordMaintenance only; there is no free-form update.
type EquipmentStore struct {
	mu    sync.RWMutex
	items []*equipment.Equipment
	index map[uuid.UUID]int
}

func NewEquipmentStore() *EquipmentStore {
	return &EquipmentStore{
		index: make(map[uuid.UUID]int),
	}
}

func (s *EquipmentStore) Add(e *equipment.Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[e.ID()]; ok {
		return infra.WrapRepoErr("equipment already registered", nil, infra.KindDuplicateKey)
	}
	s.index[e.ID()] = len(s.items)
	s.items = append(s.items, e.Clone())
	return nil
}

func (s *EquipmentStore) List() []*equipment.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*equipment.Equipment, len(s.items))
	for i, e := range s.items {
		out[i] = e.Clone()
	}
	return out
}

func (s *EquipmentStore) FindByID(id uuid.UUID) (*equipment.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return s.items[i].Clone(), nil
}

func (s *EquipmentStore) Search(query string) []*equipment.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*equipment.Equipment
	for _, e := range s.items {
		if e.Matches(query) {
			out = append(out, e.Clone())
		}
	}
	return out
}

func (s *EquipmentStore) FilterByStatus(status equipment.Status) []*equipment.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*equipment.Equipment
	for _, e := range s.items {
		if e.Status() == status {
			out = append(out, e.Clone())
		}
	}
	return out
}

func (s *EquipmentStore) FilterByCategory(category string) []*equipment.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*equipment.Equipment
	for _, e := range s.items {
		if e.Category() == category {
			out = append(out, e.Clone())
		}
	}
	return out
}

// SetStatus is the sanctioned status mutation, invoked by the scheduling
// policy and the maintenance workflow via the command layer.
func (s *EquipmentStore) SetStatus(id uuid.UUID, next equipment.Status, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}

	updated := s.items[i].Clone()
	if err := updated.ChangeStatus(next, now); err != nil {
		return infra.WrapRepoErr("invalid equipment status", err)
	}
	s.items[i] = updated
	return nil
}

// RecordMaintenance stamps the last-maintenance date on completion of a
// maintenance record.
func (s *EquipmentStore) RecordMaintenance(id uuid.UUID, completedAt, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}

	updated := s.items[i].Clone()
	updated.RecordMaintenance(completedAt, now)
	s.items[i] = updated
	return nil
}
