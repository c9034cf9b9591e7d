package memstore

import (
	"sync"

	"gearbook/internal/domain/maintenance"
	"gearbook/internal/infra"

	"github.com/google/uuid"
)

type MaintenanceStore struct {
	mu    sync.RWMutex
	items []*maintenance.Record
	index map[uuid.UUID]int
}

func NewMaintenanceStore() *MaintenanceStore {
	return &MaintenanceStore{
		index: make(map[uuid.UUID]int),
	}
}

func (s *MaintenanceStore) Add(r *maintenance.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[r.ID()]; ok {
		return infra.WrapRepoErr("maintenance record already exists", nil, infra.KindDuplicateKey)
	}
	s.index[r.ID()] = len(s.items)
	s.items = append(s.items, r.Clone())
	return nil
}

func (s *MaintenanceStore) List() []*maintenance.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*maintenance.Record, len(s.items))
	for i, r := range s.items {
		out[i] = r.Clone()
	}
	return out
}

func (s *MaintenanceStore) FindByID(id uuid.UUID) (*maintenance.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, infra.WrapRepoErr("maintenance record not found", nil, infra.KindNotFound)
	}
	return s.items[i].Clone(), nil
}

func (s *MaintenanceStore) FindByEquipment(equipmentID uuid.UUID) []*maintenance.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*maintenance.Record
	for _, r := range s.items {
		if r.EquipmentID() == equipmentID {
			out = append(out, r.Clone())
		}
	}
	return out
}

func (s *MaintenanceStore) FilterByStatus(status maintenance.Status) []*maintenance.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*maintenance.Record
	for _, r := range s.items {
		if r.Status() == status {
			out = append(out, r.Clone())
		}
	}
	return out
}

func (s *MaintenanceStore) Update(r *maintenance.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[r.ID()]
	if !ok {
		return infra.WrapRepoErr("maintenance record not found", nil, infra.KindNotFound)
	}
	s.items[i] = r.Clone()
	return nil
}
