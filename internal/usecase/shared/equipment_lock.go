package shared

import (
	"sync"

	"github.com/google/uuid"
)

// EquipmentLock serializes every write path touching one equipment id:
// reservation create and transition, status override, maintenance start and
// completion. Holding the per-id mutex across the whole validate-then-commit
// sequence closes the check-then-act race where two concurrent creates both
// pass the overlap check against a stale read. Reads stay lock-free against
// the stores' committed snapshots.
type EquipmentLock struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewEquipmentLock() *EquipmentLock {
	return &EquipmentLock{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// Acquire blocks until the per-equipment mutex is held and returns the
// release function. Locks are never removed; the equipment pool is small
// and records are never deleted.
func (l *EquipmentLock) Acquire(equipmentID uuid.UUID) func() {
	l.mu.Lock()
	m, ok := l.locks[equipmentID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[equipmentID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
