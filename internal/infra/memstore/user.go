package memstore

import (
	"sync"

	"gearbook/internal/domain/user"
	"gearbook/internal/infra"

	"github.com/google/uuid"
)

type UserStore struct {
	mu    sync.RWMutex
	items []*user.User
	index map[uuid.UUID]int
}

func NewUserStore() *UserStore {
	return &UserStore{
		index: make(map[uuid.UUID]int),
	}
}

func (s *UserStore) Add(u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[u.ID()]; ok {
		return infra.WrapRepoErr("user already registered", nil, infra.KindDuplicateKey)
	}
	s.index[u.ID()] = len(s.items)
	s.items = append(s.items, u.Clone())
	return nil
}

func (s *UserStore) List() []*user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*user.User, len(s.items))
	for i, u := range s.items {
		out[i] = u.Clone()
	}
	return out
}

func (s *UserStore) FindByID(id uuid.UUID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return s.items[i].Clone(), nil
}

func (s *UserStore) Update(u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[u.ID()]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	s.items[i] = u.Clone()
	return nil
}
