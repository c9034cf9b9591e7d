package queries

import (
	"context"

	"gearbook/internal/domain/user"
	"gearbook/internal/infra"
	"gearbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserQueries interface {
	List(ctx context.Context) ([]*UserView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type UserReadStore interface {
	List() []*user.User
	FindByID(id uuid.UUID) (*user.User, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) List(_ context.Context) ([]*UserView, error) {
	items := q.store.List()
	views := make([]*UserView, len(items))
	for i, u := range items {
		views[i] = NewUserView(u)
	}
	return views, nil
}

func (q *userQueriesImpl) GetByID(_ context.Context, id uuid.UUID) (*UserView, error) {
	u, err := q.store.FindByID(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return NewUserView(u), nil
}
