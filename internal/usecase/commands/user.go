package commands

import (
	"context"

	"gearbook/internal/infra"
	"gearbook/internal/pkg/clock"
	"gearbook/internal/pkg/errs"
	"gearbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UpdateProfileInput struct {
	Name       *string
	Department *string
	AvatarURL  *string
}

type UserCommands interface {
	UpdateProfile(ctx context.Context, id uuid.UUID, in UpdateProfileInput) (*queries.UserView, error)
}

type userCommandsImpl struct {
	users UserWriteStore
	clock clock.Clock
}

func NewUserCommands(users UserWriteStore, clk clock.Clock) UserCommands {
	return &userCommandsImpl{users: users, clock: clk}
}

func (c *userCommandsImpl) UpdateProfile(_ context.Context, id uuid.UUID, in UpdateProfileInput) (*queries.UserView, error) {
	u, err := c.users.FindByID(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	if updateErr := u.UpdateProfile(in.Name, in.Department, in.AvatarURL, c.clock.Now()); updateErr != nil {
		return nil, errs.Mark(updateErr, errs.ErrDomainValidation)
	}

	if storeErr := c.users.Update(u); storeErr != nil {
		return nil, errs.Mark(storeErr, errs.ErrStoreOperationFailed)
	}
	return queries.NewUserView(u), nil
}
