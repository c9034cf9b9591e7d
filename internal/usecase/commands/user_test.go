//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gearbook/internal/pkg/errs"
	"gearbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		f := newFixture(t)
		dept := "Chemistry"

		view, err := f.userCmd.UpdateProfile(ctx, f.user.ID(), commands.UpdateProfileInput{Department: &dept})
		require.NoError(t, err)

		assert.Equal(t, "Chemistry", view.Department)
		assert.Equal(t, f.user.Name(), view.Name)
	})

	t.Run("blank name is refused", func(t *testing.T) {
		f := newFixture(t)
		blank := "  "

		_, err := f.userCmd.UpdateProfile(ctx, f.user.ID(), commands.UpdateProfileInput{Name: &blank})
		assert.True(t, errs.Is(err, errs.ErrDomainValidation), "got: %+v", err)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.userCmd.UpdateProfile(ctx, uuid.New(), commands.UpdateProfileInput{})
		assert.True(t, errs.Is(err, errs.ErrUserNotFound), "got: %+v", err)
	})
}
