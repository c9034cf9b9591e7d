//go:build unit

package user_test

import (
	"testing"
	"time"

	"gearbook/internal/domain/user"
	"gearbook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("valid address", func(t *testing.T) {
		email, err := user.NewEmail("dana.smith@university.edu")
		require.NoError(t, err)
		assert.Equal(t, "dana.smith@university.edu", email.Value())
	})

	t.Run("invalid addresses", func(t *testing.T) {
		for _, raw := range []string{"", "not-an-email", "missing@domain", "@university.edu"} {
			_, err := user.NewEmail(raw)
			assert.Error(t, err, "expected %q to be rejected", raw)
		}
	})
}

func TestNewRole(t *testing.T) {
	for _, raw := range []string{"admin", "staff", "student"} {
		role, err := user.NewRole(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, role.String())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestUpdateProfile(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("nil fields keep current values", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildReconstructed()
		originalName := u.Name()
		originalDept := u.Department()

		require.NoError(t, u.UpdateProfile(nil, nil, nil, now))
		assert.Equal(t, originalName, u.Name())
		assert.Equal(t, originalDept, u.Department())
		assert.Equal(t, now, u.UpdatedAt())
	})

	t.Run("partial update", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildReconstructed()
		dept := "Chemistry"

		require.NoError(t, u.UpdateProfile(nil, &dept, nil, now))
		assert.Equal(t, "Chemistry", u.Department())
		assert.Equal(t, "Dana Smith", u.Name())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildReconstructed()
		blank := "   "

		assert.ErrorIs(t, u.UpdateProfile(&blank, nil, nil, now), user.ErrNameRequired)
		assert.Equal(t, "Dana Smith", u.Name())
	})

	t.Run("sets avatar", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildReconstructed()
		avatar := "https://example.com/avatar.png"

		require.NoError(t, u.UpdateProfile(nil, nil, &avatar, now))
		require.NotNil(t, u.AvatarURL())
		assert.Equal(t, avatar, *u.AvatarURL())
	})
}
