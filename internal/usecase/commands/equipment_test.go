//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gearbook/internal/domain/equipment"
	"gearbook/internal/domain/reservation"
	"gearbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrideStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("override to in-use", func(t *testing.T) {
		f := newFixture(t)

		view, err := f.equipmentCmd.OverrideStatus(ctx, f.equip.ID(), equipment.StatusInUse)
		require.NoError(t, err)

		assert.Equal(t, "in-use", view.Status)
		assert.Equal(t, equipment.StatusInUse, f.equipmentStatus(t))
	})

	t.Run("invalid status", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.equipmentCmd.OverrideStatus(ctx, f.equip.ID(), equipment.Status("broken"))
		assert.True(t, errs.Is(err, errs.ErrDomainValidation), "got: %+v", err)
	})

	t.Run("unknown equipment", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.equipmentCmd.OverrideStatus(ctx, uuid.New(), equipment.StatusAvailable)
		assert.True(t, errs.Is(err, errs.ErrEquipmentNotFound), "got: %+v", err)
	})

	t.Run("maintenance target is refused", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.equipmentCmd.OverrideStatus(ctx, f.equip.ID(), equipment.StatusMaintenance)
		assert.True(t, errs.Is(err, errs.ErrReservationConflict), "got: %+v", err)
		assert.Equal(t, equipment.StatusAvailable, f.equipmentStatus(t))
	})

	t.Run("cannot force availability while occupied", func(t *testing.T) {
		f := newFixture(t)

		created, err := f.reservation.Create(ctx, f.createInput(now.Add(-time.Hour), now.Add(time.Hour)))
		require.NoError(t, err)
		_, err = f.reservation.Transition(ctx, created.ID, reservation.StatusApproved, nil)
		require.NoError(t, err)

		_, err = f.equipmentCmd.OverrideStatus(ctx, f.equip.ID(), equipment.StatusAvailable)
		assert.True(t, errs.Is(err, errs.ErrReservationConflict), "got: %+v", err)
		assert.Equal(t, equipment.StatusReserved, f.equipmentStatus(t))
	})
}
