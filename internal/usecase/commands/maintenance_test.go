//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gearbook/internal/domain/equipment"
	"gearbook/internal/domain/maintenance"
	"gearbook/internal/domain/reservation"
	"gearbook/internal/pkg/errs"
	"gearbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) scheduleInput() commands.ScheduleMaintenanceInput {
	return commands.ScheduleMaintenanceInput{
		EquipmentID:  f.equip.ID(),
		TechnicianID: f.user.ID(),
		ScheduledAt:  now.Add(24 * time.Hour),
		Type:         maintenance.TypePreventive,
		Description:  "Annual calibration",
	}
}

func TestScheduleMaintenance(t *testing.T) {
	ctx := context.Background()

	t.Run("schedules a record without touching equipment", func(t *testing.T) {
		f := newFixture(t)

		view, err := f.maintCmd.Schedule(ctx, f.scheduleInput())
		require.NoError(t, err)

		assert.Equal(t, "scheduled", view.Status)
		assert.Equal(t, f.user.Name(), view.TechnicianName)
		assert.Equal(t, equipment.StatusAvailable, f.equipmentStatus(t))
	})

	t.Run("unknown equipment", func(t *testing.T) {
		f := newFixture(t)
		in := f.scheduleInput()
		in.EquipmentID = uuid.New()

		_, err := f.maintCmd.Schedule(ctx, in)
		assert.True(t, errs.Is(err, errs.ErrEquipmentNotFound), "got: %+v", err)
	})

	t.Run("unknown technician", func(t *testing.T) {
		f := newFixture(t)
		in := f.scheduleInput()
		in.TechnicianID = uuid.New()

		_, err := f.maintCmd.Schedule(ctx, in)
		assert.True(t, errs.Is(err, errs.ErrUserNotFound), "got: %+v", err)
	})

	t.Run("invalid type", func(t *testing.T) {
		f := newFixture(t)
		in := f.scheduleInput()
		in.Type = maintenance.Type("emergency")

		_, err := f.maintCmd.Schedule(ctx, in)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation), "got: %+v", err)
	})
}

func TestTransitionMaintenance(t *testing.T) {
	ctx := context.Background()

	t.Run("starting work parks the equipment in maintenance", func(t *testing.T) {
		f := newFixture(t)

		scheduled, err := f.maintCmd.Schedule(ctx, f.scheduleInput())
		require.NoError(t, err)

		view, err := f.maintCmd.Transition(ctx, scheduled.ID, maintenance.StatusInProgress, nil)
		require.NoError(t, err)

		assert.Equal(t, "in-progress", view.Status)
		assert.Equal(t, equipment.StatusMaintenance, f.equipmentStatus(t))
	})

	t.Run("cannot start while an approved reservation occupies", func(t *testing.T) {
		f := newFixture(t)

		created, err := f.reservation.Create(ctx, f.createInput(now.Add(-time.Hour), now.Add(time.Hour)))
		require.NoError(t, err)
		_, err = f.reservation.Transition(ctx, created.ID, reservation.StatusApproved, nil)
		require.NoError(t, err)

		scheduled, err := f.maintCmd.Schedule(ctx, f.scheduleInput())
		require.NoError(t, err)

		_, err = f.maintCmd.Transition(ctx, scheduled.ID, maintenance.StatusInProgress, nil)
		assert.True(t, errs.Is(err, errs.ErrReservationConflict), "got: %+v", err)
		assert.Equal(t, equipment.StatusReserved, f.equipmentStatus(t))
	})

	t.Run("completion stamps the date and frees the equipment", func(t *testing.T) {
		f := newFixture(t)

		scheduled, err := f.maintCmd.Schedule(ctx, f.scheduleInput())
		require.NoError(t, err)
		_, err = f.maintCmd.Transition(ctx, scheduled.ID, maintenance.StatusInProgress, nil)
		require.NoError(t, err)

		completedAt := now.Add(2 * time.Hour)
		f.clock.Set(completedAt)

		notes := "replaced worn belt"
		view, err := f.maintCmd.Transition(ctx, scheduled.ID, maintenance.StatusCompleted, &notes)
		require.NoError(t, err)

		assert.Equal(t, "completed", view.Status)
		require.NotNil(t, view.Notes)
		assert.Equal(t, notes, *view.Notes)

		e, err := f.equipment.FindByID(f.equip.ID())
		require.NoError(t, err)
		assert.Equal(t, equipment.StatusAvailable, e.Status())
		require.NotNil(t, e.LastMaintenance())
		assert.Equal(t, completedAt, *e.LastMaintenance())
	})

	t.Run("completion hands the equipment back to an occupying approval", func(t *testing.T) {
		f := newFixture(t)

		// approve a future reservation, then run maintenance into its window
		created, err := f.reservation.Create(ctx, f.createInput(now.Add(2*time.Hour), now.Add(5*time.Hour)))
		require.NoError(t, err)
		_, err = f.reservation.Transition(ctx, created.ID, reservation.StatusApproved, nil)
		require.NoError(t, err)

		scheduled, err := f.maintCmd.Schedule(ctx, f.scheduleInput())
		require.NoError(t, err)
		_, err = f.maintCmd.Transition(ctx, scheduled.ID, maintenance.StatusInProgress, nil)
		require.NoError(t, err)

		f.clock.Set(now.Add(3 * time.Hour))
		_, err = f.maintCmd.Transition(ctx, scheduled.ID, maintenance.StatusCompleted, nil)
		require.NoError(t, err)

		assert.Equal(t, equipment.StatusReserved, f.equipmentStatus(t))
	})

	t.Run("illegal edge", func(t *testing.T) {
		f := newFixture(t)

		scheduled, err := f.maintCmd.Schedule(ctx, f.scheduleInput())
		require.NoError(t, err)

		_, err = f.maintCmd.Transition(ctx, scheduled.ID, maintenance.StatusCompleted, nil)
		assert.True(t, errs.Is(err, errs.ErrIllegalTransition), "got: %+v", err)
		assert.Equal(t, equipment.StatusAvailable, f.equipmentStatus(t))
	})

	t.Run("unknown record", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.maintCmd.Transition(ctx, uuid.New(), maintenance.StatusInProgress, nil)
		assert.True(t, errs.Is(err, errs.ErrMaintenanceNotFound), "got: %+v", err)
	})
}
