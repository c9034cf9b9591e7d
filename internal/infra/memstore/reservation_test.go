//go:build unit

package memstore_test

import (
	"testing"
	"time"

	"gearbook/internal/domain/reservation"
	"gearbook/internal/infra"
	"gearbook/internal/infra/memstore"
	"gearbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationStore(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("append and find", func(t *testing.T) {
		store := memstore.NewReservationStore()
		r := builder.NewReservationBuilder().BuildReconstructed()

		require.NoError(t, store.Append(r))

		found, err := store.FindByID(r.ID())
		require.NoError(t, err)
		assert.Equal(t, r.ID(), found.ID())
	})

	t.Run("duplicate append fails", func(t *testing.T) {
		store := memstore.NewReservationStore()
		r := builder.NewReservationBuilder().BuildReconstructed()

		require.NoError(t, store.Append(r))
		assert.True(t, infra.IsKind(store.Append(r), infra.KindDuplicateKey))
	})

	t.Run("find unknown id", func(t *testing.T) {
		store := memstore.NewReservationStore()
		_, err := store.FindByID(uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("active filter excludes terminal records", func(t *testing.T) {
		store := memstore.NewReservationStore()
		equipmentID := uuid.New()

		pending := builder.NewReservationBuilder().WithEquipmentID(equipmentID).BuildReconstructed()
		approved := builder.NewReservationBuilder().WithEquipmentID(equipmentID).AsApproved().BuildReconstructed()
		rejected := builder.NewReservationBuilder().WithEquipmentID(equipmentID).AsRejected().BuildReconstructed()
		completed := builder.NewReservationBuilder().WithEquipmentID(equipmentID).AsCompleted().BuildReconstructed()
		otherEquipment := builder.NewReservationBuilder().BuildReconstructed()

		for _, r := range []*reservation.Reservation{pending, approved, rejected, completed, otherEquipment} {
			require.NoError(t, store.Append(r))
		}

		active := store.ActiveByEquipment(equipmentID)
		require.Len(t, active, 2)
		assert.Equal(t, pending.ID(), active[0].ID())
		assert.Equal(t, approved.ID(), active[1].ID())

		approvedOnly := store.ApprovedByEquipment(equipmentID)
		require.Len(t, approvedOnly, 1)
		assert.Equal(t, approved.ID(), approvedOnly[0].ID())
	})

	t.Run("find by user", func(t *testing.T) {
		store := memstore.NewReservationStore()
		userID := uuid.New()

		mine := builder.NewReservationBuilder().WithUserID(userID).BuildReconstructed()
		other := builder.NewReservationBuilder().BuildReconstructed()
		require.NoError(t, store.Append(mine))
		require.NoError(t, store.Append(other))

		found := store.FindByUser(userID)
		require.Len(t, found, 1)
		assert.Equal(t, mine.ID(), found[0].ID())
	})

	t.Run("update commits a transition", func(t *testing.T) {
		store := memstore.NewReservationStore()
		r := builder.NewReservationBuilder().BuildReconstructed()
		require.NoError(t, store.Append(r))

		copy, err := store.FindByID(r.ID())
		require.NoError(t, err)
		require.NoError(t, copy.TransitionTo(reservation.StatusApproved, reservation.NewNote(""), now))
		require.NoError(t, store.Update(copy))

		found, err := store.FindByID(r.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusApproved, found.Status())
	})

	t.Run("update unknown reservation fails", func(t *testing.T) {
		store := memstore.NewReservationStore()
		r := builder.NewReservationBuilder().BuildReconstructed()
		assert.True(t, infra.IsKind(store.Update(r), infra.KindNotFound))
	})
}
