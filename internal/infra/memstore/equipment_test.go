//go:build unit

package memstore_test

import (
	"testing"
	"time"

	"gearbook/internal/domain/equipment"
	"gearbook/internal/infra"
	"gearbook/internal/infra/memstore"
	"gearbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEquipment(t *testing.T, b *builder.EquipmentBuilder) *equipment.Equipment {
	t.Helper()
	e, err := b.BuildDomain()
	require.NoError(t, err)
	return e
}

func TestEquipmentStore(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("add and find", func(t *testing.T) {
		store := memstore.NewEquipmentStore()
		e := mustEquipment(t, builder.NewEquipmentBuilder())

		require.NoError(t, store.Add(e))

		found, err := store.FindByID(e.ID())
		require.NoError(t, err)
		assert.Equal(t, e.ID(), found.ID())
		assert.Equal(t, e.Name(), found.Name())
	})

	t.Run("duplicate add fails", func(t *testing.T) {
		store := memstore.NewEquipmentStore()
		e := mustEquipment(t, builder.NewEquipmentBuilder())

		require.NoError(t, store.Add(e))
		err := store.Add(e)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("find unknown id", func(t *testing.T) {
		store := memstore.NewEquipmentStore()
		_, err := store.FindByID(uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		store := memstore.NewEquipmentStore()
		first := mustEquipment(t, builder.NewEquipmentBuilder().WithName("Alpha").WithSerialNumber("A-1"))
		second := mustEquipment(t, builder.NewEquipmentBuilder().WithName("Beta").WithSerialNumber("B-1"))
		third := mustEquipment(t, builder.NewEquipmentBuilder().WithName("Gamma").WithSerialNumber("C-1"))

		for _, e := range []*equipment.Equipment{first, second, third} {
			require.NoError(t, store.Add(e))
		}

		listed := store.List()
		require.Len(t, listed, 3)
		assert.Equal(t, "Alpha", listed[0].Name())
		assert.Equal(t, "Beta", listed[1].Name())
		assert.Equal(t, "Gamma", listed[2].Name())
	})

	t.Run("reads hand out copies", func(t *testing.T) {
		store := memstore.NewEquipmentStore()
		e := mustEquipment(t, builder.NewEquipmentBuilder())
		require.NoError(t, store.Add(e))

		found, err := store.FindByID(e.ID())
		require.NoError(t, err)
		require.NoError(t, found.ChangeStatus(equipment.StatusMaintenance, now))

		again, err := store.FindByID(e.ID())
		require.NoError(t, err)
		assert.Equal(t, equipment.StatusAvailable, again.Status(), "mutating a read result must not touch the store")
	})

	t.Run("set status commits a new version", func(t *testing.T) {
		store := memstore.NewEquipmentStore()
		e := mustEquipment(t, builder.NewEquipmentBuilder())
		require.NoError(t, store.Add(e))

		require.NoError(t, store.SetStatus(e.ID(), equipment.StatusReserved, now))

		found, err := store.FindByID(e.ID())
		require.NoError(t, err)
		assert.Equal(t, equipment.StatusReserved, found.Status())
		assert.Equal(t, now, found.UpdatedAt())
	})

	t.Run("set status rejects unknown status", func(t *testing.T) {
		store := memstore.NewEquipmentStore()
		e := mustEquipment(t, builder.NewEquipmentBuilder())
		require.NoError(t, store.Add(e))

		assert.Error(t, store.SetStatus(e.ID(), equipment.Status("broken"), now))
	})

	t.Run("record maintenance stamps date", func(t *testing.T) {
		store := memstore.NewEquipmentStore()
		e := mustEquipment(t, builder.NewEquipmentBuilder())
		require.NoError(t, store.Add(e))

		require.NoError(t, store.RecordMaintenance(e.ID(), now, now))

		found, err := store.FindByID(e.ID())
		require.NoError(t, err)
		require.NotNil(t, found.LastMaintenance())
		assert.Equal(t, now, *found.LastMaintenance())
	})

	t.Run("filters", func(t *testing.T) {
		store := memstore.NewEquipmentStore()
		micro := mustEquipment(t, builder.NewEquipmentBuilder().WithName("Microscope").WithSerialNumber("M-1").WithCategory("laboratory"))
		laptop := mustEquipment(t, builder.NewEquipmentBuilder().
			WithName("Laptop").
			WithSerialNumber("L-1").
			WithCategory("computing").
			WithModel("XPS-15").
			WithDescription("Field data-collection laptop").
			WithTags("computing", "fieldwork"))
		require.NoError(t, store.Add(micro))
		require.NoError(t, store.Add(laptop))
		require.NoError(t, store.SetStatus(laptop.ID(), equipment.StatusReserved, now))

		byCategory := store.FilterByCategory("laboratory")
		require.Len(t, byCategory, 1)
		assert.Equal(t, micro.ID(), byCategory[0].ID())

		byStatus := store.FilterByStatus(equipment.StatusReserved)
		require.Len(t, byStatus, 1)
		assert.Equal(t, laptop.ID(), byStatus[0].ID())

		bySearch := store.Search("micro")
		require.Len(t, bySearch, 1)
		assert.Equal(t, micro.ID(), bySearch[0].ID())
	})
}
