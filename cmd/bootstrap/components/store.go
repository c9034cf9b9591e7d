package components

import (
	"gearbook/internal/infra/memstore"
	"gearbook/internal/pkg/clock"
	"gearbook/internal/pkg/config"
	"gearbook/internal/usecase/commands"
	"gearbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		memstore.NewEquipmentStore,
		memstore.NewReservationStore,
		memstore.NewMaintenanceStore,
		memstore.NewUserStore,
		// Write-side ports
		fx.Annotate(
			func(s *memstore.EquipmentStore) *memstore.EquipmentStore { return s },
			fx.As(new(commands.EquipmentWriteStore)),
		),
		fx.Annotate(
			func(s *memstore.ReservationStore) *memstore.ReservationStore { return s },
			fx.As(new(commands.ReservationWriteStore)),
		),
		fx.Annotate(
			func(s *memstore.MaintenanceStore) *memstore.MaintenanceStore { return s },
			fx.As(new(commands.MaintenanceWriteStore)),
		),
		fx.Annotate(
			func(s *memstore.UserStore) *memstore.UserStore { return s },
			fx.As(new(commands.UserWriteStore)),
		),
		// Read-side ports
		fx.Annotate(
			func(s *memstore.EquipmentStore) *memstore.EquipmentStore { return s },
			fx.As(new(queries.EquipmentReadStore)),
		),
		fx.Annotate(
			func(s *memstore.ReservationStore) *memstore.ReservationStore { return s },
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			func(s *memstore.MaintenanceStore) *memstore.MaintenanceStore { return s },
			fx.As(new(queries.MaintenanceReadStore)),
		),
		fx.Annotate(
			func(s *memstore.UserStore) *memstore.UserStore { return s },
			fx.As(new(queries.UserReadStore)),
		),
	),
	fx.Invoke(seedDemoData),
)

func seedDemoData(
	cfg config.Config,
	clk clock.Clock,
	equipmentStore *memstore.EquipmentStore,
	reservationStore *memstore.ReservationStore,
	maintenanceStore *memstore.MaintenanceStore,
	userStore *memstore.UserStore,
) error {
	if !cfg.Seed.DemoData {
		return nil
	}
	return memstore.SeedDemoData(equipmentStore, reservationStore, maintenanceStore, userStore, clk.Now())
}
