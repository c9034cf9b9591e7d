package components

import (
	"gearbook/internal/domain/scheduling"
	"gearbook/internal/pkg/clock"
	"gearbook/internal/usecase/commands"
	"gearbook/internal/usecase/queries"
	"gearbook/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	scheduling.NewPolicy,
	shared.NewEquipmentLock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewEquipmentCommands,
		commands.NewReservationCommands,
		commands.NewMaintenanceCommands,
		commands.NewUserCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEquipmentQueries,
		queries.NewReservationQueries,
		queries.NewMaintenanceQueries,
		queries.NewUserQueries,
	),
)
