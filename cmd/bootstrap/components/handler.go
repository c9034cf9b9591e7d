package components

import (
	"gearbook/internal/handler"
	"gearbook/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEquipmentHandler,
		api.NewReservationHandler,
		api.NewMaintenanceHandler,
		api.NewUserHandler,
	),
	fx.Invoke(handler.NewRouter),
)
