package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gearbook/internal/handler/api"
	"gearbook/internal/handler/middleware"
	"gearbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	equipmentHandler *api.EquipmentHandler,
	reservationHandler *api.ReservationHandler,
	maintenanceHandler *api.MaintenanceHandler,
	userHandler *api.UserHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, equipmentHandler, reservationHandler, maintenanceHandler, userHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	equipmentHandler *api.EquipmentHandler,
	reservationHandler *api.ReservationHandler,
	maintenanceHandler *api.MaintenanceHandler,
	userHandler *api.UserHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		equipment := apiGroup.Group("/equipment")
		{
			addRoutes(equipment, []route{
				{Method: http.MethodGet, Path: "", Handler: equipmentHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: equipmentHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: equipmentHandler.OverrideStatus},
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: reservationHandler.ListByEquipment},
				{Method: http.MethodGet, Path: "/:id/maintenance", Handler: maintenanceHandler.ListByEquipment},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: reservationHandler.Transition},
			})
		}

		maintenance := apiGroup.Group("/maintenance")
		{
			addRoutes(maintenance, []route{
				{Method: http.MethodPost, Path: "", Handler: maintenanceHandler.Schedule},
				{Method: http.MethodGet, Path: "", Handler: maintenanceHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: maintenanceHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: maintenanceHandler.Transition},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: userHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: userHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: userHandler.UpdateProfile},
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: reservationHandler.ListByUser},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
