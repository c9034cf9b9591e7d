package api

import (
	"net/http"

	"gearbook/internal/domain/maintenance"
	reqdto "gearbook/internal/handler/dto/request"
	resdto "gearbook/internal/handler/dto/response"
	"gearbook/internal/handler/httperr"
	"gearbook/internal/usecase/commands"
	"gearbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaintenanceHandler struct {
	cmds commands.MaintenanceCommands
	q    queries.MaintenanceQueries
}

func NewMaintenanceHandler(cmds commands.MaintenanceCommands, q queries.MaintenanceQueries) *MaintenanceHandler {
	return &MaintenanceHandler{cmds: cmds, q: q}
}

// @Summary Schedule maintenance
// @Description Schedule a preventive or corrective maintenance job for a piece of equipment
// @Tags maintenance
// @Accept json
// @Produce json
// @Param request body reqdto.ScheduleMaintenanceRequest true "Maintenance request"
// @Success 201 {object} resdto.MaintenanceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /maintenance [post]
func (h *MaintenanceHandler) Schedule(c *gin.Context) {
	var req reqdto.ScheduleMaintenanceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Schedule(c.Request.Context(), req.ToInput())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMaintenanceView(view))
}

// @Summary List maintenance records
// @Description List all maintenance records, optionally filtered by status
// @Tags maintenance
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.MaintenanceResponse
// @Failure 400 {object} map[string]string
// @Router /maintenance [get]
func (h *MaintenanceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if statusStr := c.Query("status"); statusStr != "" {
		status := maintenance.Status(statusStr)
		if !status.IsValid() {
			httperr.AbortWithError(c, http.StatusBadRequest, maintenance.ErrInvalidStatus, "Invalid status filter", nil)
			return
		}
		views, err := h.q.FilterByStatus(ctx, status)
		if err != nil {
			abortDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromMaintenanceViews(views))
		return
	}

	views, err := h.q.List(ctx)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaintenanceViews(views))
}

// @Summary Get maintenance record
// @Description Get a maintenance record by ID
// @Tags maintenance
// @Produce json
// @Param id path string true "Maintenance record ID"
// @Success 200 {object} resdto.MaintenanceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /maintenance/{id} [get]
func (h *MaintenanceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid maintenance record ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaintenanceView(view))
}

// @Summary Transition maintenance status
// @Description Move a maintenance record along scheduled → in-progress → completed. Starting work parks the equipment in maintenance; completing it stamps the last-maintenance date and recomputes equipment status.
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance record ID"
// @Param request body reqdto.TransitionMaintenanceRequest true "Target status and optional notes"
// @Success 200 {object} resdto.MaintenanceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /maintenance/{id}/status [patch]
func (h *MaintenanceHandler) Transition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid maintenance record ID format", nil)
		return
	}

	var req reqdto.TransitionMaintenanceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Transition(c.Request.Context(), id, req.TargetStatus(), req.Notes)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaintenanceView(view))
}

// @Summary List maintenance for equipment
// @Description List all maintenance records for a piece of equipment
// @Tags maintenance
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {array} resdto.MaintenanceResponse
// @Failure 400 {object} map[string]string
// @Router /equipment/{id}/maintenance [get]
func (h *MaintenanceHandler) ListByEquipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid equipment ID format", nil)
		return
	}

	views, err := h.q.ListByEquipment(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaintenanceViews(views))
}
