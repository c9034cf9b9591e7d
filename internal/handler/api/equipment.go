package api

import (
	"net/http"

	"gearbook/internal/domain/equipment"
	reqdto "gearbook/internal/handler/dto/request"
	resdto "gearbook/internal/handler/dto/response"
	"gearbook/internal/handler/httperr"
	"gearbook/internal/usecase/commands"
	"gearbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EquipmentHandler struct {
	cmds commands.EquipmentCommands
	q    queries.EquipmentQueries
}

func NewEquipmentHandler(cmds commands.EquipmentCommands, q queries.EquipmentQueries) *EquipmentHandler {
	return &EquipmentHandler{cmds: cmds, q: q}
}

// @Summary List equipment
// @Description List all equipment, optionally filtered by search query, status, or category
// @Tags equipment
// @Produce json
// @Param query query string false "Free-text search over name, model, serial, description and tags"
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category"
// @Success 200 {array} resdto.EquipmentResponse
// @Failure 400 {object} map[string]string
// @Router /equipment [get]
func (h *EquipmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if query := c.Query("query"); query != "" {
		views, err := h.q.Search(ctx, query)
		if err != nil {
			abortDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromEquipmentViews(views))
		return
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := equipment.Status(statusStr)
		if !status.IsValid() {
			httperr.AbortWithError(c, http.StatusBadRequest, equipment.ErrInvalidStatus, "Invalid status filter", nil)
			return
		}
		views, err := h.q.FilterByStatus(ctx, status)
		if err != nil {
			abortDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromEquipmentViews(views))
		return
	}
	if category := c.Query("category"); category != "" {
		views, err := h.q.FilterByCategory(ctx, category)
		if err != nil {
			abortDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromEquipmentViews(views))
		return
	}

	views, err := h.q.List(ctx)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipmentViews(views))
}

// @Summary Get equipment
// @Description Get a single piece of equipment by ID
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid equipment ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipmentView(view))
}

// @Summary Override equipment status
// @Description Administratively force an equipment status. Maintenance status is owned by the maintenance workflow and cannot be set here; availability cannot be forced while an approved reservation occupies the equipment.
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID"
// @Param request body reqdto.OverrideEquipmentStatusRequest true "Target status"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /equipment/{id}/status [patch]
func (h *EquipmentHandler) OverrideStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid equipment ID format", nil)
		return
	}

	var req reqdto.OverrideEquipmentStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.OverrideStatus(c.Request.Context(), id, req.TargetStatus())
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipmentView(view))
}
