package api

import (
	"errors"
	"net/http"

	"gearbook/internal/domain/scheduling"
	"gearbook/internal/handler/httperr"
	"gearbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortDomainError translates usecase-layer sentinel errors into HTTP
// responses. Scheduling conflicts carry the ids of the blocking
// reservations in the detail payload.
func abortDomainError(c *gin.Context, err error) {
	var conflict *scheduling.ConflictError
	switch {
	case errs.Is(err, errs.ErrEquipmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Equipment not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrMaintenanceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Maintenance record not found", nil)
	case errs.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.As(err, &conflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation conflict", gin.H{
			"conflicting_ids": conflict.ConflictingIDs,
		})
	case errs.Is(err, errs.ErrReservationConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation conflict", nil)
	case errs.Is(err, errs.ErrIllegalTransition):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Illegal status transition", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
