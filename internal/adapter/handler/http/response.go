package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/riftbikes/rift_storefront/internal/core/domain"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error" example:"Bike not found"`
}

type successResponse struct {
	Success bool `json:"success" example:"true"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

func newSuccessResponse(c *gin.Context, status int) {
	c.JSON(status, successResponse{Success: true})
}

// handleServiceError answers with the status that matches err. resource names
// the thing a 404 is about; action completes "Failed to ..." for a 500.
func handleServiceError(c *gin.Context, err error, resource, action string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, resource+" not found")
	case errors.Is(err, domain.ErrValidation):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrPaymentsDisabled):
		newErrorResponse(c, http.StatusServiceUnavailable, domain.ErrPaymentsDisabled.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
	default:
		newErrorResponse(c, http.StatusInternalServerError, "Failed to "+action)
	}
}

// parseID reads the :id path parameter. Zero is well formed and simply
// matches no row.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// nullable turns an empty form value into an absent one.
func nullable(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
