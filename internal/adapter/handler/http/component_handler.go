package http

import (
	"net/http"
	"time"

	"github.com/riftbikes/rift_storefront/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type ComponentHandler struct {
	componentService ports.ComponentService
	logger           ports.LoggerPort
	metrics          ports.MetricsPort
}

func NewComponentHandler(
	componentService ports.ComponentService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
		logger:           logger,
		metrics:          metrics,
	}
}

// @Summary List components
// @Description Branded parts fitted to or offered on RIFT bikes.
// @Tags components
// @Produce json
// @Param category query string false "groupset, brakes, wheels, frame or other"
// @Success 200 {array} domain.Component "Components"
// @Failure 400 {object} errorResponse "Unknown category"
// @Router /components [get]
func (h *ComponentHandler) ListComponents(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	components, err := h.componentService.ListComponents(c.Request.Context(), c.Query("category"))
	if err != nil {
		handleServiceError(c, err, "Component", "fetch components")
		return
	}

	c.JSON(http.StatusOK, components)
}

// @Summary Get component
// @Tags components
// @Produce json
// @Param id path string true "Component ID" example:"dura-ace-r9200"
// @Success 200 {object} domain.Component "Component found"
// @Failure 404 {object} errorResponse "Component not found"
// @Router /components/{id} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	component, err := h.componentService.GetComponent(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Component", "fetch component")
		return
	}

	c.JSON(http.StatusOK, component)
}
