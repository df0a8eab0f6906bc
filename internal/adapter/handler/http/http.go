package http

import (
	"net/http"
	"time"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
	"github.com/riftbikes/rift_storefront/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BikeHandler struct {
	bikeService ports.BikeService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

// BikeRequest carries every bike field. Updates overwrite the whole row, so
// an omitted optional field is cleared.
type BikeRequest struct {
	Name           string           `json:"name" binding:"required" example:"RIFT Aero"`
	Description    string           `json:"description" binding:"required" example:"Carbon endurance road bike"`
	BasePrice      *decimal.Decimal `json:"basePrice" binding:"required" swaggertype:"number" example:"4700"`
	ImageURL       *string          `json:"imageUrl,omitempty" example:"/bikes/aero/image-1.jpg"`
	VideoURL       *string          `json:"videoUrl,omitempty" example:"/bikes/aero/video.mp4"`
	Specifications domain.Document  `json:"specifications,omitempty" swaggertype:"object"`
	Category       *string          `json:"category,omitempty" example:"Performance"`
}

func (r *BikeRequest) toDomain(id int64) *domain.Bike {
	return &domain.Bike{
		ID:             id,
		Name:           r.Name,
		Description:    r.Description,
		BasePrice:      *r.BasePrice,
		ImageURL:       nullable(r.ImageURL),
		VideoURL:       nullable(r.VideoURL),
		Specifications: r.Specifications,
		Category:       nullable(r.Category),
	}
}

func NewBikeHandler(
	bikeService ports.BikeService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *BikeHandler {
	return &BikeHandler{
		bikeService: bikeService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary List bikes
// @Description Newest first. Falls back to the seed catalog when storage is empty or unavailable.
// @Tags bikes
// @Produce json
// @Success 200 {array} domain.Bike "Bikes for sale"
// @Router /bikes [get]
func (h *BikeHandler) ListBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikes, err := h.bikeService.ListBikes(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list bikes", map[string]interface{}{
			"error": err.Error(),
		})
		handleServiceError(c, err, "Bike", "fetch bikes")
		return
	}

	c.JSON(http.StatusOK, bikes)
}

// @Summary Get bike
// @Tags bikes
// @Produce json
// @Param id path int true "Bike ID" example:"9"
// @Success 200 {object} domain.Bike "Bike found"
// @Failure 400 {object} errorResponse "Invalid ID"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /bikes/{id} [get]
func (h *BikeHandler) GetBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c)
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid bike ID")
		return
	}

	bike, err := h.bikeService.GetBike(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Bike", "fetch bike")
		return
	}

	c.JSON(http.StatusOK, bike)
}

// @Summary Create bike
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body BikeRequest true "Bike"
// @Success 201 {object} domain.Bike "Bike created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /bikes [post]
func (h *BikeHandler) CreateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req BikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create bike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid bike: name, description and basePrice are required")
		return
	}

	created, err := h.bikeService.CreateBike(c.Request.Context(), req.toDomain(0))
	if err != nil {
		handleServiceError(c, err, "Bike", "create bike")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Replace bike
// @Description Overwrites every field; omitted optional fields are cleared. Succeeds for unknown ids.
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Bike ID" example:"9"
// @Param request body BikeRequest true "Bike"
// @Success 200 {object} successResponse "Bike updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /bikes/{id} [put]
func (h *BikeHandler) UpdateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c)
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid bike ID")
		return
	}

	var req BikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": id,
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid bike: name, description and basePrice are required")
		return
	}

	if err := h.bikeService.UpdateBike(c.Request.Context(), req.toDomain(id)); err != nil {
		handleServiceError(c, err, "Bike", "update bike")
		return
	}

	newSuccessResponse(c, http.StatusOK)
}

// @Summary Delete bike
// @Description Succeeds for unknown ids. Orders and test rides for the bike are kept.
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Bike ID" example:"9"
// @Success 200 {object} successResponse "Bike deleted"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /bikes/{id} [delete]
func (h *BikeHandler) DeleteBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c)
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid bike ID")
		return
	}

	if err := h.bikeService.DeleteBike(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Bike", "delete bike")
		return
	}

	newSuccessResponse(c, http.StatusOK)
}
