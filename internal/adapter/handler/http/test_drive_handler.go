package http

import (
	"net/http"
	"time"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
	"github.com/riftbikes/rift_storefront/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type TestDriveHandler struct {
	testDriveService ports.TestDriveService
	logger           ports.LoggerPort
	metrics          ports.MetricsPort
}

type TestDriveRequest struct {
	BikeID        domain.BikeRef `json:"bikeId" swaggertype:"integer" example:"9"`
	Name          string         `json:"name" example:"Jane Rider"`
	Email         string         `json:"email" example:"jane@example.com"`
	Phone         string         `json:"phone" example:"07700900123"`
	PreferredDate string         `json:"preferredDate" example:"2026-11-02"`
	PreferredTime string         `json:"preferredTime" example:"10:00"`
	Message       *string        `json:"message,omitempty" example:"Weekend mornings suit me"`
}

func NewTestDriveHandler(
	testDriveService ports.TestDriveService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *TestDriveHandler {
	return &TestDriveHandler{
		testDriveService: testDriveService,
		logger:           logger,
		metrics:          metrics,
	}
}

// @Summary Book a test ride
// @Tags test-drives
// @Accept json
// @Produce json
// @Param request body TestDriveRequest true "Booking"
// @Success 201 {object} successResponse "Booking stored"
// @Failure 400 {object} errorResponse "Missing or malformed field"
// @Failure 429 {object} errorResponse "Too many requests"
// @Router /test-drive [post]
func (h *TestDriveHandler) CreateTestDrive(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req TestDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in test drive", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	_, err := h.testDriveService.CreateTestDrive(c.Request.Context(), &domain.TestDrive{
		BikeID:        req.BikeID.Int64(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
	})
	if err != nil {
		handleServiceError(c, err, "Bike", "submit test drive request")
		return
	}

	newSuccessResponse(c, http.StatusCreated)
}

// @Summary List test ride bookings
// @Tags test-drives
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.TestDrive "Bookings, newest first"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /test-drives [get]
func (h *TestDriveHandler) ListTestDrives(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	drives, err := h.testDriveService.ListTestDrives(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Test drive", "fetch test drives")
		return
	}

	c.JSON(http.StatusOK, drives)
}
