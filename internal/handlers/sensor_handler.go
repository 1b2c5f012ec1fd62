package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/agricure/api/internal/errors"
	"github.com/agricure/api/internal/models"
	"github.com/agricure/api/internal/services"
)

// SensorHandler handles sensor feed requests.
type SensorHandler struct {
	service services.SensorService
}

// NewSensorHandler creates a new SensorHandler instance.
func NewSensorHandler(service services.SensorService) *SensorHandler {
	return &SensorHandler{
		service: service,
	}
}

// SensorHistoryRequest represents the query parameters for the chart endpoint.
type SensorHistoryRequest struct {
	Hours *int `form:"hours" binding:"omitempty,min=1,max=168"`
}

// SensorHistoryResponse represents the response for the chart endpoint.
type SensorHistoryResponse struct {
	Points []models.HistoryPoint `json:"points"`
	Hours  int                   `json:"hours"`
}

// Latest handles GET /api/v1/sensors/latest.
func (h *SensorHandler) Latest(c *gin.Context) {
	snapshot, err := h.service.Latest(c.Request.Context())
	if err != nil {
		apierrors.ServiceUnavailable(c, apierrors.ErrSensorUnavailable, "Sensor readings are unavailable", err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// History handles GET /api/v1/sensors/history.
func (h *SensorHandler) History(c *gin.Context) {
	var req SensorHistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	hours := services.DefaultHistoryHours
	if req.Hours != nil {
		hours = *req.Hours
	}

	points, err := h.service.History(hours)
	if err != nil {
		if errors.Is(err, services.ErrInvalidHours) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to load sensor history", err)
		return
	}

	c.JSON(http.StatusOK, SensorHistoryResponse{
		Points: points,
		Hours:  hours,
	})
}
