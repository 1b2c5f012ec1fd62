package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/agricure/api/internal/errors"
	"github.com/agricure/api/internal/models"
	"github.com/agricure/api/internal/recommendation"
	"github.com/agricure/api/internal/services"
)

// RecommendationHandler handles fertilizer plan requests.
type RecommendationHandler struct {
	service services.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler instance.
func NewRecommendationHandler(service services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
	}
}

// HistoryRequest represents the query parameters for the history endpoint.
type HistoryRequest struct {
	Limit *int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// HistoryResponse represents the response for the history endpoint.
type HistoryResponse struct {
	Logs  []models.RecommendationLog `json:"logs"`
	Count int                        `json:"count"`
}

// Create handles POST /api/v1/recommendations.
// The body is the form as submitted, with numbers as strings.
func (h *RecommendationHandler) Create(c *gin.Context) {
	var form models.FieldObservationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		// A value of the wrong JSON type, e.g. "fieldSize": 2
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			apierrors.InvalidObservation(c, &recommendation.InputParseError{
				Fields: map[string]string{typeErr.Field: "Must be a string"},
			})
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	result, err := h.service.Generate(c.Request.Context(), sessionFrom(c), form)
	if err != nil {
		var parseErr *recommendation.InputParseError
		if errors.As(err, &parseErr) {
			apierrors.InvalidObservation(c, parseErr)
			return
		}
		apierrors.InternalServerError(c, "Failed to generate recommendations", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// History handles GET /api/v1/recommendations/history.
func (h *RecommendationHandler) History(c *gin.Context) {
	var req HistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	limit := services.DefaultHistoryLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	logs, err := h.service.History(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, services.ErrInvalidLimit) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to load recommendation history", err)
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{
		Logs:  logs,
		Count: len(logs),
	})
}
