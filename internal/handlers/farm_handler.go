package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/agricure/api/internal/errors"
	"github.com/agricure/api/internal/models"
	"github.com/agricure/api/internal/services"
)

// FarmHandler handles farm list and dashboard overview requests.
type FarmHandler struct {
	service services.OverviewService
}

// NewFarmHandler creates a new FarmHandler instance.
func NewFarmHandler(service services.OverviewService) *FarmHandler {
	return &FarmHandler{
		service: service,
	}
}

// FarmsResponse represents the response for the farm list endpoint.
type FarmsResponse struct {
	Farms []models.Farm `json:"farms"`
	Count int           `json:"count"`
}

// List handles GET /api/v1/farms.
func (h *FarmHandler) List(c *gin.Context) {
	farms, err := h.service.Farms(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to load farms", err)
		return
	}

	c.JSON(http.StatusOK, FarmsResponse{
		Farms: farms,
		Count: len(farms),
	})
}

// Overview handles GET /api/v1/overview.
func (h *FarmHandler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to load dashboard overview", err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
