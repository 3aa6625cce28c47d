package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/domain"
	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/ports"
	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	vehicleService *services.VehicleService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type VehicleRequest struct {
	Model          string `json:"model" binding:"required" example:"Toyota Corolla"`
	Year           int    `json:"year" binding:"required" example:"2020"`
	CurrentMileage int    `json:"current_mileage" example:"15000"`
}

type VehicleResponse struct {
	ID             uuid.UUID `json:"id"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	CurrentMileage int       `json:"current_mileage"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewVehicleHandler(
	vehicleService *services.VehicleService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		logger:         logger,
		metrics:        metrics,
	}
}

func vehicleResponse(vehicle *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:             vehicle.ID,
		Model:          vehicle.Model,
		Year:           vehicle.Year,
		CurrentMileage: vehicle.CurrentMileage,
		CreatedAt:      vehicle.CreatedAt,
		UpdatedAt:      vehicle.UpdatedAt,
	}
}

// @Summary List vehicles
// @Description Returns all tracked vehicles
// @Tags vehicles
// @Accept json
// @Produce json
// @Success 200 {array} VehicleResponse "Vehicle list"
// @Failure 500 {object} errorResponse "Internal server error"
// @Router /vehicles/ [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list vehicles", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list vehicles")
		return
	}

	response := make([]VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		response[i] = vehicleResponse(vehicle)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Add vehicle
// @Description Registers a new vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param request body VehicleRequest true "Vehicle data"
// @Success 201 {object} VehicleResponse "Vehicle created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Router /vehicles/ [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create vehicle", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	vehicle := &domain.Vehicle{
		Model:          req.Model,
		Year:           req.Year,
		CurrentMileage: req.CurrentMileage,
	}

	createdVehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), vehicle)
	if err != nil {
		h.logger.Error("Failed to create vehicle", map[string]interface{}{
			"error": err.Error(),
			"model": req.Model,
		})
		if errors.Is(err, domain.ErrValidation) {
			newErrorResponse(c, http.StatusBadRequest, "Invalid vehicle data")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Failed to create vehicle")
		return
	}

	c.JSON(http.StatusCreated, vehicleResponse(createdVehicle))
}

// @Summary Delete vehicle
// @Description Deletes a vehicle and all of its maintenance events
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 {object} successResponse "Vehicle deleted"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID := c.Param("id")

	err := h.vehicleService.DeleteVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		h.logger.Error("Failed to delete vehicle", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Vehicle not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Delete failed")
		return
	}

	c.JSON(http.StatusOK, successResponse{
		Message: "Vehicle deleted successfully",
	})
}
