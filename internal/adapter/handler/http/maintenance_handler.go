package http

import (
	"net/http"
	"time"

	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/domain"
	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/ports"
	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
	logger             ports.LoggerPort
	metrics            ports.MetricsPort
}

type MaintenanceRequest struct {
	Type    string   `json:"type" binding:"required" example:"Oil Change"`
	Date    string   `json:"date" binding:"required" example:"2025-01-15"`
	Mileage int      `json:"mileage" binding:"min=0" example:"46000"`
	Cost    *float64 `json:"cost,omitempty" example:"89.90"`
	Notes   string   `json:"notes,omitempty" example:"Full synthetic"`
}

type MaintenanceEventResponse struct {
	ID        uuid.UUID `json:"id"`
	VehicleID uuid.UUID `json:"vehicle_id"`
	Type      string    `json:"type"`
	Date      string    `json:"date"`
	Mileage   int       `json:"mileage"`
	Cost      *float64  `json:"cost,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ReminderResponse struct {
	ServiceType        string  `json:"service_type"`
	Status             string  `json:"status"`
	DueInKM            *int    `json:"due_in_km"`
	DueInDays          *int    `json:"due_in_days"`
	LastServiceDate    *string `json:"last_service_date"`
	LastServiceMileage *int    `json:"last_service_mileage"`
}

func NewMaintenanceHandler(
	maintenanceService *services.MaintenanceService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
		logger:             logger,
		metrics:            metrics,
	}
}

func eventResponse(event *domain.MaintenanceEvent) MaintenanceEventResponse {
	return MaintenanceEventResponse{
		ID:        event.ID,
		VehicleID: event.VehicleID,
		Type:      string(event.Type),
		Date:      event.Date.Format(dateLayout),
		Mileage:   event.Mileage,
		Cost:      event.Cost,
		Notes:     event.Notes,
		CreatedAt: event.CreatedAt,
	}
}

func reminderResponse(r domain.Reminder) ReminderResponse {
	resp := ReminderResponse{
		ServiceType:        string(r.ServiceType),
		Status:             string(r.Status),
		DueInKM:            r.DueInKM,
		DueInDays:          r.DueInDays,
		LastServiceMileage: r.LastServiceMileage,
	}
	if r.LastServiceDate != nil {
		formatted := r.LastServiceDate.Format(dateLayout)
		resp.LastServiceDate = &formatted
	}
	return resp
}

// @Summary Add maintenance event
// @Description Records a maintenance event for a vehicle and raises its mileage when the odometer reading is higher
// @Tags maintenance
// @Accept json
// @Produce json
// @Param vehicleId path string true "Vehicle ID" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Param request body MaintenanceRequest true "Event data"
// @Success 201 {object} MaintenanceEventResponse "Event created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /maintenance/{vehicleId} [post]
func (h *MaintenanceHandler) AddMaintenance(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID := c.Param("vehicleId")

	var req MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in add maintenance", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	vehicleUUID, err := uuid.Parse(vehicleID)
	if err != nil {
		h.logger.Error("Invalid vehicle ID format", map[string]interface{}{
			"vehicle_id": vehicleID,
		})
		newErrorResponse(c, http.StatusNotFound, "Vehicle not found")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		h.logger.Error("Invalid date format in add maintenance", map[string]interface{}{
			"date":  req.Date,
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	event := &domain.MaintenanceEvent{
		VehicleID: vehicleUUID,
		Type:      domain.ServiceType(req.Type),
		Date:      date,
		Mileage:   req.Mileage,
		Cost:      req.Cost,
		Notes:     req.Notes,
	}

	createdEvent, err := h.maintenanceService.AddEvent(c.Request.Context(), event)
	if err != nil {
		h.logger.Error("Failed to add maintenance event", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		newErrorResponse(c, statusFromError(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, eventResponse(createdEvent))
}

// @Summary Maintenance history
// @Description Returns a vehicle's maintenance events, newest first
// @Tags maintenance
// @Accept json
// @Produce json
// @Param vehicleId path string true "Vehicle ID" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 {array} MaintenanceEventResponse "Event list"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /maintenance/history/{vehicleId} [get]
func (h *MaintenanceHandler) GetHistory(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID := c.Param("vehicleId")

	events, err := h.maintenanceService.GetHistory(c.Request.Context(), vehicleID)
	if err != nil {
		h.logger.Error("Failed to get maintenance history", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to get maintenance history")
		return
	}

	response := make([]MaintenanceEventResponse, len(events))
	for i, event := range events {
		response[i] = eventResponse(event)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Maintenance reminders
// @Description Computes due/overdue reminders for every configured service type
// @Tags maintenance
// @Accept json
// @Produce json
// @Param vehicleId path string true "Vehicle ID" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 {array} ReminderResponse "Reminder list, most urgent first"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /maintenance/reminders/{vehicleId} [get]
func (h *MaintenanceHandler) GetReminders(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicleID := c.Param("vehicleId")

	reminders, err := h.maintenanceService.GetReminders(c.Request.Context(), vehicleID, time.Now())
	if err != nil {
		h.logger.Error("Failed to get reminders", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to get reminders")
		return
	}

	response := make([]ReminderResponse, len(reminders))
	for i, r := range reminders {
		response[i] = reminderResponse(r)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Delete maintenance event
// @Description Deletes a single maintenance event
// @Tags maintenance
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 {object} successResponse "Event deleted"
// @Failure 404 {object} errorResponse "Event not found"
// @Router /maintenance/{eventId} [delete]
func (h *MaintenanceHandler) DeleteMaintenance(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	eventID := c.Param("eventId")

	err := h.maintenanceService.DeleteEvent(c.Request.Context(), eventID)
	if err != nil {
		h.logger.Error("Failed to delete maintenance event", map[string]interface{}{
			"error":    err.Error(),
			"event_id": eventID,
		})
		newErrorResponse(c, statusFromError(err), "Failed to delete maintenance event")
		return
	}

	c.JSON(http.StatusOK, successResponse{
		Message: "Maintenance event deleted successfully",
	})
}
