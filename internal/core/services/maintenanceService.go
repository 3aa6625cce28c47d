package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/domain"
	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/ports"
	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/reminder"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type MaintenanceService struct {
	maintenanceRepo ports.MaintenanceRepository
	vehicleRepo     ports.VehicleRepository
	engine          *reminder.Engine
	logger          ports.LoggerPort
	validate        *validator.Validate
	cache           ports.CachePort
}

func NewMaintenanceService(
	maintenanceRepo ports.MaintenanceRepository,
	vehicleRepo ports.VehicleRepository,
	engine *reminder.Engine,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
		engine:          engine,
		logger:          logger,
		validate:        validate,
		cache:           cache,
	}
}

// AddEvent records a maintenance event and raises the vehicle's
// current mileage when the event's odometer reading is higher. Events
// below the vehicle's current mileage are rejected: histories stay
// monotonic.
func (s *MaintenanceService) AddEvent(ctx context.Context, event *domain.MaintenanceEvent) (*domain.MaintenanceEvent, error) {
	if err := s.validate.Struct(event); err != nil {
		s.logger.Error("Maintenance event validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if !s.engine.Policy().Knows(event.Type) {
		s.logger.Warn("Rejected event with unknown service type", map[string]interface{}{
			"type":       string(event.Type),
			"vehicle_id": event.VehicleID,
		})
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownServiceType, event.Type)
	}

	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, event.VehicleID)
	if err != nil {
		s.logger.Error("Failed to get vehicle for event", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": event.VehicleID,
		})
		return nil, err
	}

	if event.Mileage < vehicle.CurrentMileage {
		s.logger.Warn("Rejected event with non-monotonic mileage", map[string]interface{}{
			"vehicle_id":      event.VehicleID,
			"event_mileage":   event.Mileage,
			"current_mileage": vehicle.CurrentMileage,
		})
		return nil, fmt.Errorf("%w: event mileage %d is below vehicle mileage %d",
			domain.ErrValidation, event.Mileage, vehicle.CurrentMileage)
	}

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	createdEvent, err := s.maintenanceRepo.CreateEvent(ctx, event)
	if err != nil {
		s.logger.Error("Failed to create maintenance event", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": event.VehicleID,
		})
		return nil, err
	}

	if event.Mileage > vehicle.CurrentMileage {
		if _, err := s.vehicleRepo.UpdateVehicleMileage(ctx, vehicle.ID, event.Mileage); err != nil {
			s.logger.Error("Failed to update vehicle mileage", map[string]interface{}{
				"error":      err.Error(),
				"vehicle_id": vehicle.ID,
				"mileage":    event.Mileage,
			})
			return nil, err
		}
	}

	s.invalidateVehicleCache(event.VehicleID)

	s.logger.Info("Maintenance event created successfully", map[string]interface{}{
		"event_id":   createdEvent.ID,
		"vehicle_id": createdEvent.VehicleID,
		"type":       string(createdEvent.Type),
	})

	return createdEvent, nil
}

// GetHistory returns the vehicle's events sorted by date, newest
// first.
func (s *MaintenanceService) GetHistory(ctx context.Context, vehicleID string) ([]*domain.MaintenanceEvent, error) {
	vehicleUUID, err := uuid.Parse(vehicleID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"vehicle_id": vehicleID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: invalid vehicle ID %q", domain.ErrNotFound, vehicleID)
	}

	if _, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleUUID); err != nil {
		s.logger.Error("Failed to get vehicle for history", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return nil, err
	}

	events, err := s.maintenanceRepo.GetEventsByVehicleID(ctx, vehicleUUID)
	if err != nil {
		s.logger.Error("Failed to get maintenance history", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return nil, err
	}

	s.logger.Info("Retrieved maintenance history", map[string]interface{}{
		"vehicle_id":   vehicleID,
		"events_count": len(events),
	})

	return events, nil
}

// GetReminders recomputes the vehicle's reminders from its current
// state and full history. Nothing is stored: identical inputs
// (including today) yield identical output.
func (s *MaintenanceService) GetReminders(ctx context.Context, vehicleID string, today time.Time) ([]domain.Reminder, error) {
	vehicleUUID, err := uuid.Parse(vehicleID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"vehicle_id": vehicleID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: invalid vehicle ID %q", domain.ErrNotFound, vehicleID)
	}

	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleUUID)
	if err != nil {
		s.logger.Error("Failed to get vehicle for reminders", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return nil, err
	}

	events, err := s.maintenanceRepo.GetEventsByVehicleID(ctx, vehicleUUID)
	if err != nil {
		s.logger.Error("Failed to get events for reminders", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return nil, err
	}

	reminders := s.engine.ComputeReminders(vehicle, events, today)

	s.logger.Info("Computed reminders", map[string]interface{}{
		"vehicle_id":      vehicleID,
		"reminders_count": len(reminders),
	})

	return reminders, nil
}

func (s *MaintenanceService) DeleteEvent(ctx context.Context, eventID string) error {
	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"event_id": eventID,
			"error":    err.Error(),
		})
		return fmt.Errorf("%w: invalid event ID %q", domain.ErrNotFound, eventID)
	}

	event, err := s.maintenanceRepo.GetEventByID(ctx, eventUUID)
	if err != nil {
		s.logger.Error("Failed to get maintenance event", map[string]interface{}{
			"error":    err.Error(),
			"event_id": eventID,
		})
		return err
	}

	err = s.maintenanceRepo.DeleteEvent(ctx, eventUUID)
	if err != nil {
		s.logger.Error("Failed to delete maintenance event", map[string]interface{}{
			"error":    err.Error(),
			"event_id": eventID,
		})
		return err
	}

	s.invalidateVehicleCache(event.VehicleID)

	s.logger.Info("Maintenance event deleted successfully", map[string]interface{}{
		"event_id": eventID,
	})

	return nil
}

func (s *MaintenanceService) invalidateVehicleCache(vehicleID uuid.UUID) {
	cacheKey := fmt.Sprintf("vehicle:%s", vehicleID.String())
	if err := s.cache.Delete(cacheKey); err != nil {
		s.logger.Warn("Failed to invalidate vehicle cache", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID.String(),
		})
	}
}
