package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/domain"
	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const vehicleCacheTTL = 15 * time.Minute

type VehicleService struct {
	vehicleRepo ports.VehicleRepository
	logger      ports.LoggerPort
	validate    *validator.Validate
	cache       ports.CachePort
}

func NewVehicleService(
	vehicleRepo ports.VehicleRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		logger:      logger,
		validate:    validate,
		cache:       cache,
	}
}

func (s *VehicleService) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if err := s.validate.Struct(vehicle); err != nil {
		s.logger.Error("Vehicle validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}

	createdVehicle, err := s.vehicleRepo.CreateVehicle(ctx, vehicle)
	if err != nil {
		s.logger.Error("Failed to create vehicle", map[string]interface{}{
			"error": err.Error(),
			"model": vehicle.Model,
		})
		return nil, err
	}

	s.logger.Info("Vehicle created successfully", map[string]interface{}{
		"vehicle_id": createdVehicle.ID,
		"model":      createdVehicle.Model,
	})

	return createdVehicle, nil
}

func (s *VehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	vehicleUUID, err := uuid.Parse(vehicleID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"vehicle_id": vehicleID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: invalid vehicle ID %q", domain.ErrNotFound, vehicleID)
	}

	cacheKey := fmt.Sprintf("vehicle:%s", vehicleID)
	cachedData, err := s.cache.Get(cacheKey)
	if err == nil {
		var cachedVehicle domain.Vehicle
		if err := json.Unmarshal(cachedData, &cachedVehicle); err == nil {
			s.logger.Info("Vehicle found in cache", map[string]interface{}{
				"vehicle_id": vehicleID,
			})
			return &cachedVehicle, nil
		}
	}

	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleUUID)
	if err != nil {
		s.logger.Error("Failed to get vehicle", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return nil, err
	}

	vehicleData, err := json.Marshal(vehicle)
	if err != nil {
		s.logger.Warn("Failed to marshal vehicle for cache", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
	} else {
		if err := s.cache.Set(cacheKey, vehicleData, vehicleCacheTTL); err != nil {
			s.logger.Warn("Failed to cache vehicle", map[string]interface{}{
				"error":      err.Error(),
				"vehicle_id": vehicleID,
			})
		}
	}

	return vehicle, nil
}

func (s *VehicleService) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.ListVehicles(ctx)
	if err != nil {
		s.logger.Error("Failed to list vehicles", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Retrieved vehicles", map[string]interface{}{
		"vehicles_count": len(vehicles),
	})

	return vehicles, nil
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	vehicleUUID, err := uuid.Parse(vehicleID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"vehicle_id": vehicleID,
			"error":      err.Error(),
		})
		return fmt.Errorf("%w: invalid vehicle ID %q", domain.ErrNotFound, vehicleID)
	}

	// Deleting a vehicle cascades to its maintenance events in the
	// repository layer.
	err = s.vehicleRepo.DeleteVehicle(ctx, vehicleUUID)
	if err != nil {
		s.logger.Error("Failed to delete vehicle", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return err
	}

	cacheKey := fmt.Sprintf("vehicle:%s", vehicleID)
	if err := s.cache.Delete(cacheKey); err != nil {
		s.logger.Warn("Failed to invalidate vehicle cache", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
	}

	s.logger.Info("Vehicle deleted successfully", map[string]interface{}{
		"vehicle_id": vehicleID,
	})

	return nil
}
