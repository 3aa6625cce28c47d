package ports

import (
	"context"

	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/domain"

	"github.com/google/uuid"
)

type VehicleRepository interface {
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]*domain.Vehicle, error)
	UpdateVehicleMileage(ctx context.Context, vehicleID uuid.UUID, mileage int) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error
}

type VehicleService interface {
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, vehicleID string) error
}
