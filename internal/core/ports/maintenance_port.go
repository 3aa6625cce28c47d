package ports

import (
	"context"
	"time"

	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/domain"

	"github.com/google/uuid"
)

type MaintenanceRepository interface {
	CreateEvent(ctx context.Context, event *domain.MaintenanceEvent) (*domain.MaintenanceEvent, error)
	GetEventByID(ctx context.Context, eventID uuid.UUID) (*domain.MaintenanceEvent, error)
	GetEventsByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.MaintenanceEvent, error)
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
}

type MaintenanceService interface {
	AddEvent(ctx context.Context, event *domain.MaintenanceEvent) (*domain.MaintenanceEvent, error)
	GetHistory(ctx context.Context, vehicleID string) ([]*domain.MaintenanceEvent, error)
	GetReminders(ctx context.Context, vehicleID string, today time.Time) ([]domain.Reminder, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
