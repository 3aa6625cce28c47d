package domain

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType is an enumerated maintenance category. The set of valid
// types is driven by the interval policy table, not by these constants
// alone.
type ServiceType string

const (
	OilChange       ServiceType = "Oil Change"
	TireRotation    ServiceType = "Tire Rotation"
	BrakeInspection ServiceType = "Brake Inspection"
	AirFilter       ServiceType = "Air Filter"
	BatteryCheck    ServiceType = "Battery Check"
)

// MaintenanceEvent is one recorded service. Events are immutable once
// created; they can only be deleted.
type MaintenanceEvent struct {
	ID        uuid.UUID   `json:"id"`
	VehicleID uuid.UUID   `json:"vehicle_id" validate:"required"`
	Type      ServiceType `json:"type" validate:"required"`
	Date      time.Time   `json:"date" validate:"required"`
	Mileage   int         `json:"mileage" validate:"min=0"`
	Cost      *float64    `json:"cost,omitempty" validate:"omitempty,min=0"`
	Notes     string      `json:"notes,omitempty" validate:"max=1000"`
	CreatedAt time.Time   `json:"created_at"`
}
