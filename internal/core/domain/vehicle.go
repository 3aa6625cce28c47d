package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a tracked vehicle. CurrentMileage is in kilometers and
// never decreases: recording a maintenance event with a higher
// odometer reading raises it.
type Vehicle struct {
	ID             uuid.UUID `json:"id"`
	Model          string    `json:"model" validate:"required,max=100"`
	Year           int       `json:"year" validate:"required,min=1900,max=2100"`
	CurrentMileage int       `json:"current_mileage" validate:"min=0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
