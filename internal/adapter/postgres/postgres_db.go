package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type VehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{
		db,
	}
}

func (r *VehicleRepository) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	query := `INSERT INTO vehicles (id, model, year, current_mileage)
	VALUES ($1, $2, $3, $4)
    RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, vehicle.ID, vehicle.Model, vehicle.Year, vehicle.CurrentMileage).Scan(
		&vehicle.ID,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, fmt.Errorf("%w: required field is missing", domain.ErrValidation)
			case "23514":
				return nil, fmt.Errorf("%w: constraint violated", domain.ErrValidation)
			default:
				return nil, err
			}
		}
		return nil, err
	}
	return vehicle, nil
}

func (r *VehicleRepository) GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*domain.Vehicle, error) {
	query := `SELECT id, model, year, current_mileage, created_at, updated_at
              FROM vehicles WHERE id = $1`

	vehicle := &domain.Vehicle{}
	err := r.db.QueryRowContext(ctx, query, vehicleID).Scan(
		&vehicle.ID,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.CurrentMileage,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: vehicle %s", domain.ErrNotFound, vehicleID)
	}
	if err != nil {
		return nil, err
	}

	return vehicle, nil
}

func (r *VehicleRepository) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	query := `SELECT id, model, year, current_mileage, created_at, updated_at
              FROM vehicles ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle

	for rows.Next() {
		vehicle := &domain.Vehicle{}
		err := rows.Scan(
			&vehicle.ID,
			&vehicle.Model,
			&vehicle.Year,
			&vehicle.CurrentMileage,
			&vehicle.CreatedAt,
			&vehicle.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// UpdateVehicleMileage raises the odometer reading. GREATEST keeps the
// column monotonic even if two writers race.
func (r *VehicleRepository) UpdateVehicleMileage(ctx context.Context, vehicleID uuid.UUID, mileage int) (*domain.Vehicle, error) {
	query := `UPDATE vehicles
		SET
			current_mileage = GREATEST(current_mileage, $1),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING id, model, year, current_mileage, created_at, updated_at`

	vehicle := &domain.Vehicle{}
	err := r.db.QueryRowContext(ctx, query, mileage, vehicleID).Scan(
		&vehicle.ID,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.CurrentMileage,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: vehicle %s", domain.ErrNotFound, vehicleID)
		}
		return nil, fmt.Errorf("error updating vehicle mileage: %w", err)
	}

	return vehicle, nil
}

// DeleteVehicle removes the vehicle; its maintenance events go with it
// via ON DELETE CASCADE on the foreign key.
func (r *VehicleRepository) DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	query := `DELETE FROM vehicles WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, vehicleID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: vehicle %s", domain.ErrNotFound, vehicleID)
	}

	return nil
}
