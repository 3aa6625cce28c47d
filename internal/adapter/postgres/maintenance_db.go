package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type MaintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) CreateEvent(ctx context.Context, event *domain.MaintenanceEvent) (*domain.MaintenanceEvent, error) {
	query := `INSERT INTO maintenance_events (id, vehicle_id, type, date, mileage, cost, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		event.ID,
		event.VehicleID,
		event.Type,
		event.Date,
		event.Mileage,
		event.Cost,
		event.Notes,
	).Scan(
		&event.ID,
		&event.CreatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, fmt.Errorf("%w: required field is missing", domain.ErrValidation)
			case "23503":
				return nil, fmt.Errorf("%w: vehicle %s", domain.ErrNotFound, event.VehicleID)
			case "23514":
				return nil, fmt.Errorf("%w: constraint violated", domain.ErrValidation)
			default:
				return nil, err
			}
		}
		return nil, err
	}

	return event, nil
}

func (r *MaintenanceRepository) GetEventByID(ctx context.Context, eventID uuid.UUID) (*domain.MaintenanceEvent, error) {
	query := `
		SELECT id, vehicle_id, type, date, mileage, cost, notes, created_at
		FROM maintenance_events
		WHERE id = $1
	`

	var event domain.MaintenanceEvent
	err := r.db.QueryRowContext(ctx, query, eventID).Scan(
		&event.ID,
		&event.VehicleID,
		&event.Type,
		&event.Date,
		&event.Mileage,
		&event.Cost,
		&event.Notes,
		&event.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: maintenance event %s", domain.ErrNotFound, eventID)
		}
		return nil, fmt.Errorf("failed to get maintenance event: %w", err)
	}

	return &event, nil
}

// GetEventsByVehicleID lists a vehicle's history, newest service
// first.
func (r *MaintenanceRepository) GetEventsByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.MaintenanceEvent, error) {
	query := `SELECT id, vehicle_id, type, date, mileage, cost, notes, created_at
		FROM maintenance_events WHERE vehicle_id = $1
		ORDER BY date DESC, mileage DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.MaintenanceEvent

	for rows.Next() {
		event := &domain.MaintenanceEvent{}
		err := rows.Scan(
			&event.ID,
			&event.VehicleID,
			&event.Type,
			&event.Date,
			&event.Mileage,
			&event.Cost,
			&event.Notes,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *MaintenanceRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	query := `DELETE FROM maintenance_events WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, eventID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: maintenance event %s", domain.ErrNotFound, eventID)
	}

	return nil
}
