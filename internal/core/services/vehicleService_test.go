package services

import (
	"context"
	"testing"

	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVehicleService(vehicleRepo *MockVehicleRepository) *VehicleService {
	return NewVehicleService(vehicleRepo, noopLogger{}, validator.New(), noopCache{})
}

func TestCreateVehicleAssignsID(t *testing.T) {
	vehicleRepo := new(MockVehicleRepository)
	svc := newVehicleService(vehicleRepo)

	vehicle := &domain.Vehicle{Model: "Toyota Corolla", Year: 2020, CurrentMileage: 15000}
	vehicleRepo.On("CreateVehicle", mock.Anything, vehicle).Return(vehicle, nil)

	created, err := svc.CreateVehicle(context.Background(), vehicle)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreateVehicleValidation(t *testing.T) {
	vehicleRepo := new(MockVehicleRepository)
	svc := newVehicleService(vehicleRepo)

	tests := []struct {
		name    string
		vehicle *domain.Vehicle
	}{
		{
			name:    "missing model",
			vehicle: &domain.Vehicle{Year: 2020, CurrentMileage: 1000},
		},
		{
			name:    "implausible year",
			vehicle: &domain.Vehicle{Model: "Toyota Corolla", Year: 1800, CurrentMileage: 1000},
		},
		{
			name:    "negative mileage",
			vehicle: &domain.Vehicle{Model: "Toyota Corolla", Year: 2020, CurrentMileage: -5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateVehicle(context.Background(), tt.vehicle)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	vehicleRepo.AssertNotCalled(t, "CreateVehicle")
}

func TestGetVehicleByIDMalformed(t *testing.T) {
	vehicleRepo := new(MockVehicleRepository)
	svc := newVehicleService(vehicleRepo)

	_, err := svc.GetVehicleByID(context.Background(), "42")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListVehicles(t *testing.T) {
	vehicleRepo := new(MockVehicleRepository)
	svc := newVehicleService(vehicleRepo)

	vehicles := []*domain.Vehicle{
		{ID: uuid.New(), Model: "Toyota Corolla", Year: 2020, CurrentMileage: 15000},
		{ID: uuid.New(), Model: "Honda Civic", Year: 2019, CurrentMileage: 30000},
	}
	vehicleRepo.On("ListVehicles", mock.Anything).Return(vehicles, nil)

	got, err := svc.ListVehicles(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeleteVehicle(t *testing.T) {
	vehicleRepo := new(MockVehicleRepository)
	svc := newVehicleService(vehicleRepo)

	vehicleID := uuid.New()
	vehicleRepo.On("DeleteVehicle", mock.Anything, vehicleID).Return(nil)

	err := svc.DeleteVehicle(context.Background(), vehicleID.String())
	require.NoError(t, err)
	vehicleRepo.AssertExpectations(t)
}

func TestDeleteVehicleNotFound(t *testing.T) {
	vehicleRepo := new(MockVehicleRepository)
	svc := newVehicleService(vehicleRepo)

	vehicleID := uuid.New()
	vehicleRepo.On("DeleteVehicle", mock.Anything, vehicleID).Return(domain.ErrNotFound)

	err := svc.DeleteVehicle(context.Background(), vehicleID.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
