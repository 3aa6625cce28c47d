package reminder

import (
	"testing"
	"time"

	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func event(serviceType domain.ServiceType, date string, mileage int) *domain.MaintenanceEvent {
	return &domain.MaintenanceEvent{
		ID:      uuid.New(),
		Type:    serviceType,
		Date:    day(date),
		Mileage: mileage,
	}
}

func TestLastServiceForNoHistory(t *testing.T) {
	assert.Nil(t, LastServiceFor(domain.OilChange, nil))
	assert.Nil(t, LastServiceFor(domain.OilChange, []*domain.MaintenanceEvent{
		event(domain.TireRotation, "2024-01-01", 10000),
	}))
}

func TestLastServiceForPicksLatestDate(t *testing.T) {
	older := event(domain.OilChange, "2024-01-01", 40000)
	newest := event(domain.OilChange, "2024-06-01", 46000)
	other := event(domain.BrakeInspection, "2024-07-01", 47000)

	got := LastServiceFor(domain.OilChange, []*domain.MaintenanceEvent{newest, older, other})
	require.NotNil(t, got)
	assert.Equal(t, newest.ID, got.ID)
}

func TestLastServiceForDateTieBreaksOnMileage(t *testing.T) {
	low := event(domain.OilChange, "2024-06-01", 10000)
	high := event(domain.OilChange, "2024-06-01", 10500)

	// Same winner regardless of input order, on every call.
	for i := 0; i < 10; i++ {
		got := LastServiceFor(domain.OilChange, []*domain.MaintenanceEvent{low, high})
		require.NotNil(t, got)
		assert.Equal(t, 10500, got.Mileage)

		got = LastServiceFor(domain.OilChange, []*domain.MaintenanceEvent{high, low})
		require.NotNil(t, got)
		assert.Equal(t, 10500, got.Mileage)
	}
}

func TestLastServiceForFullTieIsDeterministic(t *testing.T) {
	a := event(domain.OilChange, "2024-06-01", 10000)
	b := event(domain.OilChange, "2024-06-01", 10000)

	first := LastServiceFor(domain.OilChange, []*domain.MaintenanceEvent{a, b})
	second := LastServiceFor(domain.OilChange, []*domain.MaintenanceEvent{b, a})
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
}
