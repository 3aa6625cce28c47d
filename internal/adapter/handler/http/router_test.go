package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Tileni97/vehicle-maintenance-tracker/internal/config"
	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/domain"
	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/reminder"
	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore backs both repositories for end-to-end handler tests.
// Deleting a vehicle cascades to its events, like the SQL schema does.
type memoryStore struct {
	mu       sync.Mutex
	vehicles map[uuid.UUID]*domain.Vehicle
	events   map[uuid.UUID]*domain.MaintenanceEvent
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		vehicles: make(map[uuid.UUID]*domain.Vehicle),
		events:   make(map[uuid.UUID]*domain.MaintenanceEvent),
	}
}

func (s *memoryStore) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now
	copied := *vehicle
	s.vehicles[vehicle.ID] = &copied
	return vehicle, nil
}

func (s *memoryStore) GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*domain.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vehicle, ok := s.vehicles[vehicleID]
	if !ok {
		return nil, fmt.Errorf("%w: vehicle %s", domain.ErrNotFound, vehicleID)
	}
	copied := *vehicle
	return &copied, nil
}

func (s *memoryStore) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vehicles := make([]*domain.Vehicle, 0, len(s.vehicles))
	for _, vehicle := range s.vehicles {
		copied := *vehicle
		vehicles = append(vehicles, &copied)
	}
	return vehicles, nil
}

func (s *memoryStore) UpdateVehicleMileage(ctx context.Context, vehicleID uuid.UUID, mileage int) (*domain.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vehicle, ok := s.vehicles[vehicleID]
	if !ok {
		return nil, fmt.Errorf("%w: vehicle %s", domain.ErrNotFound, vehicleID)
	}
	if mileage > vehicle.CurrentMileage {
		vehicle.CurrentMileage = mileage
	}
	vehicle.UpdatedAt = time.Now()
	copied := *vehicle
	return &copied, nil
}

func (s *memoryStore) DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles[vehicleID]; !ok {
		return fmt.Errorf("%w: vehicle %s", domain.ErrNotFound, vehicleID)
	}
	delete(s.vehicles, vehicleID)
	for id, event := range s.events {
		if event.VehicleID == vehicleID {
			delete(s.events, id)
		}
	}
	return nil
}

func (s *memoryStore) CreateEvent(ctx context.Context, event *domain.MaintenanceEvent) (*domain.MaintenanceEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles[event.VehicleID]; !ok {
		return nil, fmt.Errorf("%w: vehicle %s", domain.ErrNotFound, event.VehicleID)
	}
	event.CreatedAt = time.Now()
	copied := *event
	s.events[event.ID] = &copied
	return event, nil
}

func (s *memoryStore) GetEventByID(ctx context.Context, eventID uuid.UUID) (*domain.MaintenanceEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[eventID]
	if !ok {
		return nil, fmt.Errorf("%w: maintenance event %s", domain.ErrNotFound, eventID)
	}
	copied := *event
	return &copied, nil
}

func (s *memoryStore) GetEventsByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.MaintenanceEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var events []*domain.MaintenanceEvent
	for _, event := range s.events {
		if event.VehicleID == vehicleID {
			copied := *event
			events = append(events, &copied)
		}
	}
	return events, nil
}

func (s *memoryStore) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[eventID]; !ok {
		return fmt.Errorf("%w: maintenance event %s", domain.ErrNotFound, eventID)
	}
	delete(s.events, eventID)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(msg string, fields map[string]interface{})  {}
func (noopLogger) Warn(msg string, fields map[string]interface{})  {}
func (noopLogger) Error(msg string, fields map[string]interface{}) {}

type noopCache struct{}

func (noopCache) Get(key string) ([]byte, error)                        { return nil, assert.AnError }
func (noopCache) Set(key string, value []byte, ttl time.Duration) error { return nil }
func (noopCache) Delete(key string) error                               { return nil }

type noopMetrics struct{}

func (noopMetrics) RecordMetrics(c *gin.Context, start time.Time) {}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newMemoryStore()
	validate := validator.New()
	engine, err := reminder.NewEngine(reminder.DefaultPolicy(), reminder.DefaultWarnKM, reminder.DefaultWarnDays)
	require.NoError(t, err)

	vehicleService := services.NewVehicleService(store, noopLogger{}, validate, noopCache{})
	maintenanceService := services.NewMaintenanceService(store, store, engine, noopLogger{}, validate, noopCache{})

	vehicleHandler := NewVehicleHandler(vehicleService, noopLogger{}, noopMetrics{})
	maintenanceHandler := NewMaintenanceHandler(maintenanceService, noopLogger{}, noopMetrics{})

	router, err := NewRouter(&config.HTTP{AllowedOrigins: "http://localhost:3000"}, vehicleHandler, maintenanceHandler)
	require.NoError(t, err)
	return router.Engine()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createTestVehicle(t *testing.T, router *gin.Engine) VehicleResponse {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/vehicles/", VehicleRequest{
		Model:          "Toyota Corolla",
		Year:           2020,
		CurrentMileage: 15000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var vehicle VehicleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicle))
	return vehicle
}

func TestVehicleLifecycle(t *testing.T) {
	router := newTestRouter(t)

	vehicle := createTestVehicle(t, router)
	assert.NotEqual(t, uuid.Nil, vehicle.ID)

	w := doJSON(t, router, http.MethodGet, "/vehicles/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var vehicles []VehicleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicles))
	require.Len(t, vehicles, 1)
	assert.Equal(t, vehicle.ID, vehicles[0].ID)

	w = doJSON(t, router, http.MethodDelete, "/vehicles/"+vehicle.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/vehicles/"+vehicle.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateVehicleRejectsBadBody(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/vehicles/", map[string]interface{}{"year": 2020})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddMaintenanceBumpsMileageAndFeedsHistory(t *testing.T) {
	router := newTestRouter(t)
	vehicle := createTestVehicle(t, router)

	w := doJSON(t, router, http.MethodPost, "/maintenance/"+vehicle.ID.String(), MaintenanceRequest{
		Type:    "Oil Change",
		Date:    "2025-01-15",
		Mileage: 16000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var event MaintenanceEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	assert.Equal(t, vehicle.ID, event.VehicleID)
	assert.Equal(t, "2025-01-15", event.Date)

	// Vehicle mileage followed the odometer reading.
	w = doJSON(t, router, http.MethodGet, "/vehicles/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var vehicles []VehicleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicles))
	require.Len(t, vehicles, 1)
	assert.Equal(t, 16000, vehicles[0].CurrentMileage)

	w = doJSON(t, router, http.MethodGet, "/maintenance/history/"+vehicle.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []MaintenanceEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, event.ID, history[0].ID)
}

func TestAddMaintenanceRejections(t *testing.T) {
	router := newTestRouter(t)
	vehicle := createTestVehicle(t, router)

	tests := []struct {
		name     string
		path     string
		request  MaintenanceRequest
		wantCode int
	}{
		{
			name: "unknown service type",
			path: "/maintenance/" + vehicle.ID.String(),
			request: MaintenanceRequest{
				Type:    "Underbody Polish",
				Date:    "2025-01-15",
				Mileage: 16000,
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "mileage below vehicle",
			path: "/maintenance/" + vehicle.ID.String(),
			request: MaintenanceRequest{
				Type:    "Oil Change",
				Date:    "2025-01-15",
				Mileage: 14000,
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "bad date",
			path: "/maintenance/" + vehicle.ID.String(),
			request: MaintenanceRequest{
				Type:    "Oil Change",
				Date:    "15/01/2025",
				Mileage: 16000,
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown vehicle",
			path: "/maintenance/" + uuid.NewString(),
			request: MaintenanceRequest{
				Type:    "Oil Change",
				Date:    "2025-01-15",
				Mileage: 16000,
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, tt.path, tt.request)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRemindersEndpoint(t *testing.T) {
	router := newTestRouter(t)
	vehicle := createTestVehicle(t, router)

	w := doJSON(t, router, http.MethodGet, "/maintenance/reminders/"+vehicle.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reminders []ReminderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reminders))
	require.Len(t, reminders, 5)
	for _, r := range reminders {
		assert.NotEqual(t, string(domain.StatusOverdue), r.Status, "service type %q", r.ServiceType)
		assert.Nil(t, r.LastServiceDate)
	}
}

func TestRemindersUnknownVehicle(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/maintenance/reminders/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteVehicleCascadesEvents(t *testing.T) {
	router := newTestRouter(t)
	vehicle := createTestVehicle(t, router)

	w := doJSON(t, router, http.MethodPost, "/maintenance/"+vehicle.ID.String(), MaintenanceRequest{
		Type:    "Tire Rotation",
		Date:    "2025-02-01",
		Mileage: 17000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/vehicles/"+vehicle.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The vehicle is gone and so is its history.
	w = doJSON(t, router, http.MethodGet, "/maintenance/history/"+vehicle.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMaintenanceEvent(t *testing.T) {
	router := newTestRouter(t)
	vehicle := createTestVehicle(t, router)

	w := doJSON(t, router, http.MethodPost, "/maintenance/"+vehicle.ID.String(), MaintenanceRequest{
		Type:    "Brake Inspection",
		Date:    "2025-03-01",
		Mileage: 18000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var event MaintenanceEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))

	w = doJSON(t, router, http.MethodDelete, "/maintenance/"+event.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/maintenance/"+event.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/maintenance/history/"+vehicle.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []MaintenanceEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Empty(t, history)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
