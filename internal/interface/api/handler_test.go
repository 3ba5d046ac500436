package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetwatch-service/internal/domain/entity"
	"fleetwatch-service/internal/domain/repository"
	repo "fleetwatch-service/internal/interface/repository"
	"fleetwatch-service/internal/usecase"
	"fleetwatch-service/pkg/logger"
	"fleetwatch-service/pkg/metrics"
)

const testCookie = "fleetwatch_session"

type testServer struct {
	router  *gin.Engine
	store   repository.Storage
	metrics *metrics.Metrics
}

func newTestServerWith(t *testing.T, store repository.Storage) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics("fleetwatch", reg)
	log := logger.NewNop()
	auth := usecase.NewAuthService(store, repo.NewMemorySessionRepository(), time.Hour, log)
	h := NewHandler(store, auth, m, log, CookieConfig{Name: testCookie, MaxAge: 3600})

	return &testServer{
		router:  NewRouter(h, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		store:   store,
		metrics: m,
	}
}

func newTestServer(t *testing.T) *testServer {
	return newTestServerWith(t, repo.NewMemoryStorage())
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDashboardStats_ParkAndVehicle(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/parks", gin.H{
		"name":              "Jibowu Central Park",
		"code":              "PRK-001-LG",
		"location":          "Lagos",
		"region":            "South West",
		"capacity":          120,
		"passengerCapacity": 1200,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	park := decode[entity.Park](t, w)
	assert.Equal(t, entity.ParkActive, park.Status)
	assert.Equal(t, 0, park.CurrentVehicles)

	w = s.do(t, http.MethodPost, "/api/vehicles", gin.H{
		"plateNumber":     "ABC-123-XY",
		"model":           "Toyota Hiace",
		"type":            "bus",
		"seatingCapacity": 14,
		"currentParkId":   park.ID,
		"status":          "active",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"activeVehicles":1,"passengersToday":0,"registeredParks":1,"violationsToday":0}`, w.Body.String())
}

func TestCreate_AppliesDefaults(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/vehicles", gin.H{
		"plateNumber":     "DEF-456-YZ",
		"model":           "Mercedes Sprinter",
		"type":            "bus",
		"seatingCapacity": 18,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	v := decode[entity.Vehicle](t, w)
	assert.Equal(t, int64(1), v.ID)
	assert.Equal(t, entity.VehicleActive, v.Status)
	assert.Equal(t, entity.TrackingOnSchedule, v.TrackingStatus)
	assert.Equal(t, 0, v.OnboardPassengers)

	w = s.do(t, http.MethodPost, "/api/parcels", gin.H{
		"trackingCode":     "TRK-001",
		"manifestId":       1,
		"senderName":       "Ada",
		"senderContact":    "0801",
		"recipientName":    "Bola",
		"recipientContact": "0802",
		"weight":           3,
		"description":      "Documents",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	p := decode[entity.Parcel](t, w)
	assert.Equal(t, entity.ParcelInTransit, p.Status)
	assert.Equal(t, entity.VerificationVerified, p.VerificationStatus)

	w = s.do(t, http.MethodPost, "/api/violations", gin.H{
		"vehicleId":   1,
		"type":        "speeding",
		"description": "120 km/h in a 80 zone",
		"reportedBy":  1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, entity.ViolationReported, decode[entity.Violation](t, w).Status)
}

func TestCreate_ValidationErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		path    string
		body    interface{}
		message string
		field   string
	}{
		{
			name:    "missing plate",
			path:    "/api/vehicles",
			body:    gin.H{"model": "Hiace", "type": "bus", "seatingCapacity": 14},
			message: "Invalid vehicle data",
			field:   "plateNumber",
		},
		{
			name:    "bad status",
			path:    "/api/parks",
			body:    gin.H{"name": "P", "code": "C", "location": "L", "region": "R", "capacity": 1, "passengerCapacity": 1, "status": "open"},
			message: "Invalid park data",
			field:   "status",
		},
		{
			name:    "missing departure",
			path:    "/api/manifests",
			body:    gin.H{"vehicleId": 1, "driverId": 1, "originParkId": 1, "destinationParkId": 2, "expectedArrivalTime": "2024-08-12T12:00:00Z"},
			message: "Invalid manifest data",
			field:   "departureTime",
		},
		{
			name:    "bad priority",
			path:    "/api/security-alerts",
			body:    gin.H{"title": "t", "description": "d", "priority": "urgent"},
			message: "Invalid security alert data",
			field:   "priority",
		},
		{
			name:    "malformed json",
			path:    "/api/agencies",
			body:    `{"name":`,
			message: "Invalid agency data",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			resp := decode[struct {
				Message string       `json:"message"`
				Errors  []fieldError `json:"errors"`
			}](t, w)
			assert.Equal(t, tt.message, resp.Message)
			require.NotEmpty(t, resp.Errors)
			if tt.field != "" {
				assert.Equal(t, tt.field, resp.Errors[0].Field)
			}
		})
	}

	w := s.do(t, http.MethodGet, "/api/vehicles", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetByID_NotFound(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{
		"/api/vehicles/99",
		"/api/vehicles/abc",
		"/api/vehicles/0",
		"/api/vehicles/-1",
		"/api/parks/code/PRK-404",
		"/api/parcels/tracking/TRK-404",
		"/api/manifests/code/MNF-404",
		"/api/vehicles/plate/NOPE",
	} {
		t.Run(path, func(t *testing.T) {
			w := s.do(t, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, w.Body.String(), "not found")
		})
	}

	w := s.do(t, http.MethodPatch, "/api/drivers/7", gin.H{"status": "suspended"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Driver not found"}`, w.Body.String())
}

func TestUpdate_PartialFields(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	created, err := s.store.CreateVehicle(ctx, &entity.Vehicle{
		PlateNumber:       "ABC-123-XY",
		Model:             "Toyota Hiace",
		Type:              "bus",
		SeatingCapacity:   14,
		Status:            entity.VehicleActive,
		OnboardPassengers: 12,
		TrackingStatus:    entity.TrackingOnSchedule,
	})
	require.NoError(t, err)

	w := s.do(t, http.MethodPatch, fmt.Sprintf("/api/vehicles/%d", created.ID), gin.H{"trackingStatus": "delayed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	want := *created
	want.TrackingStatus = entity.TrackingDelayed
	assert.Equal(t, want, decode[entity.Vehicle](t, w))

	w = s.do(t, http.MethodPatch, fmt.Sprintf("/api/vehicles/%d", created.ID), gin.H{"trackingStatus": "lost"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdate_EmptyBodyKeepsRecord(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	created, err := s.store.CreatePark(ctx, &entity.Park{Name: "Lagos Central", Code: "PRK-001-LG", Capacity: 120, Status: entity.ParkActive})
	require.NoError(t, err)

	for _, body := range []interface{}{nil, "  "} {
		w := s.do(t, http.MethodPatch, fmt.Sprintf("/api/parks/%d", created.ID), body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, *created, decode[entity.Park](t, w))
	}

	w := s.do(t, http.MethodPatch, "/api/parks/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestManifest_GeneratedCodeAndChildren(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/manifests", gin.H{
		"vehicleId":           1,
		"driverId":            1,
		"originParkId":        1,
		"destinationParkId":   2,
		"departureTime":       "2024-08-12T08:00:00Z",
		"expectedArrivalTime": "2024-08-12T14:00:00Z",
		"passengerCount":      14,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	m := decode[entity.Manifest](t, w)
	assert.Regexp(t, regexp.MustCompile(`^MNF-\d{8}-\d{4}$`), m.ManifestCode)
	assert.Equal(t, entity.ManifestActive, m.Status)
	require.NotNil(t, m.CargoWeight)
	assert.Equal(t, 0, *m.CargoWeight)

	w = s.do(t, http.MethodPost, "/api/passengers", gin.H{
		"manifestId": m.ID,
		"fullName":   "Ada Obi",
		"gender":     "female",
		"luggage":    gin.H{"items": 2},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/manifests/%d/passengers", m.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]entity.Passenger](t, w)
	require.Len(t, list, 1)
	assert.JSONEq(t, `{"items":2}`, string(list[0].Luggage))

	w = s.do(t, http.MethodGet, "/api/manifests/code/"+m.ManifestCode, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/manifests/%d/parcels", m.ID), nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestManifest_ExplicitCodeIsKept(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/manifests", gin.H{
		"manifestCode":        "MNF-20230812-0045",
		"vehicleId":           1,
		"driverId":            1,
		"originParkId":        1,
		"destinationParkId":   2,
		"departureTime":       "2024-08-12T08:00:00Z",
		"expectedArrivalTime": "2024-08-12T14:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "MNF-20230812-0045", decode[entity.Manifest](t, w).ManifestCode)
}

func TestRecent_LimitParsing(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	for i := 0; i < 7; i++ {
		_, err := s.store.CreateTrafficReport(ctx, &entity.TrafficReport{Route: fmt.Sprintf("R%d", i)})
		require.NoError(t, err)
	}

	tests := []struct {
		query string
		want  int
	}{
		{query: "", want: 5},
		{query: "?limit=abc", want: 5},
		{query: "?limit=0", want: 5},
		{query: "?limit=2", want: 2},
		{query: "?limit=50", want: 7},
		{query: "?limit=-1", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := s.do(t, http.MethodGet, "/api/traffic-reports/recent"+tt.query, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Len(t, decode[[]entity.TrafficReport](t, w), tt.want)
		})
	}
}

func TestCorporateAndVehicleRelations(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	corp, err := s.store.CreateCorporate(ctx, &entity.Corporate{Name: "Transit Co"})
	require.NoError(t, err)
	v, err := s.store.CreateVehicle(ctx, &entity.Vehicle{PlateNumber: "V1", CorporateID: entity.Ref(corp.ID), Status: entity.VehicleActive})
	require.NoError(t, err)
	_, err = s.store.CreateVehicle(ctx, &entity.Vehicle{PlateNumber: "V2", Status: entity.VehicleMaintenance})
	require.NoError(t, err)
	_, err = s.store.CreateDriver(ctx, &entity.Driver{FullName: "John Doe", CorporateID: entity.Ref(corp.ID)})
	require.NoError(t, err)
	_, err = s.store.CreateViolation(ctx, &entity.Violation{VehicleID: v.ID, Type: "speeding"})
	require.NoError(t, err)

	w := s.do(t, http.MethodGet, fmt.Sprintf("/api/corporates/%d/vehicles", corp.ID), nil)
	assert.Len(t, decode[[]entity.Vehicle](t, w), 1)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/corporates/%d/drivers", corp.ID), nil)
	assert.Len(t, decode[[]entity.Driver](t, w), 1)

	w = s.do(t, http.MethodGet, "/api/vehicles/active", nil)
	active := decode[[]entity.Vehicle](t, w)
	require.Len(t, active, 1)
	assert.Equal(t, "V1", active[0].PlateNumber)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/vehicles/%d/violations", v.ID), nil)
	assert.Len(t, decode[[]entity.Violation](t, w), 1)

	w = s.do(t, http.MethodGet, "/api/vehicles/plate/V2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.VehicleMaintenance, decode[entity.Vehicle](t, w).Status)
}

func TestAuth_Flow(t *testing.T) {
	s := newTestServer(t)
	hash, err := usecase.HashPassword("admin123")
	require.NoError(t, err)
	_, err = s.store.CreateUser(context.Background(), &entity.User{Username: "admin", Password: hash, Role: entity.RoleAdmin})
	require.NoError(t, err)

	w := s.do(t, http.MethodGet, "/api/auth/current-user", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), hash)

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	w = s.do(t, http.MethodGet, "/api/auth/current-user", nil, session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", decode[entity.User](t, w).Username)

	w = s.do(t, http.MethodPost, "/api/auth/logout", nil, session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/auth/current-user", nil, session)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// failingStorage answers the park and active vehicle operations with a fixed error
type failingStorage struct {
	repository.Storage
	err error
}

func (f failingStorage) ListParks(ctx context.Context) ([]*entity.Park, error) {
	return nil, f.err
}

func (f failingStorage) ListActiveVehicles(ctx context.Context) ([]*entity.Vehicle, error) {
	return nil, f.err
}

func (f failingStorage) CreatePark(ctx context.Context, park *entity.Park) (*entity.Park, error) {
	return nil, f.err
}

func TestStorageFailures(t *testing.T) {
	validPark := gin.H{"name": "P", "code": "PRK-1", "location": "L", "region": "R", "capacity": 1, "passengerCapacity": 1}

	tests := []struct {
		name   string
		err    error
		method string
		body   interface{}
		want   int
	}{
		{name: "duplicate", err: fmt.Errorf("%w: code", repository.ErrDuplicateKey), method: http.MethodPost, body: validPark, want: http.StatusConflict},
		{name: "unavailable", err: fmt.Errorf("%w: connection refused", repository.ErrBackendUnavailable), method: http.MethodGet, want: http.StatusServiceUnavailable},
		{name: "unexpected", err: fmt.Errorf("boom"), method: http.MethodGet, want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServerWith(t, failingStorage{err: tt.err})
			w := s.do(t, tt.method, "/api/parks", tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}

	s := newTestServerWith(t, failingStorage{err: repository.ErrBackendUnavailable})
	s.do(t, http.MethodGet, "/api/parks", nil)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.StorageErrors.WithLabelValues("fetching_parks")))

	w := s.do(t, http.MethodGet, "/api/dashboard/stats", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/api/parks", nil)
	s.do(t, http.MethodGet, "/api/parks/12", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.RequestsTotal.WithLabelValues("/api/parks/:id", "GET", "404")))

	w := s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `fleetwatch_http_requests_total{method="GET",route="/api/parks",status="200"} 1`), body)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/api/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
