package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/ambulance_dispatch/internal/config"
	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/ranker"
	"github.com/shenikar/ambulance_dispatch/internal/service"
	"github.com/shenikar/ambulance_dispatch/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const nearestURL = "/api/v1/dispatch/nearest"

func testConfig() *config.Config {
	return &config.Config{
		StatsTimeWindowMinutes: 60,
		CORSAllowedOrigins:     []string{"*"},
	}
}

func silentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func newRouter(svc service.DispatchService, cfg *config.Config) *gin.Engine {
	handler := NewHandler(svc, silentLogger(), cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware(cfg))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router
}

// newTestHandler создает роутер с мокированным сервисом
func newTestHandler(t *testing.T) (*mocks.MockDispatchService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDispatchService(ctrl)
	return mockService, newRouter(mockService, testConfig())
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func ptr(v float64) *float64 {
	return &v
}

func location(lat, lng float64) LocationRequest {
	return LocationRequest{Lat: ptr(lat), Lng: ptr(lng)}
}

func validRequest() FindNearestRequest {
	return FindNearestRequest{
		Emergency: EmergencyRequest{
			ID:       "EM-1",
			Location: location(0, 0),
			Type:     "trauma",
		},
		Ambulances: []AmbulanceRequest{
			{ID: "AMB-2", Location: location(0, 2), Status: "available"},
			{ID: "AMB-1", Location: location(0, 1), Status: "available"},
		},
	}
}

func postJSON(router *gin.Engine, body any) *httptest.ResponseRecorder {
	bodyBytes, _ := json.Marshal(body)
	return makeRequest(router, "POST", nearestURL, bytes.NewBuffer(bodyBytes))
}

func TestFindNearest_Success(t *testing.T) {
	mockService, router := newTestHandler(t)
	reqBody := validRequest()
	expected := &models.RankResult{
		Success:     true,
		EmergencyID: "EM-1",
		Recommendations: []models.Recommendation{
			{UnitID: "AMB-1", DistanceKm: 111.19, EstimatedTimeMin: 222.4},
			{UnitID: "AMB-2", DistanceKm: 222.39, EstimatedTimeMin: 444.8},
		},
	}

	mockService.EXPECT().
		FindNearest(gomock.Any(), gomock.Any(), gomock.Any(), ranker.DefaultLimit).
		DoAndReturn(func(_ context.Context, incident models.Incident, units []models.Unit, _ int) (*models.RankResult, error) {
			assert.Equal(t, "EM-1", incident.ID)
			assert.Equal(t, "trauma", incident.Type)
			require.Len(t, units, 2)
			assert.Equal(t, "AMB-2", units[0].ID)
			assert.Equal(t, models.UnitStatusAvailable, units[0].Status)
			assert.Equal(t, 2.0, units[0].Location.Lng)
			return expected, nil
		}).Times(1)

	w := postJSON(router, reqBody)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp FindNearestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "EM-1", resp.EmergencyID)
	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, "AMB-1", resp.Recommendations[0].UnitID)
	assert.Equal(t, 111.19, resp.Recommendations[0].DistanceKm)
	assert.Equal(t, 222.4, resp.Recommendations[0].EstimatedTimeMin)
}

func TestFindNearest_CustomLimit(t *testing.T) {
	mockService, router := newTestHandler(t)
	reqBody := validRequest()
	reqBody.Limit = 1

	mockService.EXPECT().
		FindNearest(gomock.Any(), gomock.Any(), gomock.Any(), 1).
		Return(&models.RankResult{Success: true, EmergencyID: "EM-1", Recommendations: []models.Recommendation{{UnitID: "AMB-1"}}}, nil).
		Times(1)

	w := postJSON(router, reqBody)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFindNearest_NoAvailableUnits(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().
		FindNearest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.RankResult{
			Success:         false,
			Recommendations: []models.Recommendation{},
			Message:         ranker.NoAvailableUnitsMessage,
		}, nil).Times(1)

	w := postJSON(router, validRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), `"recommendations":[]`)
	assert.Contains(t, w.Body.String(), "No available ambulances within range")
}

func TestFindNearest_NoAmbulancesProvided(t *testing.T) {
	mockService, router := newTestHandler(t)
	reqBody := validRequest()
	reqBody.Ambulances = []AmbulanceRequest{}

	mockService.EXPECT().
		FindNearest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: could not rank units: %w", ranker.ErrNoUnits)).
		Times(1)

	w := postJSON(router, reqBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No ambulances provided")
	assert.NotContains(t, w.Body.String(), "success")
}

func TestFindNearest_InvalidJSON(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().FindNearest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", nearestURL, bytes.NewBufferString(`{"emergency": {"id": "EM-1"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestFindNearest_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *FindNearestRequest)
		message string
	}{
		{
			name:    "missing emergency id",
			mutate:  func(r *FindNearestRequest) { r.Emergency.ID = "" },
			message: "Error:Field validation for 'ID' failed on the 'required' tag",
		},
		{
			name:    "missing latitude",
			mutate:  func(r *FindNearestRequest) { r.Emergency.Location.Lat = nil },
			message: "Error:Field validation for 'Lat' failed on the 'required' tag",
		},
		{
			name:    "latitude out of range",
			mutate:  func(r *FindNearestRequest) { r.Emergency.Location.Lat = ptr(91) },
			message: "Error:Field validation for 'Lat' failed on the 'latitude' tag",
		},
		{
			name:    "longitude out of range",
			mutate:  func(r *FindNearestRequest) { r.Ambulances[0].Location.Lng = ptr(-180.5) },
			message: "Error:Field validation for 'Lng' failed on the 'longitude' tag",
		},
		{
			name:    "unknown status",
			mutate:  func(r *FindNearestRequest) { r.Ambulances[1].Status = "reserve" },
			message: "Error:Field validation for 'Status' failed on the 'oneof' tag",
		},
		{
			name:    "missing unit id",
			mutate:  func(r *FindNearestRequest) { r.Ambulances[1].ID = "" },
			message: "Error:Field validation for 'ID' failed on the 'required' tag",
		},
		{
			name:    "duplicate unit ids",
			mutate:  func(r *FindNearestRequest) { r.Ambulances[1].ID = r.Ambulances[0].ID },
			message: "Error:Field validation for 'Ambulances' failed on the 'unique' tag",
		},
		{
			name:    "negative limit",
			mutate:  func(r *FindNearestRequest) { r.Limit = -2 },
			message: "Error:Field validation for 'Limit' failed on the 'gt' tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, router := newTestHandler(t)
			mockService.EXPECT().FindNearest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			reqBody := validRequest()
			tt.mutate(&reqBody)
			w := postJSON(router, reqBody)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}

func TestFindNearest_ServiceError(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().
		FindNearest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("unexpected")).
		Times(1)

	w := postJSON(router, validRequest())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestFindNearest_WithRanker(t *testing.T) {
	svc := service.NewDispatchService(nil, nil, silentLogger(), testConfig())
	router := newRouter(svc, testConfig())

	reqBody := FindNearestRequest{
		Emergency: EmergencyRequest{ID: "EM-NY", Location: location(40.7128, -74.0060)},
		Ambulances: []AmbulanceRequest{
			{ID: "AMB-OFF", Location: location(40.7128, -74.0060), Status: "offline"},
			{ID: "AMB-NY", Location: location(40.7128, -74.0060), Status: "available"},
			{ID: "AMB-BUSY", Location: location(40.7, -74.0), Status: "busy"},
		},
	}

	w := postJSON(router, reqBody)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp FindNearestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "EM-NY", resp.EmergencyID)
	assert.Equal(t, []RecommendationResponse{{UnitID: "AMB-NY", DistanceKm: 0, EstimatedTimeMin: 0}}, resp.Recommendations)

	empty := reqBody
	empty.Ambulances = nil
	w = postJSON(router, empty)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No ambulances provided")
}

func TestGetStats_Success(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Return(123, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dispatch/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 123, resp.DispatchCount)
	assert.Equal(t, 60, resp.WindowMinutes)
}

func TestGetStats_Disabled(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Return(0, service.ErrStatsUnavailable).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dispatch/stats", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "disabled")
}

func TestGetStats_ServiceError(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Return(0, errors.New("failed to get stats")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dispatch/stats", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"engine":"proximity-ranker"`)
}

func TestCORSMiddleware_AllowsConfiguredOrigin(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig()
	cfg.CORSAllowedOrigins = []string{"http://dashboard.local"}
	router := newRouter(mocks.NewMockDispatchService(ctrl), cfg)

	w := makeRequest(router, "OPTIONS", nearestURL, nil, map[string]string{
		"Origin":                        "http://dashboard.local",
		"Access-Control-Request-Method": "POST",
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://dashboard.local", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_AllowAll(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil, map[string]string{"Origin": "http://anywhere.example"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
