package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	handler "github.com/casigo/bikeshare_rental_service/internal/adapter/handler/http"
	"github.com/casigo/bikeshare_rental_service/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func stationTestRouter(svc *mockStationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewStationHandler(svc, noopLogger{}, noopMetrics{})

	router := gin.New()
	router.POST("/stations", h.CreateStation)
	router.GET("/stations", h.ListStations)
	return router
}

func TestCreateStationHandler(t *testing.T) {
	svc := &mockStationService{
		CreateStationFunc: func(ctx context.Context, name string) (*domain.Station, error) {
			return &domain.Station{ID: 1, Name: name}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/stations", strings.NewReader(`{"name": "Parque Central"}`))
	req.Header.Set("Content-Type", "application/json")
	stationTestRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var station domain.Station
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &station))
	require.Equal(t, 1, station.ID)
	require.Equal(t, "Parque Central", station.Name)
}

func TestCreateStationHandlerAcceptsEmptyName(t *testing.T) {
	svc := &mockStationService{
		CreateStationFunc: func(ctx context.Context, name string) (*domain.Station, error) {
			return &domain.Station{ID: 1, Name: name}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/stations", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	stationTestRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestListStationsHandler(t *testing.T) {
	svc := &mockStationService{
		ListStationsFunc: func(ctx context.Context) ([]*domain.Station, error) {
			return []*domain.Station{
				{ID: 1, Name: "Centro"},
				{ID: 2, Name: "Norte"},
			}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stations", nil)
	stationTestRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var stations []domain.Station
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stations))
	require.Len(t, stations, 2)
	require.Equal(t, 1, stations[0].ID)
	require.Equal(t, 2, stations[1].ID)
}

func TestListStationsHandlerError(t *testing.T) {
	svc := &mockStationService{
		ListStationsFunc: func(ctx context.Context) ([]*domain.Station, error) {
			return nil, errors.New("connection reset")
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stations", nil)
	stationTestRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}
