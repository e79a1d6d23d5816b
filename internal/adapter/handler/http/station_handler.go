package http

import (
	"net/http"
	"time"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"
	"github.com/casigo/bikeshare_rental_service/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type StationHandler struct {
	stationService ports.StationService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type CreateStationRequest struct {
	Name string `json:"name" example:"Parque Central"`
}

func NewStationHandler(
	stationService ports.StationService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *StationHandler {
	return &StationHandler{
		stationService: stationService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Create station
// @Description Creates a rental station. Names are not validated, empty and duplicate names are accepted.
// @Tags stations
// @Accept json
// @Produce json
// @Param request body CreateStationRequest true "Station data"
// @Success 201 {object} domain.Station "Station created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Router /stations [post]
func (h *StationHandler) CreateStation(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CreateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create station", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	station, err := h.stationService.CreateStation(c.Request.Context(), req.Name)
	if err != nil {
		h.logger.Error("Failed to create station", map[string]interface{}{
			"error": err.Error(),
			"name":  req.Name,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to create station")
		return
	}

	c.JSON(http.StatusCreated, station)
}

// @Summary List stations
// @Description Lists stations in insertion order
// @Tags stations
// @Produce json
// @Success 200 {array} domain.Station "Stations"
// @Failure 500 {object} errorResponse "Internal server error"
// @Router /stations [get]
func (h *StationHandler) ListStations(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	stations, err := h.stationService.ListStations(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list stations", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to get stations")
		return
	}

	if stations == nil {
		stations = []*domain.Station{}
	}

	c.JSON(http.StatusOK, stations)
}
