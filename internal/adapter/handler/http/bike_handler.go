package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"
	"github.com/casigo/bikeshare_rental_service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BikeHandler struct {
	bikeService ports.BikeService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type CreateBikeRequest struct {
	No     *int   `json:"no" binding:"required" example:"42"`
	Status string `json:"status" binding:"required" example:"available"`
}

type CreateBikeResponse struct {
	ID        uuid.UUID `json:"id"`
	No        int       `json:"no"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewBikeHandler(
	bikeService ports.BikeService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *BikeHandler {
	return &BikeHandler{
		bikeService: bikeService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary List bikes
// @Description Lists every bike with its derived rating and comments
// @Tags bikes
// @Produce json
// @Success 200 {array} domain.BikeWithRating "Bikes with ratings"
// @Failure 500 {object} errorResponse "Internal server error"
// @Router /bikes [get]
func (h *BikeHandler) ListBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikes, err := h.bikeService.ListBikes(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list bikes", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to get bikes")
		return
	}

	c.JSON(http.StatusOK, bikes)
}

// @Summary Create bike
// @Description Creates a new bike with a number and status
// @Tags bikes
// @Accept json
// @Produce json
// @Param request body CreateBikeRequest true "Bike data"
// @Success 201 {object} CreateBikeResponse "Bike created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Router /bikes [post]
func (h *BikeHandler) CreateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CreateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create bike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	createdBike, err := h.bikeService.CreateBike(c.Request.Context(), *req.No, domain.BikeStatus(req.Status))
	if err != nil {
		if isValidationError(err) {
			newErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to create bike", map[string]interface{}{
			"error": err.Error(),
			"no":    *req.No,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to create bike")
		return
	}

	c.JSON(http.StatusCreated, CreateBikeResponse{
		ID:        createdBike.ID,
		No:        createdBike.No,
		Status:    string(createdBike.Status),
		CreatedAt: createdBike.CreatedAt,
	})
}

// @Summary Delete bike
// @Description Deletes one bike by its id
// @Tags bikes
// @Produce json
// @Param id path string true "Bike ID" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"
// @Success 200 {object} successResponse "Bike deleted"
// @Failure 400 {object} errorResponse "Invalid id"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /bikes/{id} [delete]
func (h *BikeHandler) DeleteBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	err := h.bikeService.DeleteBike(c.Request.Context(), bikeID)
	if err != nil {
		if errors.Is(err, domain.ErrBikeNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Bike does not exist")
			return
		}
		if _, parseErr := uuid.Parse(bikeID); parseErr != nil {
			newErrorResponse(c, http.StatusBadRequest, "Invalid bike ID")
			return
		}
		h.logger.Error("Failed to delete bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to delete bike")
		return
	}

	c.JSON(http.StatusOK, successResponse{Message: "Bike deleted successfully"})
}

// @Summary Delete all bikes
// @Description Removes every bike record unconditionally
// @Tags bikes
// @Produce json
// @Success 200 {object} successResponse "All bikes deleted"
// @Failure 500 {object} errorResponse "Internal server error"
// @Router /bikes [delete]
func (h *BikeHandler) DeleteAllBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if err := h.bikeService.DeleteAllBikes(c.Request.Context()); err != nil {
		h.logger.Error("Failed to delete all bikes", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to delete bikes")
		return
	}

	c.JSON(http.StatusOK, successResponse{Message: "All bikes deleted"})
}
