package http

import (
	"net/http"
	"time"

	"github.com/casigo/bikeshare_rental_service/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type SeedHandler struct {
	seedService ports.SeedService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type SeedResponse struct {
	Message    string `json:"message"`
	BikesCount int    `json:"bikes_count"`
}

func NewSeedHandler(
	seedService ports.SeedService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *SeedHandler {
	return &SeedHandler{
		seedService: seedService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Run seed import
// @Description Clears the bike table and repopulates it from the static dataset
// @Tags seed
// @Produce json
// @Success 200 {object} SeedResponse "Import completed"
// @Failure 500 {object} errorResponse "Import failed"
// @Router /seed [post]
func (h *SeedHandler) Populate(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	count, err := h.seedService.Populate(c.Request.Context())
	if err != nil {
		h.logger.Error("Seed import failed", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to populate bikes")
		return
	}

	c.JSON(http.StatusOK, SeedResponse{
		Message:    "Bikes populated successfully",
		BikesCount: count,
	})
}
