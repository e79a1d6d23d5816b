package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"
	"github.com/casigo/bikeshare_rental_service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommentHandler struct {
	commentService ports.CommentService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type CreateCommentRequest struct {
	Value  *string `json:"value,omitempty" example:"Smooth ride, brakes could be better"`
	Rating float64 `json:"rating" example:"4"`
	BikeID string  `json:"bikeId" binding:"required" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
	UserID int     `json:"userId" binding:"required" example:"1"`
}

func NewCommentHandler(
	commentService ports.CommentService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Create comment
// @Description Attaches a rating and optional text to a bike. A user may only ever have one comment.
// @Tags comments
// @Accept json
// @Produce json
// @Param request body CreateCommentRequest true "Comment data"
// @Success 201 {object} successResponse "Comment created"
// @Failure 400 {object} errorResponse "Comment creation failed"
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create comment", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	bikeUUID, err := uuid.Parse(req.BikeID)
	if err != nil {
		h.logger.Error("Invalid bike UUID in create comment", map[string]interface{}{
			"bike_id": req.BikeID,
			"error":   err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, domain.ErrCommentCreate.Error())
		return
	}

	comment := &domain.Comment{
		Value:  req.Value,
		Rating: req.Rating,
		BikeID: bikeUUID,
		UserID: req.UserID,
	}

	if err := h.commentService.CreateComment(c.Request.Context(), comment); err != nil {
		if errors.Is(err, domain.ErrCommentCreate) {
			newErrorResponse(c, http.StatusBadRequest, domain.ErrCommentCreate.Error())
			return
		}
		h.logger.Error("Failed to create comment", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	c.JSON(http.StatusCreated, successResponse{Message: "Comment created successfully"})
}

// @Summary List comments
// @Description Lists comments joined with bike number and author name
// @Tags comments
// @Produce json
// @Param user query int false "Restrict to one user's comments"
// @Param min_rating query number false "Inclusive lower bound on rating"
// @Param order_by query string false "Pass 'rating' for ascending order; default is descending"
// @Success 200 {array} domain.CommentView "Comments"
// @Failure 400 {object} errorResponse "Invalid filter"
// @Failure 500 {object} errorResponse "Internal server error"
// @Router /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	filter := &domain.CommentFilter{}

	if rawUser := c.Query("user"); rawUser != "" {
		user, err := strconv.Atoi(rawUser)
		if err != nil || user <= 0 {
			newErrorResponse(c, http.StatusBadRequest, "user must be a positive integer")
			return
		}
		filter.User = &user
	}

	if rawMinRating := c.Query("min_rating"); rawMinRating != "" {
		minRating, err := strconv.ParseFloat(rawMinRating, 64)
		if err != nil || minRating < 0 {
			newErrorResponse(c, http.StatusBadRequest, "min_rating must be a non-negative number")
			return
		}
		filter.MinRating = minRating
	}

	if rawOrderBy := c.Query("order_by"); rawOrderBy != "" {
		if rawOrderBy != "rating" {
			newErrorResponse(c, http.StatusBadRequest, "order_by only accepts 'rating'")
			return
		}
		filter.OrderBy = rawOrderBy
	}

	comments, err := h.commentService.FindAllComments(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list comments", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to get comments")
		return
	}

	if comments == nil {
		comments = []*domain.CommentView{}
	}

	c.JSON(http.StatusOK, comments)
}
