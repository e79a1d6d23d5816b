package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"
	"github.com/casigo/bikeshare_rental_service/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const bikeListCacheKey = "bikes:all"

type BikeService struct {
	bikeRepo    ports.BikeRepository
	commentRepo ports.CommentRepository
	logger      ports.LoggerPort
	validate    *validator.Validate
	cache       ports.CachePort
}

func NewBikeService(
	bikeRepo ports.BikeRepository,
	commentRepo ports.CommentRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *BikeService {
	return &BikeService{
		bikeRepo:    bikeRepo,
		commentRepo: commentRepo,
		logger:      logger,
		validate:    validate,
		cache:       cache,
	}
}

// ListBikes returns every bike together with its derived rating, the mean
// of all comment ratings for that bike. A bike without comments gets
// rating 0, never NaN.
func (s *BikeService) ListBikes(ctx context.Context) ([]*domain.BikeWithRating, error) {
	cachedData, err := s.cache.Get(bikeListCacheKey)
	if err == nil {
		var cachedBikes []*domain.BikeWithRating
		if err := json.Unmarshal(cachedData, &cachedBikes); err == nil {
			s.logger.Info("Bike list found in cache", map[string]interface{}{
				"bikes_count": len(cachedBikes),
			})
			return cachedBikes, nil
		}
	}

	bikes, err := s.bikeRepo.GetAllBikes(ctx)
	if err != nil {
		s.logger.Error("Failed to get bikes", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	result := make([]*domain.BikeWithRating, 0, len(bikes))
	for _, bike := range bikes {
		comments, err := s.commentRepo.GetCommentsByBikeID(ctx, bike.ID)
		if err != nil {
			s.logger.Error("Failed to get comments for bike", map[string]interface{}{
				"error":   err.Error(),
				"bike_id": bike.ID,
			})
			return nil, err
		}

		var sum float64
		bikeComments := make([]domain.BikeComment, len(comments))
		for i, comment := range comments {
			sum += comment.Rating
			bikeComments[i] = domain.BikeComment{
				Rating:  comment.Rating,
				Comment: comment.Value,
			}
		}

		// Guard the empty case explicitly, sum/0 would be NaN.
		rating := 0.0
		if len(comments) > 0 {
			rating = sum / float64(len(comments))
		}

		result = append(result, &domain.BikeWithRating{
			ID:       bike.ID,
			No:       bike.No,
			Status:   bike.Status,
			Rating:   rating,
			Comments: bikeComments,
		})
	}

	listData, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("Failed to marshal bike list for cache", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		if err := s.cache.Set(bikeListCacheKey, listData, 5*time.Minute); err != nil {
			s.logger.Warn("Failed to cache bike list", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return result, nil
}

func (s *BikeService) CreateBike(ctx context.Context, no int, status domain.BikeStatus) (*domain.Bike, error) {
	bike := &domain.Bike{
		No:     no,
		Status: status,
	}

	if err := s.validate.Struct(bike); err != nil {
		s.logger.Error("Bike validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if bike.ID == uuid.Nil {
		bike.ID = uuid.New()
	}

	createdBike, err := s.bikeRepo.CreateBike(ctx, bike)
	if err != nil {
		s.logger.Error("Failed to create bike", map[string]interface{}{
			"error": err.Error(),
			"no":    no,
		})
		return nil, err
	}

	s.invalidateListCache()

	s.logger.Info("Bike created successfully", map[string]interface{}{
		"bike_id": createdBike.ID,
		"no":      createdBike.No,
		"status":  createdBike.Status,
	})

	return createdBike, nil
}

func (s *BikeService) DeleteBike(ctx context.Context, bikeID string) error {
	bikeUUID, err := uuid.Parse(bikeID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"bike_id": bikeID,
			"error":   err.Error(),
		})
		return fmt.Errorf("invalid bike ID: %w", err)
	}

	if err := s.bikeRepo.DeleteBike(ctx, bikeUUID); err != nil {
		s.logger.Error("Failed to delete bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return err
	}

	s.invalidateListCache()

	s.logger.Info("Bike deleted successfully", map[string]interface{}{
		"bike_id": bikeID,
	})

	return nil
}

func (s *BikeService) DeleteAllBikes(ctx context.Context) error {
	if err := s.bikeRepo.DeleteAllBikes(ctx); err != nil {
		s.logger.Error("Failed to delete all bikes", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	s.invalidateListCache()

	s.logger.Info("All bikes deleted", nil)

	return nil
}

func (s *BikeService) invalidateListCache() {
	if err := s.cache.Delete(bikeListCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate bike list cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
