package services

import (
	"context"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"
	"github.com/casigo/bikeshare_rental_service/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type CommentService struct {
	commentRepo ports.CommentRepository
	userRepo    ports.UserRepository
	logger      ports.LoggerPort
	validate    *validator.Validate
	cache       ports.CachePort
}

func NewCommentService(
	commentRepo ports.CommentRepository,
	userRepo ports.UserRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		logger:      logger,
		validate:    validate,
		cache:       cache,
	}
}

// CreateComment inserts a new comment unless its author already has one.
// The duplicate rule is global: a user who commented on any bike is blocked
// everywhere, not just on that bike. The existence check and the insert are
// two statements, so two concurrent requests from the same user can both
// pass the check; known limitation, left as is.
//
// Every failure inside this operation collapses into ErrCommentCreate, the
// caller gets no detail on which rule was violated.
func (s *CommentService) CreateComment(ctx context.Context, comment *domain.Comment) error {
	if err := s.validate.Struct(comment); err != nil {
		s.logger.Error("Comment validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return domain.ErrCommentCreate
	}

	if _, err := s.userRepo.GetUserByID(ctx, comment.UserID); err != nil {
		s.logger.Error("Comment author lookup failed", map[string]interface{}{
			"error":   err.Error(),
			"user_id": comment.UserID,
		})
		return domain.ErrCommentCreate
	}

	existing, err := s.commentRepo.GetCommentsByUserID(ctx, comment.UserID)
	if err != nil {
		s.logger.Error("Duplicate comment check failed", map[string]interface{}{
			"error":   err.Error(),
			"user_id": comment.UserID,
		})
		return domain.ErrCommentCreate
	}

	if len(existing) >= 1 {
		s.logger.Warn("User already has a comment", map[string]interface{}{
			"user_id":        comment.UserID,
			"comments_count": len(existing),
		})
		return domain.ErrCommentCreate
	}

	createdComment, err := s.commentRepo.CreateComment(ctx, comment)
	if err != nil {
		s.logger.Error("Failed to create comment", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": comment.BikeID,
			"user_id": comment.UserID,
		})
		return domain.ErrCommentCreate
	}

	// A new comment changes the derived rating in the bike listing.
	if err := s.cache.Delete(bikeListCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate bike list cache", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.logger.Info("Comment created successfully", map[string]interface{}{
		"comment_id": createdComment.ID,
		"bike_id":    createdComment.BikeID,
		"user_id":    createdComment.UserID,
	})

	return nil
}

func (s *CommentService) FindAllComments(ctx context.Context, filter *domain.CommentFilter) ([]*domain.CommentView, error) {
	if filter == nil {
		filter = &domain.CommentFilter{}
	}

	views, err := s.commentRepo.FindComments(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to find comments", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Retrieved comments", map[string]interface{}{
		"comments_count": len(views),
		"min_rating":     filter.MinRating,
	})

	return views, nil
}
