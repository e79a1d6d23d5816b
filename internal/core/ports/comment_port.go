package ports

import (
	"context"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"

	"github.com/google/uuid"
)

type CommentRepository interface {
	CreateComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	GetCommentsByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.Comment, error)
	GetCommentsByUserID(ctx context.Context, userID int) ([]*domain.Comment, error)
	FindComments(ctx context.Context, filter *domain.CommentFilter) ([]*domain.CommentView, error)
}

type CommentService interface {
	CreateComment(ctx context.Context, comment *domain.Comment) error
	FindAllComments(ctx context.Context, filter *domain.CommentFilter) ([]*domain.CommentView, error)
}
