package ports

import (
	"context"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"

	"github.com/google/uuid"
)

type BikeRepository interface {
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	GetAllBikes(ctx context.Context) ([]*domain.Bike, error)
	DeleteBike(ctx context.Context, bikeID uuid.UUID) error
	DeleteAllBikes(ctx context.Context) error
}

type BikeService interface {
	ListBikes(ctx context.Context) ([]*domain.BikeWithRating, error)
	CreateBike(ctx context.Context, no int, status domain.BikeStatus) (*domain.Bike, error)
	DeleteBike(ctx context.Context, bikeID string) error
	DeleteAllBikes(ctx context.Context) error
}
