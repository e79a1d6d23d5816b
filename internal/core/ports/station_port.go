package ports

import (
	"context"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"
)

type StationRepository interface {
	CreateStation(ctx context.Context, name string) (*domain.Station, error)
	GetAllStations(ctx context.Context) ([]*domain.Station, error)
}

type StationService interface {
	CreateStation(ctx context.Context, name string) (*domain.Station, error)
	ListStations(ctx context.Context) ([]*domain.Station, error)
}
