package ports

import (
	"context"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"
)

// SeedSource supplies the external static dataset the seeder imports from.
type SeedSource interface {
	LoadBikes(ctx context.Context) ([]*domain.SeedBikeRecord, error)
}

type SeedService interface {
	Populate(ctx context.Context) (int, error)
}
