package services

import (
	"context"
	"math/rand"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"
	"github.com/casigo/bikeshare_rental_service/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// seedConcurrency caps the parallel bike creations during an import. The
// creations are independent, ordering does not matter.
const seedConcurrency = 8

type SeedService struct {
	bikeService ports.BikeService
	source      ports.SeedSource
	logger      ports.LoggerPort
}

func NewSeedService(
	bikeService ports.BikeService,
	source ports.SeedSource,
	logger ports.LoggerPort,
) *SeedService {
	return &SeedService{
		bikeService: bikeService,
		source:      source,
		logger:      logger,
	}
}

// Populate wipes the bike table and recreates one bike per dataset record,
// each with a status picked uniformly at random. All-or-nothing: the first
// failed creation cancels the remaining ones and fails the whole import.
func (s *SeedService) Populate(ctx context.Context) (int, error) {
	if err := s.bikeService.DeleteAllBikes(ctx); err != nil {
		s.logger.Error("Failed to clear bikes before seeding", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, err
	}

	records, err := s.source.LoadBikes(ctx)
	if err != nil {
		s.logger.Error("Failed to load seed dataset", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(seedConcurrency)

	for _, record := range records {
		bikeNo := record.BikeNo
		status := randomStatus()

		g.Go(func() error {
			_, err := s.bikeService.CreateBike(gCtx, bikeNo, status)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("Seed import failed", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, err
	}

	s.logger.Info("Seed import completed", map[string]interface{}{
		"bikes_count": len(records),
	})

	return len(records), nil
}

func randomStatus() domain.BikeStatus {
	if rand.Float64() < 0.5 {
		return domain.Available
	}
	return domain.Occupied
}
