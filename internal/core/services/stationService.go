package services

import (
	"context"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"
	"github.com/casigo/bikeshare_rental_service/internal/core/ports"
)

type StationService struct {
	stationRepo ports.StationRepository
	logger      ports.LoggerPort
}

func NewStationService(stationRepo ports.StationRepository, logger ports.LoggerPort) *StationService {
	return &StationService{
		stationRepo: stationRepo,
		logger:      logger,
	}
}

// CreateStation accepts any name, empty and duplicate names included.
func (s *StationService) CreateStation(ctx context.Context, name string) (*domain.Station, error) {
	station, err := s.stationRepo.CreateStation(ctx, name)
	if err != nil {
		s.logger.Error("Failed to create station", map[string]interface{}{
			"error": err.Error(),
			"name":  name,
		})
		return nil, err
	}

	s.logger.Info("Station created successfully", map[string]interface{}{
		"station_id": station.ID,
		"name":       station.Name,
	})

	return station, nil
}

func (s *StationService) ListStations(ctx context.Context) ([]*domain.Station, error) {
	stations, err := s.stationRepo.GetAllStations(ctx)
	if err != nil {
		s.logger.Error("Failed to get stations", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Retrieved stations", map[string]interface{}{
		"stations_count": len(stations),
	})

	return stations, nil
}
