package postgres

import (
	"context"
	"database/sql"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"
)

type StationRepository struct {
	db *sql.DB
}

func NewStationRepository(db *sql.DB) *StationRepository {
	return &StationRepository{db: db}
}

// CreateStation assigns the next sequential id inside the insert itself so
// concurrent creates cannot hand out the same id twice.
func (r *StationRepository) CreateStation(ctx context.Context, name string) (*domain.Station, error) {
	query := `INSERT INTO stations (id, name)
		VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM stations), $1)
		RETURNING id, name`

	station := &domain.Station{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&station.ID,
		&station.Name,
	)
	if err != nil {
		return nil, err
	}

	return station, nil
}

func (r *StationRepository) GetAllStations(ctx context.Context) ([]*domain.Station, error) {
	query := `SELECT id, name FROM stations ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []*domain.Station

	for rows.Next() {
		station := &domain.Station{}
		if err := rows.Scan(&station.ID, &station.Name); err != nil {
			return nil, err
		}
		stations = append(stations, station)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stations, nil
}
