package postgres

import (
	"context"
	"database/sql"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BikeRepository struct {
	db *sql.DB
}

func NewBikeRepository(db *sql.DB) *BikeRepository {
	return &BikeRepository{
		db,
	}
}

func (r *BikeRepository) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	query := `INSERT INTO bikes (bike_id, no, status)
	VALUES ($1, $2, $3)
	RETURNING bike_id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, bike.ID, bike.No, bike.Status).Scan(
		&bike.ID,
		&bike.CreatedAt,
		&bike.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, errRequiredField
			case "23514":
				return nil, errCheckViolation
			default:
				return nil, err
			}
		}
		return nil, err
	}
	return bike, nil
}

func (r *BikeRepository) GetAllBikes(ctx context.Context) ([]*domain.Bike, error) {
	query := `SELECT bike_id, no, status, created_at, updated_at FROM bikes`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bikes []*domain.Bike

	for rows.Next() {
		bike := &domain.Bike{}
		err := rows.Scan(
			&bike.ID,
			&bike.No,
			&bike.Status,
			&bike.CreatedAt,
			&bike.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		bikes = append(bikes, bike)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *BikeRepository) DeleteBike(ctx context.Context, bikeID uuid.UUID) error {
	query := `DELETE FROM bikes WHERE bike_id = $1`

	result, err := r.db.ExecContext(ctx, query, bikeID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrBikeNotFound
	}

	return nil
}

func (r *BikeRepository) DeleteAllBikes(ctx context.Context) error {
	query := `DELETE FROM bikes`

	_, err := r.db.ExecContext(ctx, query)
	return err
}
