package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) CreateComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	query := `INSERT INTO comments (value, rating, bike_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		comment.Value,
		comment.Rating,
		comment.BikeID,
		comment.UserID,
	).Scan(
		&comment.ID,
		&comment.CreatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, errRequiredField
			case "23503":
				return nil, errForeignKey
			default:
				return nil, err
			}
		}
		return nil, err
	}

	return comment, nil
}

func (r *CommentRepository) GetCommentsByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.Comment, error) {
	query := `SELECT id, value, rating, bike_id, user_id, created_at
		FROM comments WHERE bike_id = $1
		ORDER BY id`

	return r.queryComments(ctx, query, bikeID)
}

func (r *CommentRepository) GetCommentsByUserID(ctx context.Context, userID int) ([]*domain.Comment, error) {
	query := `SELECT id, value, rating, bike_id, user_id, created_at
		FROM comments WHERE user_id = $1
		ORDER BY id`

	return r.queryComments(ctx, query, userID)
}

func (r *CommentRepository) queryComments(ctx context.Context, query string, arg interface{}) ([]*domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*domain.Comment

	for rows.Next() {
		comment := &domain.Comment{}
		err := rows.Scan(
			&comment.ID,
			&comment.Value,
			&comment.Rating,
			&comment.BikeID,
			&comment.UserID,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// FindComments joins comments with their bike and author. The user filter
// is applied only when set, min_rating is an inclusive lower bound and the
// sort is descending by rating unless order_by=rating was requested.
func (r *CommentRepository) FindComments(ctx context.Context, filter *domain.CommentFilter) ([]*domain.CommentView, error) {
	query := `SELECT c.id, c.value, c.rating, b.no, u.name
		FROM comments c
		JOIN bikes b ON b.bike_id = c.bike_id
		JOIN users u ON u.id = c.user_id
		WHERE c.rating >= $1`

	args := []interface{}{filter.MinRating}

	if filter.User != nil {
		args = append(args, *filter.User)
		query += fmt.Sprintf(" AND c.user_id = $%d", len(args))
	}

	direction := "DESC"
	if filter.OrderBy == "rating" {
		direction = "ASC"
	}
	query += " ORDER BY c.rating " + direction

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []*domain.CommentView

	for rows.Next() {
		view := &domain.CommentView{}
		err := rows.Scan(
			&view.ID,
			&view.Value,
			&view.Rating,
			&view.BikeNo,
			&view.UserName,
		)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
