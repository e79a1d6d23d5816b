package ports

import (
	"context"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
}
