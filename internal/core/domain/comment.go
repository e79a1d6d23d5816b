package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        int       `json:"id"`
	Value     *string   `json:"value,omitempty" validate:"omitempty,min=3,max=256"`
	Rating    float64   `json:"rating" validate:"gte=0,lte=5"`
	BikeID    uuid.UUID `json:"bike_id" validate:"required"`
	UserID    int       `json:"user_id" validate:"required,gt=0"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentFilter restricts listing. A nil User means no user filter at all,
// MinRating is an inclusive lower bound and OrderBy accepts only "rating",
// which flips the sort from the default descending to ascending.
type CommentFilter struct {
	User      *int
	MinRating float64
	OrderBy   string
}

// CommentView is a comment joined with its bike number and author name.
type CommentView struct {
	ID       int     `json:"id"`
	Value    *string `json:"value"`
	Rating   float64 `json:"rating"`
	BikeNo   int     `json:"bikeNo"`
	UserName string  `json:"userName"`
}
