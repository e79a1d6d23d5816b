package domain

import (
	"time"

	"github.com/google/uuid"
)

type BikeStatus string

const (
	Available BikeStatus = "available"
	Occupied  BikeStatus = "occupied"
)

type Bike struct {
	ID        uuid.UUID  `json:"id"`
	No        int        `json:"no" validate:"gte=0,lte=300"`
	Status    BikeStatus `json:"status" validate:"required,oneof=available occupied"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BikeWithRating is the read-side projection of a bike: the rating is the
// mean of all associated comment ratings and is never stored, only computed.
type BikeWithRating struct {
	ID       uuid.UUID     `json:"id"`
	No       int           `json:"no"`
	Status   BikeStatus    `json:"status"`
	Rating   float64       `json:"rating"`
	Comments []BikeComment `json:"comments"`
}

// BikeComment is the simplified comment shape embedded in a bike listing.
type BikeComment struct {
	Rating  float64 `json:"rating"`
	Comment *string `json:"comment"`
}
