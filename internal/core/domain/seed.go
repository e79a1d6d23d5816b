package domain

// SeedBikeRecord is one entry of the static seed dataset. Only BikeNo is
// used when populating the bike table, the rest travels along for fidelity
// with the upstream dataset format.
type SeedBikeRecord struct {
	BikeNo      int            `json:"bikeNo"`
	Image       string         `json:"image"`
	Thumbnail   string         `json:"thumbnail"`
	Description string         `json:"description"`
	Qualifier   int            `json:"qualifier"`
	TimeStamp   string         `json:"timeStamp"`
	Rating      SeedPartRating `json:"rating"`
	Email       string         `json:"email"`
	Status      string         `json:"status,omitempty"`
}

type SeedPartRating struct {
	Handlebar int `json:"handlebar"`
	Brakes    int `json:"brakes"`
	Seat      int `json:"seat"`
	Chain     int `json:"chain"`
	Pedals    int `json:"pedals"`
	Fenders   int `json:"fenders"`
}
