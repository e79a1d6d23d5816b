package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/casigo/bikeshare_rental_service/internal/core/domain"
)

//go:embed data/bikes.json
var dataFS embed.FS

// BikesJSONSource serves the static bike dataset shipped with the binary.
type BikesJSONSource struct{}

func NewBikesJSONSource() *BikesJSONSource {
	return &BikesJSONSource{}
}

func (s *BikesJSONSource) LoadBikes(_ context.Context) ([]*domain.SeedBikeRecord, error) {
	raw, err := dataFS.ReadFile("data/bikes.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read seed dataset: %w", err)
	}

	var records []*domain.SeedBikeRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse seed dataset: %w", err)
	}

	return records, nil
}
