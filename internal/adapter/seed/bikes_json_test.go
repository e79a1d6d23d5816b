package seed_test

import (
	"context"
	"testing"

	"github.com/casigo/bikeshare_rental_service/internal/adapter/seed"

	"github.com/stretchr/testify/require"
)

func TestLoadBikesParsesEmbeddedDataset(t *testing.T) {
	source := seed.NewBikesJSONSource()

	records, err := source.LoadBikes(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, records)

	seen := map[int]bool{}
	for _, record := range records {
		require.GreaterOrEqual(t, record.BikeNo, 0)
		require.LessOrEqual(t, record.BikeNo, 300)
		require.False(t, seen[record.BikeNo], "duplicate bike number %d", record.BikeNo)
		seen[record.BikeNo] = true
	}
}
