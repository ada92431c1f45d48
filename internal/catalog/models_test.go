package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sampleShow() *Show {
	return &Show{
		Title:         "Oppenheimer",
		Theater:       "Screen 2",
		StartTime:     time.Date(2026, 3, 20, 19, 0, 0, 0, time.UTC),
		PriceSilver:   120,
		PriceGold:     220,
		PricePlatinum: 400,
		SeatsSilver:   40,
		SeatsGold:     20,
		SeatsPlatinum: 10,
	}
}

func TestCategoryForSeatBands(t *testing.T) {
	show := sampleShow()

	tests := []struct {
		name       string
		seatNumber int
		want       SeatCategory
		ok         bool
	}{
		{"first silver seat", 1, CategorySilver, true},
		{"last silver seat", 40, CategorySilver, true},
		{"first gold seat", 41, CategoryGold, true},
		{"last gold seat", 60, CategoryGold, true},
		{"first platinum seat", 61, CategoryPlatinum, true},
		{"last platinum seat", 70, CategoryPlatinum, true},
		{"zero", 0, "", false},
		{"negative", -3, "", false},
		{"past capacity", 71, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := show.CategoryFor(tt.seatNumber)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBasePriceAndCapacityPerCategory(t *testing.T) {
	show := sampleShow()

	require.Equal(t, 120.0, show.BasePrice(CategorySilver))
	require.Equal(t, 220.0, show.BasePrice(CategoryGold))
	require.Equal(t, 400.0, show.BasePrice(CategoryPlatinum))

	require.Equal(t, 40, show.TotalSeats(CategorySilver))
	require.Equal(t, 20, show.TotalSeats(CategoryGold))
	require.Equal(t, 10, show.TotalSeats(CategoryPlatinum))

	require.Equal(t, 70, show.Capacity())
}

func TestHasStarted(t *testing.T) {
	show := sampleShow()

	require.False(t, show.HasStarted(show.StartTime.Add(-time.Minute)))
	require.True(t, show.HasStarted(show.StartTime))
	require.True(t, show.HasStarted(show.StartTime.Add(time.Hour)))
}

func TestSeatCategoryValidity(t *testing.T) {
	require.True(t, CategorySilver.IsValid())
	require.True(t, CategoryGold.IsValid())
	require.True(t, CategoryPlatinum.IsValid())
	require.False(t, SeatCategory("DIAMOND").IsValid())
	require.False(t, SeatCategory("").IsValid())
}
