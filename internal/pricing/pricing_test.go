package pricing

import (
	"testing"
	"time"

	"cinebook/internal/catalog"

	"github.com/stretchr/testify/require"
)

// offPeak is an instant whose hour falls outside the 18-22 peak window.
func offPeak(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
}

func TestQuoteAllSurchargesStack(t *testing.T) {
	// Base 250, 30 minutes to showtime, 95% full, priced at 20:00.
	// 250 * 1.5 * 1.4 * 1.2 = 630.00
	now := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	start := now.Add(30 * time.Minute)

	require.Equal(t, 630.00, Quote(250, start, now, 0.95))
}

func TestQuoteNoSurcharges(t *testing.T) {
	now := offPeak(t)
	start := now.Add(48 * time.Hour)

	require.Equal(t, 250.00, Quote(250, start, now, 0.1))
}

func TestQuoteRoundsToTwoDecimals(t *testing.T) {
	now := offPeak(t)
	start := now.Add(30 * time.Minute)

	// 199.99 * 1.5 = 299.985, rounds to 299.99
	require.Equal(t, 299.99, Quote(199.99, start, now, 0.1))
}

func TestTimeMultiplierThresholds(t *testing.T) {
	now := offPeak(t)

	tests := []struct {
		name       string
		untilStart time.Duration
		want       float64
	}{
		{"30 minutes out", 30 * time.Minute, 1.5},
		{"exactly 1 hour", time.Hour, 1.5},
		{"2 hours out", 2 * time.Hour, 1.3},
		{"exactly 3 hours", 3 * time.Hour, 1.3},
		{"5 hours out", 5 * time.Hour, 1.15},
		{"exactly 6 hours", 6 * time.Hour, 1.15},
		{"next day", 24 * time.Hour, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quote(100, now.Add(tt.untilStart), now, 0)
			require.Equal(t, round2(100*tt.want), got)
		})
	}
}

func TestDemandMultiplierThresholds(t *testing.T) {
	now := offPeak(t)
	start := now.Add(24 * time.Hour)

	tests := []struct {
		name string
		fill float64
		want float64
	}{
		{"empty", 0.0, 1.0},
		{"just below half", 0.49, 1.0},
		{"exactly half", 0.5, 1.15},
		{"exactly 70 percent", 0.7, 1.25},
		{"exactly 90 percent", 0.9, 1.4},
		{"sold out", 1.0, 1.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quote(100, start, now, tt.fill)
			require.Equal(t, round2(100*tt.want), got)
		})
	}
}

func TestPeakMultiplierWindow(t *testing.T) {
	tests := []struct {
		hour int
		want float64
	}{
		{17, 1.0},
		{18, 1.2},
		{20, 1.2},
		{22, 1.2},
		{23, 1.0},
	}

	for _, tt := range tests {
		now := time.Date(2026, 3, 14, tt.hour, 30, 0, 0, time.UTC)
		start := now.Add(24 * time.Hour)
		got := Quote(100, start, now, 0)
		require.Equalf(t, round2(100*tt.want), got, "hour %d", tt.hour)
	}
}

func TestQuoteMonotonicInUrgency(t *testing.T) {
	now := offPeak(t)

	far := Quote(300, now.Add(48*time.Hour), now, 0.6)
	near := Quote(300, now.Add(4*time.Hour), now, 0.6)
	imminent := Quote(300, now.Add(20*time.Minute), now, 0.6)

	require.Less(t, far, near)
	require.Less(t, near, imminent)
}

func TestQuoteDeterministic(t *testing.T) {
	now := time.Date(2026, 3, 14, 19, 15, 0, 0, time.UTC)
	start := now.Add(2 * time.Hour)

	first := Quote(420, start, now, 0.75)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Quote(420, start, now, 0.75))
	}
}

func TestPriceSeatDerivesFillFromCounts(t *testing.T) {
	now := offPeak(t)
	show := &catalog.Show{
		StartTime:     now.Add(24 * time.Hour),
		PriceSilver:   100,
		PriceGold:     200,
		PricePlatinum: 400,
		SeatsSilver:   100,
		SeatsGold:     50,
		SeatsPlatinum: 10,
	}

	// 45 of 50 gold seats active, fill 0.9
	require.Equal(t, 280.00, PriceSeat(show, catalog.CategoryGold, 45, now))

	// 10 of 100 silver seats active, no demand surcharge
	require.Equal(t, 100.00, PriceSeat(show, catalog.CategorySilver, 10, now))
}

func TestPriceSeatZeroCapacityCategory(t *testing.T) {
	now := offPeak(t)
	show := &catalog.Show{
		StartTime:     now.Add(24 * time.Hour),
		PricePlatinum: 400,
		SeatsSilver:   100,
		PriceSilver:   100,
	}

	// No platinum seats configured; fill treated as zero rather than dividing by zero
	require.Equal(t, 400.00, PriceSeat(show, catalog.CategoryPlatinum, 0, now))
}
