package pricing

import (
	"math"
	"time"

	"cinebook/internal/catalog"
)

// Dynamic seat pricing. The final price is the category base price scaled
// by three independent step multipliers:
//
//	finalPrice = base * timeMultiplier * demandMultiplier * peakMultiplier
//
// Every input (clock included) is passed in, so the same arguments always
// produce the same price.

// Quote computes the price for one seat given its category base price, the
// show start time, the pricing instant and the category fill ratio.
// The result is rounded to 2 decimal places.
func Quote(basePrice float64, showStart, now time.Time, fillRatio float64) float64 {
	hoursToShow := showStart.Sub(now).Hours()

	price := basePrice *
		timeMultiplier(hoursToShow) *
		demandMultiplier(fillRatio) *
		peakMultiplier(now.Hour())

	return round2(price)
}

// PriceSeat derives the fill ratio from a demand snapshot and quotes the
// seat. activeCount must include currently held seats, not only confirmed
// ones; counting confirmed seats alone under-prices a surge of concurrent
// holds.
func PriceSeat(show *catalog.Show, category catalog.SeatCategory, activeCount int, now time.Time) float64 {
	total := show.TotalSeats(category)

	var fill float64
	if total > 0 {
		fill = float64(activeCount) / float64(total)
	}

	return Quote(show.BasePrice(category), show.StartTime, now, fill)
}

// timeMultiplier scales by urgency. Step function, nearest threshold wins.
func timeMultiplier(hoursToShow float64) float64 {
	switch {
	case hoursToShow <= 1:
		return 1.5
	case hoursToShow <= 3:
		return 1.3
	case hoursToShow <= 6:
		return 1.15
	default:
		return 1.0
	}
}

// demandMultiplier scales by how full the category already is
func demandMultiplier(fillRatio float64) float64 {
	switch {
	case fillRatio >= 0.9:
		return 1.4
	case fillRatio >= 0.7:
		return 1.25
	case fillRatio >= 0.5:
		return 1.15
	default:
		return 1.0
	}
}

// peakMultiplier scales evening showtime demand, hours 18 through 22
func peakMultiplier(hourOfDay int) float64 {
	if hourOfDay >= 18 && hourOfDay <= 22 {
		return 1.2
	}
	return 1.0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
