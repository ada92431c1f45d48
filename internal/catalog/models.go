package catalog

import (
	"time"

	"github.com/google/uuid"
)

// SeatCategory is the pricing tier of a seat
type SeatCategory string

const (
	CategorySilver   SeatCategory = "SILVER"
	CategoryGold     SeatCategory = "GOLD"
	CategoryPlatinum SeatCategory = "PLATINUM"
)

// IsValid checks if the seat category is a known tier
func (c SeatCategory) IsValid() bool {
	switch c {
	case CategorySilver, CategoryGold, CategoryPlatinum:
		return true
	}
	return false
}

// String returns the string representation of SeatCategory
func (c SeatCategory) String() string {
	return string(c)
}

// Show defines one screening of a movie in one theater. The catalog owns
// base prices and per-category capacities; the reservation core only reads
// them.
type Show struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Theater   string    `gorm:"not null" json:"theater"`
	StartTime time.Time `gorm:"index;not null" json:"start_time"`

	// Base price per seat category
	PriceSilver   float64 `gorm:"not null" json:"price_silver"`
	PriceGold     float64 `gorm:"not null" json:"price_gold"`
	PricePlatinum float64 `gorm:"not null" json:"price_platinum"`

	// Capacity per seat category. Seats are numbered contiguously per
	// show: silver first, then gold, then platinum.
	SeatsSilver   int `gorm:"not null" json:"seats_silver"`
	SeatsGold     int `gorm:"not null" json:"seats_gold"`
	SeatsPlatinum int `gorm:"not null" json:"seats_platinum"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for Show
func (Show) TableName() string {
	return "shows"
}

// BasePrice returns the base price for a seat category
func (s *Show) BasePrice(category SeatCategory) float64 {
	switch category {
	case CategoryGold:
		return s.PriceGold
	case CategoryPlatinum:
		return s.PricePlatinum
	default:
		return s.PriceSilver
	}
}

// TotalSeats returns the capacity of a seat category
func (s *Show) TotalSeats(category SeatCategory) int {
	switch category {
	case CategoryGold:
		return s.SeatsGold
	case CategoryPlatinum:
		return s.SeatsPlatinum
	default:
		return s.SeatsSilver
	}
}

// Capacity returns the total number of seats across all categories
func (s *Show) Capacity() int {
	return s.SeatsSilver + s.SeatsGold + s.SeatsPlatinum
}

// CategoryFor maps a seat number to its category. Returns false when the
// seat number is outside the show's seat range.
func (s *Show) CategoryFor(seatNumber int) (SeatCategory, bool) {
	switch {
	case seatNumber < 1 || seatNumber > s.Capacity():
		return "", false
	case seatNumber <= s.SeatsSilver:
		return CategorySilver, true
	case seatNumber <= s.SeatsSilver+s.SeatsGold:
		return CategoryGold, true
	default:
		return CategoryPlatinum, true
	}
}

// HasStarted reports whether the show has already begun at the given time
func (s *Show) HasStarted(now time.Time) bool {
	return !now.Before(s.StartTime)
}
