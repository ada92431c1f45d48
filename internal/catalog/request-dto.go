package catalog

import "time"

// CreateShowRequest represents show creation request
type CreateShowRequest struct {
	Title     string    `json:"title" binding:"required"`
	Theater   string    `json:"theater" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`

	PriceSilver   float64 `json:"price_silver" binding:"required,gt=0"`
	PriceGold     float64 `json:"price_gold" binding:"required,gt=0"`
	PricePlatinum float64 `json:"price_platinum" binding:"required,gt=0"`

	SeatsSilver   int `json:"seats_silver" binding:"required,gt=0"`
	SeatsGold     int `json:"seats_gold" binding:"required,gt=0"`
	SeatsPlatinum int `json:"seats_platinum" binding:"required,gt=0"`
}
