package tickets

import "github.com/google/uuid"

// ReserveTicketRequest represents a seat reservation request
type ReserveTicketRequest struct {
	ShowID     uuid.UUID `json:"show_id" binding:"required"`
	SeatNumber int       `json:"seat_number" binding:"required,gt=0"`
}
