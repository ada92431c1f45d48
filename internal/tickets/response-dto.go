package tickets

import (
	"time"

	"cinebook/internal/payments"

	"github.com/google/uuid"
)

// TicketResponse is the API shape of a ticket
type TicketResponse struct {
	ID           uuid.UUID `json:"id"`
	ShowID       uuid.UUID `json:"show_id"`
	SeatNumber   int       `json:"seat_number"`
	SeatCategory string    `json:"seat_category"`
	Price        float64   `json:"price"`
	State        string    `json:"state"`
	PaymentRef   *string   `json:"payment_ref,omitempty"`
	HoldExpiry   time.Time `json:"hold_expiry"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToResponse converts a ticket to its API shape
func (t *Ticket) ToResponse() TicketResponse {
	return TicketResponse{
		ID:           t.ID,
		ShowID:       t.ShowID,
		SeatNumber:   t.SeatNumber,
		SeatCategory: t.SeatCategory.String(),
		Price:        t.Price,
		State:        t.State.String(),
		PaymentRef:   t.PaymentRef,
		HoldExpiry:   t.HoldExpiry,
		CreatedAt:    t.CreatedAt,
	}
}

// BeginPaymentResponse pairs the updated ticket with its new payment
type BeginPaymentResponse struct {
	Ticket  TicketResponse    `json:"ticket"`
	Payment *payments.Payment `json:"payment"`
}
