package tickets

import (
	"time"

	"cinebook/internal/catalog"

	"github.com/google/uuid"
)

// Ticket is one user's claim on one seat of one show. The price is frozen
// at reservation time; later demand changes never reprice an existing
// ticket.
type Ticket struct {
	ID           uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	ShowID       uuid.UUID            `gorm:"type:uuid;index;not null" json:"show_id"`
	SeatNumber   int                  `gorm:"not null" json:"seat_number"`
	SeatCategory catalog.SeatCategory `gorm:"not null" json:"seat_category"`
	UserID       uuid.UUID            `gorm:"type:uuid;index;not null" json:"user_id"`
	Price        float64              `gorm:"not null" json:"price"`
	State        State                `gorm:"not null;default:'HOLDING'" json:"state"`

	// PaymentRef is set when payment begins and never changes afterwards
	PaymentRef *string `gorm:"index" json:"payment_ref,omitempty"`

	// HoldExpiry is the deadline for completing payment. It mirrors the
	// Redis lock TTL; past this instant the sweeper may expire the ticket.
	HoldExpiry time.Time `gorm:"not null" json:"hold_expiry"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}

// HoldExpired reports whether the payment window has closed
func (t *Ticket) HoldExpired(now time.Time) bool {
	return !now.Before(t.HoldExpiry)
}
