package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TicketEventType identifies a ticket lifecycle event
type TicketEventType string

const (
	TicketEventHeld          TicketEventType = "ticket.held"
	TicketEventConfirmed     TicketEventType = "ticket.confirmed"
	TicketEventCancelled     TicketEventType = "ticket.cancelled"
	TicketEventExpired       TicketEventType = "ticket.expired"
	TicketEventPaymentFailed TicketEventType = "ticket.payment_failed"
)

// TicketEvent is the message published to Kafka whenever a ticket changes
// state. Downstream consumers (email, analytics) key off Type.
type TicketEvent struct {
	ID         uuid.UUID       `json:"id"`
	Type       TicketEventType `json:"type"`
	TicketID   uuid.UUID       `json:"ticket_id"`
	ShowID     uuid.UUID       `json:"show_id"`
	UserID     uuid.UUID       `json:"user_id"`
	SeatNumber int             `json:"seat_number"`
	Price      float64         `json:"price"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewTicketEvent builds an event with a fresh ID and the current timestamp
func NewTicketEvent(eventType TicketEventType, ticketID, showID, userID uuid.UUID, seatNumber int, price float64) *TicketEvent {
	return &TicketEvent{
		ID:         uuid.New(),
		Type:       eventType,
		TicketID:   ticketID,
		ShowID:     showID,
		UserID:     userID,
		SeatNumber: seatNumber,
		Price:      price,
		OccurredAt: time.Now(),
	}
}

// ToJSON serializes the event for the wire
func (e *TicketEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events for one show to the same partition so
// consumers see a show's ticket history in order.
func (e *TicketEvent) PartitionKey() string {
	return e.ShowID.String()
}
