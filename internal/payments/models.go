package payments

import (
	"time"

	"github.com/google/uuid"
)

// Status is the settlement state of a payment
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusFailed    Status = "FAILED"
	StatusRefunded  Status = "REFUNDED"
)

// IsValid checks if the status is a known payment status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// IsSettled reports whether the payment has reached a settlement outcome
func (s Status) IsSettled() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Payment records one payment attempt for a ticket. A ticket may accumulate
// several payment rows when earlier attempts fail; each carries its own
// reference.
type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Reference string    `gorm:"uniqueIndex;not null" json:"reference"`
	TicketID  uuid.UUID `gorm:"type:uuid;index;not null" json:"ticket_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Status    Status    `gorm:"not null;default:'PENDING'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
