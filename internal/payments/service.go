package payments

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrPaymentNotFound is returned when no payment matches the reference
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrAlreadySettled is returned when settling a payment that is no longer pending
	ErrAlreadySettled = errors.New("payment already settled")
	// ErrInvalidOutcome is returned when the settlement outcome is not CONFIRMED or FAILED
	ErrInvalidOutcome = errors.New("settlement outcome must be CONFIRMED or FAILED")
)

// Service interface defines the contract for payment business logic
type Service interface {
	// CreateForTicket opens a pending payment for the ticket and returns it
	// with a freshly generated reference.
	CreateForTicket(ctx context.Context, ticketID uuid.UUID, amount float64) (*Payment, error)

	// StatusByReference reports the current settlement state of a payment.
	StatusByReference(ctx context.Context, reference string) (Status, error)

	// Settle moves a pending payment to CONFIRMED or FAILED.
	Settle(ctx context.Context, reference string, outcome Status) (*Payment, error)

	GetByReference(ctx context.Context, reference string) (*Payment, error)
	ListForTicket(ctx context.Context, ticketID uuid.UUID) ([]Payment, error)
}

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new payment service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateForTicket(ctx context.Context, ticketID uuid.UUID, amount float64) (*Payment, error) {
	payment := &Payment{
		Reference: newReference(),
		TicketID:  ticketID,
		Amount:    amount,
		Status:    StatusPending,
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return payment, nil
}

func (s *service) StatusByReference(ctx context.Context, reference string) (Status, error) {
	payment, err := s.GetByReference(ctx, reference)
	if err != nil {
		return "", err
	}
	return payment.Status, nil
}

func (s *service) Settle(ctx context.Context, reference string, outcome Status) (*Payment, error) {
	if outcome != StatusConfirmed && outcome != StatusFailed {
		return nil, ErrInvalidOutcome
	}

	rows, err := s.repo.UpdateStatusIfPending(ctx, reference, outcome)
	if err != nil {
		return nil, fmt.Errorf("failed to settle payment: %w", err)
	}
	if rows == 0 {
		// Either the reference is unknown or the payment was settled already;
		// re-read to tell the two apart.
		payment, err := s.GetByReference(ctx, reference)
		if err != nil {
			return nil, err
		}
		return payment, ErrAlreadySettled
	}

	return s.GetByReference(ctx, reference)
}

func (s *service) GetByReference(ctx context.Context, reference string) (*Payment, error) {
	payment, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}

func (s *service) ListForTicket(ctx context.Context, ticketID uuid.UUID) ([]Payment, error) {
	return s.repo.GetByTicketID(ctx, ticketID)
}

// newReference builds a payment reference of the form PAY-<millis>-<suffix>.
// The random suffix keeps references unique when two payments open within
// the same millisecond; the database unique index is the real guarantee.
func newReference() string {
	return fmt.Sprintf("PAY-%d-%04d", time.Now().UnixMilli(), rand.Intn(10000))
}
