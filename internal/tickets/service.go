package tickets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cinebook/internal/catalog"
	"cinebook/internal/locks"
	"cinebook/internal/notifications"
	"cinebook/internal/payments"
	"cinebook/internal/pricing"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/constants"
	"cinebook/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeatLocker provides at-most-one-holder seat locks. The ticket ID is the
// lock holder, so a lock can only ever be released on behalf of the ticket
// that acquired it.
type SeatLocker interface {
	TryLock(ctx context.Context, showID uuid.UUID, seatNumber int, holderID uuid.UUID, ttl time.Duration) error
	Unlock(ctx context.Context, showID uuid.UUID, seatNumber int, holderID uuid.UUID) error
}

// ShowReader exposes the slice of the catalog the booking flow needs
type ShowReader interface {
	GetShow(ctx context.Context, showID uuid.UUID) (*catalog.Show, error)
}

// PaymentGateway opens payments and reports their settlement state
type PaymentGateway interface {
	CreateForTicket(ctx context.Context, ticketID uuid.UUID, amount float64) (*payments.Payment, error)
	StatusByReference(ctx context.Context, reference string) (payments.Status, error)
}

// EventPublisher emits ticket lifecycle events. Publishing is best effort;
// a broker outage never fails a booking.
type EventPublisher interface {
	Publish(ctx context.Context, event *notifications.TicketEvent) error
}

// Service interface defines the contract for ticket business logic
type Service interface {
	// Reserve acquires the seat lock, prices the seat and creates a
	// HOLDING ticket with a payment deadline.
	Reserve(ctx context.Context, userID uuid.UUID, req ReserveTicketRequest) (*Ticket, error)

	// BeginPayment opens a pending payment for a held ticket and moves it
	// to AWAITING_PAYMENT.
	BeginPayment(ctx context.Context, userID, ticketID uuid.UUID) (*Ticket, *payments.Payment, error)

	// Confirm finalizes the ticket once its payment has settled as confirmed.
	Confirm(ctx context.Context, userID, ticketID uuid.UUID) (*Ticket, error)

	// Cancel voids a not-yet-confirmed ticket and frees the seat.
	Cancel(ctx context.Context, userID, ticketID uuid.UUID) (*Ticket, error)

	GetTicket(ctx context.Context, userID, ticketID uuid.UUID) (*Ticket, error)
	GetUserTickets(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Ticket, error)

	// SweepExpired expires one batch of tickets whose payment window has
	// closed. Returns how many tickets it expired.
	SweepExpired(ctx context.Context) (int, error)
}

// service implements the Service interface
type service struct {
	repo      Repository
	locker    SeatLocker
	shows     ShowReader
	gateway   PaymentGateway
	publisher EventPublisher
	config    *config.Config
	logger    *logger.Logger

	// now is swappable so expiry behavior is testable without sleeping
	now func() time.Time
}

// NewService creates a new ticket service instance. The publisher may be
// nil when eventing is disabled.
func NewService(repo Repository, locker SeatLocker, shows ShowReader, gateway PaymentGateway,
	publisher EventPublisher, cfg *config.Config, log *logger.Logger) Service {
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		repo:      repo,
		locker:    locker,
		shows:     shows,
		gateway:   gateway,
		publisher: publisher,
		config:    cfg,
		logger:    log,
		now:       time.Now,
	}
}

func (s *service) Reserve(ctx context.Context, userID uuid.UUID, req ReserveTicketRequest) (*Ticket, error) {
	show, err := s.shows.GetShow(ctx, req.ShowID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if show.HasStarted(now) {
		return nil, ErrShowStarted
	}

	category, ok := show.CategoryFor(req.SeatNumber)
	if !ok {
		return nil, ErrInvalidSeat
	}

	// The ticket ID doubles as the lock holder, so it must exist before
	// the row does.
	ticketID := uuid.New()
	ttl := s.config.Redis.SeatHoldTTL

	if err := s.locker.TryLock(ctx, show.ID, req.SeatNumber, ticketID, ttl); err != nil {
		if errors.Is(err, locks.ErrContended) {
			s.logger.LogSeatContended(ctx, show.ID.String(), userID.String(), req.SeatNumber)
			return nil, ErrSeatContended
		}
		return nil, err
	}

	// From here on the lock must not leak: any failure path releases it.
	created := false
	defer func() {
		if created {
			return
		}
		if err := s.locker.Unlock(ctx, show.ID, req.SeatNumber, ticketID); err != nil {
			s.logger.LogLockReleaseFailure(ctx, constants.SeatLockKey(show.ID, req.SeatNumber), err)
		}
	}()

	active, err := s.repo.CountActive(ctx, show.ID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to count active tickets: %w", err)
	}

	ticket := &Ticket{
		ID:           ticketID,
		ShowID:       show.ID,
		SeatNumber:   req.SeatNumber,
		SeatCategory: category,
		UserID:       userID,
		Price:        pricing.PriceSeat(show, category, int(active), now),
		State:        StateHolding,
		HoldExpiry:   now.Add(ttl),
	}

	if err := s.repo.Create(ctx, ticket); err != nil {
		// The partial unique index rejects a second active ticket for the
		// seat. Reachable when a confirmed ticket outlives its lock.
		if isUniqueViolation(err) {
			return nil, ErrSeatContended
		}
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	created = true

	s.logger.LogSeatHeld(ctx, ticket.ID.String(), show.ID.String(), userID.String(), req.SeatNumber)
	s.publish(ctx, notifications.TicketEventHeld, ticket)

	return ticket, nil
}

func (s *service) BeginPayment(ctx context.Context, userID, ticketID uuid.UUID) (*Ticket, *payments.Payment, error) {
	ticket, err := s.ownedTicket(ctx, userID, ticketID)
	if err != nil {
		return nil, nil, err
	}

	if !ticket.State.CanBeginPayment() {
		return nil, nil, s.stateError(ticket.State)
	}
	if ticket.HoldExpired(s.now()) {
		return nil, nil, ErrHoldExpired
	}

	payment, err := s.gateway.CreateForTicket(ctx, ticket.ID, ticket.Price)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open payment: %w", err)
	}

	rows, err := s.repo.SetAwaitingPayment(ctx, ticket.ID, payment.Reference)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update ticket: %w", err)
	}
	if rows == 0 {
		return nil, nil, s.transitionConflict(ctx, ticket.ID)
	}

	ticket.State = StateAwaitingPayment
	ticket.PaymentRef = &payment.Reference

	s.logger.LogTicketTransition(ctx, ticket.ID.String(), StateHolding.String(), StateAwaitingPayment.String())
	return ticket, payment, nil
}

func (s *service) Confirm(ctx context.Context, userID, ticketID uuid.UUID) (*Ticket, error) {
	ticket, err := s.ownedTicket(ctx, userID, ticketID)
	if err != nil {
		return nil, err
	}

	if ticket.State == StateConfirmed {
		return nil, ErrAlreadyConfirmed
	}
	// A held ticket with no payment opened yet is not a transition error,
	// just a payment that has not happened
	if ticket.State == StateHolding {
		return nil, ErrPaymentNotConfirmed
	}
	if !ticket.State.CanConfirm() {
		return nil, ErrInvalidTransition
	}
	if ticket.PaymentRef == nil {
		return nil, ErrPaymentNotConfirmed
	}

	status, err := s.gateway.StatusByReference(ctx, *ticket.PaymentRef)
	if err != nil {
		return nil, fmt.Errorf("failed to check payment status: %w", err)
	}

	switch status {
	case payments.StatusConfirmed:
		// fall through to the confirmation transition
	case payments.StatusFailed:
		rows, err := s.repo.TransitionState(ctx, ticket.ID, []State{StateAwaitingPayment}, StatePaymentFailed)
		if err != nil {
			return nil, fmt.Errorf("failed to update ticket: %w", err)
		}
		if rows > 0 {
			ticket.State = StatePaymentFailed
			s.logger.LogTicketTransition(ctx, ticket.ID.String(), StateAwaitingPayment.String(), StatePaymentFailed.String())
			s.releaseSeat(ctx, ticket)
			s.publish(ctx, notifications.TicketEventPaymentFailed, ticket)
		}
		return nil, ErrPaymentFailed
	default:
		return nil, ErrPaymentNotConfirmed
	}

	rows, err := s.repo.TransitionState(ctx, ticket.ID, []State{StateAwaitingPayment}, StateConfirmed)
	if err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}
	if rows == 0 {
		return nil, s.transitionConflict(ctx, ticket.ID)
	}

	ticket.State = StateConfirmed

	// The database row now guards the seat; the Redis hold is redundant
	// and releasing it early lets diagnostics see a clean keyspace.
	s.releaseSeat(ctx, ticket)

	s.logger.LogTicketTransition(ctx, ticket.ID.String(), StateAwaitingPayment.String(), StateConfirmed.String())
	s.publish(ctx, notifications.TicketEventConfirmed, ticket)

	return ticket, nil
}

func (s *service) Cancel(ctx context.Context, userID, ticketID uuid.UUID) (*Ticket, error) {
	ticket, err := s.ownedTicket(ctx, userID, ticketID)
	if err != nil {
		return nil, err
	}

	if !ticket.State.CanCancel() {
		return nil, s.stateError(ticket.State)
	}

	from := ticket.State
	rows, err := s.repo.TransitionState(ctx, ticket.ID,
		[]State{StateHolding, StateAwaitingPayment}, StateCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}
	if rows == 0 {
		return nil, s.transitionConflict(ctx, ticket.ID)
	}

	ticket.State = StateCancelled
	s.releaseSeat(ctx, ticket)

	s.logger.LogTicketTransition(ctx, ticket.ID.String(), from.String(), StateCancelled.String())
	s.publish(ctx, notifications.TicketEventCancelled, ticket)

	return ticket, nil
}

func (s *service) GetTicket(ctx context.Context, userID, ticketID uuid.UUID) (*Ticket, error) {
	return s.ownedTicket(ctx, userID, ticketID)
}

func (s *service) GetUserTickets(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Ticket, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.GetByUserID(ctx, userID, limit, offset)
}

func (s *service) SweepExpired(ctx context.Context) (int, error) {
	now := s.now()

	batch, err := s.repo.FindExpired(ctx, now, s.config.Sweeper.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to find expired tickets: %w", err)
	}

	expired := 0
	for i := range batch {
		ticket := &batch[i]

		// Compare-and-set per ticket: a confirm or cancel racing the
		// sweeper wins by moving the state first.
		rows, err := s.repo.TransitionExpired(ctx, ticket.ID, now)
		if err != nil {
			s.logger.ErrorWithContext(ctx, "failed to expire ticket", err,
				map[string]interface{}{"ticket_id": ticket.ID.String()})
			continue
		}
		if rows == 0 {
			continue
		}

		from := ticket.State
		ticket.State = StateExpired
		expired++

		s.logger.LogTicketTransition(ctx, ticket.ID.String(), from.String(), StateExpired.String())
		s.releaseSeat(ctx, ticket)
		s.publish(ctx, notifications.TicketEventExpired, ticket)
	}

	if expired > 0 {
		s.logger.LogSweep(ctx, expired)
	}
	return expired, nil
}

// ownedTicket loads a ticket and verifies the caller owns it
func (s *service) ownedTicket(ctx context.Context, userID, ticketID uuid.UUID) (*Ticket, error) {
	ticket, err := s.repo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if ticket.UserID != userID {
		return nil, ErrNotOwner
	}
	return ticket, nil
}

// transitionConflict re-reads a ticket after a lost compare-and-set to
// report what actually happened.
func (s *service) transitionConflict(ctx context.Context, ticketID uuid.UUID) error {
	ticket, err := s.repo.GetByID(ctx, ticketID)
	if err != nil {
		return ErrInvalidTransition
	}
	return s.stateError(ticket.State)
}

func (s *service) stateError(state State) error {
	if state == StateConfirmed {
		return ErrAlreadyConfirmed
	}
	return ErrInvalidTransition
}

// releaseSeat frees the Redis hold once the database owns the outcome.
// Failure is logged, never surfaced; the TTL reclaims the key regardless.
func (s *service) releaseSeat(ctx context.Context, ticket *Ticket) {
	if err := s.locker.Unlock(ctx, ticket.ShowID, ticket.SeatNumber, ticket.ID); err != nil {
		s.logger.LogLockReleaseFailure(ctx, constants.SeatLockKey(ticket.ShowID, ticket.SeatNumber), err)
	}
}

func (s *service) publish(ctx context.Context, eventType notifications.TicketEventType, ticket *Ticket) {
	if s.publisher == nil {
		return
	}
	event := notifications.NewTicketEvent(eventType, ticket.ID, ticket.ShowID, ticket.UserID,
		ticket.SeatNumber, ticket.Price)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorWithContext(ctx, "failed to publish ticket event", err, map[string]interface{}{
			"event_type": string(eventType),
			"ticket_id":  ticket.ID.String(),
		})
	}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key")
}
