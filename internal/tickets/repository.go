package tickets

import (
	"context"
	"time"

	"cinebook/internal/catalog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface defines the contract for ticket data access.
//
// State changes go through compare-and-set updates that name the states
// they are allowed to leave from. A zero rows-affected result means the
// ticket was concurrently moved elsewhere; callers re-read to find out
// where.
type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Ticket, error)

	// SetAwaitingPayment attaches the payment reference and moves
	// HOLDING to AWAITING_PAYMENT in one update.
	SetAwaitingPayment(ctx context.Context, id uuid.UUID, paymentRef string) (int64, error)

	// TransitionState moves the ticket to the target state only if it is
	// currently in one of the allowed states.
	TransitionState(ctx context.Context, id uuid.UUID, allowed []State, to State) (int64, error)

	// TransitionExpired moves the ticket to EXPIRED only if it is still
	// expirable and its hold deadline has passed.
	TransitionExpired(ctx context.Context, id uuid.UUID, now time.Time) (int64, error)

	// FindExpired returns candidates for the sweeper, oldest deadline first.
	FindExpired(ctx context.Context, now time.Time, limit int) ([]Ticket, error)

	// CountActive counts seats occupied in one category of one show.
	CountActive(ctx context.Context, showID uuid.UUID, category catalog.SeatCategory) (int64, error)
}

// repository implements the Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new ticket repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ticket *Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	var ticket Ticket
	if err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Ticket, error) {
	var list []Ticket
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) SetAwaitingPayment(ctx context.Context, id uuid.UUID, paymentRef string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("id = ? AND state = ?", id, StateHolding).
		Updates(map[string]interface{}{
			"state":       StateAwaitingPayment,
			"payment_ref": paymentRef,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) TransitionState(ctx context.Context, id uuid.UUID, allowed []State, to State) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("id = ? AND state IN ?", id, allowed).
		Update("state", to)
	return res.RowsAffected, res.Error
}

func (r *repository) TransitionExpired(ctx context.Context, id uuid.UUID, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("id = ? AND state IN ? AND hold_expiry < ?",
			id, []State{StateHolding, StateAwaitingPayment}, now).
		Update("state", StateExpired)
	return res.RowsAffected, res.Error
}

func (r *repository) FindExpired(ctx context.Context, now time.Time, limit int) ([]Ticket, error) {
	var list []Ticket
	err := r.db.WithContext(ctx).
		Where("state IN ? AND hold_expiry < ?",
			[]State{StateHolding, StateAwaitingPayment}, now).
		Order("hold_expiry ASC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) CountActive(ctx context.Context, showID uuid.UUID, category catalog.SeatCategory) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("show_id = ? AND seat_category = ? AND state IN ?",
			showID, category, ActiveStates()).
		Count(&count).Error
	return count, err
}
