package payments

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface defines the contract for payment data access
type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByReference(ctx context.Context, reference string) (*Payment, error)
	GetByTicketID(ctx context.Context, ticketID uuid.UUID) ([]Payment, error)
	UpdateStatusIfPending(ctx context.Context, reference string, to Status) (int64, error)
}

// repository implements the Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new payment repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, payment *Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *repository) GetByReference(ctx context.Context, reference string) (*Payment, error) {
	var payment Payment
	if err := r.db.WithContext(ctx).First(&payment, "reference = ?", reference).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *repository) GetByTicketID(ctx context.Context, ticketID uuid.UUID) ([]Payment, error) {
	var pays []Payment
	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC").
		Find(&pays).Error
	if err != nil {
		return nil, err
	}
	return pays, nil
}

// UpdateStatusIfPending settles a payment only while it is still pending.
// Returns the number of rows changed; 0 means the payment was missing or
// already settled.
func (r *repository) UpdateStatusIfPending(ctx context.Context, reference string, to Status) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Payment{}).
		Where("reference = ? AND status = ?", reference, StatusPending).
		Update("status", to)
	return res.RowsAffected, res.Error
}
