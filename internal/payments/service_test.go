package payments

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRepo is an in-memory Repository keyed by reference
type fakeRepo struct {
	mu       sync.Mutex
	byRef    map[string]*Payment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byRef: map[string]*Payment{}}
}

func (r *fakeRepo) Create(ctx context.Context, payment *Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *payment
	cp.ID = uuid.New()
	r.byRef[payment.Reference] = &cp
	payment.ID = cp.ID
	return nil
}

func (r *fakeRepo) GetByReference(ctx context.Context, reference string) (*Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.byRef[reference]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *payment
	return &cp, nil
}

func (r *fakeRepo) GetByTicketID(ctx context.Context, ticketID uuid.UUID) ([]Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var list []Payment
	for _, payment := range r.byRef {
		if payment.TicketID == ticketID {
			list = append(list, *payment)
		}
	}
	return list, nil
}

func (r *fakeRepo) UpdateStatusIfPending(ctx context.Context, reference string, to Status) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.byRef[reference]
	if !ok || payment.Status != StatusPending {
		return 0, nil
	}
	payment.Status = to
	return 1, nil
}

func TestCreateForTicketOpensPendingPayment(t *testing.T) {
	svc := NewService(newFakeRepo())

	ticketID := uuid.New()
	payment, err := svc.CreateForTicket(context.Background(), ticketID, 630.00)
	require.NoError(t, err)

	require.Equal(t, StatusPending, payment.Status)
	require.Equal(t, ticketID, payment.TicketID)
	require.Equal(t, 630.00, payment.Amount)
	require.True(t, strings.HasPrefix(payment.Reference, "PAY-"))
}

func TestReferencesAreUniquePerPayment(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		payment, err := svc.CreateForTicket(ctx, uuid.New(), 100)
		require.NoError(t, err)
		require.False(t, seen[payment.Reference], "duplicate reference %s", payment.Reference)
		seen[payment.Reference] = true
	}
}

func TestSettleConfirmsPendingPayment(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	payment, err := svc.CreateForTicket(ctx, uuid.New(), 250)
	require.NoError(t, err)

	settled, err := svc.Settle(ctx, payment.Reference, StatusConfirmed)
	require.NoError(t, err)
	require.Equal(t, StatusConfirmed, settled.Status)

	status, err := svc.StatusByReference(ctx, payment.Reference)
	require.NoError(t, err)
	require.Equal(t, StatusConfirmed, status)
}

func TestSettleFailsPendingPayment(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	payment, err := svc.CreateForTicket(ctx, uuid.New(), 250)
	require.NoError(t, err)

	settled, err := svc.Settle(ctx, payment.Reference, StatusFailed)
	require.NoError(t, err)
	require.Equal(t, StatusFailed, settled.Status)
}

func TestSettleIsNotRepeatable(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	payment, err := svc.CreateForTicket(ctx, uuid.New(), 250)
	require.NoError(t, err)

	_, err = svc.Settle(ctx, payment.Reference, StatusConfirmed)
	require.NoError(t, err)

	// A second settlement must not flip the outcome
	current, err := svc.Settle(ctx, payment.Reference, StatusFailed)
	require.ErrorIs(t, err, ErrAlreadySettled)
	require.Equal(t, StatusConfirmed, current.Status)
}

func TestSettleValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Settle(ctx, "PAY-missing", StatusConfirmed)
	require.ErrorIs(t, err, ErrPaymentNotFound)

	payment, err := svc.CreateForTicket(ctx, uuid.New(), 250)
	require.NoError(t, err)

	_, err = svc.Settle(ctx, payment.Reference, StatusRefunded)
	require.ErrorIs(t, err, ErrInvalidOutcome)
	_, err = svc.Settle(ctx, payment.Reference, StatusPending)
	require.ErrorIs(t, err, ErrInvalidOutcome)
}
