package locks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinebook/internal/shared/constants"

	"github.com/google/uuid"
)

var (
	// ErrContended means another holder currently owns the seat lock. This
	// is expected behavior under load, not a failure; callers must not
	// retry the same seat automatically.
	ErrContended = errors.New("seat lock contended")

	// ErrStoreUnavailable wraps lock store I/O failures. Fatal on acquire,
	// best-effort on release.
	ErrStoreUnavailable = errors.New("lock store unavailable")
)

// Manager provides at-most-one-holder mutual exclusion per seat of a show.
// A hold has exactly one fixed TTL window; there is no renewal. If payment
// cannot complete inside the window, the hold is lost and the caller must
// reserve again.
type Manager struct {
	store LockStore
}

// NewManager creates a seat lock manager on top of the given store
func NewManager(store LockStore) *Manager {
	return &Manager{store: store}
}

// TryLock attempts to acquire the lock for one seat on behalf of holderID.
// It fails fast with ErrContended when the store reports a lost race.
func (m *Manager) TryLock(ctx context.Context, showID uuid.UUID, seatNumber int, holderID uuid.UUID, ttl time.Duration) error {
	key := constants.SeatLockKey(showID, seatNumber)

	acquired, err := m.store.Acquire(ctx, key, holderID.String(), ttl)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !acquired {
		return ErrContended
	}

	return nil
}

// Unlock releases the seat lock if holderID still owns it. The store-side
// holder check makes it safe to call after the TTL has elapsed: a lock
// re-acquired by a new contender is never touched.
func (m *Manager) Unlock(ctx context.Context, showID uuid.UUID, seatNumber int, holderID uuid.UUID) error {
	key := constants.SeatLockKey(showID, seatNumber)

	if err := m.store.Release(ctx, key, holderID.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// Holder reports the current holder of a seat lock for diagnostics only.
// Mutual exclusion decisions go through TryLock, never through this read.
func (m *Manager) Holder(ctx context.Context, showID uuid.UUID, seatNumber int) (string, bool, error) {
	key := constants.SeatLockKey(showID, seatNumber)

	holder, ok, err := m.store.Peek(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return holder, ok, nil
}
