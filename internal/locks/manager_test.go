package locks

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// memoryLockStore is an in-memory LockStore with real TTL expiry, used to
// test the manager without a Redis instance.
type memoryLockStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	holder    string
	expiresAt time.Time
}

func newMemoryLockStore() *memoryLockStore {
	return &memoryLockStore{entries: make(map[string]memoryEntry)}
}

func (s *memoryLockStore) Acquire(_ context.Context, key, holder string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok && time.Now().Before(entry.expiresAt) {
		return false, nil
	}

	s.entries[key] = memoryEntry{holder: holder, expiresAt: time.Now().Add(ttl)}
	return true, nil
}

func (s *memoryLockStore) Release(_ context.Context, key, holder string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok && entry.holder == holder {
		delete(s.entries, key)
	}
	return nil
}

func (s *memoryLockStore) Peek(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", false, nil
	}
	return entry.holder, true, nil
}

func TestTryLockSingleWinnerUnderContention(t *testing.T) {
	manager := NewManager(newMemoryLockStore())
	showID := uuid.New()

	const contenders = 50

	var wg sync.WaitGroup
	var mu sync.Mutex
	var winners, contended int

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := manager.TryLock(context.Background(), showID, 7, uuid.New(), time.Minute)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners++
			case err == ErrContended:
				contended++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, winners, "exactly one contender must win the lock")
	require.Equal(t, contenders-1, contended)
}

func TestTryLockDifferentSeatsDoNotContend(t *testing.T) {
	manager := NewManager(newMemoryLockStore())
	showID := uuid.New()

	require.NoError(t, manager.TryLock(context.Background(), showID, 1, uuid.New(), time.Minute))
	require.NoError(t, manager.TryLock(context.Background(), showID, 2, uuid.New(), time.Minute))
}

func TestTryLockSameSeatDifferentShows(t *testing.T) {
	// Seat numbering is per-show; seat 7 of two shows must not collide.
	manager := NewManager(newMemoryLockStore())

	require.NoError(t, manager.TryLock(context.Background(), uuid.New(), 7, uuid.New(), time.Minute))
	require.NoError(t, manager.TryLock(context.Background(), uuid.New(), 7, uuid.New(), time.Minute))
}

func TestUnlockOnlyByHolder(t *testing.T) {
	store := newMemoryLockStore()
	manager := NewManager(store)
	showID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	require.NoError(t, manager.TryLock(context.Background(), showID, 3, owner, time.Minute))

	// Release by a non-holder is a no-op, the lock stays in place
	require.NoError(t, manager.Unlock(context.Background(), showID, 3, stranger))
	holder, ok, err := manager.Holder(context.Background(), showID, 3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, owner.String(), holder)

	// Release by the holder frees the seat for the next contender
	require.NoError(t, manager.Unlock(context.Background(), showID, 3, owner))
	_, ok, err = manager.Holder(context.Background(), showID, 3)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, manager.TryLock(context.Background(), showID, 3, stranger, time.Minute))
}

func TestLockExpiryFreesSeat(t *testing.T) {
	manager := NewManager(newMemoryLockStore())
	showID := uuid.New()
	first := uuid.New()
	second := uuid.New()

	require.NoError(t, manager.TryLock(context.Background(), showID, 9, first, 10*time.Millisecond))
	require.ErrorIs(t, manager.TryLock(context.Background(), showID, 9, second, time.Minute), ErrContended)

	time.Sleep(20 * time.Millisecond)

	require.NoError(t, manager.TryLock(context.Background(), showID, 9, second, time.Minute))
}

func TestUnlockAfterExpiryAndReacquire(t *testing.T) {
	// The first holder's late release must not evict the new holder.
	manager := NewManager(newMemoryLockStore())
	showID := uuid.New()
	first := uuid.New()
	second := uuid.New()

	require.NoError(t, manager.TryLock(context.Background(), showID, 5, first, 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, manager.TryLock(context.Background(), showID, 5, second, time.Minute))

	require.NoError(t, manager.Unlock(context.Background(), showID, 5, first))

	holder, ok, err := manager.Holder(context.Background(), showID, 5)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, second.String(), holder)
}
