package tickets

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSweeperExpiresTicketsInBackground(t *testing.T) {
	f := newFixture(t)
	show := f.addShow()
	ctx := context.Background()

	held, err := f.svc.Reserve(ctx, uuid.New(), ReserveTicketRequest{ShowID: show.ID, SeatNumber: 1})
	require.NoError(t, err)

	f.advance(11 * time.Minute)

	sweeper := NewSweeper(f.svc, &SweeperConfig{Interval: 10 * time.Millisecond, BatchSize: 100})
	sweeper.Start(ctx)
	defer sweeper.Stop()

	require.Eventually(t, func() bool {
		return f.repo.state(t, held.ID) == StateExpired
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSweeperStopEndsLoop(t *testing.T) {
	f := newFixture(t)

	sweeper := NewSweeper(f.svc, &SweeperConfig{Interval: 5 * time.Millisecond, BatchSize: 10})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper.Start(ctx)
	sweeper.Stop()
	// A second Stop would panic on the closed channel; one Stop per
	// sweeper is the contract.
}

func TestDefaultSweeperConfig(t *testing.T) {
	cfg := DefaultSweeperConfig()
	require.Equal(t, time.Minute, cfg.Interval)
	require.Equal(t, 100, cfg.BatchSize)
}
