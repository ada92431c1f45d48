package tickets

import (
	"context"
	"log"
	"time"
)

// Sweeper periodically expires tickets whose payment window has closed.
// It is the safety net behind the Redis TTL: the TTL frees the seat lock
// on its own, the sweeper settles the ticket row to match.
type Sweeper struct {
	service Service
	config  *SweeperConfig
	done    chan struct{}
}

// SweeperConfig contains configuration for the expiry sweeper
type SweeperConfig struct {
	Interval  time.Duration
	BatchSize int
}

// DefaultSweeperConfig returns default sweeper configuration
func DefaultSweeperConfig() *SweeperConfig {
	return &SweeperConfig{
		Interval:  1 * time.Minute,
		BatchSize: 100,
	}
}

// NewSweeper creates a new expiry sweeper
func NewSweeper(service Service, config *SweeperConfig) *Sweeper {
	if config == nil {
		config = DefaultSweeperConfig()
	}

	return &Sweeper{
		service: service,
		config:  config,
		done:    make(chan struct{}),
	}
}

// Start runs the sweep loop in the background until Stop is called or the
// context is cancelled
func (sw *Sweeper) Start(ctx context.Context) {
	log.Printf("Starting ticket expiry sweeper with %v interval", sw.config.Interval)
	go sw.run(ctx)
}

// Stop stops the sweep loop
func (sw *Sweeper) Stop() {
	log.Println("Stopping ticket expiry sweeper...")
	close(sw.done)
	log.Println("Ticket expiry sweeper stopped")
}

func (sw *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(sw.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sw.sweep(ctx)
		case <-sw.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (sw *Sweeper) sweep(ctx context.Context) {
	expired, err := sw.service.SweepExpired(ctx)
	if err != nil {
		log.Printf("Error sweeping expired tickets: %v", err)
		return
	}

	if expired > 0 {
		log.Printf("Expired %d tickets past their payment window", expired)
	}
}

// Status returns the sweeper configuration for diagnostics
func (sw *Sweeper) Status() map[string]interface{} {
	return map[string]interface{}{
		"interval":   sw.config.Interval.String(),
		"batch_size": sw.config.BatchSize,
		"status":     "running",
	}
}
