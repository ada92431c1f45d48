package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// At most one live ticket per seat of a show. The Redis lock is the
	// primary mutual-exclusion mechanism; this partial index is the durable
	// backstop should a lock ever be bypassed.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_active_ticket_per_seat
		ON tickets (show_id, seat_number)
		WHERE state IN ('HOLDING', 'AWAITING_PAYMENT', 'CONFIRMED');
	`).Error
	if err != nil {
		return err
	}

	// Sweeper scan: expired holds by deadline
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_state_hold_expiry
		ON tickets (state, hold_expiry);
	`).Error
	if err != nil {
		return err
	}

	// Demand counting per show and category
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_show_category_state
		ON tickets (show_id, seat_category, state);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
