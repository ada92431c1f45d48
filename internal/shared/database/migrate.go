package database

import (
	"cinebook/internal/catalog"
	"cinebook/internal/payments"
	"cinebook/internal/tickets"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&catalog.Show{},
		&tickets.Ticket{},
		&payments.Payment{},
	); err != nil {
		return err
	}
	return MigrateConstraints(db)
}
