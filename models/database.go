package models

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const connectAttempts = 10

// Connect opens a Postgres connection, retrying while the database comes up.
func Connect(dsn string) (*gorm.DB, error) {
	var lastErr error
	for i := 0; i < connectAttempts; i++ {
		db, err := gorm.Open(postgres.Open(dsn))
		if err == nil {
			return db, nil
		}
		lastErr = err
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("connecting to database: %w", lastErr)
}

// Migrate creates or updates the three storefront tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Admin{},
		&Catalogue{},
		&Product{},
	)
}
