package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"infinite-experiment/airport-lookup/internal/logging"
	gormModels "infinite-experiment/airport-lookup/internal/models/gorm"
)

// SyncSchema creates or updates the countries, cities and airports tables.
func SyncSchema(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&gormModels.Country{},
		&gormModels.City{},
		&gormModels.Airport{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SyncSchemaAsync runs SyncSchema in the background. A failure is logged
// and reported on the returned channel but never stops the server.
func SyncSchemaAsync(ctx context.Context, db *gorm.DB) <-chan error {
	done := make(chan error, 1)

	go func() {
		defer close(done)

		err := SyncSchema(ctx, db)
		if err != nil {
			logging.Error("Error synchronizing database", "error", err.Error())
		} else {
			logging.Info("Database synchronized")
		}
		done <- err
	}()

	return done
}
