package db

import (
	"database/sql"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresDialector reuses an already opened pool so GORM and sqlx share
// the same connections.
func PostgresDialector(conn *sql.DB) gorm.Dialector {
	return postgres.New(postgres.Config{Conn: conn})
}

// OpenORM opens GORM on top of the given dialector. Foreign keys between
// airports, cities and countries are not enforced by the store.
func OpenORM(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	return db, nil
}
