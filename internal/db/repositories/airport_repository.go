package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"infinite-experiment/airport-lookup/internal/constants"
	"infinite-experiment/airport-lookup/internal/models/entities"
)

// AirportRepository reads airports with a single hand-written join.
type AirportRepository struct {
	db         *sqlx.DB
	findByIATA string
}

// NewAirportRepository binds the lookup query to the driver's placeholder style.
func NewAirportRepository(db *sqlx.DB) *AirportRepository {
	return &AirportRepository{
		db:         db,
		findByIATA: db.Rebind(constants.FindAirportByIATA),
	}
}

// FindByIATA returns the lowest-id airport whose iata_code equals iataCode
// exactly, or nil when there is none.
func (r *AirportRepository) FindByIATA(ctx context.Context, iataCode string) (*entities.AirportRecord, error) {
	var record entities.AirportRecord

	err := r.db.QueryRowxContext(ctx, r.findByIATA, iataCode).StructScan(&record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}
