package repositories

import (
	"context"

	"gorm.io/gorm"

	"infinite-experiment/airport-lookup/internal/constants"
	"infinite-experiment/airport-lookup/internal/models/entities"
)

// AirportRepositoryGORM reads airports through the GORM query builder.
type AirportRepositoryGORM struct {
	db *gorm.DB
}

// NewAirportRepositoryGORM creates a new GORM-based airport repository
func NewAirportRepositoryGORM(db *gorm.DB) *AirportRepositoryGORM {
	return &AirportRepositoryGORM{db: db}
}

// FindByIATA issues one statement: airports INNER JOIN cities LEFT JOIN
// countries, ordered by airport id. Returns nil when nothing matches.
// A missed country join leaves CountryID nil; a country with id 0 is still
// a match.
func (r *AirportRepositoryGORM) FindByIATA(ctx context.Context, iataCode string) (*entities.AirportRecord, error) {
	var record entities.AirportRecord

	result := r.db.WithContext(ctx).
		Table(constants.AirportsTableAlias).
		Select(constants.AirportRecordColumns).
		Joins(constants.JoinAirportCity).
		Joins(constants.JoinCityCountry).
		Where("a.iata_code = ?", iataCode).
		Order("a.id").
		Limit(1).
		Scan(&record)

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return &record, nil
}
