package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infinite-experiment/airport-lookup/internal/db/dbtest"
	"infinite-experiment/airport-lookup/internal/models/entities"
)

type finder interface {
	FindByIATA(ctx context.Context, iataCode string) (*entities.AirportRecord, error)
}

// Both backends must behave identically.
func backends(t *testing.T) map[string]finder {
	t.Helper()

	gormDB, sqlDB := dbtest.OpenSeeded(t)
	return map[string]finder{
		"sqlx": NewAirportRepository(sqlDB),
		"gorm": NewAirportRepositoryGORM(gormDB),
	}
}

func TestFindByIATA_WithCountry(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			rec, err := repo.FindByIATA(context.Background(), "JFK")
			require.NoError(t, err)
			require.NotNil(t, rec)

			assert.Equal(t, int64(100), rec.ID)
			assert.Equal(t, "KJFK", *rec.ICAOCode)
			assert.Equal(t, "JFK", *rec.IATACode)
			assert.Equal(t, "John F Kennedy International Airport", *rec.Name)
			assert.Equal(t, "large_airport", *rec.Type)
			assert.InDelta(t, 40.639801, *rec.LatitudeDeg, 1e-9)
			assert.InDelta(t, -73.7789, *rec.LongitudeDeg, 1e-9)
			assert.Equal(t, int64(13), *rec.ElevationFt)

			assert.Equal(t, dbtest.CityNewYork, rec.CityID)
			assert.Equal(t, "New York", *rec.CityName)
			require.NotNil(t, rec.CityCountryID)
			assert.Equal(t, dbtest.CountryUS, *rec.CityCountryID)
			assert.True(t, *rec.CityIsActive)

			require.True(t, rec.HasCountry())
			assert.Equal(t, dbtest.CountryUS, *rec.CountryID)
			assert.Equal(t, "United States", *rec.CountryName)
			assert.Equal(t, "US", *rec.CountryCodeTwo)
			assert.Equal(t, "USA", *rec.CountryCodeThree)
			assert.Equal(t, "+1", *rec.MobileCode)
			assert.Equal(t, int64(4), *rec.ContinentID)
		})
	}
}

func TestFindByIATA_CountryWithZeroID(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			rec, err := repo.FindByIATA(context.Background(), "NUL")
			require.NoError(t, err)
			require.NotNil(t, rec)

			assert.Equal(t, dbtest.CityZero, rec.CityID)
			require.NotNil(t, rec.CityCountryID)
			assert.Equal(t, dbtest.CountryZero, *rec.CityCountryID)

			require.True(t, rec.HasCountry())
			assert.Equal(t, dbtest.CountryZero, *rec.CountryID)
			assert.Equal(t, "Zeroland", *rec.CountryName)
			assert.Equal(t, "ZZ", *rec.CountryCodeTwo)
			assert.Equal(t, int64(7), *rec.ContinentID)
		})
	}
}

func TestFindByIATA_CityWithoutCountry(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			rec, err := repo.FindByIATA(context.Background(), "XXX")
			require.NoError(t, err)
			require.NotNil(t, rec)

			assert.Equal(t, dbtest.CityNowhere, rec.CityID)
			assert.Nil(t, rec.CityCountryID)
			assert.False(t, *rec.CityIsActive)
			assert.False(t, rec.HasCountry())
		})
	}
}

func TestFindByIATA_DanglingCountry(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			rec, err := repo.FindByIATA(context.Background(), "GHT")
			require.NoError(t, err)
			require.NotNil(t, rec)

			require.NotNil(t, rec.CityCountryID)
			assert.Equal(t, dbtest.MissingCountryID, *rec.CityCountryID)
			assert.False(t, rec.HasCountry())
		})
	}
}

func TestFindByIATA_NoMatch(t *testing.T) {
	codes := map[string]string{
		"unknown":       "ZZZ",
		"empty":         "",
		"lowercase":     "jfk",
		"padded":        " JFK",
		"missing city":  "ORP",
		"icao not iata": "KJFK",
	}

	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for label, code := range codes {
				t.Run(label, func(t *testing.T) {
					rec, err := repo.FindByIATA(context.Background(), code)
					assert.NoError(t, err)
					assert.Nil(t, rec)
				})
			}
		})
	}
}

func TestFindByIATA_DuplicatesReturnLowestID(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			rec, err := repo.FindByIATA(context.Background(), "DUP")
			require.NoError(t, err)
			require.NotNil(t, rec)

			assert.Equal(t, int64(400), rec.ID)
			assert.Equal(t, "Duplicate One", *rec.Name)
		})
	}
}

func TestFindByIATA_StorageFailure(t *testing.T) {
	gormDB, sqlDB := dbtest.Open(t)
	repos := map[string]finder{
		"sqlx": NewAirportRepository(sqlDB),
		"gorm": NewAirportRepositoryGORM(gormDB),
	}
	require.NoError(t, sqlDB.Close())

	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			rec, err := repo.FindByIATA(context.Background(), "JFK")
			assert.Error(t, err)
			assert.Nil(t, rec)
		})
	}
}
