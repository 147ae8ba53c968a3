// Package dbtest opens seeded in-memory SQLite databases for tests.
package dbtest

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"infinite-experiment/airport-lookup/internal/db"
	gormModels "infinite-experiment/airport-lookup/internal/models/gorm"
)

// Fixture ids.
const (
	CountryUS   = int64(1)
	CountryZero = int64(0) // a real row whose primary key is 0

	CityNewYork  = int64(10)
	CityNowhere  = int64(20) // no country
	CityDangling = int64(30) // country_id points at a missing row
	CityZero     = int64(40) // in CountryZero

	MissingCountryID = int64(999)
	MissingCityID    = int64(777)
)

// Open returns GORM and sqlx handles over the same in-memory database with
// the schema synchronized.
func Open(t *testing.T) (*gorm.DB, *sqlx.DB) {
	t.Helper()

	gormDB, err := db.OpenORM(sqlite.Open(":memory:"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	// Every new connection to :memory: is a fresh, empty database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.SyncSchema(t.Context(), gormDB); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return gormDB, sqlx.NewDb(sqlDB, "sqlite3")
}

// OpenSeeded is Open plus Seed.
func OpenSeeded(t *testing.T) (*gorm.DB, *sqlx.DB) {
	t.Helper()

	gormDB, sqlDB := Open(t)
	Seed(t, gormDB)
	return gormDB, sqlDB
}

// Seed inserts:
//
//	JFK -> New York -> United States
//	XXX -> Nowhere City (no country)
//	GHT -> Ghost Town (dangling country_id)
//	DUP twice (ids 401 inserted before 400), both in New York
//	ORP -> missing city
//	NUL -> Zero Town -> Zeroland (country id 0)
func Seed(t *testing.T, gormDB *gorm.DB) {
	t.Helper()

	us := CountryUS
	missingCountry := MissingCountryID
	zeroCountry := CountryZero
	newYork, nowhere, dangling, zeroCity, missingCity := CityNewYork, CityNowhere, CityDangling, CityZero, MissingCityID

	countries := []gormModels.Country{
		{ID: us, Name: "United States", CountryCodeTwo: "US", CountryCodeThree: "USA", MobileCode: "+1", ContinentID: 4},
	}
	cities := []gormModels.City{
		{ID: newYork, Name: "New York", CountryID: &us, IsActive: true, Lat: 40.7128, Long: -74.006},
		{ID: nowhere, Name: "Nowhere City", CountryID: nil, IsActive: false, Lat: 1.5, Long: 2.5},
		{ID: dangling, Name: "Ghost Town", CountryID: &missingCountry, IsActive: true, Lat: -10, Long: 20},
		{ID: zeroCity, Name: "Zero Town", CountryID: &zeroCountry, IsActive: true, Lat: 0.5, Long: 0.25},
	}
	airports := []gormModels.Airport{
		{ID: 100, ICAOCode: "KJFK", IATACode: "JFK", Name: "John F Kennedy International Airport", Type: "large_airport",
			LatitudeDeg: 40.639801, LongitudeDeg: -73.7789, ElevationFt: 13, CityID: &newYork},
		{ID: 200, ICAOCode: "XXXX", IATACode: "XXX", Name: "Nowhere Strip", Type: "small_airport",
			LatitudeDeg: 1.5, LongitudeDeg: 2.5, ElevationFt: 120, CityID: &nowhere},
		{ID: 300, ICAOCode: "GHST", IATACode: "GHT", Name: "Ghost Field", Type: "closed",
			LatitudeDeg: -10, LongitudeDeg: 20, ElevationFt: 0, CityID: &dangling},
		{ID: 401, ICAOCode: "DUP2", IATACode: "DUP", Name: "Duplicate Two", Type: "heliport", CityID: &newYork},
		{ID: 400, ICAOCode: "DUP1", IATACode: "DUP", Name: "Duplicate One", Type: "heliport", CityID: &newYork},
		{ID: 500, ICAOCode: "KORP", IATACode: "ORP", Name: "Orphan Airport", Type: "small_airport", CityID: &missingCity},
		{ID: 600, ICAOCode: "ZNUL", IATACode: "NUL", Name: "Null Island Field", Type: "small_airport",
			LatitudeDeg: 0, LongitudeDeg: 0, ElevationFt: 3, CityID: &zeroCity},
	}

	if err := gormDB.Create(&countries).Error; err != nil {
		t.Fatalf("Failed to seed countries: %v", err)
	}
	// Create would treat id 0 as unset and let the store assign one.
	err := gormDB.Exec(
		`INSERT INTO countries (id, name, country_code_two, country_code_three, mobile_code, continent_id) VALUES (?, ?, ?, ?, ?, ?)`,
		CountryZero, "Zeroland", "ZZ", "ZZZ", "+0", 7,
	).Error
	if err != nil {
		t.Fatalf("Failed to seed country 0: %v", err)
	}
	if err := gormDB.Create(&cities).Error; err != nil {
		t.Fatalf("Failed to seed cities: %v", err)
	}
	// One by one so storage order differs from id order for DUP.
	for i := range airports {
		if err := gormDB.Create(&airports[i]).Error; err != nil {
			t.Fatalf("Failed to seed airport %s: %v", airports[i].IATACode, err)
		}
	}
}
