package entities

// AirportRecord is one joined airports/cities/countries row. Country columns
// are nil when the city has no (existing) country. Scanned by sqlx through
// the db tags and by GORM through the column tags.
type AirportRecord struct {
	ID           int64    `db:"airport_id" gorm:"column:airport_id"`
	ICAOCode     *string  `db:"icao_code" gorm:"column:icao_code"`
	IATACode     *string  `db:"iata_code" gorm:"column:iata_code"`
	Name         *string  `db:"airport_name" gorm:"column:airport_name"`
	Type         *string  `db:"airport_type" gorm:"column:airport_type"`
	LatitudeDeg  *float64 `db:"latitude_deg" gorm:"column:latitude_deg"`
	LongitudeDeg *float64 `db:"longitude_deg" gorm:"column:longitude_deg"`
	ElevationFt  *int64   `db:"elevation_ft" gorm:"column:elevation_ft"`

	CityID        int64    `db:"city_id" gorm:"column:city_id"`
	CityName      *string  `db:"city_name" gorm:"column:city_name"`
	CityCountryID *int64   `db:"city_country_id" gorm:"column:city_country_id"`
	CityIsActive  *bool    `db:"city_is_active" gorm:"column:city_is_active"`
	CityLat       *float64 `db:"city_lat" gorm:"column:city_lat"`
	CityLong      *float64 `db:"city_long" gorm:"column:city_long"`

	CountryID        *int64  `db:"country_id" gorm:"column:country_id"`
	CountryName      *string `db:"country_name" gorm:"column:country_name"`
	CountryCodeTwo   *string `db:"country_code_two" gorm:"column:country_code_two"`
	CountryCodeThree *string `db:"country_code_three" gorm:"column:country_code_three"`
	MobileCode       *string `db:"mobile_code" gorm:"column:mobile_code"`
	ContinentID      *int64  `db:"continent_id" gorm:"column:continent_id"`
}

// HasCountry reports whether the left join to countries matched.
func (r *AirportRecord) HasCountry() bool {
	return r.CountryID != nil
}
