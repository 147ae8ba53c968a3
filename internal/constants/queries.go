package constants

// AirportRecordColumns is the select list for entities.AirportRecord. The
// country columns come from a left join and are NULL when it misses.
const AirportRecordColumns = `
		a.id              AS airport_id,
		a.icao_code       AS icao_code,
		a.iata_code       AS iata_code,
		a.name            AS airport_name,
		a."type"          AS airport_type,
		a.latitude_deg    AS latitude_deg,
		a.longitude_deg   AS longitude_deg,
		a.elevation_ft    AS elevation_ft,
		c.id              AS city_id,
		c.name            AS city_name,
		c.country_id      AS city_country_id,
		c.is_active       AS city_is_active,
		c.lat             AS city_lat,
		c."long"          AS city_long,
		co.id             AS country_id,
		co.name           AS country_name,
		co.country_code_two,
		co.country_code_three,
		co.mobile_code,
		co.continent_id`

// Join clauses shared by the sqlx and GORM lookups.
const (
	JoinAirportCity    = "INNER JOIN cities c ON c.id = a.city_id"
	JoinCityCountry    = "LEFT JOIN countries co ON co.id = c.country_id"
	AirportsTableAlias = "airports a"
)

// FindAirportByIATA fetches one airport with its city and, when linked, the
// city's country. Written with '?' bindvars and rebound per driver.
const FindAirportByIATA = `
	SELECT` + AirportRecordColumns + `
	FROM ` + AirportsTableAlias + `
	` + JoinAirportCity + `
	` + JoinCityCountry + `
	WHERE a.iata_code = ?
	ORDER BY a.id
	LIMIT 1
	`
