package responses

// AirportResponse is the body of a successful GET /airport.
type AirportResponse struct {
	Airport *AirportView `json:"airport"`
}

type AirportView struct {
	ID           int64       `json:"id"`
	ICAOCode     string      `json:"icao_code"`
	IATACode     string      `json:"iata_code"`
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	LatitudeDeg  float64     `json:"latitude_deg"`
	LongitudeDeg float64     `json:"longitude_deg"`
	ElevationFt  int64       `json:"elevation_ft"`
	Address      AddressView `json:"address"`
}

// AddressView always carries both keys; Country encodes as null when absent.
type AddressView struct {
	City    CityView     `json:"city"`
	Country *CountryView `json:"country"`
}

type CityView struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	CountryID *int64  `json:"country_id"`
	IsActive  bool    `json:"is_active"`
	Lat       float64 `json:"lat"`
	Long      float64 `json:"long"`
}

type CountryView struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	CountryCodeTwo   string `json:"country_code_two"`
	CountryCodeThree string `json:"country_code_three"`
	MobileCode       string `json:"mobile_code"`
	ContinentID      int64  `json:"continent_id"`
}
