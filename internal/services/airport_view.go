package services

import (
	"infinite-experiment/airport-lookup/internal/models/dtos/responses"
	"infinite-experiment/airport-lookup/internal/models/entities"
)

// AirportViewFromRecord shapes a joined row into the response view. NULL
// columns become zero values, except city.country_id and the country
// itself which stay nil.
func AirportViewFromRecord(r *entities.AirportRecord) *responses.AirportView {
	view := &responses.AirportView{
		ID:           r.ID,
		ICAOCode:     deref(r.ICAOCode),
		IATACode:     deref(r.IATACode),
		Name:         deref(r.Name),
		Type:         deref(r.Type),
		LatitudeDeg:  deref(r.LatitudeDeg),
		LongitudeDeg: deref(r.LongitudeDeg),
		ElevationFt:  deref(r.ElevationFt),
		Address: responses.AddressView{
			City: responses.CityView{
				ID:        r.CityID,
				Name:      deref(r.CityName),
				CountryID: r.CityCountryID,
				IsActive:  deref(r.CityIsActive),
				Lat:       deref(r.CityLat),
				Long:      deref(r.CityLong),
			},
		},
	}

	if r.HasCountry() {
		view.Address.Country = &responses.CountryView{
			ID:               *r.CountryID,
			Name:             deref(r.CountryName),
			CountryCodeTwo:   deref(r.CountryCodeTwo),
			CountryCodeThree: deref(r.CountryCodeThree),
			MobileCode:       deref(r.MobileCode),
			ContinentID:      deref(r.ContinentID),
		}
	}

	return view
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
