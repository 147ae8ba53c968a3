package common

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infinite-experiment/airport-lookup/internal/db/dbtest"
	gormModels "infinite-experiment/airport-lookup/internal/models/gorm"
)

const sampleDataset = `{
	"countries": [
		{"id": 1, "name": " France ", "country_code_two": "fr", "country_code_three": "fra", "mobile_code": "+33", "continent_id": 3}
	],
	"cities": [
		{"id": 5, "name": "Paris", "country_id": 1, "is_active": true, "lat": 48.8566, "long": 2.3522},
		{"id": 6, "name": "Atlantis", "country_id": null, "is_active": false, "lat": 0, "long": 0}
	],
	"airports": [
		{"id": 1, "icao_code": "lfpg", "iata_code": " cdg", "name": "Charles de Gaulle", "type": "large_airport",
		 "latitude_deg": 49.0128, "longitude_deg": 2.55, "elevation_ft": 392, "city_id": 5},
		{"id": 2, "icao_code": "ATLS", "iata_code": "ATL", "name": "  ", "type": "closed", "city_id": 6},
		{"id": 3, "icao_code": "XATL", "iata_code": "XAT", "name": "Atlantis Field", "type": "seaplane_base", "city_id": 6}
	]
}`

func TestLoadFromJSON(t *testing.T) {
	gormDB, _ := dbtest.OpenSeeded(t)
	loader := NewAirportLoaderService(gormDB)

	stats, err := loader.LoadFromJSON(context.Background(), strings.NewReader(sampleDataset))
	require.NoError(t, err)

	// Previous rows are replaced, nameless airports dropped.
	assert.Equal(t, &LoadStats{Countries: 1, Cities: 2, Airports: 2}, stats)

	var cdg gormModels.Airport
	require.NoError(t, gormDB.Where("iata_code = ?", "CDG").First(&cdg).Error)
	assert.Equal(t, "LFPG", cdg.ICAOCode)
	assert.Equal(t, int64(392), cdg.ElevationFt)
	require.NotNil(t, cdg.CityID)
	assert.Equal(t, int64(5), *cdg.CityID)

	var france gormModels.Country
	require.NoError(t, gormDB.First(&france, 1).Error)
	assert.Equal(t, "France", france.Name)
	assert.Equal(t, "FR", france.CountryCodeTwo)
	assert.Equal(t, "FRA", france.CountryCodeThree)

	var atlantis gormModels.City
	require.NoError(t, gormDB.First(&atlantis, 6).Error)
	assert.Nil(t, atlantis.CountryID)
	assert.False(t, atlantis.IsActive)

	var jfk int64
	require.NoError(t, gormDB.Model(&gormModels.Airport{}).Where("iata_code = ?", "JFK").Count(&jfk).Error)
	assert.Zero(t, jfk)
}

func TestLoadFromJSON_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"airports": [`},
		{"no airports", `{"countries": [], "cities": [], "airports": []}`},
		{"only nameless airports", `{"airports": [{"id": 1, "iata_code": "AAA", "name": ""}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormDB, _ := dbtest.OpenSeeded(t)
			loader := NewAirportLoaderService(gormDB)

			_, err := loader.LoadFromJSON(context.Background(), strings.NewReader(tt.input))
			assert.Error(t, err)

			// Existing data is left alone.
			stats, err := loader.GetStats(context.Background())
			require.NoError(t, err)
			assert.Equal(t, int64(7), stats.Airports)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	gormDB, _ := dbtest.Open(t)
	loader := NewAirportLoaderService(gormDB)

	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDataset), 0o600))

	stats, err := loader.LoadFromFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Airports)

	_, err = loader.LoadFromFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
