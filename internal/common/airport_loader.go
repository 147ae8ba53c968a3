package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"infinite-experiment/airport-lookup/internal/logging"
	gormModels "infinite-experiment/airport-lookup/internal/models/gorm"
)

const loaderBatchSize = 100

// AirportLoaderService replaces the reference data (countries, cities,
// airports) from a JSON dataset. It is used by the seed command only; the
// HTTP service never writes.
type AirportLoaderService struct {
	db *gorm.DB
}

// Dataset is the on-disk format:
//
//	{"countries": [...], "cities": [...], "airports": [...]}
//
// Records carry explicit ids so cities and airports can reference them.
type Dataset struct {
	Countries []gormModels.Country `json:"countries"`
	Cities    []gormModels.City    `json:"cities"`
	Airports  []gormModels.Airport `json:"airports"`
}

// LoadStats reports table sizes.
type LoadStats struct {
	Countries int64 `json:"countries"`
	Cities    int64 `json:"cities"`
	Airports  int64 `json:"airports"`
}

// NewAirportLoaderService creates a new airport loader service
func NewAirportLoaderService(db *gorm.DB) *AirportLoaderService {
	return &AirportLoaderService{db: db}
}

// LoadFromFile opens path and hands it to LoadFromJSON.
func (s *AirportLoaderService) LoadFromFile(ctx context.Context, path string) (*LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return s.LoadFromJSON(ctx, f)
}

// LoadFromJSON decodes a Dataset, normalises it and swaps it in inside a
// single transaction. Airports without a name are skipped.
func (s *AirportLoaderService) LoadFromJSON(ctx context.Context, reader io.Reader) (*LoadStats, error) {
	var data Dataset
	if err := json.NewDecoder(reader).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	normalise(&data)
	if len(data.Airports) == 0 {
		return nil, errors.New("no valid airports found after parsing")
	}

	logging.Info("Parsed airport dataset",
		"countries", len(data.Countries),
		"cities", len(data.Cities),
		"airports", len(data.Airports),
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Children first.
		for _, model := range []any{&gormModels.Airport{}, &gormModels.City{}, &gormModels.Country{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("failed to delete existing rows: %w", err)
			}
		}

		if len(data.Countries) > 0 {
			if err := tx.CreateInBatches(data.Countries, loaderBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert countries: %w", err)
			}
		}
		if len(data.Cities) > 0 {
			if err := tx.Omit(clause.Associations).CreateInBatches(data.Cities, loaderBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert cities: %w", err)
			}
		}
		if err := tx.Omit(clause.Associations).CreateInBatches(data.Airports, loaderBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert airports: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Info("Airport dataset imported", "airports", len(data.Airports))

	return s.GetStats(ctx)
}

// GetStats returns row counts for the three tables.
func (s *AirportLoaderService) GetStats(ctx context.Context) (*LoadStats, error) {
	var stats LoadStats
	db := s.db.WithContext(ctx)

	if err := db.Model(&gormModels.Country{}).Count(&stats.Countries).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&gormModels.City{}).Count(&stats.Cities).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&gormModels.Airport{}).Count(&stats.Airports).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func normalise(data *Dataset) {
	for i := range data.Countries {
		c := &data.Countries[i]
		c.Name = strings.TrimSpace(c.Name)
		c.CountryCodeTwo = strings.ToUpper(strings.TrimSpace(c.CountryCodeTwo))
		c.CountryCodeThree = strings.ToUpper(strings.TrimSpace(c.CountryCodeThree))
		c.MobileCode = strings.TrimSpace(c.MobileCode)
	}

	for i := range data.Cities {
		data.Cities[i].Name = strings.TrimSpace(data.Cities[i].Name)
	}

	airports := data.Airports[:0]
	for _, a := range data.Airports {
		a.ICAOCode = strings.ToUpper(strings.TrimSpace(a.ICAOCode))
		a.IATACode = strings.ToUpper(strings.TrimSpace(a.IATACode))
		a.Name = strings.TrimSpace(a.Name)
		a.Type = strings.TrimSpace(a.Type)

		if a.Name == "" {
			continue // Skip invalid records
		}
		airports = append(airports, a)
	}
	data.Airports = airports
}
