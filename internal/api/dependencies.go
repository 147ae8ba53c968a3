package api

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"infinite-experiment/airport-lookup/internal/constants"
	"infinite-experiment/airport-lookup/internal/db/repositories"
	"infinite-experiment/airport-lookup/internal/metrics"
	"infinite-experiment/airport-lookup/internal/services"
)

type Repositories struct {
	Airports     *repositories.AirportRepository
	AirportsGorm *repositories.AirportRepositoryGORM
}

type Services struct {
	Lookup *services.AirportLookupService
}

// Dependencies is built once at startup and handed to the router.
type Dependencies struct {
	DB       *sqlx.DB
	Repo     *Repositories
	Services *Services
}

// InitDependencies builds repositories and services on top of the shared
// pool. backend picks which repository serves lookups.
func InitDependencies(sqlDB *sqlx.DB, gormDB *gorm.DB, backend constants.LookupBackend, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Airports:     repositories.NewAirportRepository(sqlDB),
		AirportsGorm: repositories.NewAirportRepositoryGORM(gormDB),
	}

	var finder services.AirportFinder
	switch backend {
	case constants.LookupBackendSQLX:
		finder = repos.Airports
	case constants.LookupBackendGORM:
		finder = repos.AirportsGorm
	default:
		return nil, fmt.Errorf("unknown lookup backend %q", backend)
	}

	svcs := &Services{
		Lookup: services.NewAirportLookupService(finder, backend, metricsReg),
	}

	return &Dependencies{
		DB:       sqlDB,
		Repo:     repos,
		Services: svcs,
	}, nil
}
