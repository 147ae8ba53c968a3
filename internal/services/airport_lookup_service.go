package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"infinite-experiment/airport-lookup/internal/constants"
	"infinite-experiment/airport-lookup/internal/metrics"
	"infinite-experiment/airport-lookup/internal/models/dtos/responses"
	"infinite-experiment/airport-lookup/internal/models/entities"
)

var (
	// ErrAirportNotFound is returned when no airport matches the code.
	ErrAirportNotFound = errors.New("airport not found")

	// ErrInternal wraps any storage failure. The wrapped cause is for logs only.
	ErrInternal = errors.New("internal error")
)

// AirportFinder is the storage side of a lookup. Implementations return
// (nil, nil) when no row matches.
type AirportFinder interface {
	FindByIATA(ctx context.Context, iataCode string) (*entities.AirportRecord, error)
}

type AirportLookupService struct {
	finder  AirportFinder
	backend constants.LookupBackend
	metrics *metrics.MetricsRegistry
}

// NewAirportLookupService wires a finder into the service. metricsReg may be nil.
func NewAirportLookupService(finder AirportFinder, backend constants.LookupBackend, metricsReg *metrics.MetricsRegistry) *AirportLookupService {
	return &AirportLookupService{
		finder:  finder,
		backend: backend,
		metrics: metricsReg,
	}
}

// FindAirportByIataCode looks the code up verbatim; no trimming or case
// folding is applied, so an empty code simply matches nothing.
func (s *AirportLookupService) FindAirportByIataCode(ctx context.Context, code string) (*responses.AirportView, error) {
	start := time.Now()
	record, err := s.finder.FindByIATA(ctx, code)
	s.observeQuery(start)

	switch {
	case err != nil:
		s.countLookup(constants.LookupOutcomeError)
		return nil, fmt.Errorf("%w: find airport %q: %w", ErrInternal, code, err)
	case record == nil:
		s.countLookup(constants.LookupOutcomeNotFound)
		return nil, ErrAirportNotFound
	}

	s.countLookup(constants.LookupOutcomeFound)
	return AirportViewFromRecord(record), nil
}

func (s *AirportLookupService) observeQuery(start time.Time) {
	if s.metrics == nil {
		return
	}
	backend := string(s.backend)
	s.metrics.DBQueriesTotal.WithLabelValues("find_airport_by_iata", backend).Inc()
	s.metrics.DBQueryDuration.WithLabelValues("find_airport_by_iata", backend).Observe(time.Since(start).Seconds())
}

func (s *AirportLookupService) countLookup(outcome constants.LookupOutcome) {
	if s.metrics == nil {
		return
	}
	s.metrics.AirportLookupsTotal.WithLabelValues(string(outcome)).Inc()
}
