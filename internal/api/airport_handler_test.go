package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"infinite-experiment/airport-lookup/internal/models/dtos/responses"
	"infinite-experiment/airport-lookup/internal/services"
)

// Mock AirportLookup
type mockAirportLookup struct {
	findFunc func(ctx context.Context, code string) (*responses.AirportView, error)
	lastCode string
}

func (m *mockAirportLookup) FindAirportByIataCode(ctx context.Context, code string) (*responses.AirportView, error) {
	m.lastCode = code
	return m.findFunc(ctx, code)
}

func serve(t *testing.T, lookup AirportLookup, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	GetAirportHandler(lookup).ServeHTTP(rr, req)
	return rr
}

func TestGetAirportHandler_Success(t *testing.T) {
	countryID := int64(1)
	mock := &mockAirportLookup{
		findFunc: func(ctx context.Context, code string) (*responses.AirportView, error) {
			return &responses.AirportView{
				ID:       100,
				ICAOCode: "KJFK",
				IATACode: code,
				Name:     "John F Kennedy International Airport",
				Type:     "large_airport",
				Address: responses.AddressView{
					City:    responses.CityView{ID: 10, Name: "New York", CountryID: &countryID, IsActive: true},
					Country: &responses.CountryView{ID: countryID, Name: "United States", CountryCodeTwo: "US"},
				},
			}, nil
		},
	}

	rr := serve(t, mock, "/airport?iata_code=JFK")

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %s", ct)
	}
	if mock.lastCode != "JFK" {
		t.Errorf("Expected code JFK to reach the service, got %q", mock.lastCode)
	}

	var body map[string]map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(body) != 1 {
		t.Errorf("Expected only the airport key, got %v", body)
	}

	airport := body["airport"]
	if airport["iata_code"] != "JFK" {
		t.Errorf("Expected iata_code JFK, got %v", airport["iata_code"])
	}
	for _, key := range []string{"id", "icao_code", "iata_code", "name", "type", "latitude_deg", "longitude_deg", "elevation_ft", "address"} {
		if _, ok := airport[key]; !ok {
			t.Errorf("Expected key %s in airport", key)
		}
	}

	address := airport["address"].(map[string]any)
	if len(address) != 2 {
		t.Errorf("Expected address to hold city and country only, got %v", address)
	}
	country, ok := address["country"].(map[string]any)
	if !ok {
		t.Fatalf("Expected country object, got %v", address["country"])
	}
	if country["name"] != "United States" {
		t.Errorf("Expected United States, got %v", country["name"])
	}
}

func TestGetAirportHandler_NullCountry(t *testing.T) {
	mock := &mockAirportLookup{
		findFunc: func(ctx context.Context, code string) (*responses.AirportView, error) {
			return &responses.AirportView{ID: 200, IATACode: code}, nil
		},
	}

	rr := serve(t, mock, "/airport?iata_code=XXX")

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"country":null`) {
		t.Errorf("Expected explicit null country, got %s", rr.Body.String())
	}
}

func TestGetAirportHandler_NotFound(t *testing.T) {
	mock := &mockAirportLookup{
		findFunc: func(ctx context.Context, code string) (*responses.AirportView, error) {
			return nil, services.ErrAirportNotFound
		},
	}

	rr := serve(t, mock, "/airport?iata_code=ZZZ")

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"error":"Airport not found"}` {
		t.Errorf("Unexpected body: %s", got)
	}
}

func TestGetAirportHandler_MissingParam(t *testing.T) {
	mock := &mockAirportLookup{
		findFunc: func(ctx context.Context, code string) (*responses.AirportView, error) {
			return nil, services.ErrAirportNotFound
		},
	}

	rr := serve(t, mock, "/airport")

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
	if mock.lastCode != "" {
		t.Errorf("Expected empty code, got %q", mock.lastCode)
	}
}

func TestGetAirportHandler_InternalError(t *testing.T) {
	mock := &mockAirportLookup{
		findFunc: func(ctx context.Context, code string) (*responses.AirportView, error) {
			return nil, fmt.Errorf("%w: find airport: %w", services.ErrInternal, errors.New("pq: password authentication failed for user \"secret\""))
		},
	}

	rr := serve(t, mock, "/airport?iata_code=JFK")

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rr.Code)
	}
	got := strings.TrimSpace(rr.Body.String())
	if got != `{"error":"Internal server error"}` {
		t.Errorf("Unexpected body: %s", got)
	}
	if strings.Contains(got, "pq") || strings.Contains(got, "secret") {
		t.Errorf("Internal detail leaked: %s", got)
	}
}
