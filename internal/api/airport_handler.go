package api

import (
	"context"
	"errors"
	"net/http"

	"infinite-experiment/airport-lookup/internal/common"
	"infinite-experiment/airport-lookup/internal/constants"
	"infinite-experiment/airport-lookup/internal/logging"
	"infinite-experiment/airport-lookup/internal/models/dtos/responses"
	"infinite-experiment/airport-lookup/internal/services"
)

// AirportLookup is the service behind GET /airport.
type AirportLookup interface {
	FindAirportByIataCode(ctx context.Context, code string) (*responses.AirportView, error)
}

// GetAirportHandler handles GET /airport?iata_code=XXX
//
// @Summary Airport by IATA code
// @Description Returns the airport with its city and country.
// @Tags Airports
// @Param iata_code query string true "IATA code"
// @Success 200 {object} responses.AirportResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /airport [get]
func GetAirportHandler(lookup AirportLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get(constants.QueryParamIATACode)

		airport, err := lookup.FindAirportByIataCode(r.Context(), code)
		if err != nil {
			if errors.Is(err, services.ErrAirportNotFound) {
				logging.Debug("Airport not found", "iata_code", code)
				common.RespondError(w, http.StatusNotFound, constants.MsgAirportNotFound)
				return
			}

			logging.Error("Error retrieving airport",
				"iata_code", code,
				"request_id", w.Header().Get(constants.HeaderRequestID),
				"error", err.Error(),
			)
			common.RespondError(w, http.StatusInternalServerError, constants.MsgInternalServerError)
			return
		}

		common.RespondJSON(w, http.StatusOK, responses.AirportResponse{Airport: airport})
	}
}
