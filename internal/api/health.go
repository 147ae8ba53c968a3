package api

import (
	"context"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"infinite-experiment/airport-lookup/internal/common"
	"infinite-experiment/airport-lookup/internal/models/entities"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Verifies the server is running and the database answers.
// @Tags Misc
// @Success 200 {object} entities.HealthReport
// @Failure 503 {object} entities.HealthReport
// @Router /healthCheck [get]
func HealthCheckHandler(db *sqlx.DB, backend string, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		deps := make(map[string]entities.DependencyStatus)

		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		// Check postgres
		dbStatus := "ok"
		dbDetails := "Database connected"
		if err := db.PingContext(ctx); err != nil {
			dbStatus = "down"
			dbDetails = "Database unreachable"
		}
		deps["database"] = entities.DependencyStatus{
			Status:  dbStatus,
			Details: dbDetails,
		}

		overallStatus := "ok"
		code := http.StatusOK
		for _, dep := range deps {
			if dep.Status != "ok" {
				overallStatus = "down"
				code = http.StatusServiceUnavailable
				break
			}
		}

		resp := entities.HealthReport{
			Status:       overallStatus,
			Backend:      backend,
			Dependencies: deps,
			UpSince:      upSince.UTC(),
			Uptime:       time.Since(upSince).Round(time.Second).String(),
		}
		common.RespondJSON(w, code, resp)
	}
}
