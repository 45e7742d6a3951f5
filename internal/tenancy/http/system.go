package http

import (
	"net/http"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/store"
	"github.com/causewayhq/causeway/pkg/httpx"
	"github.com/causewayhq/causeway/pkg/tenantsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness Endpoint
//	@Description	Liveness probe returning basic service status, uptime and version. Always 200 while the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	tenantsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, tenantsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Endpoint
//	@Description	Readiness probe checking the database connection. Returns 503 while any dependency is degraded.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	tenantsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	tenantsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &tenantsdk.HealthChecks{Database: "ok"}
		status := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, tenantsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
